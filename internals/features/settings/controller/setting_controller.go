// 📁 controller/setting_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"almanar_backend/internals/features/settings/dto"
	"almanar_backend/internals/features/settings/model"
	helpers "almanar_backend/internals/helpers"
)

type SettingController struct {
	DB *gorm.DB
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{DB: db}
}

func (ctrl *SettingController) Get(c *fiber.Ctx) error {
	s, err := model.LoadSiteSetting(ctrl.DB)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to load settings")
	}
	return c.JSON(fiber.Map{"data": s})
}

func (ctrl *SettingController) Update(c *fiber.Ctx) error {
	var body dto.UpdateSiteSettingRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	s, err := model.LoadSiteSetting(ctrl.DB)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to load settings")
	}

	if body.OrgName != nil {
		s.SiteSettingOrgName = *body.OrgName
	}
	if body.ThemeColor != nil {
		s.SiteSettingThemeColor = *body.ThemeColor
	}
	if body.Language != nil {
		s.SiteSettingLanguage = *body.Language
	}
	if body.ContactEmail != nil {
		s.SiteSettingContactEmail = *body.ContactEmail
	}
	if body.ContactPhone != nil {
		s.SiteSettingContactPhone = *body.ContactPhone
	}

	if err := s.Save(ctrl.DB); err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to save settings")
	}
	return helpers.Success(c, "Settings updated", fiber.Map{"settings": s})
}
