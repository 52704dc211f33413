// 📁 controller/registration_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"almanar_backend/internals/collections"
	"almanar_backend/internals/features/students/dto"
	"almanar_backend/internals/features/students/model"
	helpers "almanar_backend/internals/helpers"
)

type RegistrationController struct {
	Store *collections.Store[model.Registration]
}

func NewRegistrationController(store *collections.Store[model.Registration]) *RegistrationController {
	return &RegistrationController{Store: store}
}

func (ctrl *RegistrationController) GetAll(c *fiber.Ctx) error {
	items, err := ctrl.Store.Snapshot(c.UserContext())
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to load registrations")
	}

	programID := c.Query("program_id")
	status := c.Query("status")
	if programID != "" || status != "" {
		filtered := make([]model.Registration, 0, len(items))
		for _, r := range items {
			if programID != "" && r.RegistrationProgramID.String() != programID {
				continue
			}
			if status != "" && r.RegistrationStatus != status {
				continue
			}
			filtered = append(filtered, r)
		}
		items = filtered
	}

	p := helpers.ParsePagination(c, helpers.AdminOpts)
	return c.JSON(fiber.Map{
		"data":       helpers.Slice(items, p),
		"pagination": helpers.Meta(p, len(items)),
	})
}

// 🟢 CREATE (public): program sign-up form
func (ctrl *RegistrationController) Create(c *fiber.Ctx) error {
	var body dto.CreateRegistrationRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}
	programID, err := uuid.Parse(body.ProgramID)
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid program id")
	}

	reg := model.Registration{
		RegistrationProgramID: programID,
		RegistrationName:      body.Name,
		RegistrationEmail:     body.Email,
		RegistrationPhone:     body.Phone,
		RegistrationNote:      body.Note,
		RegistrationStatus:    model.RegistrationStatusPending,
	}
	id, err := ctrl.Store.Create(c.UserContext(), &reg)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to create registration")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Registration submitted", fiber.Map{
		"registration_id": id,
	})
}

func (ctrl *RegistrationController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid registration id")
	}
	var body dto.UpdateRegistrationStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	if err := ctrl.Store.Update(c.UserContext(), id, map[string]any{"registration_status": body.Status}); err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Registration not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update registration")
	}
	return helpers.Success(c, "Registration status updated", nil)
}

func (ctrl *RegistrationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid registration id")
	}
	if err := ctrl.Store.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Registration not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to delete registration")
	}
	return helpers.Success(c, "Registration deleted", nil)
}

func (ctrl *RegistrationController) ExportCSV(c *fiber.Ctx) error {
	items, err := ctrl.Store.Snapshot(c.UserContext())
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to load registrations")
	}

	header := []string{"id", "program_id", "name", "email", "phone", "status", "created_at"}
	rows := make([][]string, 0, len(items))
	for _, r := range items {
		rows = append(rows, []string{
			r.RegistrationID.String(),
			r.RegistrationProgramID.String(),
			r.RegistrationName,
			r.RegistrationEmail,
			r.RegistrationPhone,
			r.RegistrationStatus,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return helpers.SendCSV(c, "registrations.csv", header, rows)
}
