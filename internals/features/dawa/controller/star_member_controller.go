// 📁 controller/star_member_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"almanar_backend/internals/collections"
	"almanar_backend/internals/features/dawa/dto"
	"almanar_backend/internals/features/dawa/model"
	helpers "almanar_backend/internals/helpers"
)

type StarMemberController struct {
	Store *collections.Store[model.StarShiningMember]
}

func NewStarMemberController(store *collections.Store[model.StarShiningMember]) *StarMemberController {
	return &StarMemberController{Store: store}
}

// 🟢 GET ALL: public spotlight shows featured only; admins pass ?all=1 for nominees too
func (ctrl *StarMemberController) GetAll(c *fiber.Ctx) error {
	items, err := ctrl.Store.Snapshot(c.UserContext())
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to load star members")
	}

	month := c.Query("month")
	includeNominees := c.Query("all") == "1" && c.Locals("role") != nil

	filtered := make([]model.StarShiningMember, 0, len(items))
	for _, m := range items {
		if !includeNominees && m.StarMemberStatus != model.StarMemberStatusFeatured {
			continue
		}
		if month != "" && m.StarMemberMonth != month {
			continue
		}
		filtered = append(filtered, m)
	}
	items = filtered

	p := helpers.ParsePagination(c, helpers.DefaultOpts)
	return c.JSON(fiber.Map{
		"data":       helpers.Slice(items, p),
		"pagination": helpers.Meta(p, len(items)),
	})
}

func (ctrl *StarMemberController) Create(c *fiber.Ctx) error {
	var body dto.CreateStarMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	m := body.ToModel()
	id, err := ctrl.Store.Create(c.UserContext(), &m)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to create star member")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Star member created", fiber.Map{
		"star_member_id": id,
		"star_member":    m,
	})
}

func (ctrl *StarMemberController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid star member id")
	}
	var body dto.UpdateStarMemberRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	if err := ctrl.Store.Update(c.UserContext(), id, body.Patch()); err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Star member not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update star member")
	}
	return helpers.Success(c, "Star member updated", nil)
}

func (ctrl *StarMemberController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid star member id")
	}
	if err := ctrl.Store.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Star member not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to delete star member")
	}
	return helpers.Success(c, "Star member deleted", nil)
}
