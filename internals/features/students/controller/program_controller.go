// 📁 controller/program_controller.go
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

type ProgramController struct {
	Store *collections.Store[model.Program]
}

func NewProgramController(store *collections.Store[model.Program]) *ProgramController {
	return &ProgramController{Store: store}
}

func (ctrl *ProgramController) GetAll(c *fiber.Ctx) error {
	items, err := ctrl.Store.Snapshot(c.UserContext())
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to load programs")
	}

	sector := c.Query("sector")
	status := c.Query("status")
	if sector != "" || status != "" {
		filtered := make([]model.Program, 0, len(items))
		for _, pr := range items {
			if sector != "" && pr.ProgramSector != sector {
				continue
			}
			if status != "" && pr.ProgramStatus != status {
				continue
			}
			filtered = append(filtered, pr)
		}
		items = filtered
	}

	p := helpers.ParsePagination(c, helpers.DefaultOpts)
	return c.JSON(fiber.Map{
		"data":       helpers.Slice(items, p),
		"pagination": helpers.Meta(p, len(items)),
	})
}

func (ctrl *ProgramController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid program id")
	}
	pr, err := ctrl.Store.Get(c.UserContext(), id)
	if errors.Is(err, collections.ErrNotFound) {
		return helpers.Error(c, fiber.StatusNotFound, "Program not found")
	}
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to load program")
	}
	return helpers.Success(c, "OK", pr)
}

func (ctrl *ProgramController) Create(c *fiber.Ctx) error {
	var body dto.CreateProgramRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	pr := body.ToModel()
	id, err := ctrl.Store.Create(c.UserContext(), &pr)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to create program")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Program created", fiber.Map{
		"program_id": id,
		"program":    pr,
	})
}

func (ctrl *ProgramController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid program id")
	}
	var body dto.UpdateProgramRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	if err := ctrl.Store.Update(c.UserContext(), id, body.Patch()); err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Program not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update program")
	}
	return helpers.Success(c, "Program updated", nil)
}

// 🟢 DELETE: enrolled registrations are NOT cascaded (see registration model)
func (ctrl *ProgramController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid program id")
	}
	if err := ctrl.Store.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Program not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to delete program")
	}
	return helpers.Success(c, "Program deleted", nil)
}
