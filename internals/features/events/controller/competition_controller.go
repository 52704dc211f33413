// 📁 controller/competition_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"almanar_backend/internals/collections"
	"almanar_backend/internals/features/events/dto"
	"almanar_backend/internals/features/events/model"
	helpers "almanar_backend/internals/helpers"
)

type CompetitionController struct {
	Store *collections.Store[model.Competition]
}

func NewCompetitionController(store *collections.Store[model.Competition]) *CompetitionController {
	return &CompetitionController{Store: store}
}

func (ctrl *CompetitionController) GetAll(c *fiber.Ctx) error {
	items, err := ctrl.Store.Snapshot(c.UserContext())
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to load competitions")
	}

	sector := c.Query("sector")
	status := c.Query("status")
	if sector != "" || status != "" {
		filtered := make([]model.Competition, 0, len(items))
		for _, cp := range items {
			if sector != "" && cp.CompetitionSector != sector {
				continue
			}
			if status != "" && cp.CompetitionStatus != status {
				continue
			}
			filtered = append(filtered, cp)
		}
		items = filtered
	}

	p := helpers.ParsePagination(c, helpers.DefaultOpts)
	return c.JSON(fiber.Map{
		"data":       helpers.Slice(items, p),
		"pagination": helpers.Meta(p, len(items)),
	})
}

func (ctrl *CompetitionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid competition id")
	}
	cp, err := ctrl.Store.Get(c.UserContext(), id)
	if errors.Is(err, collections.ErrNotFound) {
		return helpers.Error(c, fiber.StatusNotFound, "Competition not found")
	}
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to load competition")
	}
	return helpers.Success(c, "OK", cp)
}

func (ctrl *CompetitionController) Create(c *fiber.Ctx) error {
	var body dto.CreateCompetitionRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	cp := body.ToModel()
	id, err := ctrl.Store.Create(c.UserContext(), &cp)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to create competition")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Competition created", fiber.Map{
		"competition_id": id,
		"competition":    cp,
	})
}

func (ctrl *CompetitionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid competition id")
	}
	var body dto.UpdateCompetitionRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	if err := ctrl.Store.Update(c.UserContext(), id, body.Patch()); err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Competition not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update competition")
	}
	return helpers.Success(c, "Competition updated", nil)
}

func (ctrl *CompetitionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid competition id")
	}
	if err := ctrl.Store.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Competition not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to delete competition")
	}
	return helpers.Success(c, "Competition deleted", nil)
}

func (ctrl *CompetitionController) ExportCSV(c *fiber.Ctx) error {
	items, err := ctrl.Store.Snapshot(c.UserContext())
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to load competitions")
	}

	header := []string{"id", "title", "date", "prize", "sector", "status", "created_at"}
	rows := make([][]string, 0, len(items))
	for _, cp := range items {
		rows = append(rows, []string{
			cp.CompetitionID.String(),
			cp.CompetitionTitle,
			cp.CompetitionDate,
			cp.CompetitionPrize,
			cp.CompetitionSector,
			cp.CompetitionStatus,
			cp.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return helpers.SendCSV(c, "competitions.csv", header, rows)
}
