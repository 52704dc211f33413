// 📁 controller/distribution_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"almanar_backend/internals/collections"
	"almanar_backend/internals/features/donations/dto"
	"almanar_backend/internals/features/donations/model"
	helpers "almanar_backend/internals/helpers"
)

type DistributionController struct {
	Store *collections.Store[model.Distribution]
}

func NewDistributionController(store *collections.Store[model.Distribution]) *DistributionController {
	return &DistributionController{Store: store}
}

func (ctrl *DistributionController) GetAll(c *fiber.Ctx) error {
	items, err := ctrl.Store.Snapshot(c.UserContext())
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to load distributions")
	}

	if status := c.Query("status"); status != "" {
		filtered := make([]model.Distribution, 0, len(items))
		for _, d := range items {
			if d.DistributionStatus == status {
				filtered = append(filtered, d)
			}
		}
		items = filtered
	}

	p := helpers.ParsePagination(c, helpers.DefaultOpts)
	return c.JSON(fiber.Map{
		"data":       helpers.Slice(items, p),
		"pagination": helpers.Meta(p, len(items)),
	})
}

func (ctrl *DistributionController) Create(c *fiber.Ctx) error {
	var body dto.CreateDistributionRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	d := body.ToModel()
	id, err := ctrl.Store.Create(c.UserContext(), &d)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to create distribution")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Distribution created", fiber.Map{
		"distribution_id": id,
		"distribution":    d,
	})
}

func (ctrl *DistributionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid distribution id")
	}
	var body dto.UpdateDistributionRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	if err := ctrl.Store.Update(c.UserContext(), id, body.Patch()); err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Distribution not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update distribution")
	}
	return helpers.Success(c, "Distribution updated", nil)
}

func (ctrl *DistributionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid distribution id")
	}
	if err := ctrl.Store.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Distribution not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to delete distribution")
	}
	return helpers.Success(c, "Distribution deleted", nil)
}

func (ctrl *DistributionController) ExportCSV(c *fiber.Ctx) error {
	items, err := ctrl.Store.Snapshot(c.UserContext())
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to load distributions")
	}

	header := []string{"id", "title", "date", "amount", "beneficiaries", "status", "created_at"}
	rows := make([][]string, 0, len(items))
	for _, d := range items {
		rows = append(rows, []string{
			d.DistributionID.String(),
			d.DistributionTitle,
			d.DistributionDate,
			fmt.Sprintf("%d", d.DistributionAmount),
			fmt.Sprintf("%d", d.DistributionBeneficiaries),
			d.DistributionStatus,
			d.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return helpers.SendCSV(c, "distributions.csv", header, rows)
}
