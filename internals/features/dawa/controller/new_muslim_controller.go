// 📁 controller/new_muslim_controller.go
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

type NewMuslimController struct {
	Store *collections.Store[model.NewMuslim]
}

func NewNewMuslimController(store *collections.Store[model.NewMuslim]) *NewMuslimController {
	return &NewMuslimController{Store: store}
}

// 🟢 GET ALL: admin-only roster, optional ?status= filter
func (ctrl *NewMuslimController) GetAll(c *fiber.Ctx) error {
	items, err := ctrl.Store.Snapshot(c.UserContext())
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to load new muslims")
	}

	if status := c.Query("status"); status != "" {
		filtered := make([]model.NewMuslim, 0, len(items))
		for _, n := range items {
			if n.NewMuslimStatus == status {
				filtered = append(filtered, n)
			}
		}
		items = filtered
	}

	p := helpers.ParsePagination(c, helpers.AdminOpts)
	return c.JSON(fiber.Map{
		"data":       helpers.Slice(items, p),
		"pagination": helpers.Meta(p, len(items)),
	})
}

func (ctrl *NewMuslimController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid new muslim id")
	}
	n, err := ctrl.Store.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "New muslim not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to load new muslim")
	}
	return c.JSON(fiber.Map{"data": n})
}

func (ctrl *NewMuslimController) Create(c *fiber.Ctx) error {
	var body dto.CreateNewMuslimRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	n := body.ToModel()
	id, err := ctrl.Store.Create(c.UserContext(), &n)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to create new muslim")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "New muslim created", fiber.Map{
		"new_muslim_id": id,
		"new_muslim":    n,
	})
}

func (ctrl *NewMuslimController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid new muslim id")
	}
	var body dto.UpdateNewMuslimRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	if err := ctrl.Store.Update(c.UserContext(), id, body.Patch()); err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "New muslim not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update new muslim")
	}
	return helpers.Success(c, "New muslim updated", nil)
}

func (ctrl *NewMuslimController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid new muslim id")
	}
	if err := ctrl.Store.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "New muslim not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to delete new muslim")
	}
	return helpers.Success(c, "New muslim deleted", nil)
}

func (ctrl *NewMuslimController) ExportCSV(c *fiber.Ctx) error {
	items, err := ctrl.Store.Snapshot(c.UserContext())
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to load new muslims")
	}

	header := []string{"id", "name", "phone", "shahada_date", "mentor", "status", "created_at"}
	rows := make([][]string, 0, len(items))
	for _, n := range items {
		rows = append(rows, []string{
			n.NewMuslimID.String(),
			n.NewMuslimName,
			n.NewMuslimPhone,
			n.NewMuslimShahadaDate,
			n.NewMuslimMentor,
			n.NewMuslimStatus,
			n.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return helpers.SendCSV(c, "new_muslims.csv", header, rows)
}
