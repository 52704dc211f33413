// 📁 controller/resource_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"almanar_backend/internals/collections"
	"almanar_backend/internals/features/resources/dto"
	"almanar_backend/internals/features/resources/model"
	helpers "almanar_backend/internals/helpers"
)

type ResourceController struct {
	Store *collections.Store[model.Resource]
}

func NewResourceController(store *collections.Store[model.Resource]) *ResourceController {
	return &ResourceController{Store: store}
}

// 🟢 GET ALL: public sees published only; admins pass ?all=1 for drafts too
func (ctrl *ResourceController) GetAll(c *fiber.Ctx) error {
	items, err := ctrl.Store.Snapshot(c.UserContext())
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to load resources")
	}

	sector := c.Query("sector")
	rtype := c.Query("type")
	includeDrafts := c.Query("all") == "1" && c.Locals("role") != nil

	filtered := make([]model.Resource, 0, len(items))
	for _, r := range items {
		if !includeDrafts && r.ResourceStatus != model.ResourceStatusPublished {
			continue
		}
		if sector != "" && r.ResourceSector != sector {
			continue
		}
		if rtype != "" && r.ResourceType != rtype {
			continue
		}
		filtered = append(filtered, r)
	}
	items = filtered

	p := helpers.ParsePagination(c, helpers.DefaultOpts)
	return c.JSON(fiber.Map{
		"data":       helpers.Slice(items, p),
		"pagination": helpers.Meta(p, len(items)),
	})
}

func (ctrl *ResourceController) Create(c *fiber.Ctx) error {
	var body dto.CreateResourceRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	r := body.ToModel()
	id, err := ctrl.Store.Create(c.UserContext(), &r)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to create resource")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Resource created", fiber.Map{
		"resource_id": id,
		"resource":    r,
	})
}

func (ctrl *ResourceController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid resource id")
	}
	var body dto.UpdateResourceRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	if err := ctrl.Store.Update(c.UserContext(), id, body.Patch()); err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Resource not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update resource")
	}
	return helpers.Success(c, "Resource updated", nil)
}

func (ctrl *ResourceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid resource id")
	}
	if err := ctrl.Store.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Resource not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to delete resource")
	}
	return helpers.Success(c, "Resource deleted", nil)
}
