// 📁 controller/event_controller.go
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

type EventController struct {
	Store *collections.Store[model.Event]
}

func NewEventController(store *collections.Store[model.Event]) *EventController {
	return &EventController{Store: store}
}

// 🟢 GET ALL: full ordered snapshot, sector/status filtered caller-side
func (ctrl *EventController) GetAll(c *fiber.Ctx) error {
	items, err := ctrl.Store.Snapshot(c.UserContext())
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to load events")
	}

	sector := c.Query("sector")
	status := c.Query("status")
	if sector != "" || status != "" {
		filtered := make([]model.Event, 0, len(items))
		for _, ev := range items {
			if sector != "" && ev.EventSector != sector {
				continue
			}
			if status != "" && ev.EventStatus != status {
				continue
			}
			filtered = append(filtered, ev)
		}
		items = filtered
	}

	p := helpers.ParsePagination(c, helpers.DefaultOpts)
	return c.JSON(fiber.Map{
		"data":       helpers.Slice(items, p),
		"pagination": helpers.Meta(p, len(items)),
	})
}

// 🟢 GET BY ID
func (ctrl *EventController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}
	ev, err := ctrl.Store.Get(c.UserContext(), id)
	if errors.Is(err, collections.ErrNotFound) {
		return helpers.Error(c, fiber.StatusNotFound, "Event not found")
	}
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to load event")
	}
	return helpers.Success(c, "OK", ev)
}

// 🟢 CREATE: status defaults to pending when omitted
func (ctrl *EventController) Create(c *fiber.Ctx) error {
	var body dto.CreateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	ev := body.ToModel()
	id, err := ctrl.Store.Create(c.UserContext(), &ev)
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to create event")
	}
	return helpers.SuccessWithCode(c, fiber.StatusCreated, "Event created", fiber.Map{
		"event_id": id,
		"event":    ev,
	})
}

// 🟢 UPDATE: partial merge, last write wins
func (ctrl *EventController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}
	var body dto.UpdateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	if err := ctrl.Store.Update(c.UserContext(), id, body.Patch()); err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Event not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	return helpers.Success(c, "Event updated", nil)
}

// 🟢 UPDATE STATUS: approve/reject/progress shortcut for the dashboards
func (ctrl *EventController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}
	var body dto.UpdateEventStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validate.Struct(body); err != nil {
		return helpers.ValidationError(c, err)
	}

	patch := map[string]any{"event_status": body.Status}
	if err := ctrl.Store.Update(c.UserContext(), id, patch); err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Event not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to update event status")
	}
	return helpers.Success(c, "Event status updated", nil)
}

// 🟢 DELETE: hard delete, gone from every live subscription
func (ctrl *EventController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}
	if err := ctrl.Store.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Event not found")
		}
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	return helpers.Success(c, "Event deleted", nil)
}

// 🟢 EXPORT CSV
func (ctrl *EventController) ExportCSV(c *fiber.Ctx) error {
	items, err := ctrl.Store.Snapshot(c.UserContext())
	if err != nil {
		return helpers.Error(c, fiber.StatusInternalServerError, "Failed to load events")
	}

	header := []string{"id", "title", "date", "time", "location", "sector", "status", "created_at"}
	rows := make([][]string, 0, len(items))
	for _, ev := range items {
		rows = append(rows, []string{
			ev.EventID.String(),
			ev.EventTitle,
			ev.EventDate,
			ev.EventTime,
			ev.EventLocation,
			ev.EventSector,
			ev.EventStatus,
			ev.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return helpers.SendCSV(c, "events.csv", header, rows)
}
