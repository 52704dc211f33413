package dto

import (
	"gorm.io/datatypes"

	"almanar_backend/internals/features/events/model"
)

type CreateEventRequest struct {
	Title       string         `json:"title" validate:"required,min=2,max=200"`
	Description string         `json:"description" validate:"omitempty"`
	Date        string         `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string         `json:"time" validate:"omitempty,datetime=15:04"`
	Location    string         `json:"location" validate:"omitempty,max=200"`
	ImageURL    string         `json:"image_url" validate:"omitempty,url"`
	Sector      string         `json:"sector" validate:"required,oneof=academic qirat charity dawa"`
	Status      string         `json:"status" validate:"omitempty,oneof=pending approved rejected upcoming ongoing completed"`
	Extra       map[string]any `json:"extra" validate:"omitempty"`
}

func (r CreateEventRequest) ToModel() model.Event {
	status := r.Status
	if status == "" {
		status = model.EventStatusPending
	}
	return model.Event{
		EventTitle:       r.Title,
		EventDescription: r.Description,
		EventDate:        r.Date,
		EventTime:        r.Time,
		EventLocation:    r.Location,
		EventImageURL:    r.ImageURL,
		EventSector:      r.Sector,
		EventStatus:      status,
		EventExtra:       datatypes.JSONMap(r.Extra),
	}
}

type UpdateEventRequest struct {
	Title       *string        `json:"title" validate:"omitempty,min=2,max=200"`
	Description *string        `json:"description" validate:"omitempty"`
	Date        *string        `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time        *string        `json:"time" validate:"omitempty,datetime=15:04"`
	Location    *string        `json:"location" validate:"omitempty,max=200"`
	ImageURL    *string        `json:"image_url" validate:"omitempty,url"`
	Sector      *string        `json:"sector" validate:"omitempty,oneof=academic qirat charity dawa"`
	Status      *string        `json:"status" validate:"omitempty,oneof=pending approved rejected upcoming ongoing completed"`
	Extra       map[string]any `json:"extra" validate:"omitempty"`
}

// Patch renders the set fields as a column map for the collection store.
func (r UpdateEventRequest) Patch() map[string]any {
	p := map[string]any{}
	if r.Title != nil {
		p["event_title"] = *r.Title
	}
	if r.Description != nil {
		p["event_description"] = *r.Description
	}
	if r.Date != nil {
		p["event_date"] = *r.Date
	}
	if r.Time != nil {
		p["event_time"] = *r.Time
	}
	if r.Location != nil {
		p["event_location"] = *r.Location
	}
	if r.ImageURL != nil {
		p["event_image_url"] = *r.ImageURL
	}
	if r.Sector != nil {
		p["event_sector"] = *r.Sector
	}
	if r.Status != nil {
		p["event_status"] = *r.Status
	}
	if r.Extra != nil {
		p["event_extra"] = datatypes.JSONMap(r.Extra)
	}
	return p
}

type UpdateEventStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected upcoming ongoing completed"`
}
