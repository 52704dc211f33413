package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Event lifecycle: submitted as pending, approved/rejected by an admin, then
// moved through upcoming/ongoing/completed by hand. Transitions are not
// validated anywhere; any status may follow any other.
const (
	EventStatusPending   = "pending"
	EventStatusApproved  = "approved"
	EventStatusRejected  = "rejected"
	EventStatusUpcoming  = "upcoming"
	EventStatusOngoing   = "ongoing"
	EventStatusCompleted = "completed"
)

var EventStatuses = []string{
	EventStatusPending,
	EventStatusApproved,
	EventStatusRejected,
	EventStatusUpcoming,
	EventStatusOngoing,
	EventStatusCompleted,
}

type Event struct {
	EventID uuid.UUID `gorm:"column:event_id;type:uuid;primaryKey" json:"event_id"`

	EventTitle       string `gorm:"column:event_title;type:varchar(200);not null" json:"event_title"`
	EventDescription string `gorm:"column:event_description;type:text" json:"event_description"`

	EventDate     string `gorm:"column:event_date;type:varchar(10);not null" json:"event_date"` // YYYY-MM-DD
	EventTime     string `gorm:"column:event_time;type:varchar(5)" json:"event_time"`           // HH:MM
	EventLocation string `gorm:"column:event_location;type:varchar(200)" json:"event_location"`

	EventImageURL string `gorm:"column:event_image_url;type:text" json:"event_image_url"`

	EventSector string `gorm:"column:event_sector;type:varchar(20);not null" json:"event_sector"`
	EventStatus string `gorm:"column:event_status;type:varchar(20);default:'pending'" json:"event_status"`

	// free-form dashboard fields, passed through opaquely
	EventExtra datatypes.JSONMap `gorm:"column:event_extra;type:jsonb" json:"event_extra,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}

func (m Event) GetID() uuid.UUID {
	return m.EventID
}

func (m *Event) BeforeCreate(tx *gorm.DB) error {
	if m.EventID == uuid.Nil {
		m.EventID = uuid.New()
	}
	return nil
}
