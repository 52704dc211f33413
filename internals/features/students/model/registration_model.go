package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RegistrationStatusPending  = "pending"
	RegistrationStatusApproved = "approved"
	RegistrationStatusRejected = "rejected"
)

var RegistrationStatuses = []string{
	RegistrationStatusPending,
	RegistrationStatusApproved,
	RegistrationStatusRejected,
}

// Registration is a program sign-up. The program reference is a plain id:
// deleting a program does not cascade here (deliberate simplification).
type Registration struct {
	RegistrationID uuid.UUID `gorm:"column:registration_id;type:uuid;primaryKey" json:"registration_id"`

	RegistrationProgramID uuid.UUID `gorm:"column:registration_program_id;type:uuid;not null" json:"registration_program_id"`

	RegistrationName  string `gorm:"column:registration_name;type:varchar(100);not null" json:"registration_name"`
	RegistrationEmail string `gorm:"column:registration_email;type:varchar(255)" json:"registration_email"`
	RegistrationPhone string `gorm:"column:registration_phone;type:varchar(30)" json:"registration_phone"`
	RegistrationNote  string `gorm:"column:registration_note;type:text" json:"registration_note"`

	RegistrationStatus string `gorm:"column:registration_status;type:varchar(20);default:'pending'" json:"registration_status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Registration) TableName() string {
	return "registrations"
}

func (m Registration) GetID() uuid.UUID {
	return m.RegistrationID
}

func (m *Registration) BeforeCreate(tx *gorm.DB) error {
	if m.RegistrationID == uuid.Nil {
		m.RegistrationID = uuid.New()
	}
	return nil
}
