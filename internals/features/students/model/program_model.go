package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ProgramStatusActive   = "active"
	ProgramStatusArchived = "archived"
)

var ProgramStatuses = []string{
	ProgramStatusActive,
	ProgramStatusArchived,
}

type Program struct {
	ProgramID uuid.UUID `gorm:"column:program_id;type:uuid;primaryKey" json:"program_id"`

	ProgramTitle       string `gorm:"column:program_title;type:varchar(200);not null" json:"program_title"`
	ProgramDescription string `gorm:"column:program_description;type:text" json:"program_description"`

	ProgramImageURL string `gorm:"column:program_image_url;type:text" json:"program_image_url"`

	// denormalized headcount maintained by the dashboard, not by the database;
	// no cross-collection atomicity with registrations
	ProgramStudents int `gorm:"column:program_students;default:0" json:"program_students"`

	ProgramSector string `gorm:"column:program_sector;type:varchar(20);not null" json:"program_sector"`
	ProgramStatus string `gorm:"column:program_status;type:varchar(20);default:'active'" json:"program_status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Program) TableName() string {
	return "programs"
}

func (m Program) GetID() uuid.UUID {
	return m.ProgramID
}

func (m *Program) BeforeCreate(tx *gorm.DB) error {
	if m.ProgramID == uuid.Nil {
		m.ProgramID = uuid.New()
	}
	return nil
}
