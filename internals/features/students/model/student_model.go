package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Student status: membership application states plus academic states. Any
// value may follow any other; the dashboards drive transitions by hand.
const (
	StudentStatusPending   = "pending"
	StudentStatusApproved  = "approved"
	StudentStatusRejected  = "rejected"
	StudentStatusActive    = "active"
	StudentStatusGraduated = "graduated"
	StudentStatusOnHold    = "on_hold"
	StudentStatusInactive  = "inactive"
)

var StudentStatuses = []string{
	StudentStatusPending,
	StudentStatusApproved,
	StudentStatusRejected,
	StudentStatusActive,
	StudentStatusGraduated,
	StudentStatusOnHold,
	StudentStatusInactive,
}

type Student struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey" json:"student_id"`

	StudentName  string `gorm:"column:student_name;type:varchar(100);not null" json:"student_name"`
	StudentEmail string `gorm:"column:student_email;type:varchar(255)" json:"student_email"`
	StudentPhone string `gorm:"column:student_phone;type:varchar(30)" json:"student_phone"`

	StudentUniversity string `gorm:"column:student_university;type:varchar(200)" json:"student_university"`
	StudentMajor      string `gorm:"column:student_major;type:varchar(200)" json:"student_major"`

	StudentSector string `gorm:"column:student_sector;type:varchar(20);not null" json:"student_sector"`
	StudentStatus string `gorm:"column:student_status;type:varchar(20);default:'pending'" json:"student_status"`

	StudentExtra datatypes.JSONMap `gorm:"column:student_extra;type:jsonb" json:"student_extra,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Student) TableName() string {
	return "students"
}

func (m Student) GetID() uuid.UUID {
	return m.StudentID
}

func (m *Student) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
