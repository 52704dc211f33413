package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NewMuslimStatusNew        = "new"
	NewMuslimStatusLearning   = "learning"
	NewMuslimStatusIntegrated = "integrated"
)

var NewMuslimStatuses = []string{
	NewMuslimStatusNew,
	NewMuslimStatusLearning,
	NewMuslimStatusIntegrated,
}

// NewMuslim tracks a convert through the dawa sector's mentoring program.
type NewMuslim struct {
	NewMuslimID uuid.UUID `gorm:"column:new_muslim_id;type:uuid;primaryKey" json:"new_muslim_id"`

	NewMuslimName  string `gorm:"column:new_muslim_name;type:varchar(100);not null" json:"new_muslim_name"`
	NewMuslimPhone string `gorm:"column:new_muslim_phone;type:varchar(30)" json:"new_muslim_phone"`

	NewMuslimShahadaDate string `gorm:"column:new_muslim_shahada_date;type:varchar(10)" json:"new_muslim_shahada_date"`
	NewMuslimMentor      string `gorm:"column:new_muslim_mentor;type:varchar(100)" json:"new_muslim_mentor"`
	NewMuslimNote        string `gorm:"column:new_muslim_note;type:text" json:"new_muslim_note"`

	NewMuslimStatus string `gorm:"column:new_muslim_status;type:varchar(20);default:'new'" json:"new_muslim_status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (NewMuslim) TableName() string {
	return "new_muslims"
}

func (m NewMuslim) GetID() uuid.UUID {
	return m.NewMuslimID
}

func (m *NewMuslim) BeforeCreate(tx *gorm.DB) error {
	if m.NewMuslimID == uuid.Nil {
		m.NewMuslimID = uuid.New()
	}
	return nil
}
