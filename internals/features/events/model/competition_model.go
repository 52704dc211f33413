package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CompetitionStatusUpcoming  = "upcoming"
	CompetitionStatusOngoing   = "ongoing"
	CompetitionStatusCompleted = "completed"
	CompetitionStatusCancelled = "cancelled"
)

var CompetitionStatuses = []string{
	CompetitionStatusUpcoming,
	CompetitionStatusOngoing,
	CompetitionStatusCompleted,
	CompetitionStatusCancelled,
}

type Competition struct {
	CompetitionID uuid.UUID `gorm:"column:competition_id;type:uuid;primaryKey" json:"competition_id"`

	CompetitionTitle       string `gorm:"column:competition_title;type:varchar(200);not null" json:"competition_title"`
	CompetitionDescription string `gorm:"column:competition_description;type:text" json:"competition_description"`

	CompetitionDate  string `gorm:"column:competition_date;type:varchar(10);not null" json:"competition_date"`
	CompetitionPrize string `gorm:"column:competition_prize;type:varchar(200)" json:"competition_prize"`

	CompetitionImageURL string `gorm:"column:competition_image_url;type:text" json:"competition_image_url"`

	CompetitionSector string `gorm:"column:competition_sector;type:varchar(20);not null" json:"competition_sector"`
	CompetitionStatus string `gorm:"column:competition_status;type:varchar(20);default:'upcoming'" json:"competition_status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Competition) TableName() string {
	return "competitions"
}

func (m Competition) GetID() uuid.UUID {
	return m.CompetitionID
}

func (m *Competition) BeforeCreate(tx *gorm.DB) error {
	if m.CompetitionID == uuid.Nil {
		m.CompetitionID = uuid.New()
	}
	return nil
}
