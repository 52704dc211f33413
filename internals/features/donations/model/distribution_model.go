package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DistributionStatusPlanned     = "planned"
	DistributionStatusDistributed = "distributed"
)

var DistributionStatuses = []string{
	DistributionStatusPlanned,
	DistributionStatusDistributed,
}

// Distribution records where collected charity funds went.
type Distribution struct {
	DistributionID uuid.UUID `gorm:"column:distribution_id;type:uuid;primaryKey" json:"distribution_id"`

	DistributionTitle       string `gorm:"column:distribution_title;type:varchar(200);not null" json:"distribution_title"`
	DistributionDescription string `gorm:"column:distribution_description;type:text" json:"distribution_description"`

	DistributionDate          string `gorm:"column:distribution_date;type:varchar(10);not null" json:"distribution_date"`
	DistributionAmount        int    `gorm:"column:distribution_amount;not null;check:distribution_amount >= 0" json:"distribution_amount"`
	DistributionBeneficiaries int    `gorm:"column:distribution_beneficiaries;default:0" json:"distribution_beneficiaries"`

	DistributionImageURL string `gorm:"column:distribution_image_url;type:text" json:"distribution_image_url"`
	DistributionStatus   string `gorm:"column:distribution_status;type:varchar(20);default:'planned'" json:"distribution_status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Distribution) TableName() string {
	return "distributions"
}

func (m Distribution) GetID() uuid.UUID {
	return m.DistributionID
}

func (m *Distribution) BeforeCreate(tx *gorm.DB) error {
	if m.DistributionID == uuid.Nil {
		m.DistributionID = uuid.New()
	}
	return nil
}
