package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StarMemberStatusNominated = "nominated"
	StarMemberStatusFeatured  = "featured"
)

var StarMemberStatuses = []string{
	StarMemberStatusNominated,
	StarMemberStatusFeatured,
}

// StarShiningMember is the monthly member spotlight on the public site.
type StarShiningMember struct {
	StarMemberID uuid.UUID `gorm:"column:star_member_id;type:uuid;primaryKey" json:"star_member_id"`

	StarMemberName        string `gorm:"column:star_member_name;type:varchar(100);not null" json:"star_member_name"`
	StarMemberAchievement string `gorm:"column:star_member_achievement;type:text" json:"star_member_achievement"`
	StarMemberMonth       string `gorm:"column:star_member_month;type:varchar(7)" json:"star_member_month"` // YYYY-MM

	StarMemberImageURL string `gorm:"column:star_member_image_url;type:text" json:"star_member_image_url"`

	StarMemberStatus string `gorm:"column:star_member_status;type:varchar(20);default:'nominated'" json:"star_member_status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (StarShiningMember) TableName() string {
	return "star_shining_members"
}

func (m StarShiningMember) GetID() uuid.UUID {
	return m.StarMemberID
}

func (m *StarShiningMember) BeforeCreate(tx *gorm.DB) error {
	if m.StarMemberID == uuid.Nil {
		m.StarMemberID = uuid.New()
	}
	return nil
}
