package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ResourceStatusDraft     = "draft"
	ResourceStatusPublished = "published"
)

var ResourceStatuses = []string{
	ResourceStatusDraft,
	ResourceStatusPublished,
}

const (
	ResourceTypeArticle = "article"
	ResourceTypeBook    = "book"
	ResourceTypeAudio   = "audio"
	ResourceTypeVideo   = "video"
	ResourceTypeLink    = "link"
)

type Resource struct {
	ResourceID uuid.UUID `gorm:"column:resource_id;type:uuid;primaryKey" json:"resource_id"`

	ResourceTitle       string `gorm:"column:resource_title;type:varchar(200);not null" json:"resource_title"`
	ResourceDescription string `gorm:"column:resource_description;type:text" json:"resource_description"`

	ResourceType string `gorm:"column:resource_type;type:varchar(20);not null" json:"resource_type"`
	ResourceURL  string `gorm:"column:resource_url;type:text" json:"resource_url"`

	ResourceImageURL string `gorm:"column:resource_image_url;type:text" json:"resource_image_url"`

	ResourceSector string `gorm:"column:resource_sector;type:varchar(20);not null" json:"resource_sector"`
	ResourceStatus string `gorm:"column:resource_status;type:varchar(20);default:'draft'" json:"resource_status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Resource) TableName() string {
	return "resources"
}

func (m Resource) GetID() uuid.UUID {
	return m.ResourceID
}

func (m *Resource) BeforeCreate(tx *gorm.DB) error {
	if m.ResourceID == uuid.Nil {
		m.ResourceID = uuid.New()
	}
	return nil
}
