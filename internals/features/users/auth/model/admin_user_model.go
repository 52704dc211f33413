package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminUser struct {
	AdminUserID uuid.UUID `gorm:"column:admin_user_id;type:uuid;primaryKey" json:"admin_user_id"`

	AdminUserName  string `gorm:"column:admin_user_name;type:varchar(100);not null" json:"admin_user_name"`
	AdminUserEmail string `gorm:"column:admin_user_email;type:varchar(255);not null;unique" json:"admin_user_email"`

	// bcrypt hash; Google-created accounts get a random throwaway
	AdminUserPassword string  `gorm:"column:admin_user_password;type:text;not null" json:"-"`
	AdminUserGoogleID *string `gorm:"column:admin_user_google_id;type:varchar(64)" json:"-"`

	// role is re-derived from the email allow-list on every login, the column
	// just caches the last binding
	AdminUserRole     string `gorm:"column:admin_user_role;type:varchar(30);not null;default:'member'" json:"admin_user_role"`
	AdminUserIsActive bool   `gorm:"column:admin_user_is_active;default:true" json:"admin_user_is_active"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

func (m *AdminUser) BeforeCreate(tx *gorm.DB) error {
	if m.AdminUserID == uuid.Nil {
		m.AdminUserID = uuid.New()
	}
	return nil
}
