package model

import (
	"time"

	"gorm.io/gorm"
)

// SiteSetting is a single-row table holding site-wide preferences.
// Load and Save always address row id = 1.
type SiteSetting struct {
	SiteSettingID uint `gorm:"column:site_setting_id;primaryKey" json:"-"`

	SiteSettingOrgName    string `gorm:"column:site_setting_org_name;type:varchar(100);default:'Al-Manar'" json:"org_name"`
	SiteSettingThemeColor string `gorm:"column:site_setting_theme_color;type:varchar(20);default:'#1b5e20'" json:"theme_color"`
	SiteSettingLanguage   string `gorm:"column:site_setting_language;type:varchar(5);default:'ar'" json:"language"`

	SiteSettingContactEmail string `gorm:"column:site_setting_contact_email;type:varchar(100)" json:"contact_email"`
	SiteSettingContactPhone string `gorm:"column:site_setting_contact_phone;type:varchar(30)" json:"contact_phone"`

	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SiteSetting) TableName() string {
	return "site_settings"
}

// LoadSiteSetting returns the settings row, creating it with defaults on first call.
func LoadSiteSetting(db *gorm.DB) (SiteSetting, error) {
	var s SiteSetting
	err := db.Where("site_setting_id = ?", 1).
		Attrs(SiteSetting{
			SiteSettingOrgName:    "Al-Manar",
			SiteSettingThemeColor: "#1b5e20",
			SiteSettingLanguage:   "ar",
		}).
		FirstOrCreate(&s).Error
	return s, err
}

// Save writes the row back, pinning the singleton id.
func (s *SiteSetting) Save(db *gorm.DB) error {
	s.SiteSettingID = 1
	return db.Save(s).Error
}
