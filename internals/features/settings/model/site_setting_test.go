package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&SiteSetting{}))
	return db
}

func TestLoadSiteSettingCreatesDefaults(t *testing.T) {
	db := newTestDB(t)

	s, err := LoadSiteSetting(db)
	require.NoError(t, err)
	assert.Equal(t, "Al-Manar", s.SiteSettingOrgName)
	assert.Equal(t, "#1b5e20", s.SiteSettingThemeColor)
	assert.Equal(t, "ar", s.SiteSettingLanguage)
}

func TestSaveSiteSettingStaysSingleRow(t *testing.T) {
	db := newTestDB(t)

	s, err := LoadSiteSetting(db)
	require.NoError(t, err)

	s.SiteSettingThemeColor = "#123456"
	s.SiteSettingLanguage = "en"
	require.NoError(t, s.Save(db))

	// a second save must not create a second row
	s.SiteSettingOrgName = "Al-Manar Students"
	require.NoError(t, s.Save(db))

	var count int64
	require.NoError(t, db.Model(&SiteSetting{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	got, err := LoadSiteSetting(db)
	require.NoError(t, err)
	assert.Equal(t, "#123456", got.SiteSettingThemeColor)
	assert.Equal(t, "en", got.SiteSettingLanguage)
	assert.Equal(t, "Al-Manar Students", got.SiteSettingOrgName)
}
