package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"learninghub/internal/config"
	"learninghub/internal/database"
	"learninghub/internal/models"
)

func testPolicy() config.CreditPolicy {
	return config.CreditPolicy{
		SignupBonus:        50,
		SaveReward:         1,
		ShareReward:        3,
		ReportReward:       1,
		ReportReasonReward: 2,
		DailyLoginBonus:    2,
	}
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
		Credits:   testPolicy(),
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, credits int) models.User {
	t.Helper()
	user := models.User{
		ID:       uuid.New(),
		Name:     "Test User",
		Email:    uuid.NewString() + "@example.com",
		Password: "hash",
		Role:     models.RoleUser,
		Credits:  credits,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func createContent(t *testing.T, db *gorm.DB, source string) models.Content {
	t.Helper()
	content := models.Content{
		ID:          uuid.New(),
		Title:       "Test Content",
		Description: "A test item",
		Source:      source,
		SourceIcon:  "T",
		URL:         "https://example.com/test",
		Date:        time.Now().UTC(),
		IsActive:    true,
	}
	if err := db.Create(&content).Error; err != nil {
		t.Fatalf("failed to create content: %v", err)
	}
	return content
}

func userBalance(t *testing.T, db *gorm.DB, id uuid.UUID) int {
	t.Helper()
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		t.Fatalf("failed to load user: %v", err)
	}
	return user.Credits
}

func ledgerCount(t *testing.T, db *gorm.DB, id uuid.UUID) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.CreditTransaction{}).Where("user_id = ?", id).Count(&count).Error; err != nil {
		t.Fatalf("failed to count transactions: %v", err)
	}
	return count
}
