package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"learninghub/internal/config"
	"learninghub/internal/models"
)

// demoContent is inserted once when the content table is empty so a fresh
// install has a browsable feed.
func demoContent(now time.Time) []models.Content {
	return []models.Content{
		{
			ID:          uuid.New(),
			Title:       "How to Build a Modern Web Application",
			Description: "Learn the latest techniques for building fast, responsive web applications with modern JavaScript frameworks.",
			Source:      "twitter",
			SourceIcon:  "T",
			URL:         "https://example.com/web-app",
			ImageURL:    "https://images.pexels.com/photos/11035471/pexels-photo-11035471.jpeg",
			Date:        now,
			Views:       120, Saves: 45, Shares: 23, Reports: 2,
			IsActive: true,
		},
		{
			ID:          uuid.New(),
			Title:       "Introduction to Machine Learning",
			Description: "Get started with the basics of machine learning and understand how algorithms learn from data.",
			Source:      "reddit",
			SourceIcon:  "R",
			URL:         "https://example.com/machine-learning",
			ImageURL:    "https://images.pexels.com/photos/8386440/pexels-photo-8386440.jpeg",
			Date:        now,
			Views:       89, Saves: 32, Shares: 15,
			IsActive: true,
		},
		{
			ID:          uuid.New(),
			Title:       "Career Advancement Tips for Developers",
			Description: "Expert advice on how to advance your career as a software developer and stand out in the industry.",
			Source:      "linkedin",
			SourceIcon:  "In",
			URL:         "https://example.com/career-tips",
			ImageURL:    "https://images.pexels.com/photos/3184291/pexels-photo-3184291.jpeg",
			Date:        now,
			Views:       156, Saves: 67, Shares: 41, Reports: 1,
			IsActive: true,
		},
		{
			ID:          uuid.New(),
			Title:       "The Future of Artificial Intelligence",
			Description: "Exploring the potential future developments in AI and how they might impact various industries.",
			Source:      "twitter",
			SourceIcon:  "T",
			URL:         "https://example.com/ai-future",
			ImageURL:    "https://images.pexels.com/photos/8438923/pexels-photo-8438923.jpeg",
			Date:        now,
			Views:       203, Saves: 89, Shares: 54, Reports: 3,
			IsActive: true,
		},
		{
			ID:          uuid.New(),
			Title:       "Understanding Blockchain Technology",
			Description: "A beginners guide to blockchain, explaining the core concepts and potential applications.",
			Source:      "reddit",
			SourceIcon:  "R",
			URL:         "https://example.com/blockchain",
			ImageURL:    "https://images.pexels.com/photos/844124/pexels-photo-844124.jpeg",
			Date:        now,
			Views:       134, Saves: 52, Shares: 29, Reports: 1,
			IsActive: true,
		},
		{
			ID:          uuid.New(),
			Title:       "Effective Remote Work Strategies",
			Description: "Tips and best practices for staying productive and maintaining work-life balance when working remotely.",
			Source:      "linkedin",
			SourceIcon:  "In",
			URL:         "https://example.com/remote-work",
			ImageURL:    "https://images.pexels.com/photos/4348401/pexels-photo-4348401.jpeg",
			Date:        now,
			Views:       178, Saves: 83, Shares: 47,
			IsActive: true,
		},
	}
}

// Seed populates an empty store: demo feed content plus a bootstrap admin
// account. Runs once at process start, never on a schedule.
func Seed(db *gorm.DB, cfg *config.Config) error {
	var contentCount int64
	if err := db.Model(&models.Content{}).Count(&contentCount).Error; err != nil {
		return fmt.Errorf("failed to count content: %w", err)
	}
	if contentCount == 0 {
		items := demoContent(time.Now().UTC())
		if err := db.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to seed content: %w", err)
		}
		slog.Info("demo content seeded")
	}

	var adminCount int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount).Error; err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if adminCount == 0 {
		password := cfg.AdminPassword
		if password == "" {
			password = "admin123"
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		admin := models.User{
			ID:       uuid.New(),
			Name:     "Admin User",
			Email:    cfg.AdminEmail,
			Password: string(hash),
			Role:     models.RoleAdmin,
			Credits:  1000,
			IsActive: true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin: %w", err)
		}
		slog.Info("admin user created", "email", admin.Email)
	}

	return nil
}
