package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learninghub/internal/models"
)

var (
	ErrContentNotFound = errors.New("content not found")
	ErrAlreadySaved    = errors.New("content already saved")
	ErrAlreadyReported = errors.New("content already reported")
)

// ContentService owns the feed, saved relations and report intake. Each
// engagement action bundles its side effects and the credit award into a
// single transaction.
type ContentService struct {
	db      *gorm.DB
	credits *CreditService
}

func NewContentService(db *gorm.DB, credits *CreditService) *ContentService {
	return &ContentService{db: db, credits: credits}
}

// Feed returns active content, optionally filtered to a set of source
// labels, newest publish date first.
func (s *ContentService) Feed(sources []string) ([]models.Content, error) {
	query := s.db.Where("is_active = ?", true)
	if len(sources) > 0 {
		query = query.Where("source IN ?", sources)
	}

	var content []models.Content
	err := query.Order("date DESC").Find(&content).Error
	return content, err
}

// Saved returns the content behind the caller's saved relations, most
// recently saved first.
func (s *ContentService) Saved(userID uuid.UUID) ([]models.Content, error) {
	var saved []models.SavedContent
	err := s.db.Preload("Content").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saved).Error
	if err != nil {
		return nil, err
	}

	content := make([]models.Content, 0, len(saved))
	for _, item := range saved {
		content = append(content, item.Content)
	}
	return content, nil
}

func (s *ContentService) Save(userID, contentID uuid.UUID) (int, error) {
	if err := s.ensureExists(contentID); err != nil {
		return 0, err
	}

	var existing models.SavedContent
	err := s.db.Where("user_id = ? AND content_id = ?", userID, contentID).First(&existing).Error
	if err == nil {
		return 0, ErrAlreadySaved
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		relation := models.SavedContent{
			ID:        uuid.New(),
			UserID:    userID,
			ContentID: contentID,
		}
		if err := tx.Create(&relation).Error; err != nil {
			return fmt.Errorf("failed to save content: %w", err)
		}

		if err := tx.Model(&models.Content{}).
			Where("id = ?", contentID).
			UpdateColumn("saves", gorm.Expr("saves + 1")).Error; err != nil {
			return err
		}

		return s.credits.EarnTx(tx, userID, s.credits.Policy().SaveReward, "Saved content")
	})
	if err != nil {
		return 0, err
	}

	return s.balance(userID)
}

// Share has no duplicate check: sharing is repeatable.
func (s *ContentService) Share(userID, contentID uuid.UUID) (int, error) {
	if err := s.ensureExists(contentID); err != nil {
		return 0, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Content{}).
			Where("id = ?", contentID).
			UpdateColumn("shares", gorm.Expr("shares + 1")).Error; err != nil {
			return err
		}

		return s.credits.EarnTx(tx, userID, s.credits.Policy().ShareReward, "Shared content")
	})
	if err != nil {
		return 0, err
	}

	return s.balance(userID)
}

// Report files a pending report. A non-empty reason earns the larger
// reward.
func (s *ContentService) Report(userID, contentID uuid.UUID, reason string) (int, error) {
	if err := s.ensureExists(contentID); err != nil {
		return 0, err
	}

	var existing models.Report
	err := s.db.Where("user_id = ? AND content_id = ?", userID, contentID).First(&existing).Error
	if err == nil {
		return 0, ErrAlreadyReported
	}

	reward := s.credits.Policy().ReportReward
	if reason != "" {
		reward = s.credits.Policy().ReportReasonReward
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		report := models.Report{
			ID:        uuid.New(),
			UserID:    userID,
			ContentID: contentID,
			Reason:    reason,
			Status:    models.ReportPending,
		}
		if err := tx.Create(&report).Error; err != nil {
			return fmt.Errorf("failed to create report: %w", err)
		}

		if err := tx.Model(&models.Content{}).
			Where("id = ?", contentID).
			UpdateColumn("reports", gorm.Expr("reports + 1")).Error; err != nil {
			return err
		}

		return s.credits.EarnTx(tx, userID, reward, "Reported inappropriate content")
	})
	if err != nil {
		return 0, err
	}

	return s.balance(userID)
}

func (s *ContentService) ensureExists(contentID uuid.UUID) error {
	var content models.Content
	if err := s.db.Select("id").First(&content, "id = ?", contentID).Error; err != nil {
		return ErrContentNotFound
	}
	return nil
}

func (s *ContentService) balance(userID uuid.UUID) (int, error) {
	var user models.User
	if err := s.db.Select("credits").First(&user, "id = ?", userID).Error; err != nil {
		return 0, err
	}
	return user.Credits, nil
}
