package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learninghub/internal/models"
)

var (
	ErrReportNotFound  = errors.New("report not found")
	ErrReportProcessed = errors.New("report already processed")
)

// ModerationService drives the pending -> approved/rejected report state
// machine. Transitions are conditional on the pending status, so a report
// cannot be processed twice.
type ModerationService struct {
	db *gorm.DB
}

func NewModerationService(db *gorm.DB) *ModerationService {
	return &ModerationService{db: db}
}

func (s *ModerationService) ListReports() ([]models.Report, error) {
	var reports []models.Report
	err := s.db.Preload("User").Preload("Content").
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

// Approve moves a pending report to approved and deactivates the reported
// content in the same transaction, removing it from feed queries.
func (s *ModerationService) Approve(reportID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		report, err := s.transition(tx, reportID, models.ReportApproved)
		if err != nil {
			return err
		}

		return tx.Model(&models.Content{}).
			Where("id = ?", report.ContentID).
			UpdateColumn("is_active", false).Error
	})
}

// Reject moves a pending report to rejected. The content stays active.
func (s *ModerationService) Reject(reportID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		_, err := s.transition(tx, reportID, models.ReportRejected)
		return err
	})
}

func (s *ModerationService) transition(tx *gorm.DB, reportID uuid.UUID, status string) (*models.Report, error) {
	var report models.Report
	if err := tx.First(&report, "id = ?", reportID).Error; err != nil {
		return nil, ErrReportNotFound
	}

	result := tx.Model(&models.Report{}).
		Where("id = ? AND status = ?", reportID, models.ReportPending).
		UpdateColumn("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrReportProcessed
	}

	return &report, nil
}
