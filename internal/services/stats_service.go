package services

import (
	"gorm.io/gorm"

	"learninghub/internal/dto"
	"learninghub/internal/models"
)

const topN = 5

// StatsService computes point-in-time admin aggregates. Nothing is
// cached; every call recomputes from the store.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

func (s *StatsService) Dashboard() (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}

	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.User{}).Where("is_active = ?", true).Count(&stats.ActiveUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Report{}).Where("status = ?", models.ReportPending).Count(&stats.PendingReports).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Content{}).Count(&stats.ContentItems).Error; err != nil {
		return nil, err
	}

	var topUsers []models.User
	if err := s.db.Order("credits DESC").Limit(topN).Find(&topUsers).Error; err != nil {
		return nil, err
	}
	stats.TopUsers = make([]dto.TopUser, 0, len(topUsers))
	for _, u := range topUsers {
		stats.TopUsers = append(stats.TopUsers, dto.TopUser{ID: u.ID, Name: u.Name, Credits: u.Credits})
	}

	if err := s.db.Preload("User").Preload("Content").
		Order("created_at DESC").Limit(topN).
		Find(&stats.RecentReports).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *StatsService) ContentStats() (*dto.ContentStats, error) {
	stats := &dto.ContentStats{}

	for _, ranking := range []struct {
		column string
		dest   *[]dto.ContentCount
	}{
		{"views", &stats.MostViewed},
		{"saves", &stats.MostSaved},
		{"shares", &stats.MostShared},
		{"reports", &stats.MostReported},
	} {
		if err := s.db.Model(&models.Content{}).
			Select("id, title, " + ranking.column + " AS count").
			Order(ranking.column + " DESC").
			Limit(topN).
			Scan(ranking.dest).Error; err != nil {
			return nil, err
		}
	}

	return stats, nil
}

func (s *StatsService) CreditStats() (*dto.CreditStats, error) {
	stats := &dto.CreditStats{}

	if err := s.ledgerSum(models.TxEarn, &stats.TotalCreditsEarned); err != nil {
		return nil, err
	}
	if err := s.ledgerSum(models.TxSpend, &stats.TotalCreditsSpent); err != nil {
		return nil, err
	}

	var err error
	if stats.TopEarners, err = s.topByKind(models.TxEarn); err != nil {
		return nil, err
	}
	if stats.TopSpenders, err = s.topByKind(models.TxSpend); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *StatsService) ledgerSum(kind string, dest *int64) error {
	return s.db.Model(&models.CreditTransaction{}).
		Where("kind = ?", kind).
		Select("COALESCE(SUM(amount), 0)").
		Scan(dest).Error
}

// topByKind groups the ledger by user and resolves names in a second
// lookup. Accounts deleted since their transactions stay out because the
// cascade removed their ledger rows.
func (s *StatsService) topByKind(kind string) ([]dto.UserTotal, error) {
	type row struct {
		UserID string
		Total  int
	}
	var rows []row
	err := s.db.Model(&models.CreditTransaction{}).
		Select("user_id, SUM(amount) AS total").
		Where("kind = ?", kind).
		Group("user_id").
		Order("total DESC").
		Limit(topN).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make([]dto.UserTotal, 0, len(rows))
	for _, r := range rows {
		var user models.User
		if err := s.db.Select("id, name").First(&user, "id = ?", r.UserID).Error; err != nil {
			continue
		}
		totals = append(totals, dto.UserTotal{ID: user.ID, Name: user.Name, Total: r.Total})
	}
	return totals, nil
}
