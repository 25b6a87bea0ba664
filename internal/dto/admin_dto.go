package dto

import (
	"github.com/google/uuid"

	"learninghub/internal/models"
)

type UpdateUserRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Role    *string `json:"role"`
	Credits *int    `json:"credits"`
}

type ToggleStatusRequest struct {
	IsActive bool `json:"is_active"`
}

type TopUser struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Credits int       `json:"credits"`
}

type DashboardStats struct {
	TotalUsers     int64           `json:"total_users"`
	ActiveUsers    int64           `json:"active_users"`
	PendingReports int64           `json:"pending_reports"`
	ContentItems   int64           `json:"content_items"`
	TopUsers       []TopUser       `json:"top_users"`
	RecentReports  []models.Report `json:"recent_reports"`
}

type ContentCount struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Count int       `json:"count"`
}

type ContentStats struct {
	MostViewed   []ContentCount `json:"most_viewed"`
	MostSaved    []ContentCount `json:"most_saved"`
	MostShared   []ContentCount `json:"most_shared"`
	MostReported []ContentCount `json:"most_reported"`
}

type UserTotal struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Total int       `json:"total"`
}

type CreditStats struct {
	TotalCreditsEarned int64       `json:"total_credits_earned"`
	TotalCreditsSpent  int64       `json:"total_credits_spent"`
	TopEarners         []UserTotal `json:"top_earners"`
	TopSpenders        []UserTotal `json:"top_spenders"`
}
