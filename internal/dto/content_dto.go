package dto

import "github.com/google/uuid"

type SaveContentRequest struct {
	ContentID uuid.UUID `json:"content_id"`
}

type ShareContentRequest struct {
	ContentID uuid.UUID `json:"content_id"`
}

type ReportContentRequest struct {
	ContentID uuid.UUID `json:"content_id"`
	Reason    string    `json:"reason,omitempty"`
}

// EngagementResponse is returned by save/share/report with the caller's
// balance after the credit award.
type EngagementResponse struct {
	Message string `json:"message"`
	Credits int    `json:"credits"`
}
