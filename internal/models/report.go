package models

import (
	"time"

	"github.com/google/uuid"
)

// Report statuses. A report starts pending and moves to exactly one of
// the terminal statuses.
const (
	ReportPending  = "pending"
	ReportApproved = "approved"
	ReportRejected = "rejected"
)

// Report is a user flag against a content item, subject to admin
// moderation. One report per (user, content) pair.
type Report struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reports_user_content" json:"user_id"`
	ContentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reports_user_content" json:"content_id"`
	Reason    string    `gorm:"size:500" json:"reason,omitempty"`
	Status    string    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content   Content   `gorm:"foreignKey:ContentID" json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
