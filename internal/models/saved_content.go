package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedContent links a user to a content item they bookmarked.
// The composite unique index enforces one relation per pair.
type SavedContent struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_content" json:"user_id"`
	ContentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_content" json:"content_id"`
	Content   Content   `gorm:"foreignKey:ContentID" json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
