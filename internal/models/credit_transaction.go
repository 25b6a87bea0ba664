package models

import (
	"time"

	"github.com/google/uuid"
)

// Ledger entry kinds.
const (
	TxEarn  = "earn"
	TxSpend = "spend"
)

// CreditTransaction is an append-only ledger row. Amount is always
// positive; Kind carries the sign. Rows are removed only by the
// account-deletion cascade.
type CreditTransaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount      int       `gorm:"not null" json:"amount"`
	Kind        string    `gorm:"size:10;not null;index" json:"kind"`
	Description string    `gorm:"size:255;not null" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
