package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learninghub/internal/config"
	"learninghub/internal/models"
)

var (
	ErrInsufficientCredits = errors.New("not enough credits")
	ErrInvalidAmount       = errors.New("amount must be a positive integer")
)

// CreditService owns the balance field and the transaction ledger. Every
// balance mutation and its ledger row are written in one transaction.
type CreditService struct {
	db     *gorm.DB
	policy config.CreditPolicy
}

func NewCreditService(db *gorm.DB, policy config.CreditPolicy) *CreditService {
	return &CreditService{db: db, policy: policy}
}

func (s *CreditService) Policy() config.CreditPolicy {
	return s.policy
}

// Earn credits a user and records the matching ledger entry.
func (s *CreditService) Earn(userID uuid.UUID, amount int, description string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.EarnTx(tx, userID, amount, description)
	})
}

// EarnTx is Earn running inside a caller-owned transaction, so engagement
// side effects and their credit award commit or roll back together.
func (s *CreditService) EarnTx(tx *gorm.DB, userID uuid.UUID, amount int, description string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	entry := models.CreditTransaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Kind:        models.TxEarn,
		Description: description,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}

	return tx.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("credits", gorm.Expr("credits + ?", amount)).Error
}

// Spend debits a user. The decrement is conditional on the current
// balance, so two concurrent spends cannot overdraw the account; a spend
// that fails the condition writes nothing.
func (s *CreditService) Spend(userID uuid.UUID, amount int, description string) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	var balance int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).
			Where("id = ? AND credits >= ?", userID, amount).
			UpdateColumn("credits", gorm.Expr("credits - ?", amount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInsufficientCredits
		}

		entry := models.CreditTransaction{
			ID:          uuid.New(),
			UserID:      userID,
			Amount:      amount,
			Kind:        models.TxSpend,
			Description: description,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to record transaction: %w", err)
		}

		var user models.User
		if err := tx.Select("credits").First(&user, "id = ?", userID).Error; err != nil {
			return err
		}
		balance = user.Credits
		return nil
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// History returns the caller's ledger, newest first.
func (s *CreditService) History(userID uuid.UUID) ([]models.CreditTransaction, error) {
	var transactions []models.CreditTransaction
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&transactions).Error
	return transactions, err
}
