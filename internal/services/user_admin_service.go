package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"learninghub/internal/dto"
	"learninghub/internal/models"
)

// UserAdminService backs the admin user-management panel.
type UserAdminService struct {
	db *gorm.DB
}

func NewUserAdminService(db *gorm.DB) *UserAdminService {
	return &UserAdminService{db: db}
}

func (s *UserAdminService) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (s *UserAdminService) UpdateUser(userID uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Role != nil {
		if *req.Role != models.RoleUser && *req.Role != models.RoleAdmin {
			return nil, fmt.Errorf("invalid role: %s", *req.Role)
		}
		updates["role"] = *req.Role
	}
	if req.Credits != nil {
		updates["credits"] = *req.Credits
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
			return nil, err
		}
	}
	return &user, nil
}

func (s *UserAdminService) SetActive(userID uuid.UUID, active bool) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if err := s.db.Model(&user).UpdateColumn("is_active", active).Error; err != nil {
		return nil, err
	}
	user.IsActive = active
	return &user, nil
}

// DeleteUser removes the account and cascades over everything that
// references it. No balance reconciliation happens anywhere else.
func (s *UserAdminService) DeleteUser(userID uuid.UUID) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return ErrUserNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.SavedContent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Report{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.CreditTransaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}
