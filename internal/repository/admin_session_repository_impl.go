package repository

import (
	"time"

	"github.com/alsterium/gs-portfolio/internal/model"

	"gorm.io/gorm"
)

type AdminSessionRepository struct {
	db *gorm.DB
}

func (r *AdminSessionRepository) Create(userID uint, token string, expiresAt time.Time) (*model.AdminSession, error) {
	session := model.AdminSession{
		UserID:       userID,
		SessionToken: token,
		ExpiresAt:    expiresAt,
	}
	if err := r.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *AdminSessionRepository) FindByToken(token string) (*model.AdminSession, error) {
	var session model.AdminSession
	if err := r.db.Where("session_token = ? AND expires_at > ?", token, time.Now()).
		First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *AdminSessionRepository) Delete(token string) (bool, error) {
	result := r.db.Where("session_token = ?", token).Delete(&model.AdminSession{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *AdminSessionRepository) DeleteExpired() (int64, error) {
	result := r.db.Where("expires_at <= ?", time.Now()).Delete(&model.AdminSession{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
