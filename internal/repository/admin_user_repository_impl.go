package repository

import (
	"time"

	"github.com/alsterium/gs-portfolio/internal/model"

	"gorm.io/gorm"
)

type AdminUserRepository struct {
	db *gorm.DB
}

func (r *AdminUserRepository) FindByUsername(username string) (*model.AdminUser, error) {
	var user model.AdminUser
	if err := r.db.Where("username = ? AND is_active = ?", username, true).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AdminUserRepository) FindByID(id uint) (*model.AdminUser, error) {
	var user model.AdminUser
	if err := r.db.Where("id = ? AND is_active = ?", id, true).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AdminUserRepository) UpdateLastLogin(id uint) error {
	now := time.Now()
	return r.db.Model(&model.AdminUser{}).Where("id = ?", id).Update("last_login", now).Error
}

func (r *AdminUserRepository) Create(user *model.AdminUser) error {
	return r.db.Create(user).Error
}

func (r *AdminUserRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&model.AdminUser{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
