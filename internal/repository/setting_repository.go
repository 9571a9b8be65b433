package repository

import (
	"github.com/alsterium/gs-portfolio/internal/model"

	"gorm.io/gorm"
)

type SettingStore interface {
	FindByKey(key string) (*model.Setting, error)
	Create(setting *model.Setting) error
	CountByKey(key string) (int64, error)
}

type SettingRepository struct {
	db *gorm.DB
}

func (r *SettingRepository) FindByKey(key string) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepository) Create(setting *model.Setting) error {
	return r.db.Create(setting).Error
}

func (r *SettingRepository) CountByKey(key string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Setting{}).Where("key = ?", key).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
