package repository

import (
	"github.com/alsterium/gs-portfolio/internal/dto"
	"github.com/alsterium/gs-portfolio/internal/model"

	"gorm.io/gorm"
)

type GSFileRepository struct {
	db *gorm.DB
}

func (r *GSFileRepository) FindAll(page, limit int) (*dto.PaginatedGSFiles, error) {
	var total int64
	if err := r.db.Model(&model.GSFile{}).Where("is_active = ?", true).Count(&total).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	var files []model.GSFile
	offset := (page - 1) * limit
	if err := r.db.Where("is_active = ?", true).
		Order("upload_date DESC").
		Offset(offset).Limit(limit).
		Find(&files).Error; err != nil {
		return nil, err
	}

	return &dto.PaginatedGSFiles{
		Data: files,
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

func (r *GSFileRepository) FindByID(id uint) (*model.GSFile, error) {
	var file model.GSFile
	if err := r.db.Where("id = ? AND is_active = ?", id, true).First(&file).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *GSFileRepository) Create(file *model.GSFile) error {
	return r.db.Create(file).Error
}

func (r *GSFileRepository) Update(id uint, req dto.UpdateGSFileRequest) (*model.GSFile, error) {
	updates := map[string]interface{}{}
	if req.DisplayName != nil {
		updates["display_name"] = *req.DisplayName
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	// 没有任何字段时也要刷新 updated_date 并确认行存在
	result := r.db.Model(&model.GSFile{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// 可能行不存在，也可能 updates 为空；统一用查询确认
		var check model.GSFile
		if err := r.db.Where("id = ? AND is_active = ?", id, true).First(&check).Error; err != nil {
			return nil, err
		}
		return &check, nil
	}

	var updated model.GSFile
	if err := r.db.First(&updated, id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *GSFileRepository) Delete(id uint) (bool, error) {
	result := r.db.Model(&model.GSFile{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *GSFileRepository) CountActive() (int64, error) {
	var count int64
	if err := r.db.Model(&model.GSFile{}).Where("is_active = ?", true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
