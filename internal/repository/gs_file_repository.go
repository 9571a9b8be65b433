package repository

import (
	"github.com/alsterium/gs-portfolio/internal/dto"
	"github.com/alsterium/gs-portfolio/internal/model"
)

type GSFileStore interface {
	// FindAll 返回活跃文件，按上传时间倒序，并附带分页元数据
	FindAll(page, limit int) (*dto.PaginatedGSFiles, error)
	// FindByID 只返回活跃文件
	FindByID(id uint) (*model.GSFile, error)
	Create(file *model.GSFile) error
	// Update 按 COALESCE 语义合并非 nil 字段并刷新 updated_date
	Update(id uint, req dto.UpdateGSFileRequest) (*model.GSFile, error)
	// Delete 逻辑删除，返回是否有行被改动
	Delete(id uint) (bool, error)
	CountActive() (int64, error)
}
