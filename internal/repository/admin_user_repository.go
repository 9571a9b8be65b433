package repository

import "github.com/alsterium/gs-portfolio/internal/model"

type AdminUserStore interface {
	// FindByUsername 只返回活跃用户，包含密码哈希（登录校验用）
	FindByUsername(username string) (*model.AdminUser, error)
	// FindByID 只返回活跃用户；哈希字段不参与序列化
	FindByID(id uint) (*model.AdminUser, error)
	UpdateLastLogin(id uint) error
	Create(user *model.AdminUser) error
	CountAll() (int64, error)
}
