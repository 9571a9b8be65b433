package repository

import (
	"gorm.io/gorm"
)

func NewGSFileRepository(db *gorm.DB) GSFileStore {
	return &GSFileRepository{db: db}
}

func NewAdminUserRepository(db *gorm.DB) AdminUserStore {
	return &AdminUserRepository{db: db}
}

func NewAdminSessionRepository(db *gorm.DB) AdminSessionStore {
	return &AdminSessionRepository{db: db}
}

func NewSettingRepository(db *gorm.DB) SettingStore {
	return &SettingRepository{db: db}
}
