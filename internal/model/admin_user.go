package model

import "time"

// AdminUser 管理员账号，由命令行种子流程创建（不开放注册）。
type AdminUser struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"unique;not null"`
	Email        string     `json:"email" gorm:"not null;size:255"`
	PasswordHash string     `json:"-" gorm:"not null"`
	CreatedDate  time.Time  `json:"created_date" gorm:"not null;autoCreateTime"`
	LastLogin    *time.Time `json:"last_login"`
	IsActive     bool       `json:"is_active" gorm:"not null;default:true"`
}
