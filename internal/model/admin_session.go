package model

import "time"

// AdminSession 登录会话。有效性以 expires_at > now 的查询过滤保证，
// 过期行由 DeleteExpired 批量清理（不自动调度）。
type AdminSession struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;index"`
	SessionToken string    `json:"session_token" gorm:"not null;uniqueIndex;size:64"`
	ExpiresAt    time.Time `json:"expires_at" gorm:"not null;index"`
	CreatedDate  time.Time `json:"created_date" gorm:"not null;autoCreateTime"`
	User         AdminUser `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
}
