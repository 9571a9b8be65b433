package repository

import (
	"time"

	"github.com/alsterium/gs-portfolio/internal/model"
)

type AdminSessionStore interface {
	Create(userID uint, token string, expiresAt time.Time) (*model.AdminSession, error)
	// FindByToken 只返回未过期的会话（expires_at > now 的查询过滤）
	FindByToken(token string) (*model.AdminSession, error)
	// Delete 按 token 删除，返回是否有行被删除
	Delete(token string) (bool, error)
	// DeleteExpired 批量清理过期会话，返回删除数量。仅作运维钩子，不自动调度。
	DeleteExpired() (int64, error)
}
