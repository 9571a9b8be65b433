package utils

import (
	"time"

	"github.com/alsterium/gs-portfolio/internal/config"

	"github.com/google/uuid"
)

// GenerateSessionToken 生成不可猜测的会话令牌（128 位随机 UUID）。
func GenerateSessionToken() string {
	return uuid.NewString()
}

// SessionExpiry 计算会话过期时间：now + 配置的 TTL（默认 24h）。
func SessionExpiry() time.Time {
	hours := config.Get().Auth.SessionTTLHours
	if hours <= 0 {
		hours = 24
	}
	return time.Now().Add(time.Duration(hours) * time.Hour)
}
