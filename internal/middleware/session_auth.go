package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/alsterium/gs-portfolio/internal/common/httpx"
	"github.com/alsterium/gs-portfolio/internal/consts"
	"github.com/alsterium/gs-portfolio/internal/db"
	"github.com/alsterium/gs-portfolio/internal/repository"
	"github.com/alsterium/gs-portfolio/internal/service"
	"github.com/alsterium/gs-portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

// 上下文键，认证通过后由中间件写入
const (
	ContextUserKey    = "admin_user"
	ContextSessionKey = "session_token"
)

var (
	// sessionCache 缓存 token -> userID，减少每次请求的会话查询
	sessionCache sync.Map
)

const sessionCacheTTL = 1 * time.Minute

type cachedSession struct {
	UserID    uint
	ExpiresAt time.Time
}

// ClearSessionCache 登出时清除指定 token 的缓存
func ClearSessionCache(token string) {
	sessionCache.Delete(token)

	if redisClient := service.GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		key := service.RedisKey("auth", "session", token)
		_ = redisClient.Del(ctx, key).Err()
	}
}

// SessionAuth 管理员认证中间件。
// 优先读取会话 Cookie；未携带 Cookie 时回退 Authorization Bearer JWT（供非浏览器客户端使用）。
// 任何失败都返回同一条 401，不暴露失败原因。
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(consts.SessionCookieName)
		if err == nil && token != "" {
			if authenticateBySession(c, token) {
				c.Next()
				return
			}
			abortUnauthorized(c)
			return
		}

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" && authenticateByJWT(c, parts[1]) {
				c.Next()
				return
			}
		}

		abortUnauthorized(c)
	}
}

func abortUnauthorized(c *gin.Context) {
	httpx.Fail(c, http.StatusUnauthorized, "认证无效或已过期")
	c.Abort()
}

// authenticateBySession 校验会话令牌，缓存命中时跳过会话表查询。
func authenticateBySession(c *gin.Context, token string) bool {
	if userID, ok := lookupSessionCache(token); ok {
		user, err := repository.NewAdminUserRepository(db.DB).FindByID(userID)
		if err != nil {
			ClearSessionCache(token)
			return false
		}
		c.Set(ContextUserKey, user)
		c.Set(ContextSessionKey, token)
		return true
	}

	user, session, err := service.ResolveSession(token)
	if err != nil {
		return false
	}
	storeSessionCache(token, session.UserID)
	c.Set(ContextUserKey, user)
	c.Set(ContextSessionKey, token)
	return true
}

// authenticateByJWT 校验 Bearer JWT 并加载对应的活跃管理员。
func authenticateByJWT(c *gin.Context, token string) bool {
	claims, err := utils.ParseAdminToken(token)
	if err != nil {
		return false
	}
	user, err := repository.NewAdminUserRepository(db.DB).FindByID(claims.UserID)
	if err != nil {
		return false
	}
	c.Set(ContextUserKey, user)
	return true
}

func lookupSessionCache(token string) (uint, bool) {
	// 优先从 Redis 读取
	if redisClient := service.GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		key := service.RedisKey("auth", "session", token)
		if uidStr, err := redisClient.Get(ctx, key).Result(); err == nil {
			if uid, parseErr := parseUint(uidStr); parseErr == nil {
				sessionCache.Store(token, cachedSession{UserID: uid, ExpiresAt: time.Now().Add(sessionCacheTTL)})
				return uid, true
			}
		}
	}

	// Redis 未命中或不可用时，回退本地内存缓存
	if val, ok := sessionCache.Load(token); ok {
		cached, typeOk := val.(cachedSession)
		if typeOk && time.Now().Before(cached.ExpiresAt) {
			return cached.UserID, true
		}
		sessionCache.Delete(token)
	}

	return 0, false
}

func storeSessionCache(token string, userID uint) {
	sessionCache.Store(token, cachedSession{UserID: userID, ExpiresAt: time.Now().Add(sessionCacheTTL)})

	if redisClient := service.GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		key := service.RedisKey("auth", "session", token)
		_ = redisClient.Set(ctx, key, formatUint(userID), sessionCacheTTL).Err()
	}
}

func parseUint(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	return uint(v), err
}

func formatUint(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
