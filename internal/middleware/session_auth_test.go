package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alsterium/gs-portfolio/internal/config"
	"github.com/alsterium/gs-portfolio/internal/consts"
	"github.com/alsterium/gs-portfolio/internal/db"
	"github.com/alsterium/gs-portfolio/internal/model"
	"github.com/alsterium/gs-portfolio/internal/service"
	"github.com/alsterium/gs-portfolio/internal/testutils"
	"github.com/alsterium/gs-portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", SessionAuth(), func(c *gin.Context) {
		user := c.MustGet(ContextUserKey).(*model.AdminUser)
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})
	return r
}

func seedAdminWithSession(t *testing.T) (*model.AdminUser, string) {
	t.Helper()
	hash, err := utils.HashPassword("secret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := &model.AdminUser{Username: "admin", Email: "admin@example.com", PasswordHash: hash, IsActive: true}
	if err := db.DB.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	token := utils.GenerateSessionToken()
	session := &model.AdminSession{UserID: user.ID, SessionToken: token, ExpiresAt: time.Now().Add(time.Hour)}
	if err := db.DB.Create(session).Error; err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return user, token
}

// 测试内容：验证合法会话 Cookie 放行、缺失与伪造 Cookie 统一 401。
func TestSessionAuthCookie(t *testing.T) {
	testutils.SetupDB(t)
	_, token := seedAdminWithSession(t)
	r := newAuthRouter()

	// 合法 Cookie
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: consts.SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200, got %d: %s", w.Code, w.Body.String())
	}

	// 无 Cookie
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401, got %d", w.Code)
	}

	// 伪造 Cookie
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: consts.SessionCookieName, Value: "forged-token"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401, got %d", w.Code)
	}
}

// 测试内容：验证过期会话被拒绝。
func TestSessionAuthExpired(t *testing.T) {
	testutils.SetupDB(t)
	user, _ := seedAdminWithSession(t)

	expiredToken := utils.GenerateSessionToken()
	expired := &model.AdminSession{UserID: user.ID, SessionToken: expiredToken, ExpiresAt: time.Now().Add(-time.Minute)}
	if err := db.DB.Create(expired).Error; err != nil {
		t.Fatalf("seed expired: %v", err)
	}

	r := newAuthRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: consts.SessionCookieName, Value: expiredToken})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401, got %d", w.Code)
	}
}

// 测试内容：验证缓存命中后登出清缓存立即失效。
func TestSessionAuthCacheInvalidation(t *testing.T) {
	testutils.SetupDB(t)
	_, token := seedAdminWithSession(t)
	r := newAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: consts.SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200, got %d", w.Code)
	}

	// 删除会话并清缓存，下一次请求必须失败
	if err := service.LogoutAdmin(token); err != nil {
		t.Fatalf("登出失败: %v", err)
	}
	ClearSessionCache(token)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: consts.SessionCookieName, Value: token})
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望登出后 401, got %d", w.Code)
	}
}

// 测试内容：验证无 Cookie 时可用 Bearer JWT 认证。
func TestSessionAuthBearerJWT(t *testing.T) {
	testutils.SetupDB(t)
	t.Setenv("GS_PORTFOLIO_AUTH_JWT_SECRET", "test-secret-for-auth")
	config.InitConfig(t.TempDir())

	user, _ := seedAdminWithSession(t)
	jwtToken, err := utils.GenerateAdminToken(user, time.Hour)
	if err != nil {
		t.Fatalf("签发 JWT 失败: %v", err)
	}

	r := newAuthRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+jwtToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200, got %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401, got %d", w.Code)
	}
}
