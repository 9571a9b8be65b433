package middleware

import (
	"net/http"

	"github.com/alsterium/gs-portfolio/internal/config"
	"github.com/alsterium/gs-portfolio/internal/consts"

	"github.com/gin-gonic/gin"
)

// SetSessionCookie 下发会话 Cookie：HttpOnly + SameSite=Strict，
// Secure 由配置控制（本地 http 调试时关闭）。
func SetSessionCookie(c *gin.Context, token string) {
	maxAge := consts.SessionCookieMaxAge
	if hours := config.Get().Auth.SessionTTLHours; hours > 0 {
		maxAge = hours * 3600
	}
	writeSessionCookie(c, token, maxAge)
}

// ClearSessionCookie 让浏览器立即丢弃会话 Cookie。
func ClearSessionCookie(c *gin.Context) {
	writeSessionCookie(c, "", -1)
}

func writeSessionCookie(c *gin.Context, token string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     consts.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   config.Get().Auth.SecureCookie,
		SameSite: http.SameSiteStrictMode,
	})
}
