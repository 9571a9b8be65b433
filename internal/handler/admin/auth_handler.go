package admin

import (
	"net/http"

	"github.com/alsterium/gs-portfolio/internal/common/httpx"
	"github.com/alsterium/gs-portfolio/internal/consts"
	"github.com/alsterium/gs-portfolio/internal/dto"
	"github.com/alsterium/gs-portfolio/internal/middleware"
	"github.com/alsterium/gs-portfolio/internal/model"
	"github.com/alsterium/gs-portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

// Login 校验凭据并下发会话 Cookie
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Fail(c, http.StatusBadRequest, "用户名和密码不能为空")
		return
	}

	user, session, err := service.LoginAdmin(req.Username, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "登录失败，请稍后重试")
		return
	}

	middleware.SetSessionCookie(c, session.SessionToken)
	httpx.OK(c, user)
}

// Logout 删除会话并清除 Cookie。重复登出也返回成功。
func Logout(c *gin.Context) {
	token, err := c.Cookie(consts.SessionCookieName)
	if err == nil && token != "" {
		if err := service.LogoutAdmin(token); err != nil {
			httpx.WriteServiceError(c, err, "登出失败，请稍后重试")
			return
		}
		middleware.ClearSessionCache(token)
	}

	middleware.ClearSessionCookie(c)
	httpx.OKMessage(c, "已登出")
}

// Me 返回当前登录的管理员（由认证中间件写入上下文）
func Me(c *gin.Context) {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		httpx.Fail(c, http.StatusUnauthorized, "认证无效或已过期")
		return
	}
	user, ok := value.(*model.AdminUser)
	if !ok {
		httpx.Fail(c, http.StatusUnauthorized, "认证无效或已过期")
		return
	}
	httpx.OK(c, user)
}
