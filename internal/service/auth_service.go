package service

import (
	"log"

	"github.com/alsterium/gs-portfolio/internal/db"
	"github.com/alsterium/gs-portfolio/internal/model"
	"github.com/alsterium/gs-portfolio/internal/repository"
	"github.com/alsterium/gs-portfolio/internal/utils"
)

// 认证失败统一返回同一条消息，不暴露具体是哪一步失败
const genericAuthError = "用户名或密码错误"
const genericSessionError = "认证无效或已过期"

// LoginAdmin 校验凭据并创建会话，同时刷新最后登录时间。
func LoginAdmin(username, password string) (*model.AdminUser, *model.AdminSession, error) {
	users := repository.NewAdminUserRepository(db.DB)

	user, err := users.FindByUsername(username)
	if err != nil {
		// 用户不存在与密码错误返回同样的消息
		return nil, nil, NewUnauthorizedError(genericAuthError)
	}

	if !utils.VerifyPassword(password, user.PasswordHash) {
		return nil, nil, NewUnauthorizedError(genericAuthError)
	}

	sessions := repository.NewAdminSessionRepository(db.DB)
	session, err := sessions.Create(user.ID, utils.GenerateSessionToken(), utils.SessionExpiry())
	if err != nil {
		log.Printf("Create session error: %v\n", err)
		return nil, nil, NewInternalError("登录失败，请稍后重试")
	}

	if err := users.UpdateLastLogin(user.ID); err != nil {
		// 最后登录时间只是统计信息，失败不阻断登录
		log.Printf("Update last_login error: %v\n", err)
	}

	return user, session, nil
}

// LogoutAdmin 删除会话。token 已失效时不视为错误。
func LogoutAdmin(token string) error {
	sessions := repository.NewAdminSessionRepository(db.DB)
	if _, err := sessions.Delete(token); err != nil {
		log.Printf("Delete session error: %v\n", err)
		return NewInternalError("登出失败，请稍后重试")
	}
	return nil
}

// ResolveSession 由会话令牌解析出未过期会话与对应的活跃管理员。
// 任何一步失败都返回同一条 401 消息。
func ResolveSession(token string) (*model.AdminUser, *model.AdminSession, error) {
	sessions := repository.NewAdminSessionRepository(db.DB)
	session, err := sessions.FindByToken(token)
	if err != nil {
		return nil, nil, NewUnauthorizedError(genericSessionError)
	}

	users := repository.NewAdminUserRepository(db.DB)
	user, err := users.FindByID(session.UserID)
	if err != nil {
		return nil, nil, NewUnauthorizedError(genericSessionError)
	}

	return user, session, nil
}

// SweepExpiredSessions 批量清理过期会话（运维钩子，不自动调度）。
func SweepExpiredSessions() (int64, error) {
	sessions := repository.NewAdminSessionRepository(db.DB)
	return sessions.DeleteExpired()
}
