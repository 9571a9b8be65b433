package consts

const (
	ApplicationName    = "GS Portfolio Server"
	ApplicationVersion = "1.0.0"

	// JWTIssuer 签发 JWT 时使用的 issuer
	JWTIssuer = "gs-portfolio-server"

	// SessionCookieName 管理员会话 Cookie 名称
	SessionCookieName = "session"

	// SessionCookieMaxAge 会话 Cookie 有效期（秒），与会话 TTL 一致
	SessionCookieMaxAge = 86400
)
