package router

import (
	"github.com/alsterium/gs-portfolio/internal/consts"
	"github.com/alsterium/gs-portfolio/internal/handler"
	"github.com/alsterium/gs-portfolio/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Init 注册全部路由与中间件
func Init(r *gin.Engine) {
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())

	r.GET("/health", handler.Health)

	api := r.Group("/api")
	api.Use(middleware.BodyLimitMiddleware())

	// 认证限流：登录接口共用同一个实例
	authLimiter := middleware.RateLimitMiddleware(consts.ConfigRateLimitAuthRPS, consts.ConfigRateLimitAuthBurst)

	registerPublicRoutes(api)
	registerAdminRoutes(api, authLimiter)
}
