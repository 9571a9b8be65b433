package router

import (
	"github.com/alsterium/gs-portfolio/internal/handler/admin"
	"github.com/alsterium/gs-portfolio/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc) {
	group := api.Group("/admin")

	group.POST("/login", authLimiter, admin.Login)
	group.POST("/logout", admin.Logout)

	authed := group.Group("")
	authed.Use(middleware.SessionAuth())
	authed.GET("/me", admin.Me)
	authed.POST("/gs-files", middleware.UploadBodyLimitMiddleware(), admin.UploadGSFile)
	authed.PUT("/gs-files/:id", admin.UpdateGSFile)
	authed.DELETE("/gs-files/:id", admin.DeleteGSFile)
}
