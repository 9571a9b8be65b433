package router

import (
	"github.com/alsterium/gs-portfolio/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(api *gin.RouterGroup) {
	api.GET("/site-info", handler.GetSiteInfo)
	api.GET("/gs-files", handler.ListGSFiles)
	api.GET("/gs-files/:id", handler.GetGSFile)
	api.GET("/gs-files/:id/file", handler.DownloadGSFile)
	api.GET("/gs-files/:id/thumbnail", handler.GetThumbnail)
}
