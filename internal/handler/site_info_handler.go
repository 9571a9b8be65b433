package handler

import (
	"github.com/alsterium/gs-portfolio/internal/common/httpx"
	"github.com/alsterium/gs-portfolio/internal/consts"
	"github.com/alsterium/gs-portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

// GetSiteInfo 返回站点名称与描述，供前端渲染标题和页头。
func GetSiteInfo(c *gin.Context) {
	httpx.OK(c, gin.H{
		"site_name":        service.GetString(consts.ConfigSiteName),
		"site_description": service.GetString(consts.ConfigSiteDescription),
	})
}
