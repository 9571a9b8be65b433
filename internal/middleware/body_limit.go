package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/alsterium/gs-portfolio/internal/common/httpx"
	"github.com/alsterium/gs-portfolio/internal/consts"
	"github.com/alsterium/gs-portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware 限制普通 JSON 接口的请求体大小，上传接口由 UploadBodyLimitMiddleware 单独处理
func BodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 上传路由跳过，走独立的大文件限制
		if strings.HasSuffix(c.Request.URL.Path, "/gs-files") && c.Request.Method == http.MethodPost {
			c.Next()
			return
		}

		maxSizeMB := service.GetInt(consts.ConfigMaxRequestBodySize)
		if maxSizeMB <= 0 {
			maxSizeMB = 2
		}

		maxBytes := int64(maxSizeMB) * 1024 * 1024
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

		c.Next()
	}
}

// UploadBodyLimitMiddleware 限制上传接口的请求体大小。
// 上限取 GS 文件与缩略图上限之和，留出表单自身的开销。
func UploadBodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := service.GetInt64(consts.ConfigMaxUploadSize) + service.GetInt64(consts.ConfigMaxThumbnailSize)
		if maxSizeMB <= 0 {
			maxSizeMB = 105
		}
		maxBytes := (maxSizeMB + 1) * 1024 * 1024

		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			httpx.Fail(c, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("请求体不能超过 %dMB", maxSizeMB))
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
