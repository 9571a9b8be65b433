package middleware

import (
	"log"
	"net/http"

	"github.com/alsterium/gs-portfolio/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

// Recovery 捕获 handler panic，返回统一的 500 JSON 响应。
// gin 自带的 Recovery 只写状态码不写 body，前端解析不到 error 字段，
// 这里换成带响应体的版本。
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err interface{}) {
		log.Printf("❌ handler panic: %v\n", err)
		httpx.Fail(c, http.StatusInternalServerError, "服务器内部错误")
		c.Abort()
	})
}
