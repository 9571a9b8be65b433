package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证 handler panic 时返回带统一信封的 500 响应而不是空 body。
func TestRecoveryWritesErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("数据库连接断开") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("期望 500，实际为 %d", w.Code)
	}

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("期望 JSON body，解析失败: %v (body=%q)", err, w.Body.String())
	}
	if body.Success {
		t.Fatal("期望 success 为 false")
	}
	if body.Error == "" {
		t.Fatal("期望 error 字段非空")
	}
}

// 测试内容：验证未 panic 的请求不受 Recovery 影响。
func TestRecoveryPassthrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	if w.Code != http.StatusNoContent {
		t.Fatalf("期望 204，实际为 %d", w.Code)
	}
}
