package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/alsterium/gs-portfolio/internal/config"
	"github.com/alsterium/gs-portfolio/internal/model"
)

func setupJWTConfig(t *testing.T) {
	t.Helper()
	t.Setenv("GS_PORTFOLIO_AUTH_JWT_SECRET", "jwt_test_secret")
	config.InitConfig(t.TempDir())
}

// 测试内容：验证 JWT 生成与解析的往返。
func TestGenerateAndParseAdminToken(t *testing.T) {
	setupJWTConfig(t)

	user := &model.AdminUser{ID: 7, Username: "admin", Email: "admin@example.com"}
	token, err := GenerateAdminToken(user, time.Hour)
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}

	claims, err := ParseAdminToken(token)
	if err != nil {
		t.Fatalf("ParseAdminToken: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "admin" || claims.Email != "admin@example.com" {
		t.Fatalf("非预期 claims: %+v", claims)
	}
}

// 测试内容：验证过期 Token 解析失败。
func TestParseAdminTokenExpired(t *testing.T) {
	setupJWTConfig(t)

	user := &model.AdminUser{ID: 1, Username: "admin"}
	token, err := GenerateAdminToken(user, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}
	if _, err := ParseAdminToken(token); err == nil {
		t.Fatal("期望过期 token 解析失败")
	}
}

// 测试内容：验证签名被篡改的 Token 解析失败。
func TestParseAdminTokenTampered(t *testing.T) {
	setupJWTConfig(t)

	user := &model.AdminUser{ID: 1, Username: "admin"}
	token, err := GenerateAdminToken(user, time.Hour)
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("非预期 token 结构: %s", token)
	}
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]
	if _, err := ParseAdminToken(tampered); err == nil {
		t.Fatal("期望篡改后的 token 解析失败")
	}

	// 结构错误
	if _, err := ParseAdminToken("not-a-jwt"); err == nil {
		t.Fatal("期望畸形 token 解析失败")
	}
}
