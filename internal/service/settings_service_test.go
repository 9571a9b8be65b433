package service

import (
	"testing"

	"github.com/alsterium/gs-portfolio/internal/consts"
	"github.com/alsterium/gs-portfolio/internal/db"
	"github.com/alsterium/gs-portfolio/internal/model"
	"github.com/alsterium/gs-portfolio/internal/testutils"
)

// 测试内容：验证默认配置初始化后可读取且不会重复写入。
func TestInitializeSettings(t *testing.T) {
	testutils.SetupDB(t)
	ClearCache()

	InitializeSettings()
	InitializeSettings()

	var count int64
	if err := db.DB.Model(&model.Setting{}).
		Where("key = ?", consts.ConfigSiteName).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("期望站点名称只有 1 条, got %d", count)
	}

	if got := GetString(consts.ConfigSiteName); got != "GS Portfolio" {
		t.Fatalf("非预期站点名称: %s", got)
	}
	if got := GetInt(consts.ConfigMaxUploadSize); got != 100 {
		t.Fatalf("非预期上传上限: %d", got)
	}
	if got := GetInt64(consts.ConfigMaxThumbnailSize); got != 5 {
		t.Fatalf("非预期缩略图上限: %d", got)
	}
	if !GetBool(consts.ConfigRateLimitEnabled) {
		t.Fatal("期望限流默认开启")
	}
	if got := GetFloat64(consts.ConfigRateLimitAuthRPS); got != 0.5 {
		t.Fatalf("非预期 RPS: %v", got)
	}
}

// 测试内容：验证缓存命中后改库不生效，ClearCache 后读到新值。
func TestSettingsCacheInvalidation(t *testing.T) {
	testutils.SetupDB(t)
	ClearCache()
	InitializeSettings()

	if got := GetString(consts.ConfigSiteName); got != "GS Portfolio" {
		t.Fatalf("非预期初始值: %s", got)
	}

	if err := db.DB.Model(&model.Setting{}).
		Where("key = ?", consts.ConfigSiteName).
		Update("value", "New Name").Error; err != nil {
		t.Fatalf("update: %v", err)
	}

	// 缓存未清理，仍然返回旧值
	if got := GetString(consts.ConfigSiteName); got != "GS Portfolio" {
		t.Fatalf("期望缓存命中旧值, got %s", got)
	}

	ClearCache()
	if got := GetString(consts.ConfigSiteName); got != "New Name" {
		t.Fatalf("期望清缓存后读到新值, got %s", got)
	}
}

// 测试内容：验证未知 key 返回零值并缓存未命中标记。
func TestSettingsUnknownKey(t *testing.T) {
	testutils.SetupDB(t)
	ClearCache()

	if got := GetString("no_such_key"); got != "" {
		t.Fatalf("期望空字符串, got %s", got)
	}
	if got := GetInt64("no_such_key"); got != 0 {
		t.Fatalf("期望 0, got %d", got)
	}
	if val, ok := settingsCache.Load("no_such_key"); !ok || val != DefaultValueNotFound {
		t.Fatal("期望缓存未命中标记")
	}
}
