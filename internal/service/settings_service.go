package service

import (
	"strconv"
	"sync"

	"github.com/alsterium/gs-portfolio/internal/consts"
	"github.com/alsterium/gs-portfolio/internal/db"
	"github.com/alsterium/gs-portfolio/internal/model"
	"github.com/alsterium/gs-portfolio/internal/repository"
)

var (
	// 内存缓存
	settingsCache sync.Map
)

const DefaultValueNotFound = "||__NOT_FOUND__||"

var DefaultSettings = []model.Setting{
	{Key: consts.ConfigSiteName, Value: "GS Portfolio", Desc: "网站名称"},
	{Key: consts.ConfigSiteDescription, Value: "Gaussian Splatting portfolio", Desc: "网站描述"},
	{Key: consts.ConfigMaxUploadSize, Value: "100", Desc: "GS 文件最大大小 (MB)"},
	{Key: consts.ConfigMaxThumbnailSize, Value: "5", Desc: "缩略图最大大小 (MB)"},
	{Key: consts.ConfigRateLimitEnabled, Value: "true", Desc: "是否开启接口限流"},
	{Key: consts.ConfigRateLimitAuthRPS, Value: "0.5", Desc: "认证接口每秒请求限制 (RPS)"},
	{Key: consts.ConfigRateLimitAuthBurst, Value: "2", Desc: "认证接口突发请求限制"},
	{Key: consts.ConfigMaxRequestBodySize, Value: "2", Desc: "非文件上传接口最大请求体限制 (MB)"},
	{Key: consts.ConfigThumbnailCacheControl, Value: "public, max-age=3600", Desc: "缩略图响应缓存设置 (Cache-Control)"},
}

func ClearCache() {
	settingsCache.Range(func(key, value interface{}) bool {
		settingsCache.Delete(key)
		return true
	})
}

func InitializeSettings() {
	repo := repository.NewSettingRepository(db.DB)
	for _, def := range DefaultSettings {
		count, err := repo.CountByKey(def.Key)
		if err != nil {
			continue
		}
		if count == 0 {
			newSetting := def
			_ = repo.Create(&newSetting)
		}
	}
}

func GetString(key string) string {
	if val, ok := settingsCache.Load(key); ok {
		strVal, ok := val.(string)
		if !ok {
			settingsCache.Delete(key)
		} else {
			if strVal == DefaultValueNotFound {
				return ""
			}
			return strVal
		}
	}

	repo := repository.NewSettingRepository(db.DB)
	setting, err := repo.FindByKey(key)
	if err != nil {
		// 数据库没查到，尝试查找默认配置
		for _, def := range DefaultSettings {
			if def.Key == key {
				// 查到了默认值，写入数据库并写入缓存
				newSetting := def
				// 尝试写入数据库 (忽略错误，防止并发写入导致的主键冲突)
				_ = repo.Create(&newSetting)

				settingsCache.Store(key, newSetting.Value)
				return newSetting.Value
			}
		}

		// 没查到，往缓存里存 DefaultValueNotFound 标记
		settingsCache.Store(key, DefaultValueNotFound)
		return ""
	}
	// 数据库查到，写入缓存
	settingsCache.Store(key, setting.Value)

	return setting.Value
}

func GetInt(key string) int {
	valStr := GetString(key)
	if valStr == "" {
		return 0
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0
	}
	return val
}

func GetInt64(key string) int64 {
	valStr := GetString(key)
	if valStr == "" {
		return 0
	}

	val, err := strconv.ParseInt(valStr, 10, 64)
	if err != nil {
		return 0
	}
	return val
}

func GetFloat64(key string) float64 {
	valStr := GetString(key)
	if valStr == "" {
		return 0
	}

	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0
	}
	return val
}

func GetBool(key string) bool {
	valStr := GetString(key)
	if valStr == "" {
		return false
	}

	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return false
	}
	return val
}
