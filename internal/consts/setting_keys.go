package consts

const (

	// ConfigSiteName 网站名称
	ConfigSiteName = "site_name"

	// ConfigSiteDescription 网站描述
	ConfigSiteDescription = "site_description"

	// ConfigMaxUploadSize GS 文件最大上传限制 (MB)
	ConfigMaxUploadSize = "max_upload_size"

	// ConfigMaxThumbnailSize 缩略图最大上传限制 (MB)
	ConfigMaxThumbnailSize = "max_thumbnail_size"

	// ConfigRateLimitEnabled 是否开启限流
	ConfigRateLimitEnabled = "rate_limit_enabled"

	// ConfigRateLimitAuthRPS 认证接口限流 RPS
	ConfigRateLimitAuthRPS = "rate_limit_auth_rps"

	// ConfigRateLimitAuthBurst 认证接口限流 Burst
	ConfigRateLimitAuthBurst = "rate_limit_auth_burst"

	// ConfigMaxRequestBodySize 非上传接口最大请求体限制 (MB)
	ConfigMaxRequestBodySize = "max_request_body_size"

	// ConfigThumbnailCacheControl 缩略图响应缓存设置 (Cache-Control header value)
	ConfigThumbnailCacheControl = "thumbnail_cache_control"
)
