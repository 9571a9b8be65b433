package config

import (
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/spf13/viper"
)

// 用于管理应用配置

var (
	// 使用 atomic.Value 存储 *Config，实现无锁读取
	appConfig atomic.Value
	configMu  sync.Mutex // 仅用于写操作互斥
	configDir = "config"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Storage  StorageConfig  `mapstructure:"storage"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"` // database name
	SSL      bool   `mapstructure:"ssl"`  // enable TLS/SSL
}

type AuthConfig struct {
	// JWTSecret 可选 JWT 认证路径使用的 HMAC 密钥
	JWTSecret string `mapstructure:"jwt_secret"`
	// SessionTTLHours 管理员会话有效期（小时）
	SessionTTLHours int `mapstructure:"session_ttl_hours"`
	// SecureCookie 会话 Cookie 是否携带 Secure 标记（本地 http 调试可关闭）
	SecureCookie bool `mapstructure:"secure_cookie"`
}

type StorageConfig struct {
	// Type 存储后端类型：disk 或 s3
	Type string `mapstructure:"type"`
	// Path 磁盘后端的根目录，所有 key 都挂在其下
	Path string `mapstructure:"path"`
	// GSFilePrefix 生成 GS 文件 key 的前缀
	GSFilePrefix string `mapstructure:"gs_file_prefix"`
	// ThumbnailPrefix 生成缩略图 key 的前缀
	ThumbnailPrefix string `mapstructure:"thumbnail_prefix"`
	// S3 对象存储后端配置（type 为 s3 时生效）
	S3 S3Config `mapstructure:"s3"`
}

type S3Config struct {
	// Endpoint 兼容 S3 协议的自定义端点（R2/MinIO），留空使用 AWS 默认
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

type CORSConfig struct {
	// AllowOrigins 允许的跨域来源（前端开发服务器）
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// Get 获取当前配置的快照（高性能无锁）
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

func GetConfigDir() string {
	return configDir
}

func InitConfig(customConfigDir string) {
	v := initViper(customConfigDir)
	loadAndStore(v)
	enforceJWTSecretSafety()
	log.Println("✅ 配置加载成功")
}

func initViper(customConfigDir string) *viper.Viper {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	// 设置配置文件路径
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// 设置默认值
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/gs_portfolio.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "root")
	v.SetDefault("database.name", "gs_portfolio")
	v.SetDefault("database.ssl", false)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.session_ttl_hours", 24)
	v.SetDefault("auth.secure_cookie", true)
	v.SetDefault("storage.type", "disk")
	v.SetDefault("storage.path", "uploads/blobs")
	v.SetDefault("storage.gs_file_prefix", "gs-files")
	v.SetDefault("storage.thumbnail_prefix", "thumbnails")
	v.SetDefault("storage.s3.endpoint", "")
	v.SetDefault("storage.s3.region", "auto")
	v.SetDefault("storage.s3.bucket", "gs-portfolio")
	v.SetDefault("storage.s3.access_key", "")
	v.SetDefault("storage.s3.secret_key", "")
	v.SetDefault("cors.allow_origins", []string{"http://localhost:5173", "http://localhost:5174"})
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "gs_portfolio")

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("⚠️  未找到配置文件，将仅使用环境变量或默认值")
		} else {
			log.Fatalf("❌ 读取配置文件失败: %v", err)
		}
	}

	// 配置环境变量覆盖
	// 规则：所有环境变量必须以 GS_PORTFOLIO_ 开头
	// 例如：yaml 中的 server.port 对应环境变量 GS_PORTFOLIO_SERVER_PORT
	v.SetEnvPrefix("GS_PORTFOLIO")

	// 允许自动查找环境变量
	v.AutomaticEnv()

	// 解决层级分隔符问题：将 key 中的 "." 替换为 "_"
	// 这样 server.port 才能匹配 SERVER_PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 初始加载配置
	return v
}

// loadAndStore 解析并原子更新配置
func loadAndStore(v *viper.Viper) {
	// 加写锁，防止并发重载时的竞争
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	// 将配置映射到结构体
	if err := v.Unmarshal(&tempConfig); err != nil {
		log.Printf("❌ 配置解析失败: %v", err)
		return
	}

	// 安全检查
	if tempConfig.Server.Mode == "release" {
		if tempConfig.Auth.JWTSecret == "" || tempConfig.Auth.JWTSecret == "gs_portfolio_secret" {
			log.Println("❌ [安全严重错误] 生产模式(release)下必须设置安全的 JWT Secret！")
		}
	} else {
		if tempConfig.Auth.JWTSecret == "" {
			log.Println("⚠️ [开发模式警告] 未设置 JWT Secret，将使用默认不安全密钥进行开发")
			tempConfig.Auth.JWTSecret = "gs_portfolio_secret"
		}
	}

	if tempConfig.Auth.SessionTTLHours <= 0 {
		tempConfig.Auth.SessionTTLHours = 24
	}

	// 原子替换全局配置
	appConfig.Store(&tempConfig)
	log.Println("✅ 配置已更新")
}

func enforceJWTSecretSafety() {
	// 首次启动安全检查：如果是 release 模式，拦截不安全的 JWT Secret
	curr := Get()
	if curr.Server.Mode == "release" {
		if curr.Auth.JWTSecret == "" || curr.Auth.JWTSecret == "gs_portfolio_secret" {
			log.Fatal("❌ [安全严重错误] 生产模式(release)下必须设置安全的 JWT Secret！\n请设置环境变量 GS_PORTFOLIO_AUTH_JWT_SECRET 或在配置文件中指定 auth.jwt_secret")
		}
	}
}
