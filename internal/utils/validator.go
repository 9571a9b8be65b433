package utils

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxGSFileSize GS 文件大小上限 (100MB)
	MaxGSFileSize = 100 * 1024 * 1024

	// MaxThumbnailSize 缩略图大小上限 (5MB)
	MaxThumbnailSize = 5 * 1024 * 1024
)

// 允许的 GS 文件 MIME 类型
var allowedGSTypes = map[string]bool{
	"application/octet-stream": true, // .splat
	"application/ply":          true, // .ply
	"text/plain":               true, // .ply (文本格式)
}

// 允许的缩略图 MIME 类型
var allowedThumbnailTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// 允许的 GS 文件扩展名
var allowedGSExtensions = map[string]bool{
	".splat": true,
	".ply":   true,
}

var (
	unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
	underscoreRuns      = regexp.MustCompile(`_{2,}`)
)

// ValidateGSFile 校验上传的 GS 文件（大小、扩展名、声明的 MIME 类型）。
// 无论声明什么 MIME，扩展名不在白名单都会被拒绝。
func ValidateGSFile(file *multipart.FileHeader) error {
	if file.Size > MaxGSFileSize {
		return fmt.Errorf("文件大小不能超过 %dMB", MaxGSFileSize/1024/1024)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedGSExtensions[ext] {
		return fmt.Errorf("不支持的文件格式，仅支持 .splat 或 .ply 文件")
	}

	contentType := normalizeContentType(file.Header.Get("Content-Type"))
	if !allowedGSTypes[contentType] {
		return fmt.Errorf("不支持的文件类型: %s", contentType)
	}

	return nil
}

// ValidateThumbnail 校验缩略图（大小、声明的 MIME 类型）。
func ValidateThumbnail(file *multipart.FileHeader) error {
	if file.Size > MaxThumbnailSize {
		return fmt.Errorf("缩略图大小不能超过 %dMB", MaxThumbnailSize/1024/1024)
	}

	contentType := normalizeContentType(file.Header.Get("Content-Type"))
	if !allowedThumbnailTypes[contentType] {
		return fmt.Errorf("不支持的图片格式，仅支持 JPEG、PNG、WebP")
	}

	return nil
}

// normalizeContentType 去掉 "; charset=..." 等参数并统一小写。
func normalizeContentType(contentType string) string {
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

// SanitizeFilename 替换危险字符为 "_"，折叠连续下划线并截断到 255 字符。
func SanitizeFilename(filename string) string {
	s := unsafeFilenameChars.ReplaceAllString(filename, "_")
	s = underscoreRuns.ReplaceAllString(s, "_")
	if len(s) > 255 {
		s = s[:255]
	}
	return s
}

// GenerateFilePath 生成实际存储使用的唯一 key：
// {prefix}/{毫秒时间戳}-{8位随机hex}-{清洗后的文件名}
// 时间戳加随机段保证无需查库即可实现实际唯一。
func GenerateFilePath(filename, prefix string) string {
	timestamp := time.Now().UnixMilli()
	randomID := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s/%d-%s-%s", prefix, timestamp, randomID, SanitizeFilename(filename))
}
