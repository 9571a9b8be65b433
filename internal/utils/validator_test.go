package utils

import (
	"mime/multipart"
	"net/textproto"
	"regexp"
	"strings"
	"testing"
)

func fileHeader(filename, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{
		Filename: filename,
		Header:   h,
		Size:     size,
	}
}

// 测试内容：验证 GS 文件校验的大小、扩展名与 MIME 规则。
func TestValidateGSFile(t *testing.T) {
	if err := ValidateGSFile(fileHeader("scene.splat", "application/octet-stream", 1024)); err != nil {
		t.Fatalf("期望合法 splat 通过: %v", err)
	}
	if err := ValidateGSFile(fileHeader("cloud.ply", "text/plain; charset=utf-8", 1024)); err != nil {
		t.Fatalf("期望合法 ply 通过: %v", err)
	}

	// 声明的 MIME 在白名单内也不能绕过扩展名检查
	if err := ValidateGSFile(fileHeader("evil.exe", "application/octet-stream", 1024)); err == nil {
		t.Fatal("期望 .exe 被拒绝")
	}
	if err := ValidateGSFile(fileHeader("scene.splat", "video/mp4", 1024)); err == nil {
		t.Fatal("期望非白名单 MIME 被拒绝")
	}
	if err := ValidateGSFile(fileHeader("scene.splat", "application/octet-stream", MaxGSFileSize+1)); err == nil {
		t.Fatal("期望超过 100MB 被拒绝")
	}
}

// 测试内容：验证缩略图校验的大小与 MIME 规则。
func TestValidateThumbnail(t *testing.T) {
	if err := ValidateThumbnail(fileHeader("thumb.png", "image/png", 1024)); err != nil {
		t.Fatalf("期望合法 png 通过: %v", err)
	}
	if err := ValidateThumbnail(fileHeader("thumb.gif", "image/gif", 1024)); err == nil {
		t.Fatal("期望 gif 被拒绝")
	}
	if err := ValidateThumbnail(fileHeader("thumb.png", "image/png", MaxThumbnailSize+1)); err == nil {
		t.Fatal("期望超过 5MB 被拒绝")
	}
}

// 测试内容：验证文件名清洗替换危险字符、折叠下划线并截断。
func TestSanitizeFilename(t *testing.T) {
	if got := SanitizeFilename("my scene (final).splat"); got != "my_scene_final_.splat" {
		t.Fatalf("非预期清洗结果: %s", got)
	}
	if got := SanitizeFilename("a///..\\b.ply"); strings.ContainsAny(got, "/\\") {
		t.Fatalf("期望路径分隔符被清除: %s", got)
	}
	long := strings.Repeat("x", 300) + ".splat"
	if got := SanitizeFilename(long); len(got) != 255 {
		t.Fatalf("期望截断到 255，实际为 %d", len(got))
	}
}

// 测试内容：验证生成的存储 key 符合 {prefix}/{millis}-{8hex}-{name} 且实际唯一。
func TestGenerateFilePath(t *testing.T) {
	p1 := GenerateFilePath("scene one.splat", "gs-files")
	p2 := GenerateFilePath("scene one.splat", "gs-files")

	pattern := regexp.MustCompile(`^gs-files/\d{13}-[0-9a-f]{8}-scene_one\.splat$`)
	if !pattern.MatchString(p1) {
		t.Fatalf("非预期 key 格式: %s", p1)
	}
	if p1 == p2 {
		t.Fatal("期望两次生成的 key 不同")
	}
}
