package service

import (
	"bytes"
	"io"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/alsterium/gs-portfolio/internal/config"
	"github.com/alsterium/gs-portfolio/internal/db"
	"github.com/alsterium/gs-portfolio/internal/dto"
	"github.com/alsterium/gs-portfolio/internal/model"
	"github.com/alsterium/gs-portfolio/internal/testutils"
)

// setupStorage 把对象存储根目录指向临时目录并重载配置。
func setupStorage(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("GS_PORTFOLIO_STORAGE_PATH", dir)
	config.InitConfig(t.TempDir())
	return dir
}

func formFileHeader(t *testing.T, fieldName, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()
	return testutils.FormFileHeader(t, fieldName, filename, contentType, content)
}

// 测试内容：验证上传写入对象存储与数据库，且下载内容逐字节一致。
func TestProcessGSFileUploadAndDownload(t *testing.T) {
	testutils.SetupDB(t)
	setupStorage(t)

	splat := testutils.MinimalSplat()
	file := formFileHeader(t, "file", "my scene.splat", "application/octet-stream", splat)
	thumb := formFileHeader(t, "thumbnail", "thumb.png", "image/png", testutils.MinimalPNG())

	record, err := ProcessGSFileUpload(file, thumb, "My Scene", "第一份测试场景")
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}
	if record.ID == 0 {
		t.Fatal("期望记录落库")
	}
	if !strings.HasPrefix(record.FilePath, "gs-files/") {
		t.Fatalf("非预期存储 key: %s", record.FilePath)
	}
	if record.ThumbnailPath == nil || !strings.HasPrefix(*record.ThumbnailPath, "thumbnails/") {
		t.Fatalf("非预期缩略图 key: %+v", record.ThumbnailPath)
	}
	if record.FileSize != int64(len(splat)) {
		t.Fatalf("非预期文件大小: %d", record.FileSize)
	}

	got, obj, err := OpenGSFileBlob(record.ID)
	if err != nil {
		t.Fatalf("下载失败: %v", err)
	}
	defer func() { _ = obj.Body.Close() }()
	if got.ID != record.ID {
		t.Fatal("下载返回的记录不一致")
	}
	data, err := io.ReadAll(obj.Body)
	if err != nil {
		t.Fatalf("读取对象失败: %v", err)
	}
	if !bytes.Equal(data, splat) {
		t.Fatal("期望下载内容与上传一致")
	}

	_, tobj, err := OpenThumbnailBlob(record.ID)
	if err != nil {
		t.Fatalf("读取缩略图失败: %v", err)
	}
	_ = tobj.Body.Close()
}

// 测试内容：验证非法扩展名与非法缩略图 MIME 返回校验错误且不落库。
func TestProcessGSFileUploadValidation(t *testing.T) {
	testutils.SetupDB(t)
	setupStorage(t)

	bad := formFileHeader(t, "file", "evil.exe", "application/octet-stream", []byte("MZ"))
	if _, err := ProcessGSFileUpload(bad, nil, "Bad", ""); err == nil {
		t.Fatal("期望非法扩展名被拒绝")
	} else if se, ok := AsServiceError(err); !ok || se.Code != ErrorCodeValidation {
		t.Fatalf("期望 validation 错误, got %v", err)
	}

	file := formFileHeader(t, "file", "scene.splat", "application/octet-stream", testutils.MinimalSplat())
	badThumb := formFileHeader(t, "thumbnail", "thumb.gif", "image/gif", []byte("GIF89a"))
	if _, err := ProcessGSFileUpload(file, badThumb, "Bad thumb", ""); err == nil {
		t.Fatal("期望非法缩略图被拒绝")
	}

	var count int64
	if err := db.DB.Model(&model.GSFile{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("期望校验失败不落库, got %d 条", count)
	}
}

// 测试内容：验证缩略图可省略。
func TestProcessGSFileUploadWithoutThumbnail(t *testing.T) {
	testutils.SetupDB(t)
	setupStorage(t)

	file := formFileHeader(t, "file", "cloud.ply", "application/ply", testutils.MinimalPLY())
	record, err := ProcessGSFileUpload(file, nil, "Cloud", "")
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}
	if record.ThumbnailPath != nil {
		t.Fatal("期望缩略图为空")
	}

	if _, _, err := OpenThumbnailBlob(record.ID); err == nil {
		t.Fatal("期望无缩略图时返回错误")
	} else if se, ok := AsServiceError(err); !ok || se.Code != ErrorCodeNotFound {
		t.Fatalf("期望 not_found, got %v", err)
	}
}

// 测试内容：验证删除先移除对象再逻辑删除，之后详情与列表不可见。
func TestDeleteGSFile(t *testing.T) {
	testutils.SetupDB(t)
	setupStorage(t)

	file := formFileHeader(t, "file", "scene.splat", "application/octet-stream", testutils.MinimalSplat())
	record, err := ProcessGSFileUpload(file, nil, "Scene", "")
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}

	if err := DeleteGSFile(record.ID); err != nil {
		t.Fatalf("删除失败: %v", err)
	}

	if _, err := GetGSFile(record.ID); err == nil {
		t.Fatal("期望删除后详情 404")
	}
	if _, _, err := OpenGSFileBlob(record.ID); err == nil {
		t.Fatal("期望删除后下载 404")
	}
	if err := DeleteGSFile(record.ID); err == nil {
		t.Fatal("期望重复删除 404")
	} else if se, ok := AsServiceError(err); !ok || se.Code != ErrorCodeNotFound {
		t.Fatalf("期望 not_found, got %v", err)
	}

	// 行仍然保留，只是 is_active 置否
	var raw model.GSFile
	if err := db.DB.First(&raw, record.ID).Error; err != nil {
		t.Fatalf("期望记录仍在: %v", err)
	}
	if raw.IsActive {
		t.Fatal("期望 is_active 为 false")
	}
}

// 测试内容：验证部分更新只改提供的字段。
func TestUpdateGSFileService(t *testing.T) {
	testutils.SetupDB(t)
	setupStorage(t)

	file := formFileHeader(t, "file", "scene.splat", "application/octet-stream", testutils.MinimalSplat())
	record, err := ProcessGSFileUpload(file, nil, "Before", "原始描述")
	if err != nil {
		t.Fatalf("上传失败: %v", err)
	}

	name := "After"
	updated, err := UpdateGSFile(record.ID, dto.UpdateGSFileRequest{DisplayName: &name})
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if updated.DisplayName != "After" {
		t.Fatalf("非预期显示名: %s", updated.DisplayName)
	}
	if updated.Description == nil || *updated.Description != "原始描述" {
		t.Fatal("期望未提供的字段保持原值")
	}

	if _, err := UpdateGSFile(99999, dto.UpdateGSFileRequest{DisplayName: &name}); err == nil {
		t.Fatal("期望更新不存在的记录 404")
	}
}

// 测试内容：验证列表分页与排序经由服务层透传。
func TestListGSFilesService(t *testing.T) {
	testutils.SetupDB(t)
	setupStorage(t)

	for i := 0; i < 3; i++ {
		f := formFileHeader(t, "file", "scene.splat", "application/octet-stream", testutils.MinimalSplat())
		if _, err := ProcessGSFileUpload(f, nil, "Scene", ""); err != nil {
			t.Fatalf("上传失败: %v", err)
		}
	}

	page, err := ListGSFiles(1, 2)
	if err != nil {
		t.Fatalf("列表失败: %v", err)
	}
	if len(page.Data) != 2 || page.Pagination.Total != 3 || page.Pagination.TotalPages != 2 {
		t.Fatalf("非预期分页结果: %+v", page.Pagination)
	}
}
