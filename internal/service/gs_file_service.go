package service

import (
	"errors"
	"log"
	"mime/multipart"
	"sync"

	"github.com/alsterium/gs-portfolio/internal/config"
	"github.com/alsterium/gs-portfolio/internal/db"
	"github.com/alsterium/gs-portfolio/internal/dto"
	"github.com/alsterium/gs-portfolio/internal/model"
	"github.com/alsterium/gs-portfolio/internal/repository"
	"github.com/alsterium/gs-portfolio/internal/storage"
	"github.com/alsterium/gs-portfolio/internal/utils"

	"gorm.io/gorm"
)

var (
	s3Once    sync.Once
	s3Store   storage.FileStorage
	s3InitErr error
)

// blobStorage 按当前配置构造存储适配器。
// S3 客户端初始化较重，进程内只建一次；磁盘后端每次取最新配置。
func blobStorage() (storage.FileStorage, error) {
	cfg := config.Get()

	if cfg.Storage.Type == "s3" {
		s3Once.Do(func() {
			s3Store, s3InitErr = storage.NewS3Storage(cfg.Storage.S3)
			if s3InitErr != nil {
				log.Printf("❌ S3 存储初始化失败: %v\n", s3InitErr)
			}
		})
		return s3Store, s3InitErr
	}

	root := cfg.Storage.Path
	if root == "" {
		root = "uploads/blobs"
	}
	return storage.NewDiskStorage(root), nil
}

// ListGSFiles 分页返回活跃文件。
func ListGSFiles(page, limit int) (*dto.PaginatedGSFiles, error) {
	repo := repository.NewGSFileRepository(db.DB)
	result, err := repo.FindAll(page, limit)
	if err != nil {
		log.Printf("List gs files error: %v\n", err)
		return nil, NewInternalError("获取文件列表失败")
	}
	return result, nil
}

// GetGSFile 返回单个活跃文件。
func GetGSFile(id uint) (*model.GSFile, error) {
	repo := repository.NewGSFileRepository(db.DB)
	file, err := repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("文件不存在")
		}
		log.Printf("Get gs file error: %v\n", err)
		return nil, NewInternalError("获取文件详情失败")
	}
	return file, nil
}

// OpenGSFileBlob 返回文件记录及其存储对象，供下载接口流式返回。
func OpenGSFileBlob(id uint) (*model.GSFile, *storage.Object, error) {
	file, err := GetGSFile(id)
	if err != nil {
		return nil, nil, err
	}

	store, err := blobStorage()
	if err != nil {
		return nil, nil, NewInternalError("存储服务不可用")
	}

	obj, err := store.GetFile(file.FilePath)
	if err != nil {
		log.Printf("Get blob error: %v, key: %s\n", err, file.FilePath)
		return nil, nil, NewInternalError("读取文件数据失败")
	}
	if obj == nil {
		return nil, nil, NewNotFoundError("文件数据不存在")
	}

	return file, obj, nil
}

// OpenThumbnailBlob 返回文件的缩略图对象；未设置缩略图时返回 404。
func OpenThumbnailBlob(id uint) (*model.GSFile, *storage.Object, error) {
	file, err := GetGSFile(id)
	if err != nil {
		return nil, nil, err
	}

	if file.ThumbnailPath == nil || *file.ThumbnailPath == "" {
		return nil, nil, NewNotFoundError("未设置缩略图")
	}

	store, err := blobStorage()
	if err != nil {
		return nil, nil, NewInternalError("存储服务不可用")
	}

	obj, err := store.GetFile(*file.ThumbnailPath)
	if err != nil {
		log.Printf("Get thumbnail blob error: %v, key: %s\n", err, *file.ThumbnailPath)
		return nil, nil, NewInternalError("读取缩略图失败")
	}
	if obj == nil {
		return nil, nil, NewNotFoundError("缩略图数据不存在")
	}

	return file, obj, nil
}

// ProcessGSFileUpload 处理上传核心业务：校验 → 存储对象 → 插入记录。
// 对象存储与数据库之间没有跨系统事务；数据库插入失败时尽力删除已写入的对象。
func ProcessGSFileUpload(file, thumbnail *multipart.FileHeader, displayName, description string) (*model.GSFile, error) {
	if err := utils.ValidateGSFile(file); err != nil {
		return nil, NewValidationError(err.Error())
	}
	if thumbnail != nil {
		if err := utils.ValidateThumbnail(thumbnail); err != nil {
			return nil, NewValidationError(err.Error())
		}
	}

	cfg := config.Get()
	store, err := blobStorage()
	if err != nil {
		return nil, NewInternalError("存储服务不可用")
	}

	filePath := utils.GenerateFilePath(file.Filename, cfg.Storage.GSFilePrefix)
	if err := uploadMultipart(store, filePath, file); err != nil {
		log.Printf("Upload blob error: %v\n", err)
		return nil, NewInternalError("文件保存失败")
	}

	var thumbnailPath *string
	if thumbnail != nil {
		p := utils.GenerateFilePath(thumbnail.Filename, cfg.Storage.ThumbnailPrefix)
		if err := uploadMultipart(store, p, thumbnail); err != nil {
			log.Printf("Upload thumbnail error: %v\n", err)
			// 主文件已写入，回滚后报错
			_ = store.DeleteFile(filePath)
			return nil, NewInternalError("缩略图保存失败")
		}
		thumbnailPath = &p
	}

	record := model.GSFile{
		Filename:      file.Filename,
		DisplayName:   displayName,
		FileSize:      file.Size,
		FilePath:      filePath,
		ThumbnailPath: thumbnailPath,
		MimeType:      file.Header.Get("Content-Type"),
		IsActive:      true,
	}
	if description != "" {
		record.Description = &description
	}

	repo := repository.NewGSFileRepository(db.DB)
	if err := repo.Create(&record); err != nil {
		log.Printf("Create gs file record error: %v\n", err)
		// 回滚已写入的对象
		_ = store.DeleteFile(filePath)
		if thumbnailPath != nil {
			_ = store.DeleteFile(*thumbnailPath)
		}
		return nil, NewInternalError("系统错误: 数据库记录失败")
	}

	return &record, nil
}

func uploadMultipart(store storage.FileStorage, key string, fh *multipart.FileHeader) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	return store.UploadFile(key, src, fh.Size, fh.Header.Get("Content-Type"))
}

// UpdateGSFile 部分更新元数据。
func UpdateGSFile(id uint, req dto.UpdateGSFileRequest) (*model.GSFile, error) {
	repo := repository.NewGSFileRepository(db.DB)
	updated, err := repo.Update(id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("文件不存在")
		}
		log.Printf("Update gs file error: %v\n", err)
		return nil, NewInternalError("文件更新失败")
	}
	return updated, nil
}

// DeleteGSFile 先物理删除存储对象，再逻辑删除记录。
// 对象删除失败时记录保持不变（与来源实现一致，没有补偿事务）。
func DeleteGSFile(id uint) error {
	file, err := GetGSFile(id)
	if err != nil {
		return err
	}

	store, err := blobStorage()
	if err != nil {
		return NewInternalError("存储服务不可用")
	}
	if err := store.DeleteFile(file.FilePath); err != nil {
		log.Printf("Delete blob error: %v, key: %s\n", err, file.FilePath)
		return NewInternalError("文件删除失败")
	}
	if file.ThumbnailPath != nil && *file.ThumbnailPath != "" {
		if err := store.DeleteFile(*file.ThumbnailPath); err != nil {
			log.Printf("Delete thumbnail blob error: %v, key: %s\n", err, *file.ThumbnailPath)
			return NewInternalError("文件删除失败")
		}
	}

	changed, err := repository.NewGSFileRepository(db.DB).Delete(id)
	if err != nil {
		log.Printf("Soft delete gs file error: %v\n", err)
		return NewInternalError("文件删除失败")
	}
	if !changed {
		return NewNotFoundError("文件不存在")
	}

	return nil
}
