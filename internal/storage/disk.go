package storage

import (
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/alsterium/gs-portfolio/internal/utils"
)

// DiskStorage 本地磁盘实现，key 挂在 root 目录下。
// 上传时对 key 做防穿透校验，避免写出基目录。
type DiskStorage struct {
	root string
}

func NewDiskStorage(root string) *DiskStorage {
	return &DiskStorage{root: root}
}

func (s *DiskStorage) UploadFile(key string, r io.Reader, size int64, contentType string) error {
	dst, err := utils.SecureJoin(s.root, key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	_, err = io.Copy(out, r)
	return err
}

func (s *DiskStorage) GetFile(key string) (*Object, error) {
	path, err := utils.SecureJoin(s.root, key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	// 磁盘后端没有对象元数据，按扩展名推断
	return &Object{
		Body:        f,
		Size:        info.Size(),
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
	}, nil
}

func (s *DiskStorage) DeleteFile(key string) error {
	path, err := utils.SecureJoin(s.root, key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *DiskStorage) FileExists(key string) (bool, error) {
	path, err := utils.SecureJoin(s.root, key)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
