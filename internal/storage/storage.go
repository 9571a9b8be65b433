package storage

import "io"

// Object 一个已存储的对象。Body 由调用方负责关闭。
type Object struct {
	Body        io.ReadCloser
	Size        int64
	ContentType string
}

// FileStorage 对象存储适配层：按生成的 key 存取 GS 文件与缩略图。
// 实现不做重试与退避，底层错误原样向上传递。
type FileStorage interface {
	UploadFile(key string, r io.Reader, size int64, contentType string) error
	// GetFile 对象不存在时返回 (nil, nil)
	GetFile(key string) (*Object, error)
	DeleteFile(key string) error
	FileExists(key string) (bool, error)
}
