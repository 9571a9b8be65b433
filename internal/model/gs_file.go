package model

import "time"

// GSFile 一条已上传的 Gaussian Splatting / PLY 资产记录。
// 删除为逻辑删除（IsActive 置 false），对应的存储对象会被物理删除。
type GSFile struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Filename      string    `json:"filename" gorm:"not null"`
	DisplayName   string    `json:"display_name" gorm:"not null"`
	Description   *string   `json:"description"`
	FileSize      int64     `json:"file_size" gorm:"not null"`
	FilePath      string    `json:"file_path" gorm:"not null;unique"`
	ThumbnailPath *string   `json:"thumbnail_path"`
	MimeType      string    `json:"mime_type" gorm:"not null"`
	UploadDate    time.Time `json:"upload_date" gorm:"not null;index;autoCreateTime"`
	UpdatedDate   time.Time `json:"updated_date" gorm:"not null;autoUpdateTime"`
	IsActive      bool      `json:"is_active" gorm:"not null;default:true;index"`
}
