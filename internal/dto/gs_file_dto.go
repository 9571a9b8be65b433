package dto

// UpdateGSFileRequest 部分更新请求：nil 字段保持原值（COALESCE 语义）。
type UpdateGSFileRequest struct {
	DisplayName *string `json:"display_name"`
	Description *string `json:"description"`
}

// LoginRequest 管理员登录请求。
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
