package dto

import "github.com/alsterium/gs-portfolio/internal/model"

// Pagination 列表响应中的分页元数据。
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// PaginatedGSFiles GS 文件分页列表。
type PaginatedGSFiles struct {
	Data       []model.GSFile `json:"data"`
	Pagination Pagination     `json:"pagination"`
}
