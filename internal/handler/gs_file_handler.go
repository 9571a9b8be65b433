package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/alsterium/gs-portfolio/internal/common/httpx"
	"github.com/alsterium/gs-portfolio/internal/consts"
	"github.com/alsterium/gs-portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

// parseIDParam 解析路径中的数字 ID
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httpx.Fail(c, http.StatusBadRequest, "无效的文件 ID")
		return 0, false
	}
	return uint(id), true
}

// ListGSFiles 公共文件列表，分页参数非法直接 400
func ListGSFiles(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		httpx.Fail(c, http.StatusBadRequest, "页码必须是不小于 1 的整数")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		httpx.Fail(c, http.StatusBadRequest, "每页数量必须在 1 到 100 之间")
		return
	}

	result, err := service.ListGSFiles(page, limit)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取文件列表失败")
		return
	}
	httpx.OK(c, result)
}

// GetGSFile 公共文件详情
func GetGSFile(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	file, err := service.GetGSFile(id)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取文件详情失败")
		return
	}
	httpx.OK(c, file)
}

// DownloadGSFile 流式返回文件内容
func DownloadGSFile(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	file, obj, err := service.OpenGSFileBlob(id)
	if err != nil {
		httpx.WriteServiceError(c, err, "读取文件失败")
		return
	}
	defer func() { _ = obj.Body.Close() }()

	contentType := obj.ContentType
	if contentType == "" {
		contentType = file.MimeType
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", file.Filename),
	}
	c.DataFromReader(http.StatusOK, obj.Size, contentType, obj.Body, extraHeaders)
}

// GetThumbnail 返回缩略图，缓存策略由设置表控制
func GetThumbnail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	_, obj, err := service.OpenThumbnailBlob(id)
	if err != nil {
		httpx.WriteServiceError(c, err, "读取缩略图失败")
		return
	}
	defer func() { _ = obj.Body.Close() }()

	if cc := service.GetString(consts.ConfigThumbnailCacheControl); cc != "" {
		c.Header("Cache-Control", cc)
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, obj.Size, contentType, obj.Body, nil)
}
