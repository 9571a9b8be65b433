package admin

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/alsterium/gs-portfolio/internal/common/httpx"
	"github.com/alsterium/gs-portfolio/internal/dto"
	"github.com/alsterium/gs-portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httpx.Fail(c, http.StatusBadRequest, "无效的文件 ID")
		return 0, false
	}
	return uint(id), true
}

// UploadGSFile 处理 multipart 上传：file 必填，thumbnail 选填
func UploadGSFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		httpx.Fail(c, http.StatusBadRequest, "请选择要上传的文件")
		return
	}

	displayName := c.PostForm("display_name")
	if displayName == "" {
		httpx.Fail(c, http.StatusBadRequest, "展示名称不能为空")
		return
	}
	description := c.PostForm("description")

	var thumbnail *multipart.FileHeader
	if fh, err := c.FormFile("thumbnail"); err == nil {
		thumbnail = fh
	}

	record, err := service.ProcessGSFileUpload(file, thumbnail, displayName, description)
	if err != nil {
		httpx.WriteServiceError(c, err, "上传失败，请稍后重试")
		return
	}

	httpx.Created(c, record)
}

// UpdateGSFile 部分更新元数据
func UpdateGSFile(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateGSFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Fail(c, http.StatusBadRequest, "请求体格式错误")
		return
	}
	if req.DisplayName == nil && req.Description == nil {
		httpx.Fail(c, http.StatusBadRequest, "至少提供一个需要更新的字段")
		return
	}

	updated, err := service.UpdateGSFile(id, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "文件更新失败")
		return
	}
	httpx.OK(c, updated)
}

// DeleteGSFile 删除存储对象并逻辑删除记录
func DeleteGSFile(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := service.DeleteGSFile(id); err != nil {
		httpx.WriteServiceError(c, err, "文件删除失败")
		return
	}
	httpx.OKMessage(c, "文件已删除")
}
