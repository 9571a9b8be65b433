package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health 存活探针，不走统一信封
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
