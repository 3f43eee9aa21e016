package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"profileinator/common/config"
)

func GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "",
		"data": gin.H{
			"version":        config.Version,
			"start_time":     config.StartTime,
			"system_name":    config.SystemName,
			"describe_model": config.DescribeModel,
			"image_model":    config.ImageModel,
			"max_variants":   config.MaxVariants,
		},
	})
}
