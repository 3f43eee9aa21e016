package middleware

import (
	"github.com/gin-gonic/gin"

	"profileinator/common/logger"
)

func abortWithDetail(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, gin.H{"detail": detail})
	c.Abort()
	logger.Error(c.Request.Context(), detail)
}
