package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"profileinator/common/config"
)

// UploadSizeLimit rejects oversized bodies before the multipart parser
// buffers them. The limit covers the image field plus form overhead.
func UploadSizeLimit() gin.HandlerFunc {
	limit := config.MaxUploadBytes + 64<<10
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			abortWithDetail(c, http.StatusBadRequest,
				fmt.Sprintf("upload too large, limit is %d bytes", config.MaxUploadBytes))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
