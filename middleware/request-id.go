package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"profileinator/common/helper"
	"profileinator/common/logger"
)

func RequestId() func(c *gin.Context) {
	return func(c *gin.Context) {
		// A caller-supplied X-Request-Id wins over a generated one.
		id := c.GetHeader(logger.RequestIdKey)
		if id == "" {
			id = helper.GenRequestID()
		}
		c.Set(logger.RequestIdKey, id)
		ctx := context.WithValue(c.Request.Context(), logger.RequestIdKey, id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(logger.RequestIdKey, id)
		c.Next()
	}
}
