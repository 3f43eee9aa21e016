package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"profileinator/controller"
)

func SetApiRouter(router *gin.Engine) {
	apiRouter := router.Group("/api")
	apiRouter.Use(gzip.Gzip(gzip.DefaultCompression))
	{
		apiRouter.GET("/status", controller.GetStatus)
	}
}
