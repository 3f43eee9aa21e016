package router

import (
	"github.com/gin-gonic/gin"

	"profileinator/controller"
	"profileinator/middleware"
)

func SetGenerateRouter(router *gin.Engine) {
	generateRouter := router.Group("/generate")
	generateRouter.Use(middleware.PanicRecover(), middleware.UploadSizeLimit())
	{
		generateRouter.POST("", controller.GenerateProfiles)
		generateRouter.POST("/", controller.GenerateProfiles)
	}
}
