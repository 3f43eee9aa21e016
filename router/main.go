package router

import (
	"embed"

	"github.com/gin-gonic/gin"

	"profileinator/middleware"
)

func SetRouter(router *gin.Engine, buildFS embed.FS) {
	router.Use(middleware.CORS())
	SetApiRouter(router)
	SetGenerateRouter(router)
	SetWebRouter(router, buildFS)
}
