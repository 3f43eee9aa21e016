package router

import (
	"embed"
	"net/http"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"

	"profileinator/common/logger"
)

func SetWebRouter(router *gin.Engine, buildFS embed.FS) {
	frontend, err := static.EmbedFolder(buildFS, "web/static")
	if err != nil {
		logger.FatalLog("failed to load embedded frontend: " + err.Error())
	}
	router.Use(static.Serve("/", frontend))
	router.NoRoute(func(c *gin.Context) {
		index, err := buildFS.ReadFile("web/static/index.html")
		if err != nil {
			c.String(http.StatusNotFound, "not found")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
}
