package main

import (
	"embed"
	"fmt"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"profileinator/common"
	"profileinator/common/config"
	"profileinator/common/logger"
	"profileinator/controller"
	"profileinator/middleware"
	"profileinator/relay/channel/openai"
	"profileinator/relay/pipeline"
	"profileinator/router"
)

//go:embed web/static/*
var buildFS embed.FS

func main() {
	logger.SetupLogger()
	logger.SysLog(fmt.Sprintf("Profileinator %s started", config.Version))
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.DebugEnabled {
		logger.SysLog("running in debug mode")
	}

	// A missing credential is an operator error; fail before serving.
	if err := config.Validate(); err != nil {
		logger.FatalLog("configuration error: " + err.Error())
	}

	controller.InitGenerator(pipeline.New(openai.NewAdaptor()))
	logger.SysLog(fmt.Sprintf("using %s for descriptions and %s for image generation",
		config.DescribeModel, config.ImageModel))

	// Initialize HTTP server
	server := gin.New()
	server.Use(gin.Recovery())
	server.Use(middleware.RequestId())
	middleware.SetUpLogger(server)

	router.SetRouter(server, buildFS)

	var port = os.Getenv("PORT")
	if port == "" {
		port = strconv.Itoa(*common.Port)
	}
	err := server.Run(":" + port)
	if err != nil {
		logger.FatalLog("failed to start HTTP server: " + err.Error())
	}
}
