package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/Laisky/bedrock-contentgen/controller"
)

// SetApiRouter mounts the content and relay endpoints under /api.
func SetApiRouter(router *gin.Engine, ctl *controller.Controller) {
	apiRouter := router.Group("/api")
	apiRouter.Use(cors.Default(), gzip.Gzip(gzip.DefaultCompression))
	{
		apiRouter.POST("/generate", ctl.GenerateContent)
		apiRouter.GET("/test", ctl.TestContent)
		apiRouter.POST("/payload", ctl.BuildPayload)
		apiRouter.POST("/invoke", ctl.Invoke)
		apiRouter.GET("/models", ctl.ListModels)
	}
}
