// Package https_server builds the Gin engine: middleware, CORS, routes.
package https_server

import (
	"gather_server/internal/infrastructure/logger"
	"gather_server/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Init returns a configured engine. A blank engine is used instead of
// gin.Default so zap owns access logging and panic recovery.
func Init() *gin.Engine {
	engine := gin.New()

	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	router.RegisterRoutes(engine)
	return engine
}
