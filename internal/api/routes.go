package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ukaji3/schedulforge-go/internal/config"
)

func SetupRoutes(router *gin.Engine, handler *Handler) {
	router.GET("/", handler.Root)
	router.GET("/health", handler.HealthCheck)

	router.POST("/list_sheets/", handler.ListSheets)
	router.POST("/list_tutorial_groups/", handler.ListTutorialGroups)
	router.POST("/timetable/", handler.Timetable)
}

// NewRouter builds the engine with middleware and routes.
func NewRouter(cfg *config.Config, log zerolog.Logger) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.Server.MaxUploadBytes
	router.Use(RequestIDMiddleware())
	router.Use(RecoveryMiddleware(log))
	router.Use(LoggingMiddleware(log))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(BodyLimitMiddleware(cfg.Server.MaxUploadBytes))

	SetupRoutes(router, NewHandler(cfg, log))
	return router
}
