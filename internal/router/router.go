package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"field-track-api/internal/handler"
	"field-track-api/internal/metrics"
	"field-track-api/internal/middleware"
)

// Config holds everything the router needs to wire handlers
type Config struct {
	BasePath           string
	DB                 *gorm.DB
	Redis              *redis.Client
	Metrics            *metrics.Metrics
	Logger             *zap.Logger
	ProjectHandler     *handler.ProjectHandler
	WorkLogHandler     *handler.WorkLogHandler
	WorkerHandler      *handler.WorkerHandler
	PerformanceHandler *handler.PerformanceHandler
	BackupHandler      *handler.BackupHandler
}

// Setup builds the gin engine with middleware, health endpoints and all
// API routes under the configured base path
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS())
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		sqlDB, err := cfg.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "database"})
			return
		}
		if cfg.Redis != nil {
			if err := cfg.Redis.Ping(c.Request.Context()).Err(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "redis"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(cfg.BasePath)
	{
		projects := api.Group("/projects")
		{
			projects.POST("", cfg.ProjectHandler.CreateProject)
			projects.GET("", cfg.ProjectHandler.ListProjects)
			projects.GET("/:projectId", cfg.ProjectHandler.GetProject)
			projects.DELETE("/:projectId", cfg.ProjectHandler.DeleteProject)
			projects.POST("/:projectId/tables", cfg.ProjectHandler.AppendTables)
			projects.GET("/:projectId/logs", cfg.WorkLogHandler.ListByProject)
			projects.GET("/:projectId/performance", cfg.PerformanceHandler.GetPerformance)
			projects.GET("/:projectId/forecast", cfg.PerformanceHandler.GetForecast)
		}

		logs := api.Group("/logs")
		{
			logs.POST("", cfg.WorkLogHandler.CreateLog)
			logs.PUT("/:logId", cfg.WorkLogHandler.UpdateLog)
		}

		workers := api.Group("/workers")
		{
			workers.POST("", cfg.WorkerHandler.CreateWorker)
			workers.GET("", cfg.WorkerHandler.ListWorkers)
			workers.GET("/:workerId", cfg.WorkerHandler.GetWorker)
			workers.PUT("/:workerId", cfg.WorkerHandler.UpdateWorker)
			workers.GET("/:workerId/logs", cfg.WorkLogHandler.ListByWorker)
			workers.GET("/:workerId/earnings", cfg.PerformanceHandler.GetWorkerEarnings)
		}

		backups := api.Group("/backup")
		{
			backups.GET("/export", cfg.BackupHandler.Export)
			backups.POST("/export/store", cfg.BackupHandler.ExportToStore)
			backups.POST("/import", cfg.BackupHandler.Import)
			backups.GET("/logs.csv", cfg.BackupHandler.ExportLogsCSV)
		}
	}

	return r
}
