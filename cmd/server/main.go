package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/zssl-sudo/projeto-steam-analitics/internal/auth"
	"github.com/zssl-sudo/projeto-steam-analitics/internal/config"
	"github.com/zssl-sudo/projeto-steam-analitics/internal/database"
	"github.com/zssl-sudo/projeto-steam-analitics/internal/dataset"
	"github.com/zssl-sudo/projeto-steam-analitics/internal/handler"
	"github.com/zssl-sudo/projeto-steam-analitics/internal/logging"
	"github.com/zssl-sudo/projeto-steam-analitics/internal/metrics"

	// Swagger imports
	_ "github.com/zssl-sudo/projeto-steam-analitics/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Steam Games Analytics API
// @version         1.0
// @description     Analytics API over the Steam games dataset: filters, KPIs and chart series.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.AppConfig
	logging.Setup(cfg.LogLevel, cfg.LogDir)

	// The snapshot store is best-effort: without it the service still runs,
	// it just loses the database fallback.
	if err := database.Connect(cfg.DatabaseURL, cfg.DataDir); err != nil {
		slog.Warn("snapshot store unavailable", slog.Any("error", err))
	}

	svc := dataset.NewService(cfg)
	snap := svc.Load(context.Background())
	if snap.Empty() {
		slog.Warn("starting with an empty dataset; add data/games.csv or set DATA_URL")
	}

	handler.Setup(svc, time.Duration(cfg.CacheTTLSeconds)*time.Second)

	router := gin.Default()
	router.Use(cors.Default())
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(metrics.Middleware())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/login", handler.Login)
		}

		// Dashboard routes (public)
		dashboardRoutes := apiV1.Group("/dashboard")
		{
			dashboardRoutes.GET("/summary", handler.GetSummary)
			dashboardRoutes.GET("/releases", handler.GetReleasesByYear)
			dashboardRoutes.GET("/scatter", handler.GetScatter)
			dashboardRoutes.GET("/genre-prices", handler.GetGenrePrices)
			dashboardRoutes.GET("/publishers", handler.GetTopPublishers)
			dashboardRoutes.GET("/genre-trends", handler.GetGenreTrends)
			dashboardRoutes.GET("/filters", handler.GetFilterOptions)
		}

		// Dataset routes (public)
		apiV1.GET("/games", handler.GetGames)
		apiV1.GET("/genres", handler.GetGenres)

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
		{
			adminRoutes.POST("/refresh", handler.RefreshDataset)
		}
	}

	slog.Info("server starting", slog.String("addr", cfg.Addr))
	slog.Info("swagger UI available", slog.String("url", "http://localhost"+cfg.Addr+"/swagger/index.html"))
	log.Fatal(router.Run(cfg.Addr))
}
