package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/tallyhq/tally/pkg/tally/analytics"
	"github.com/tallyhq/tally/pkg/tally/auth"
	"github.com/tallyhq/tally/pkg/tally/config"
	"github.com/tallyhq/tally/pkg/tally/cors"
	"github.com/tallyhq/tally/pkg/tally/database"
	"github.com/tallyhq/tally/pkg/tally/fixedexpenses"
	"github.com/tallyhq/tally/pkg/tally/groups"
	"github.com/tallyhq/tally/pkg/tally/logging"
	"github.com/tallyhq/tally/pkg/tally/metrics"
	"github.com/tallyhq/tally/pkg/tally/models"
	"github.com/tallyhq/tally/pkg/tally/transactions"

	_ "github.com/tallyhq/tally/api/swagger"
)

// @title Tally API
// @version 1.0
// @description Personal and group finance tracking: transactions, fixed expenses, analytics and split-cost group expenses.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token. Format: "Bearer {token}"

func main() {
	logging.Setup()
	cfg := config.Load()

	auth.Configure(cfg.JWTSecret, cfg.TokenTTL)

	if err := database.Connect(cfg.DBPath); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	db := database.GetDB()

	if err := models.AutoMigrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations completed", "path", cfg.DBPath)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.RequestLogger())
	r.Use(metrics.Middleware())
	r.Use(cors.New(cfg.AllowedOrigins, cfg.AllowCredentials))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes (register/login public, profile protected)
	authHandler := auth.NewHandler(db)
	authHandler.RegisterRoutes(r.Group("/auth"))

	authRequired := auth.AuthMiddleware(db)

	// Personal ledger routes
	transactionsHandler := transactions.NewHandler(db)
	transactionsHandler.RegisterRoutes(r.Group("", authRequired))

	fixedExpensesHandler := fixedexpenses.NewHandler(db)
	fixedExpensesHandler.RegisterRoutes(r.Group("", authRequired))

	analyticsHandler := analytics.NewHandler(db)
	analyticsHandler.RegisterRoutes(r.Group("", authRequired))

	// Group and split routes
	groupsHandler := groups.NewHandler(db)
	groupsGroup := r.Group("/groups")
	groupsGroup.Use(authRequired)
	groupsHandler.RegisterRoutes(groupsGroup)

	slog.Info("starting tally server", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
