package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/bleu-pos/ingredient-service/config"
	"github.com/bleu-pos/ingredient-service/internal/auth"
	"github.com/bleu-pos/ingredient-service/internal/broker"
	"github.com/bleu-pos/ingredient-service/internal/middleware"
	"github.com/bleu-pos/ingredient-service/internal/store"
	"github.com/bleu-pos/ingredient-service/pkg/logger"

	batchH "github.com/bleu-pos/ingredient-service/internal/batch/handler"
	batchUCPkg "github.com/bleu-pos/ingredient-service/internal/batch/usecase"

	ingH "github.com/bleu-pos/ingredient-service/internal/ingredient/handler"
	ingRepoPkg "github.com/bleu-pos/ingredient-service/internal/ingredient/repository"
	ingUCPkg "github.com/bleu-pos/ingredient-service/internal/ingredient/usecase"

	saleH "github.com/bleu-pos/ingredient-service/internal/sale/handler"
	saleListenerPkg "github.com/bleu-pos/ingredient-service/internal/sale/listener"
	saleUCPkg "github.com/bleu-pos/ingredient-service/internal/sale/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.Config{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := store.NewPostgres(&store.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Repositories and Transaction Scope
	ingRepo := ingRepoPkg.NewPGRepository(db)
	txScope := store.NewTransactionScope(db)

	// 5. Initialize Auth Gateway
	authGateway := auth.NewGateway(&auth.Config{
		BaseURL: cfg.Auth.BaseURL,
		Timeout: time.Duration(cfg.Auth.TimeoutSeconds) * time.Second,
	}, appLogger)

	// 6. Initialize UseCases
	ingUC := ingUCPkg.NewIngredientUseCase(ingRepo, txScope, appLogger)
	batchUC := batchUCPkg.NewBatchUseCase(txScope, appLogger)
	saleUC := saleUCPkg.NewSaleUseCase(txScope, appLogger)

	// 7. Optionally consume sale events from the sales service

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Kafka.Enabled {
		kafkaConsumer := broker.NewConsumer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
			GroupID: cfg.Kafka.GroupID,
		})
		defer kafkaConsumer.Close()
		appLogger.Info("connected to Kafka consumer",
			zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

		saleListener := saleListenerPkg.NewSaleListener(kafkaConsumer, saleUC, appLogger)
		go saleListener.Start(ctx)
	}

	// 8. Initialize Handlers
	ingHandler := ingH.NewIngredientHandler(ingUC, appLogger)
	batchHandler := batchH.NewBatchHandler(batchUC, appLogger)
	saleHandler := saleH.NewSaleHandler(saleUC, appLogger)

	// 9. HTTP Server
	app := fiber.New(fiber.Config{
		AppName:      "ingredient-service",
		ErrorHandler: middleware.ErrorHandler(appLogger),
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORS.AllowOrigins, ","),
		AllowCredentials: true,
	}))

	registerRoutes(app, authGateway, ingHandler, batchHandler, saleHandler)

	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	go func() {
		if err := app.Listen(port); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()
	appLogger.Info("ingredient service listening", zap.String("port", port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")
	cancel()
	if err := app.Shutdown(); err != nil {
		appLogger.Error("shutdown error", zap.Error(err))
	}
	appLogger.Info("server stopped")
}

func registerRoutes(
	app *fiber.App,
	gateway *auth.Gateway,
	ingHandler *ingH.IngredientHandler,
	batchHandler *batchH.BatchHandler,
	saleHandler *saleH.SaleHandler,
) {
	readers := auth.RequireRoles(gateway, auth.RoleAdmin, auth.RoleManager, auth.RoleStaff, auth.RoleCashier)
	writers := auth.RequireRoles(gateway, auth.RoleAdmin, auth.RoleManager, auth.RoleStaff)
	sellers := auth.RequireRoles(gateway, auth.RoleAdmin, auth.RoleCashier, auth.RoleManager)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	ingredients := app.Group("/ingredients")
	ingredients.Get("/", readers, ingHandler.List)
	ingredients.Post("/", writers, ingHandler.Create)
	ingredients.Get("/count", readers, ingHandler.Count)
	ingredients.Get("/stock-status-counts", readers, ingHandler.StockStatusCounts)
	ingredients.Get("/low-stock-alerts", readers, ingHandler.LowStockAlerts)
	ingredients.Post("/deduct-from-sale", sellers, saleHandler.Deduct)
	ingredients.Put("/:ingredientId", writers, ingHandler.Update)
	ingredients.Delete("/:ingredientId", writers, ingHandler.Delete)

	batches := app.Group("/ingredient-batches")
	batches.Post("/", writers, batchHandler.Create)
	batches.Get("/", writers, batchHandler.List)
	batches.Get("/:ingredientId", writers, batchHandler.ListByIngredient)
	batches.Put("/:batchId", writers, batchHandler.Update)
}
