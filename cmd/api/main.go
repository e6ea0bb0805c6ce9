package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fekuna/menu-service/config"
	"github.com/fekuna/menu-service/internal/cache"
	"github.com/fekuna/menu-service/migrations"

	dishH "github.com/fekuna/menu-service/internal/dish/handler"
	dishRepoPkg "github.com/fekuna/menu-service/internal/dish/repository"
	dishUCPkg "github.com/fekuna/menu-service/internal/dish/usecase"

	menuH "github.com/fekuna/menu-service/internal/menu/handler"
	menuRepoPkg "github.com/fekuna/menu-service/internal/menu/repository"
	menuUCPkg "github.com/fekuna/menu-service/internal/menu/usecase"

	submenuH "github.com/fekuna/menu-service/internal/submenu/handler"
	submenuRepoPkg "github.com/fekuna/menu-service/internal/submenu/repository"
	submenuUCPkg "github.com/fekuna/menu-service/internal/submenu/usecase"

	"github.com/fekuna/menu-service/internal/reconcile"
	rediscache "github.com/fekuna/menu-service/pkg/cache"
	"github.com/fekuna/menu-service/pkg/logger"
	"github.com/fekuna/menu-service/pkg/postgres"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
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
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := postgres.ApplyMigrations(ctx, db, migrations.FS); err != nil {
		appLogger.Fatal("Could not apply migrations", zap.Error(err))
	}

	// 4. Initialize Redis and the response cache
	var responseCache cache.Cache
	redisClient, err := rediscache.NewRedisClient(&rediscache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		// Cache faults must never take the service down; run without Redis
		// and let every read recompute.
		appLogger.Warn("Could not connect to Redis, falling back to in-memory cache", zap.Error(err))
		responseCache = cache.NewMemory(cfg.Cache.TTL())
	} else {
		defer redisClient.Close()
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		responseCache = cache.NewRedis(redisClient.Client, cfg.Cache.TTL(), appLogger)
	}

	// 5. Initialize Repositories
	menuRepo := menuRepoPkg.NewPGRepository(db)
	submenuRepo := submenuRepoPkg.NewPGRepository(db)
	dishRepo := dishRepoPkg.NewPGRepository(db)

	// 6. Initialize UseCases
	menuUC := menuUCPkg.NewMenuUseCase(menuRepo, submenuRepo, dishRepo, responseCache, appLogger)
	submenuUC := submenuUCPkg.NewSubMenuUseCase(submenuRepo, menuRepo, responseCache, appLogger)
	dishUC := dishUCPkg.NewDishUseCase(dishRepo, submenuRepo, responseCache, appLogger)

	// 7. Start the sheet reconciler
	if cfg.Sync.Enabled {
		reconciler := reconcile.New(menuRepo, submenuRepo, dishRepo, appLogger, cfg.Sync.SheetPath, cfg.Sync.Interval())
		go reconciler.Start(ctx)
	}

	// 8. Initialize Handlers and routes
	mux := http.NewServeMux()
	menuH.NewMenuHandler(menuUC, appLogger).Register(mux)
	submenuH.NewSubMenuHandler(submenuUC, appLogger).Register(mux)
	dishH.NewDishHandler(dishUC, appLogger).Register(mux)

	// 9. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	server := &http.Server{
		Addr:    port,
		Handler: mux,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	cancel()
	appLogger.Info("Server stopped")
}
