package main

import (
	"os"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/windoze95/receitas-api/internal/config"
	"github.com/windoze95/receitas-api/internal/db"
	"github.com/windoze95/receitas-api/internal/logger"
	"github.com/windoze95/receitas-api/internal/router"
	"go.uber.org/zap"
)

func init() {
	// Dev logging unless GIN_MODE=release
	isDev := os.Getenv("GIN_MODE") != "release"
	logger.Init(isDev)

	ConfigureRuntime()
}

// Entry point for the API.
func main() {
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Get().Fatal("failed to load config", zap.Error(err))
	}
	if err := cfg.CheckConfigEnvFields(); err != nil {
		logger.Get().Fatal("missing required config fields", zap.Error(err))
	}

	database, err := db.New(cfg)
	if err != nil {
		logger.Get().Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := database.DB()
	if err != nil {
		logger.Get().Fatal("failed to get underlying sql.DB", zap.Error(err))
	}
	defer sqlDB.Close()

	// Shared rate limiting is optional; fall back to per-process limits.
	var redisClient *redis.Client
	if cfg.EnvVars.RedisURL != "" {
		redisClient, err = db.NewRedisClient(cfg)
		if err != nil {
			logger.Get().Warn("redis unavailable, using in-memory rate limiting", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := router.SetupRouter(cfg, database, redisClient)

	addr := cfg.EnvVars.Host + ":" + cfg.EnvVars.Port
	logger.Get().Info("starting server",
		zap.String("addr", addr),
		zap.String("db_driver", cfg.EnvVars.DatabaseDriver),
		zap.Bool("s3_enabled", cfg.S3Enabled()),
	)
	if err := r.Run(addr); err != nil {
		logger.Get().Fatal("server stopped", zap.Error(err))
	}
}

// ConfigureRuntime sets the number of operating system threads.
func ConfigureRuntime() {
	nuCPU := runtime.NumCPU()
	runtime.GOMAXPROCS(nuCPU)
	logger.Get().Info("runtime configured", zap.Int("cpus", nuCPU))
}
