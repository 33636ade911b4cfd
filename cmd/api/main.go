package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/classiccuts/booking-api/internal/config"
	dbpkg "github.com/classiccuts/booking-api/internal/db"
	"github.com/classiccuts/booking-api/internal/logger"
	"github.com/classiccuts/booking-api/internal/routes"
)

func main() {

	cfg := config.Load()

	log := logger.New(cfg.Env)
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)

	// redis é opcional: sem ele o cache de agenda funciona só no processo local
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn("redis indisponível, seguindo sem invalidação distribuída",
				zap.String("addr", cfg.RedisAddr),
				zap.Error(err),
			)
			rdb = nil
		}
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	snapSource := routes.RegisterRoutes(r, db, cfg, log, rdb)
	go snapSource.Listen(context.Background())

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
