package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	redis "github.com/redis/go-redis/v9"

	"skillsync/internal/auth"
	"skillsync/internal/config"
	"skillsync/internal/db"
	httpapi "skillsync/internal/http"
	"skillsync/internal/http/handlers"
	"skillsync/internal/logger"
	"skillsync/internal/schema"
	"skillsync/internal/session"
	"skillsync/internal/storage"
	"skillsync/internal/ws"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	var pool *pgxpool.Pool
	var store storage.Store
	if cfg.DatabaseURL != "" {
		pool = db.Connect(cfg.DatabaseURL)
		defer pool.Close()
		store = storage.NewPGStore(pool)
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory storage")
		store = storage.NewMemStore()
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, using in-memory sessions", "error", err)
			redisClient = nil
		}
		cancel()
	}

	var sessions session.Store
	if redisClient != nil {
		sessions = session.NewRedisStore(redisClient, cfg.SessionTTL)
	} else {
		sessions = session.NewMemStore(cfg.SessionTTL)
	}

	tokens := auth.NewTokens(cfg.SessionSecret, cfg.SessionTTL)
	hub := ws.NewHub()

	if cfg.DevMode {
		ensureDevUser(store)
	}

	h := handlers.NewHandler(store, sessions, tokens, hub, cfg.SessionTTL)
	health := handlers.NewHealthHandler(pool)

	r := gin.Default()
	r.Use(cors())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	httpapi.RegisterRoutes(r, httpapi.Deps{
		Handler:  h,
		Health:   health,
		Sessions: sessions,
		Tokens:   tokens,
		Redis:    redisClient,
		Cfg:      cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", "error", err)
	}

	logger.Info("server exited")
}

// cors allows the SPA to call the API from a different origin with cookies.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// ensureDevUser seeds the user dev-mode requests act as.
func ensureDevUser(store storage.Store) {
	ctx := context.Background()
	if _, err := store.GetUserByEmail(ctx, "test@example.com"); err == nil {
		return
	}
	if _, err := store.CreateUser(ctx, schema.UserValues{
		Email: "test@example.com",
		Name:  "Test User",
	}); err != nil && !errors.Is(err, storage.ErrEmailTaken) {
		logger.Warn("failed to seed dev user", "error", err)
	}
}
