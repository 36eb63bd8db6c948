package http

import (
	"time"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"

	"skillsync/internal/auth"
	"skillsync/internal/config"
	"skillsync/internal/http/handlers"
	"skillsync/internal/http/middleware"
	"skillsync/internal/session"
)

// Deps is everything route registration needs, constructed once at startup
// and passed in explicitly.
type Deps struct {
	Handler  *handlers.Handler
	Health   *handlers.HealthHandler
	Sessions session.Store
	Tokens   *auth.Tokens
	Redis    *redis.Client // nil falls back to the in-process rate limiter
	Cfg      *config.Config
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middleware.RequestMetrics())

	// Probes stay outside the rate limiter.
	r.GET("/health", d.Health.Health)
	r.GET("/healthz", d.Health.Liveness)
	r.GET("/readyz", d.Health.Readiness)

	rateLimit := limiterFor(d, d.Cfg.APIRateLimit, d.Cfg.APIRateWindow)
	authRateLimit := limiterFor(d, d.Cfg.AuthRateLimit, d.Cfg.AuthRateWindow)

	api := r.Group("/api")
	api.Use(rateLimit)

	api.POST("/auth/login", authRateLimit, d.Handler.Login)
	api.POST("/auth/logout", d.Handler.Logout)

	authd := api.Group("")
	authd.Use(middleware.Auth(d.Sessions, d.Tokens, d.Cfg.DevMode))
	{
		authd.GET("/me", d.Handler.Me)

		authd.GET("/tasks", d.Handler.ListTasks)
		authd.POST("/tasks", d.Handler.CreateTask)
		authd.PATCH("/tasks/:id", d.Handler.UpdateTask)
		authd.DELETE("/tasks/:id", d.Handler.DeleteTask)

		authd.GET("/time-entries", d.Handler.ListTimeEntries)
		authd.POST("/time-entries", d.Handler.CreateTimeEntry)
		authd.PATCH("/time-entries/:id", d.Handler.UpdateTimeEntry)

		authd.GET("/milestones", d.Handler.ListMilestones)
		authd.POST("/milestones", d.Handler.CreateMilestone)
		authd.PATCH("/milestones/:id", d.Handler.UpdateMilestone)
		authd.DELETE("/milestones/:id", d.Handler.DeleteMilestone)

		authd.GET("/ws", d.Handler.WS)
	}
}

func limiterFor(d Deps, max int, window time.Duration) gin.HandlerFunc {
	if d.Redis != nil {
		return middleware.NewRedisRateLimiter(d.Redis).Limit(max, window)
	}
	return middleware.SimpleRateLimit(max, window)
}
