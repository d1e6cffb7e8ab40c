package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "legaldraft-backend/internal/auth"
	"legaldraft-backend/internal/chat"
	"legaldraft-backend/internal/generation"
	"legaldraft-backend/internal/shared/config"
	"legaldraft-backend/internal/shared/metrics"
	"legaldraft-backend/internal/shared/server/middleware"
	"legaldraft-backend/internal/shared/server/respond"
	"legaldraft-backend/internal/summaries"
	"legaldraft-backend/internal/templates"
	"legaldraft-backend/internal/users"
)

// renderRule throttles the render endpoint per user: a steady render
// every 2 seconds with room for short bursts.
var renderRule = middleware.RateLimitRule{Rate: 0.5, Burst: 5}

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config           config.Config
	TemplateHandler  *templates.Handler
	GeneratorHandler *generation.Handler
	ChatHandler      *chat.Handler
	SummaryHandler   *summaries.Handler
	UserHandler      *users.Handler
	GoogleAuth       *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Registered before the middleware chain: the scrape endpoint needs
	// no identity and is not rate limited.
	r.GET("/metrics", metrics.Handler())

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}
	if deps.TemplateHandler != nil {
		deps.TemplateHandler.RegisterRoutes(api)
	}
	if deps.GeneratorHandler != nil {
		limiter := middleware.NewRateLimiter(nil)
		deps.GeneratorHandler.RegisterRoutes(api, middleware.RateLimit(limiter, renderRule))
	}
	if deps.ChatHandler != nil {
		deps.ChatHandler.RegisterRoutes(api)
	}
	if deps.SummaryHandler != nil {
		deps.SummaryHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
