package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/acquisitions/internal/logging"
)

// NewRouter wires middleware and routes. production enables HSTS.
//
//	GET  /                    greeting
//	GET  /health              liveness with uptime
//	GET  /api                 banner
//	POST /api/auth/sign-up    Register
//	POST /api/auth/sign-in    Authenticate
//	POST /api/auth/sign-out   Terminate
//	GET  /api/auth/me         claims of the current session
func NewRouter(users CredentialService, origins []string, production bool, logger logging.Logger) *gin.Engine {
	logger = logger.With("module", "http")
	h := newHandler(users, logger)

	r := gin.New()
	r.Use(requestID(), accessLog(logger), recovery(logger), securityHeaders(production), corsMiddleware(origins))

	r.GET("/", h.root)
	r.GET("/health", h.health)

	api := r.Group("/api")
	{
		api.GET("", h.apiBanner)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/sign-up", h.signUp)
			authRoutes.POST("/sign-in", h.signIn)
			authRoutes.POST("/sign-out", h.signOut)
			authRoutes.GET("/me", h.requireAuth(), h.me)
		}
	}

	return r
}
