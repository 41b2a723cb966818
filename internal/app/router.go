package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"stageline.io/stageline/internal/api"
	"stageline.io/stageline/internal/api/handlers"
	"stageline.io/stageline/internal/api/middleware"
	"stageline.io/stageline/internal/config"
)

// Public routes that do NOT require JWT authentication.
var publicPrefixes = []string{
	"/api/v1/auth/login",
	"/api/v1/healthz",
}

func newRouter(cfg *config.Config, server *handlers.Server, jwtCfg middleware.JWTConfig) (*gin.Engine, error) {
	doc, err := api.LoadSpec()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	validator, err := middleware.NewOpenAPIValidator(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi validator: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(buildCORSConfig(cfg)))
	router.Use(jwtSkipPublic(jwtCfg.SigningKey))
	router.Use(validator)

	v1 := router.Group("/api/v1")
	v1.GET("/healthz", server.GetHealth)
	v1.POST("/auth/login", server.Login)
	v1.POST("/projects/:projectId/status", server.TransitionProjectStatus)
	v1.GET("/dashboard", server.GetDashboardAnalytics)
	v1.GET("/notifications", server.ListNotifications)
	v1.POST("/notifications/:notificationId/read", server.MarkNotificationRead)

	return router, nil
}

// buildCORSConfig derives the CORS policy for the browser dashboard. A
// wildcard origin forces credentials off; the two cannot be combined in a
// valid CORS response.
func buildCORSConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Authorization", "Content-Type"}
	corsCfg.MaxAge = 12 * time.Hour

	origins := cfg.Server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}
	for _, origin := range origins {
		if origin == "*" {
			corsCfg.AllowAllOrigins = true
			corsCfg.AllowOrigins = nil
			corsCfg.AllowCredentials = false
			return corsCfg
		}
	}

	corsCfg.AllowOrigins = origins
	corsCfg.AllowCredentials = cfg.Server.AllowCredentials
	return corsCfg
}

// jwtSkipPublic returns middleware that applies JWT auth only on non-public routes.
func jwtSkipPublic(signingKey []byte) gin.HandlerFunc {
	jwtMw := middleware.JWTAuth(signingKey)
	return func(c *gin.Context) {
		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}
		jwtMw(c)
	}
}
