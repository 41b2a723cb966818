// Package handlers implements the HTTP handlers of the Stageline API.
//
// Handlers stay thin: they bind input, resolve the caller's scope once, and
// delegate to the engine or analytics service. Route registration lives in
// internal/app.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"stageline.io/stageline/ent"
	"stageline.io/stageline/internal/access"
	"stageline.io/stageline/internal/analytics"
	"stageline.io/stageline/internal/api/middleware"
	"stageline.io/stageline/internal/pipeline"
	apperrors "stageline.io/stageline/internal/pkg/errors"
)

// Server implements all API handlers.
type Server struct {
	client    *ent.Client
	pool      *pgxpool.Pool
	jwtCfg    middleware.JWTConfig
	resolver  *access.Resolver
	engine    *pipeline.Engine
	analytics *analytics.Service
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no framework.
type ServerDeps struct {
	EntClient *ent.Client
	Pool      *pgxpool.Pool
	JWTCfg    middleware.JWTConfig
	Resolver  *access.Resolver
	Engine    *pipeline.Engine
	Analytics *analytics.Service
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:    deps.EntClient,
		pool:      deps.Pool,
		jwtCfg:    deps.JWTCfg,
		resolver:  deps.Resolver,
		engine:    deps.Engine,
		analytics: deps.Analytics,
	}
}

// apiError is the uniform error payload.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// resolveScope authenticates and resolves the caller's visibility scope.
// On failure it writes the error response and returns ok=false; the handler
// must return immediately.
func (s *Server) resolveScope(c *gin.Context) (access.Scope, bool) {
	userID := middleware.GetUserID(c.Request.Context())
	if userID == "" {
		appErr := apperrors.ErrUnauthenticatedf()
		c.AbortWithStatusJSON(appErr.HTTPStatus, apiError{Code: appErr.Code, Message: appErr.Message})
		return access.Scope{}, false
	}

	scope, err := s.resolver.Resolve(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.CodeScopeResolution, "failed to resolve access scope", 500))
		return access.Scope{}, false
	}
	return scope, true
}

// actorFromCtx extracts the authenticated actor for audit fields.
func actorFromCtx(c *gin.Context) string {
	if email := middleware.GetEmail(c.Request.Context()); email != "" {
		return email
	}
	if uid := middleware.GetUserID(c.Request.Context()); uid != "" {
		return uid
	}
	return "anonymous"
}
