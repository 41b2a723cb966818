package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type contextKey string

const (
	// RequestIDHeader is the HTTP header for request tracing.
	RequestIDHeader = "X-Request-ID"

	ctxKeyRequestID contextKey = "request_id"
	ctxKeyUserID    contextKey = "user_id"
	ctxKeyEmail     contextKey = "email"
	ctxKeyRole      contextKey = "role"
)

// RequestID injects a unique request ID into the context and response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			id, _ := uuid.NewV7()
			rid = id.String()
		}
		c.Set(string(ctxKeyRequestID), rid)
		c.Writer.Header().Set(RequestIDHeader, rid)
		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), ctxKeyRequestID, rid),
		)
		c.Next()
	}
}

// GetRequestID extracts request ID from context.
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		return v
	}
	return ""
}

// SetUserContext stores authenticated user info in context.
func SetUserContext(ctx context.Context, userID, email, role string) context.Context {
	ctx = context.WithValue(ctx, ctxKeyUserID, userID)
	ctx = context.WithValue(ctx, ctxKeyEmail, email)
	ctx = context.WithValue(ctx, ctxKeyRole, role)
	return ctx
}

// GetUserID extracts user ID from context.
func GetUserID(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// GetEmail extracts the authenticated email from context.
func GetEmail(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyEmail).(string); ok {
		return v
	}
	return ""
}

// GetRole extracts the stored role hint from context. Access decisions go
// through the scope resolver, not this value.
func GetRole(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyRole).(string); ok {
		return v
	}
	return ""
}
