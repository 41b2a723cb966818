package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDashboardAnalytics handles GET /dashboard.
// Partial section failures are reported inside the payload, never as a
// failed request.
func (s *Server) GetDashboardAnalytics(c *gin.Context) {
	scope, ok := s.resolveScope(c)
	if !ok {
		return
	}

	dash, err := s.analytics.Dashboard(c.Request.Context(), scope)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dash)
}
