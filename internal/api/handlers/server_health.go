package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(c *gin.Context) {
	if s.pool != nil {
		if err := s.pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
