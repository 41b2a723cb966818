package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "stageline.io/stageline/internal/pkg/errors"
)

type transitionRequest struct {
	Status string `json:"status" binding:"required"`
}

type transitionResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// TransitionProjectStatus handles POST /projects/:projectId/status.
func (s *Server) TransitionProjectStatus(c *gin.Context) {
	scope, ok := s.resolveScope(c)
	if !ok {
		return
	}

	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apiError{Code: apperrors.CodeValidationFailed, Message: "status is required"})
		return
	}

	res, err := s.engine.Transition(c.Request.Context(), scope, c.Param("projectId"), req.Status, actorFromCtx(c))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, transitionResponse{
		ID:     res.Project.ID,
		Status: res.Project.Status.String(),
	})
}
