package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stageline.io/stageline/ent"
	"stageline.io/stageline/ent/notification"
	"stageline.io/stageline/internal/api/middleware"
	apperrors "stageline.io/stageline/internal/pkg/errors"
	"stageline.io/stageline/internal/pkg/logger"
)

const notificationPageSize = 50

type notificationItem struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Title        string    `json:"title"`
	Body         string    `json:"body,omitempty"`
	ResourceType string    `json:"resource_type,omitempty"`
	ResourceID   string    `json:"resource_id,omitempty"`
	Read         bool      `json:"read"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListNotifications handles GET /notifications.
func (s *Server) ListNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		appErr := apperrors.ErrUnauthenticatedf()
		c.JSON(appErr.HTTPStatus, apiError{Code: appErr.Code, Message: appErr.Message})
		return
	}

	query := s.client.Notification.Query().
		Where(notification.RecipientIDEQ(userID))
	if c.Query("unread_only") == "true" {
		query = query.Where(notification.ReadEQ(false))
	}

	rows, err := query.
		Order(ent.Desc(notification.FieldCreatedAt)).
		Limit(notificationPageSize).
		All(ctx)
	if err != nil {
		logger.Error("failed to list notifications", zap.Error(err), zap.String("user_id", userID))
		_ = c.Error(err)
		return
	}

	items := make([]notificationItem, 0, len(rows))
	for _, n := range rows {
		items = append(items, notificationItem{
			ID:           n.ID,
			Kind:         n.Kind,
			Title:        n.Title,
			Body:         n.Body,
			ResourceType: n.ResourceType,
			ResourceID:   n.ResourceID,
			Read:         n.Read,
			CreatedAt:    n.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"notifications": items})
}

// MarkNotificationRead handles POST /notifications/:notificationId/read.
// Only the recipient can mark their own rows; anyone else sees not-found.
func (s *Server) MarkNotificationRead(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		appErr := apperrors.ErrUnauthenticatedf()
		c.JSON(appErr.HTTPStatus, apiError{Code: appErr.Code, Message: appErr.Message})
		return
	}

	affected, err := s.client.Notification.Update().
		Where(
			notification.IDEQ(c.Param("notificationId")),
			notification.RecipientIDEQ(userID),
		).
		SetRead(true).
		Save(ctx)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, apiError{
			Code:    apperrors.CodeNotificationNotFound,
			Message: "notification not found",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
