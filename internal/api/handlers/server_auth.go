package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	entuser "stageline.io/stageline/ent/user"
	"stageline.io/stageline/internal/api/middleware"
	apperrors "stageline.io/stageline/internal/pkg/errors"
	"stageline.io/stageline/internal/pkg/logger"
)

// PasswordHashCost is the bcrypt cost used for stored credentials.
const PasswordHashCost = 12

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login handles POST /auth/login.
// Failed lookups and failed password checks produce the same response, and
// both paths run a bcrypt comparison so timing does not reveal which failed.
func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apiError{Code: apperrors.CodeValidationFailed, Message: "invalid login request"})
		return
	}

	usr, err := s.client.User.Query().
		Where(entuser.EmailEQ(req.Email)).
		Where(entuser.ActiveEQ(true)).
		Only(c.Request.Context())
	if err != nil {
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$12$invalidinvalidinvalidinvalidinvalidinvalidinvalidinva"), []byte(req.Password))
		logger.Warn("login failed: invalid credentials")
		c.JSON(http.StatusUnauthorized, apiError{Code: apperrors.CodeAuthFailed, Message: "invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("login failed: invalid credentials")
		c.JSON(http.StatusUnauthorized, apiError{Code: apperrors.CodeAuthFailed, Message: "invalid credentials"})
		return
	}

	token, expiresAt, err := middleware.GenerateToken(s.jwtCfg, usr.ID, usr.Email, usr.Role.String())
	if err != nil {
		logger.Error("failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apiError{Code: "INTERNAL_ERROR", Message: "An internal error occurred"})
		return
	}

	logger.Info("user logged in",
		zap.String("user_id", usr.ID),
		zap.String("role", usr.Role.String()),
	)

	c.JSON(http.StatusOK, loginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
