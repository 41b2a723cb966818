package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	apperrors "stageline.io/stageline/internal/pkg/errors"
)

// JWTClaims defines custom JWT claims for Stageline sessions.
type JWTClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTConfig holds JWT signing configuration.
type JWTConfig struct {
	SigningKey []byte
	Issuer     string
	ExpiresIn  time.Duration
}

// GenerateToken creates a signed session token for the given user.
func GenerateToken(cfg JWTConfig, userID, email, role string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(cfg.ExpiresIn)

	claims := JWTClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(cfg.SigningKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// JWTAuth returns a Gin middleware that validates Bearer tokens and
// populates the request context with the authenticated principal.
func JWTAuth(signingKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    apperrors.CodeUnauthenticated,
				"message": "missing authorization header",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    apperrors.CodeUnauthenticated,
				"message": "invalid authorization header format",
			})
			return
		}

		tokenString := parts[1]
		token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return signingKey, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

		if err != nil {
			code := apperrors.CodeTokenInvalid
			msg := "invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				code = apperrors.CodeTokenExpired
				msg = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    code,
				"message": msg,
			})
			return
		}

		claims, ok := token.Claims.(*JWTClaims)
		if !ok || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    apperrors.CodeTokenInvalid,
				"message": "invalid token claims",
			})
			return
		}

		// Populate context for downstream handlers.
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Request = c.Request.WithContext(
			SetUserContext(c.Request.Context(), claims.UserID, claims.Email, claims.Role),
		)

		c.Next()
	}
}
