package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "stageline.io/stageline/internal/pkg/errors"
)

var testJWTCfg = JWTConfig{
	SigningKey: []byte("test-signing-key-1234567890123456"),
	Issuer:     "stageline",
	ExpiresIn:  time.Hour,
}

func jwtTestRouter(signingKey []byte) *gin.Engine {
	router := gin.New()
	router.Use(JWTAuth(signingKey))
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetUserID(c.Request.Context()),
			"email":   GetEmail(c.Request.Context()),
			"role":    GetRole(c.Request.Context()),
		})
	})
	return router
}

func TestJWTAuth_ValidToken(t *testing.T) {
	token, _, err := GenerateToken(testJWTCfg, "u-1", "alice@agency.test", "member")
	require.NoError(t, err)

	router := jwtTestRouter(testJWTCfg.SigningKey)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "u-1", body["user_id"])
	assert.Equal(t, "alice@agency.test", body["email"])
	assert.Equal(t, "member", body["role"])
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router := jwtTestRouter(testJWTCfg.SigningKey)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apperrors.CodeUnauthenticated, body["code"])
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	router := jwtTestRouter(testJWTCfg.SigningKey)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token not-a-bearer")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_WrongSigningKey(t *testing.T) {
	token, _, err := GenerateToken(testJWTCfg, "u-1", "alice@agency.test", "member")
	require.NoError(t, err)

	router := jwtTestRouter([]byte("another-key-9876543210987654321098"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apperrors.CodeTokenInvalid, body["code"])
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	expiredCfg := testJWTCfg
	expiredCfg.ExpiresIn = -time.Minute
	token, _, err := GenerateToken(expiredCfg, "u-1", "alice@agency.test", "member")
	require.NoError(t, err)

	router := jwtTestRouter(testJWTCfg.SigningKey)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apperrors.CodeTokenExpired, body["code"])
}

func TestJWTAuth_RejectsNoneSigningMethod(t *testing.T) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodNone, JWTClaims{
		UserID: "u-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "stageline",
			Subject:   "u-1",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	router := jwtTestRouter(testJWTCfg.SigningKey)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGenerateToken_ClaimsRoundTrip(t *testing.T) {
	tokenString, expiresAt, err := GenerateToken(testJWTCfg, "u-9", "pm@agency.test", "client")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	parsed, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(*jwt.Token) (interface{}, error) {
		return testJWTCfg.SigningKey, nil
	})
	require.NoError(t, err)

	claims, ok := parsed.Claims.(*JWTClaims)
	require.True(t, ok)
	assert.Equal(t, "u-9", claims.UserID)
	assert.Equal(t, "u-9", claims.Subject)
	assert.Equal(t, "stageline", claims.Issuer)
	assert.Equal(t, "client", claims.Role)
}
