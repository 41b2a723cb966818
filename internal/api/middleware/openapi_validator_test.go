package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"stageline.io/stageline/internal/api"
)

func validatorTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	doc, err := api.LoadSpec()
	if err != nil {
		t.Fatalf("load openapi document: %v", err)
	}

	router := gin.New()
	router.Use(MustOpenAPIValidator(doc))
	router.POST("/api/v1/projects/:projectId/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("projectId"), "status": "build"})
	})
	router.POST("/api/v1/auth/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"token": "t", "expires_at": "2026-01-01T00:00:00Z"})
	})
	router.GET("/internal/debug", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestOpenAPIValidatorRejectsMissingStatusField(t *testing.T) {
	router := validatorTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/p-1/status", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing status field, got %d", resp.Code)
	}
}

func TestOpenAPIValidatorAcceptsValidTransitionRequest(t *testing.T) {
	router := validatorTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/p-1/status", bytes.NewBufferString(`{"status":"build"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for valid transition body, got %d body=%s", resp.Code, resp.Body.String())
	}
}

func TestOpenAPIValidatorRejectsLoginWithoutPassword(t *testing.T) {
	router := validatorTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(`{"email":"a@b.test"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", resp.Code)
	}
}

func TestOpenAPIValidatorPassesThroughUndocumentedPaths(t *testing.T) {
	router := validatorTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/internal/debug", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected pass-through for undocumented path, got %d", resp.Code)
	}
}
