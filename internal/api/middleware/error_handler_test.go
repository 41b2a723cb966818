package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "stageline.io/stageline/internal/pkg/errors"
	"stageline.io/stageline/internal/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

func TestErrorHandler_NoErrors(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestErrorHandler_AppError(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/fail", func(c *gin.Context) {
		_ = c.Error(apperrors.ErrProjectNotFoundf("proj-123"))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["code"] != apperrors.CodeProjectNotFound {
		t.Errorf("code = %q, want %q", body["code"], apperrors.CodeProjectNotFound)
	}
}

func TestErrorHandler_TransitionConflict(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler())
	router.POST("/move", func(c *gin.Context) {
		_ = c.Error(apperrors.ErrTransitionConflictf("proj-123"))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/move", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", w.Code, http.StatusConflict)
	}
}

func TestErrorHandler_GenericError(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/err", func(c *gin.Context) {
		_ = c.Error(fmt.Errorf("something unexpected"))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/err", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["code"] != "INTERNAL_ERROR" {
		t.Errorf("code = %q, want INTERNAL_ERROR", body["code"])
	}
}
