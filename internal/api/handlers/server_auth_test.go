package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"stageline.io/stageline/ent"
	"stageline.io/stageline/internal/api/middleware"
	"stageline.io/stageline/internal/domain"
	apperrors "stageline.io/stageline/internal/pkg/errors"
	"stageline.io/stageline/internal/pkg/logger"
	"stageline.io/stageline/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

var testJWTCfg = middleware.JWTConfig{
	SigningKey: []byte("handlers-test-key-1234567890123456"),
	Issuer:     "stageline",
	ExpiresIn:  time.Hour,
}

func seedLoginUser(t *testing.T, client *ent.Client, email, password string, active bool) *ent.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return client.User.Create().
		SetID(domain.NewID()).
		SetEmail(email).
		SetDisplayName("Login User").
		SetPasswordHash(string(hash)).
		SetRole(domain.RoleMember).
		SetTenantAccountID("acct_login").
		SetActive(active).
		SaveX(t.Context())
}

func doLogin(t *testing.T, server *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	server.Login(c)
	return w
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, "auth_login_ok")
	server := NewServer(ServerDeps{EntClient: client, JWTCfg: testJWTCfg})

	seedLoginUser(t, client, "owner@agency.test", "open-sesame", true)

	w := doLogin(t, server, `{"email":"owner@agency.test","password":"open-sesame"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var resp loginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("login response has empty token")
	}
	if !resp.ExpiresAt.After(time.Now()) {
		t.Fatalf("token already expired: %v", resp.ExpiresAt)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, "auth_login_badpw")
	server := NewServer(ServerDeps{EntClient: client, JWTCfg: testJWTCfg})

	seedLoginUser(t, client, "owner@agency.test", "open-sesame", true)

	w := doLogin(t, server, `{"email":"owner@agency.test","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var resp apiError
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Code != apperrors.CodeAuthFailed {
		t.Fatalf("code=%q want %q", resp.Code, apperrors.CodeAuthFailed)
	}
}

func TestLogin_UnknownAndInactiveUsersLookAlike(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, "auth_login_uniform")
	server := NewServer(ServerDeps{EntClient: client, JWTCfg: testJWTCfg})

	seedLoginUser(t, client, "retired@agency.test", "open-sesame", false)

	unknown := doLogin(t, server, `{"email":"ghost@agency.test","password":"open-sesame"}`)
	inactive := doLogin(t, server, `{"email":"retired@agency.test","password":"open-sesame"}`)

	if unknown.Code != http.StatusUnauthorized || inactive.Code != http.StatusUnauthorized {
		t.Fatalf("status unknown=%d inactive=%d, want both 401", unknown.Code, inactive.Code)
	}
	if unknown.Body.String() != inactive.Body.String() {
		t.Fatalf("unknown and inactive users must produce identical responses:\n%s\n%s",
			unknown.Body.String(), inactive.Body.String())
	}
}

func TestLogin_MalformedBody(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, "auth_login_malformed")
	server := NewServer(ServerDeps{EntClient: client, JWTCfg: testJWTCfg})

	w := doLogin(t, server, `{"email":"not-an-email","password":""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}
