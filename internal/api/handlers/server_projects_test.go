package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"stageline.io/stageline/ent"
	entproject "stageline.io/stageline/ent/project"
	"stageline.io/stageline/internal/access"
	"stageline.io/stageline/internal/api/middleware"
	"stageline.io/stageline/internal/domain"
	"stageline.io/stageline/internal/pipeline"
	apperrors "stageline.io/stageline/internal/pkg/errors"
	"stageline.io/stageline/internal/testutil"
)

// apiTestRouter wires the full middleware chain around a Server, with JWT
// replaced by a header-driven fake so tests control the principal directly.
func apiTestRouter(client *ent.Client) *gin.Engine {
	server := NewServer(ServerDeps{
		EntClient: client,
		JWTCfg:    testJWTCfg,
		Resolver:  access.NewResolver(client, nil, nil),
		Engine:    pipeline.NewEngine(client, nil, nil),
		Analytics: newTestAnalytics(client),
	})

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ErrorHandler())
	router.Use(func(c *gin.Context) {
		if uid := c.GetHeader("X-Test-User"); uid != "" {
			c.Request = c.Request.WithContext(
				middleware.SetUserContext(c.Request.Context(), uid, uid+"@test.local", "member"),
			)
		}
		c.Next()
	})

	v1 := router.Group("/api/v1")
	v1.POST("/projects/:projectId/status", server.TransitionProjectStatus)
	v1.GET("/dashboard", server.GetDashboardAnalytics)
	return router
}

func seedWorkspace(t *testing.T, client *ent.Client, tenant string) (*ent.User, *ent.Project) {
	t.Helper()

	org := client.ClientOrg.Create().
		SetID(domain.NewID()).
		SetTenantAccountID(tenant).
		SetName("Workspace Client").
		SaveX(t.Context())

	usr := client.User.Create().
		SetID(domain.NewID()).
		SetEmail(domain.NewID() + "@test.local").
		SetDisplayName("Member").
		SetPasswordHash("x").
		SetRole(domain.RoleMember).
		SetTenantAccountID(tenant).
		SetActive(true).
		SaveX(t.Context())

	proj := client.Project.Create().
		SetID(domain.NewID()).
		SetName("Workspace Project").
		SetClientID(org.ID).
		SetTenantAccountID(tenant).
		SetStatus(domain.StatusBuild).
		SaveX(t.Context())

	return usr, proj
}

func TestTransitionEndpoint_MovesProject(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, "api_transition_ok")
	router := apiTestRouter(client)

	usr, proj := seedWorkspace(t, client, "acct_api")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/"+proj.ID+"/status",
		bytes.NewBufferString(`{"status":"ui_stage"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-User", usr.ID)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var resp transitionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != proj.ID || resp.Status != "ui_stage" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	got := client.Project.Query().Where(entproject.IDEQ(proj.ID)).OnlyX(t.Context())
	if got.Status != domain.StatusUIStage {
		t.Fatalf("persisted status = %s, want ui_stage", got.Status)
	}
}

func TestTransitionEndpoint_UnknownStatus(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, "api_transition_badstatus")
	router := apiTestRouter(client)

	usr, proj := seedWorkspace(t, client, "acct_api")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/"+proj.ID+"/status",
		bytes.NewBufferString(`{"status":"launching"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-User", usr.ID)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var resp apiError
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != apperrors.CodeInvalidStatus {
		t.Fatalf("code=%q want %q", resp.Code, apperrors.CodeInvalidStatus)
	}
}

func TestTransitionEndpoint_ForeignTenantProjectIsNotFound(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, "api_transition_foreign")
	router := apiTestRouter(client)

	usr, _ := seedWorkspace(t, client, "acct_mine")
	_, foreign := seedWorkspace(t, client, "acct_theirs")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/"+foreign.ID+"/status",
		bytes.NewBufferString(`{"status":"qa"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-User", usr.ID)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestTransitionEndpoint_Unauthenticated(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, "api_transition_anon")
	router := apiTestRouter(client)

	_, proj := seedWorkspace(t, client, "acct_api")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/"+proj.ID+"/status",
		bytes.NewBufferString(`{"status":"qa"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestTransitionEndpoint_MissingStatusField(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, "api_transition_nobody")
	router := apiTestRouter(client)

	usr, proj := seedWorkspace(t, client, "acct_api")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects/"+proj.ID+"/status",
		bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-User", usr.ID)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}
