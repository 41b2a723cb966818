package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stageline.io/stageline/ent"
	"stageline.io/stageline/internal/analytics"
	"stageline.io/stageline/internal/config"
	"stageline.io/stageline/internal/domain"
	"stageline.io/stageline/internal/testutil"
)

func newTestAnalytics(client *ent.Client) *analytics.Service {
	return analytics.NewService(client, nil, config.AnalyticsConfig{
		UpcomingLimit:  6,
		ActivityLimit:  6,
		VelocityPairs:  5,
		SectionTimeout: 5 * time.Second,
	})
}

func TestDashboardEndpoint_ReturnsAllSections(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, "api_dashboard_ok")
	router := apiTestRouter(client)

	usr, proj := seedWorkspace(t, client, "acct_dash")
	client.Invoice.Create().
		SetID(domain.NewID()).
		SetProjectID(proj.ID).
		SetStatus(domain.InvoicePaid).
		SetAmount(1200).
		SetIssuedAt(time.Now().UTC().AddDate(0, 0, -3)).
		SaveX(t.Context())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.Header.Set("X-Test-User", usr.ID)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var dash analytics.Dashboard
	if err := json.Unmarshal(w.Body.Bytes(), &dash); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if len(dash.SectionErrors) != 0 {
		t.Fatalf("unexpected section errors: %+v", dash.SectionErrors)
	}
	if len(dash.PipelineOverview) == 0 {
		t.Fatal("pipeline overview is empty for a workspace with an active project")
	}
	if dash.WinRate.Quotes != 1 || dash.WinRate.Paid != 1 {
		t.Fatalf("win rate = %+v, want one quote, one paid", dash.WinRate)
	}
}

func TestDashboardEndpoint_Unauthenticated(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, "api_dashboard_anon")
	router := apiTestRouter(client)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestDashboardEndpoint_UnknownUserGetsEmptyDashboard(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, "api_dashboard_unknown")
	router := apiTestRouter(client)

	seedWorkspace(t, client, "acct_dash")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.Header.Set("X-Test-User", "u-ghost")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var dash analytics.Dashboard
	if err := json.Unmarshal(w.Body.Bytes(), &dash); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if len(dash.PipelineOverview) != 0 || len(dash.UpcomingProjects) != 0 || len(dash.ActivityFeed) != 0 {
		t.Fatalf("unknown user must see an empty dashboard: %s", w.Body.String())
	}
}
