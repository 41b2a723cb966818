package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stageline.io/stageline/ent"
	"stageline.io/stageline/internal/access"
	"stageline.io/stageline/internal/config"
	"stageline.io/stageline/internal/domain"
	apperrors "stageline.io/stageline/internal/pkg/errors"
	"stageline.io/stageline/internal/testutil"
)

func testAnalyticsConfig() config.AnalyticsConfig {
	return config.AnalyticsConfig{
		UpcomingLimit:  6,
		ActivityLimit:  6,
		VelocityPairs:  5,
		SectionTimeout: 5 * time.Second,
	}
}

type fixture struct {
	client *ent.Client
	orgID  string
	projID string
}

// seedTenant creates one org with one build-stage project carrying a stage
// event, an invoice and a due date, all under the given tenant.
func seedTenant(t *testing.T, client *ent.Client, tenant string) fixture {
	t.Helper()
	ctx := context.Background()

	org := client.ClientOrg.Create().
		SetID(domain.NewID()).
		SetTenantAccountID(tenant).
		SetName("Org " + tenant).
		SaveX(ctx)

	proj := client.Project.Create().
		SetID(domain.NewID()).
		SetName("Project " + tenant).
		SetClientID(org.ID).
		SetTenantAccountID(tenant).
		SetStatus(domain.StatusBuild).
		SetDueDate(time.Now().UTC().Add(72 * time.Hour)).
		SaveX(ctx)

	client.StageEvent.Create().
		SetID(domain.NewID()).
		SetProjectID(proj.ID).
		SetFromStatus(domain.StatusBacklog).
		SetToStatus(domain.StatusBuild).
		SaveX(ctx)

	client.Invoice.Create().
		SetID(domain.NewID()).
		SetProjectID(proj.ID).
		SetStatus(domain.InvoicePaid).
		SetAmount(150).
		SetIssuedAt(time.Now().UTC()).
		SaveX(ctx)

	return fixture{client: client, orgID: org.ID, projID: proj.ID}
}

func TestDashboardMemberSeesOwnTenantOnly(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "analytics_isolation")
	svc := NewService(client, nil, testAnalyticsConfig())

	seedTenant(t, client, "acct_a")
	seedTenant(t, client, "acct_b")

	scope := access.Scope{
		UserID:          domain.NewID(),
		Role:            domain.RoleMember,
		TenantAccountID: "acct_a",
	}
	dash, err := svc.Dashboard(context.Background(), scope)
	require.NoError(t, err)
	require.Empty(t, dash.SectionErrors)

	require.Equal(t, []StageCount{{Stage: "build", Count: 1}}, dash.PipelineOverview)
	require.Equal(t, WinRate{Quotes: 1, Paid: 1}, dash.WinRate)
	require.Len(t, dash.UpcomingProjects, 1)
	require.Equal(t, "Project acct_a", dash.UpcomingProjects[0].Name)
	require.Equal(t, 3, dash.UpcomingProjects[0].DueInDays)
	require.Len(t, dash.ActivityFeed, 1)
	require.Equal(t, "Project acct_a", dash.ActivityFeed[0].ProjectName)
	require.InDelta(t, 150, dash.RevenuePerformance.CurrentMonth.Paid, 0.001)
}

func TestDashboardClientScopeFiltersByMembership(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "analytics_client")
	svc := NewService(client, nil, testAnalyticsConfig())

	own := seedTenant(t, client, "acct_a")
	seedTenant(t, client, "acct_a_other_org")

	scope := access.Scope{
		UserID:    domain.NewID(),
		Role:      domain.RoleClient,
		ClientIDs: []string{own.orgID},
	}
	dash, err := svc.Dashboard(context.Background(), scope)
	require.NoError(t, err)

	require.Len(t, dash.UpcomingProjects, 1)
	require.Equal(t, own.projID, dash.UpcomingProjects[0].ID)
	require.Len(t, dash.ActivityFeed, 1)
	require.Equal(t, WinRate{Quotes: 1, Paid: 1}, dash.WinRate)
}

func TestDashboardEmptyMembershipYieldsEmptySections(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "analytics_empty")
	svc := NewService(client, nil, testAnalyticsConfig())

	seedTenant(t, client, "acct_a")

	scope := access.Scope{
		UserID: domain.NewID(),
		Role:   domain.RoleClient,
	}
	dash, err := svc.Dashboard(context.Background(), scope)
	require.NoError(t, err)
	require.Empty(t, dash.SectionErrors)
	require.Empty(t, dash.PipelineOverview)
	require.Empty(t, dash.VelocityByStage)
	require.Empty(t, dash.UpcomingProjects)
	require.Empty(t, dash.ActivityFeed)
	require.Zero(t, dash.WinRate)
	require.Zero(t, dash.RevenuePerformance)
}

func TestDashboardFailedSectionsDegradeWithoutFailingRequest(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "analytics_degraded")

	// An expired section deadline makes every loader fail before it
	// reaches the database, exercising the same path as a dead read.
	cfg := testAnalyticsConfig()
	cfg.SectionTimeout = -time.Nanosecond
	svc := NewService(client, nil, cfg)

	seedTenant(t, client, "acct_a")

	scope := access.Scope{
		UserID:          domain.NewID(),
		Role:            domain.RoleMember,
		TenantAccountID: "acct_a",
	}
	dash, err := svc.Dashboard(context.Background(), scope)
	require.NoError(t, err, "section failures must not fail the dashboard call")
	require.NotNil(t, dash)

	for _, section := range []string{
		SectionPipeline,
		SectionRevenue,
		SectionWinRate,
		SectionVelocity,
		SectionUpcoming,
		SectionActivity,
	} {
		require.Equal(t, apperrors.CodeSectionUnavailable, dash.SectionErrors[section],
			"section %s must be flagged unavailable", section)
	}

	// Degraded sections fall back to their empty values.
	require.Empty(t, dash.PipelineOverview)
	require.Empty(t, dash.VelocityByStage)
	require.Empty(t, dash.UpcomingProjects)
	require.Empty(t, dash.ActivityFeed)
	require.Zero(t, dash.WinRate)
	require.Zero(t, dash.RevenuePerformance)
}

func TestDashboardVelocityFromHistory(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "analytics_velocity")
	svc := NewService(client, nil, testAnalyticsConfig())
	ctx := context.Background()

	fix := seedTenant(t, client, "acct_a")
	client.StageEvent.Create().
		SetID(domain.NewID()).
		SetProjectID(fix.projID).
		SetFromStatus(domain.StatusBuild).
		SetToStatus(domain.StatusQA).
		SetCreatedAt(time.Now().UTC().Add(48 * time.Hour)).
		SaveX(ctx)

	scope := access.Scope{
		UserID:          domain.NewID(),
		Role:            domain.RoleMember,
		TenantAccountID: "acct_a",
	}
	dash, err := svc.Dashboard(ctx, scope)
	require.NoError(t, err)
	require.NotEmpty(t, dash.VelocityByStage)
	require.Equal(t, "Build → QA", dash.VelocityByStage[0].Stage)
	require.Equal(t, 1, dash.VelocityByStage[0].Count)
}
