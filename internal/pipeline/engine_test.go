package pipeline

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"stageline.io/stageline/ent"
	"stageline.io/stageline/ent/stageevent"
	"stageline.io/stageline/internal/access"
	"stageline.io/stageline/internal/domain"
	apperrors "stageline.io/stageline/internal/pkg/errors"
	"stageline.io/stageline/internal/testutil"
)

const testTenant = "acct_studio"

func memberScope() access.Scope {
	return access.Scope{
		UserID:          domain.NewID(),
		Role:            domain.RoleMember,
		TenantAccountID: testTenant,
	}
}

func seedProject(t *testing.T, client *ent.Client, status domain.Status) *ent.Project {
	t.Helper()
	ctx := context.Background()

	org := client.ClientOrg.Create().
		SetID(domain.NewID()).
		SetTenantAccountID(testTenant).
		SetName("Vertex Labs").
		SaveX(ctx)

	return client.Project.Create().
		SetID(domain.NewID()).
		SetName("Vertex portal rebuild").
		SetClientID(org.ID).
		SetTenantAccountID(testTenant).
		SetStatus(status).
		SaveX(ctx)
}

func TestTransitionCommitsStatusAndEvent(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "pipeline_commit")
	engine := NewEngine(client, nil, nil)
	ctx := context.Background()

	proj := seedProject(t, client, domain.StatusBacklog)

	res, err := engine.Transition(ctx, memberScope(), proj.ID, "call_arranged", "mara@studio.test")
	require.NoError(t, err)
	require.True(t, res.Changed)
	require.Equal(t, domain.StatusCallArranged, res.Project.Status)
	require.NotNil(t, res.Event)
	require.Equal(t, domain.StatusCallArranged, res.Event.ToStatus)
	require.NotNil(t, res.Event.FromStatus)
	require.Equal(t, domain.StatusBacklog, *res.Event.FromStatus)

	stored := client.Project.GetX(ctx, proj.ID)
	require.Equal(t, domain.StatusCallArranged, stored.Status)
	require.True(t, res.Project.UpdatedAt.Equal(stored.UpdatedAt),
		"result must carry the persisted updated_at, not a local approximation")

	events := client.StageEvent.Query().
		Where(stageevent.ProjectIDEQ(proj.ID)).
		AllX(ctx)
	require.Len(t, events, 1)
	require.Equal(t, "mara@studio.test", events[0].ChangedBy)
}

func TestTransitionSameStatusIsIdempotent(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "pipeline_idempotent")
	engine := NewEngine(client, nil, nil)
	ctx := context.Background()

	proj := seedProject(t, client, domain.StatusBuild)

	res, err := engine.Transition(ctx, memberScope(), proj.ID, "build", "mara@studio.test")
	require.NoError(t, err)
	require.False(t, res.Changed)
	require.Nil(t, res.Event)

	count := client.StageEvent.Query().
		Where(stageevent.ProjectIDEQ(proj.ID)).
		CountX(ctx)
	require.Zero(t, count, "no-op transition must not append history")
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "pipeline_badstatus")
	engine := NewEngine(client, nil, nil)

	proj := seedProject(t, client, domain.StatusBacklog)

	_, err := engine.Transition(context.Background(), memberScope(), proj.ID, "launching", "mara@studio.test")
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)

	stored := client.Project.GetX(context.Background(), proj.ID)
	require.Equal(t, domain.StatusBacklog, stored.Status, "invalid request must leave the row untouched")
}

func TestTransitionOutOfScopeReportsNotFound(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "pipeline_scope")
	engine := NewEngine(client, nil, nil)
	ctx := context.Background()

	proj := seedProject(t, client, domain.StatusBacklog)

	t.Run("foreign tenant member", func(t *testing.T) {
		foreign := access.Scope{
			UserID:          domain.NewID(),
			Role:            domain.RoleMember,
			TenantAccountID: "acct_other",
		}
		_, err := engine.Transition(ctx, foreign, proj.ID, "qa", "eve@other.test")
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		require.Equal(t, apperrors.CodeProjectNotFound, appErr.Code)
	})

	t.Run("client outside the org", func(t *testing.T) {
		stranger := access.Scope{
			UserID:    domain.NewID(),
			Role:      domain.RoleClient,
			ClientIDs: []string{domain.NewID()},
		}
		_, err := engine.Transition(ctx, stranger, proj.ID, "qa", "eve@other.test")
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		require.Equal(t, apperrors.CodeProjectNotFound, appErr.Code)
	})

	t.Run("missing project", func(t *testing.T) {
		_, err := engine.Transition(ctx, memberScope(), domain.NewID(), "qa", "mara@studio.test")
		appErr, ok := apperrors.IsAppError(err)
		require.True(t, ok)
		require.Equal(t, apperrors.CodeProjectNotFound, appErr.Code)
	})

	stored := client.Project.GetX(ctx, proj.ID)
	require.Equal(t, domain.StatusBacklog, stored.Status)
}

func TestTransitionClientScopeCanMoveOwnProject(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "pipeline_client")
	engine := NewEngine(client, nil, nil)
	ctx := context.Background()

	proj := seedProject(t, client, domain.StatusUIStage)

	scope := access.Scope{
		UserID:    domain.NewID(),
		Role:      domain.RoleClient,
		ClientIDs: []string{proj.ClientID},
	}
	res, err := engine.Transition(ctx, scope, proj.ID, "db_stage", "client@vertex.test")
	require.NoError(t, err)
	require.True(t, res.Changed)
	require.Equal(t, domain.StatusDBStage, res.Project.Status)
}

// Concurrent transitions on one project must agree on a single winner per
// observed status: the history stays append-only and consistent, losers get
// a conflict, late arrivals see a no-op.
func TestTransitionConcurrentWriters(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "pipeline_race")
	engine := NewEngine(client, nil, nil)
	ctx := context.Background()

	proj := seedProject(t, client, domain.StatusBacklog)
	scope := memberScope()

	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)
	results := make([]*Result, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = engine.Transition(ctx, scope, proj.ID, "call_arranged", "mara@studio.test")
		}(i)
	}
	wg.Wait()

	var changed int
	for i := 0; i < writers; i++ {
		if errs[i] != nil {
			appErr, ok := apperrors.IsAppError(errs[i])
			require.True(t, ok, "unexpected error: %v", errs[i])
			require.Equal(t, apperrors.CodeTransitionConflict, appErr.Code)
			continue
		}
		if results[i].Changed {
			changed++
		}
	}
	require.Equal(t, 1, changed, "exactly one writer commits the transition")

	stored := client.Project.GetX(ctx, proj.ID)
	require.Equal(t, domain.StatusCallArranged, stored.Status)

	count := client.StageEvent.Query().
		Where(stageevent.ProjectIDEQ(proj.ID)).
		CountX(ctx)
	require.Equal(t, 1, count, "one committed transition, one event")
}
