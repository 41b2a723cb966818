package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stageline.io/stageline/ent"
	"stageline.io/stageline/internal/domain"
)

func statusPtr(s domain.Status) *domain.Status { return &s }

func event(projectID string, from *domain.Status, to domain.Status, at time.Time) *ent.StageEvent {
	return &ent.StageEvent{
		ID:         domain.NewID(),
		ProjectID:  projectID,
		FromStatus: from,
		ToStatus:   to,
		CreatedAt:  at,
	}
}

func TestComputeVelocityAveragesAcrossProjects(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	// P1: backlog@t0 -> build@t0+1d -> closed@t0+5d
	// P2: backlog@t0 -> build@t0+2d
	events := []*ent.StageEvent{
		event("p1", nil, domain.StatusBacklog, t0),
		event("p1", statusPtr(domain.StatusBacklog), domain.StatusBuild, t0.Add(1*day)),
		event("p1", statusPtr(domain.StatusBuild), domain.StatusClosed, t0.Add(5*day)),
		event("p2", nil, domain.StatusBacklog, t0),
		event("p2", statusPtr(domain.StatusBacklog), domain.StatusBuild, t0.Add(2*day)),
	}

	got := ComputeVelocity(events, 5)
	require.Len(t, got, 2)

	require.Equal(t, "Backlog → Build", got[0].Stage)
	require.Equal(t, 2, got[0].Count)
	require.InDelta(t, 1.5, got[0].Days, 0.001)

	require.Equal(t, "Build → Closed", got[1].Stage)
	require.Equal(t, 1, got[1].Count)
	require.InDelta(t, 4.0, got[1].Days, 0.001)
}

func TestComputeVelocitySkipsDiscontinuities(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	// The qa event claims from=build while the previous event left the
	// project in call_arranged: manual edit, must be skipped silently.
	events := []*ent.StageEvent{
		event("p1", nil, domain.StatusBacklog, t0),
		event("p1", statusPtr(domain.StatusBacklog), domain.StatusCallArranged, t0.Add(1*day)),
		event("p1", statusPtr(domain.StatusBuild), domain.StatusQA, t0.Add(3*day)),
		event("p1", statusPtr(domain.StatusQA), domain.StatusHandover, t0.Add(4*day)),
	}

	got := ComputeVelocity(events, 5)
	require.Len(t, got, 2)
	for _, v := range got {
		require.NotEqual(t, "Build → QA", v.Stage)
	}

	// The walk position advanced past the discontinuity, so the following
	// matched pair still counts.
	require.Equal(t, "QA → Handover", got[1].Stage)
	require.InDelta(t, 1.0, got[1].Days, 0.001)
}

func TestComputeVelocityIgnoresNonMonotonicTimestamps(t *testing.T) {
	t0 := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	events := []*ent.StageEvent{
		event("p1", nil, domain.StatusBuild, t0),
		event("p1", statusPtr(domain.StatusBuild), domain.StatusQA, t0.Add(-time.Hour)),
	}

	require.Empty(t, ComputeVelocity(events, 5))
}

func TestComputeVelocityCapsAtTopPairs(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	hour := time.Hour

	var events []*ent.StageEvent
	chain := []domain.Status{
		domain.StatusBacklog, domain.StatusCallArranged, domain.StatusBriefGathered,
		domain.StatusBuild, domain.StatusUIStage, domain.StatusDBStage,
		domain.StatusAuthStage, domain.StatusQA, domain.StatusHandover, domain.StatusClosed,
	}
	events = append(events, event("p1", nil, chain[0], t0))
	for i := 1; i < len(chain); i++ {
		events = append(events, event("p1", statusPtr(chain[i-1]), chain[i], t0.Add(time.Duration(i)*hour)))
	}

	got := ComputeVelocity(events, 5)
	require.Len(t, got, 5)
}

func TestComputeVelocityEmptyInput(t *testing.T) {
	require.Empty(t, ComputeVelocity(nil, 5))
	require.Empty(t, ComputeVelocity([]*ent.StageEvent{}, 0))
}
