package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stageline.io/stageline/ent"
	"stageline.io/stageline/internal/domain"
)

func feedEvent(projName string, from *domain.Status, to domain.Status, at time.Time) *ent.StageEvent {
	e := event(domain.NewID(), from, to, at)
	e.Edges.Project = &ent.Project{ID: e.ProjectID, Name: projName}
	return e
}

func TestRelativeTimeBuckets(t *testing.T) {
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-2 * 24 * time.Hour), "2d ago"},
		{"absolute date past a week", now.Add(-10 * 24 * time.Hour), "Apr 5, 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RelativeTime(tt.at, now))
		})
	}
}

func TestComputeActivityOrdersAndCaps(t *testing.T) {
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

	var events []*ent.StageEvent
	for i := 1; i <= 8; i++ {
		events = append(events, feedEvent("proj", statusPtr(domain.StatusBuild), domain.StatusQA, now.Add(-time.Duration(i)*time.Hour)))
	}

	got := ComputeActivity(events, now, 6)
	require.Len(t, got, 6)
	require.Equal(t, "1h ago", got[0].When, "newest first")
	require.Equal(t, "moved from Build to QA", got[0].Description)
}

func TestComputeActivityInitialEventAndMissingEdge(t *testing.T) {
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

	initial := feedEvent("fresh project", nil, domain.StatusBacklog, now.Add(-time.Minute))
	orphan := event(domain.NewID(), statusPtr(domain.StatusBuild), domain.StatusQA, now)

	got := ComputeActivity([]*ent.StageEvent{initial, orphan}, now, 6)
	require.Len(t, got, 1, "event without a loaded project edge is dropped")
	require.Equal(t, "entered Backlog", got[0].Description)
	require.Equal(t, "fresh project", got[0].ProjectName)
}
