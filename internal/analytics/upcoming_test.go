package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stageline.io/stageline/ent"
	"stageline.io/stageline/internal/domain"
)

func projectRow(name string, status domain.Status, due *time.Time, archived bool) *ent.Project {
	return &ent.Project{
		ID:       domain.NewID(),
		Name:     name,
		Status:   status,
		DueDate:  due,
		Archived: archived,
	}
}

func TestComputeUpcomingDueInDays(t *testing.T) {
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

	inThree := projectRow("in three days", domain.StatusBuild, timePtr(now.Add(3*24*time.Hour)), false)
	overdue := projectRow("overdue", domain.StatusQA, timePtr(now.Add(-24*time.Hour)), false)

	got := ComputeUpcoming([]*ent.Project{inThree, overdue}, now, 6)
	require.Len(t, got, 2)

	require.Equal(t, "overdue", got[0].Name, "soonest due date first")
	require.Equal(t, 0, got[0].DueInDays, "overdue floors at zero, never negative")
	require.Equal(t, "in three days", got[1].Name)
	require.Equal(t, 3, got[1].DueInDays)
}

func TestComputeUpcomingRoundsPartialDaysUp(t *testing.T) {
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)
	p := projectRow("half day out", domain.StatusBuild, timePtr(now.Add(36*time.Hour)), false)

	got := ComputeUpcoming([]*ent.Project{p}, now, 6)
	require.Len(t, got, 1)
	require.Equal(t, 2, got[0].DueInDays)
}

func TestComputeUpcomingFiltersAndCaps(t *testing.T) {
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

	var projects []*ent.Project
	for i := 1; i <= 8; i++ {
		projects = append(projects, projectRow("due", domain.StatusBuild, timePtr(now.Add(time.Duration(i)*24*time.Hour)), false))
	}
	projects = append(projects,
		projectRow("no due date", domain.StatusBuild, nil, false),
		projectRow("archived", domain.StatusBuild, timePtr(now.Add(time.Hour)), true),
	)

	got := ComputeUpcoming(projects, now, 6)
	require.Len(t, got, 6)
	for _, p := range got {
		require.Equal(t, "due", p.Name)
	}
}
