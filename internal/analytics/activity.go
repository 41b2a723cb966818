package analytics

import (
	"sort"
	"strconv"
	"time"

	"stageline.io/stageline/ent"
)

// ComputeActivity builds the recent-activity feed from stage events, newest
// first, capped at limit. Events must have their project edge loaded; an
// event without one is skipped rather than rendered nameless.
func ComputeActivity(events []*ent.StageEvent, now time.Time, limit int) []ActivityEntry {
	if limit <= 0 {
		return []ActivityEntry{}
	}

	sorted := make([]*ent.StageEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	out := make([]ActivityEntry, 0, limit)
	for _, e := range sorted {
		proj := e.Edges.Project
		if proj == nil {
			continue
		}
		out = append(out, ActivityEntry{
			ProjectID:   proj.ID,
			ProjectName: proj.Name,
			Description: describeTransition(e),
			When:        RelativeTime(e.CreatedAt, now),
		})
		if len(out) == limit {
			break
		}
	}
	return out
}

func describeTransition(e *ent.StageEvent) string {
	if e.FromStatus == nil {
		return "entered " + e.ToStatus.Label()
	}
	return "moved from " + e.FromStatus.Label() + " to " + e.ToStatus.Label()
}

// RelativeTime renders a bucketed relative-time label for feed rows.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return strconv.Itoa(int(d.Minutes())) + "m ago"
	case d < 24*time.Hour:
		return strconv.Itoa(int(d.Hours())) + "h ago"
	case d < 7*24*time.Hour:
		return strconv.Itoa(int(d.Hours()/24)) + "d ago"
	default:
		return t.Format("Jan 2, 2006")
	}
}
