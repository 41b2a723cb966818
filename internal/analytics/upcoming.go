package analytics

import (
	"math"
	"sort"
	"time"

	"stageline.io/stageline/ent"
)

// ComputeUpcoming builds the due-date forecast: non-archived projects with
// a due date, soonest first, capped at limit. Overdue projects report zero
// days, never a negative number.
func ComputeUpcoming(projects []*ent.Project, now time.Time, limit int) []UpcomingProject {
	if limit <= 0 {
		return []UpcomingProject{}
	}

	withDue := make([]*ent.Project, 0, len(projects))
	for _, p := range projects {
		if p.Archived || p.DueDate == nil {
			continue
		}
		withDue = append(withDue, p)
	}
	sort.SliceStable(withDue, func(i, j int) bool {
		return withDue[i].DueDate.Before(*withDue[j].DueDate)
	})
	if len(withDue) > limit {
		withDue = withDue[:limit]
	}

	out := make([]UpcomingProject, 0, len(withDue))
	for _, p := range withDue {
		out = append(out, UpcomingProject{
			ID:        p.ID,
			Name:      p.Name,
			Status:    p.Status.String(),
			DueDate:   *p.DueDate,
			DueInDays: dueInDays(*p.DueDate, now),
		})
	}
	return out
}

func dueInDays(due, now time.Time) int {
	days := int(math.Ceil(due.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
