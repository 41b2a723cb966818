package analytics

import (
	"math"
	"sort"
	"time"

	"stageline.io/stageline/ent"
	"stageline.io/stageline/internal/domain"
)

type velocityAccum struct {
	from    domain.Status
	to      domain.Status
	elapsed time.Duration
	count   int
}

type lastSeen struct {
	stage domain.Status
	at    time.Time
}

// ComputeVelocity derives average dwell time per transition pair from raw
// stage events and returns the topN most frequent pairs.
//
// Events are re-sorted by (project, time) rather than trusting datastore
// order. A pair only accumulates when continuity holds: the event's
// from_status matches the previously seen stage of the same project and
// time moved forward. Discontinuous chains (manual edits, imports) are
// skipped silently, but the walk position still advances so later matched
// pairs of the same project keep counting.
func ComputeVelocity(events []*ent.StageEvent, topN int) []StageVelocity {
	if len(events) == 0 || topN <= 0 {
		return []StageVelocity{}
	}

	sorted := make([]*ent.StageEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ProjectID != sorted[j].ProjectID {
			return sorted[i].ProjectID < sorted[j].ProjectID
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	accum := make(map[string]*velocityAccum)
	prev := make(map[string]lastSeen)
	for _, e := range sorted {
		last, seen := prev[e.ProjectID]
		if seen && e.FromStatus != nil && *e.FromStatus == last.stage && e.CreatedAt.After(last.at) {
			key := string(*e.FromStatus) + "->" + string(e.ToStatus)
			a, ok := accum[key]
			if !ok {
				a = &velocityAccum{from: *e.FromStatus, to: e.ToStatus}
				accum[key] = a
			}
			a.elapsed += e.CreatedAt.Sub(last.at)
			a.count++
		}
		prev[e.ProjectID] = lastSeen{stage: e.ToStatus, at: e.CreatedAt}
	}

	pairs := make([]*velocityAccum, 0, len(accum))
	for _, a := range accum {
		pairs = append(pairs, a)
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count > pairs[j].count
		}
		if pairs[i].from != pairs[j].from {
			return pairs[i].from.Order() < pairs[j].from.Order()
		}
		return pairs[i].to.Order() < pairs[j].to.Order()
	})
	if len(pairs) > topN {
		pairs = pairs[:topN]
	}

	out := make([]StageVelocity, 0, len(pairs))
	for _, a := range pairs {
		avgDays := a.elapsed.Hours() / 24 / float64(a.count)
		out = append(out, StageVelocity{
			Stage: a.from.Label() + " → " + a.to.Label(),
			Days:  math.Round(avgDays*10) / 10,
			Count: a.count,
		})
	}
	return out
}
