package analytics

import (
	"stageline.io/stageline/ent"
	"stageline.io/stageline/internal/domain"
)

// ComputePipelineLoad counts non-archived projects per active stage in
// pipeline order. Closed projects and stages with zero count are omitted.
func ComputePipelineLoad(projects []*ent.Project) []StageCount {
	counts := make(map[domain.Status]int)
	for _, p := range projects {
		if p.Archived {
			continue
		}
		counts[p.Status]++
	}

	out := make([]StageCount, 0, len(counts))
	for _, s := range domain.ActiveStatuses() {
		if n := counts[s]; n > 0 {
			out = append(out, StageCount{Stage: s.String(), Count: n})
		}
	}
	return out
}
