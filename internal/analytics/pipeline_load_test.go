package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stageline.io/stageline/ent"
	"stageline.io/stageline/internal/domain"
)

func TestComputePipelineLoad(t *testing.T) {
	projects := []*ent.Project{
		projectRow("a", domain.StatusBuild, nil, false),
		projectRow("b", domain.StatusBuild, nil, false),
		projectRow("c", domain.StatusBacklog, nil, false),
		projectRow("d", domain.StatusClosed, nil, false),
		projectRow("e", domain.StatusQA, nil, true),
	}

	got := ComputePipelineLoad(projects)
	require.Equal(t, []StageCount{
		{Stage: "backlog", Count: 1},
		{Stage: "build", Count: 2},
	}, got, "closed and archived omitted, zero-count stages omitted, pipeline order kept")
}

func TestComputePipelineLoadEmpty(t *testing.T) {
	require.Empty(t, ComputePipelineLoad(nil))
}
