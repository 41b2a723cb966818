// Package domain contains core domain types for Stageline.
//
// The pipeline status set is a closed enumeration shared by the Project and
// StageEvent schemas (ent GoType enum). Status writes happen only through
// the transition engine in internal/pipeline.
package domain

import "fmt"

// Status is one value of the project delivery pipeline.
type Status string

// Pipeline statuses in delivery order. Transitions are not required to be
// strictly forward (a project may be moved backward for correction), but the
// written value must belong to this set.
const (
	StatusBacklog       Status = "backlog"
	StatusCallArranged  Status = "call_arranged"
	StatusBriefGathered Status = "brief_gathered"
	StatusBuild         Status = "build"
	StatusUIStage       Status = "ui_stage"
	StatusDBStage       Status = "db_stage"
	StatusAuthStage     Status = "auth_stage"
	StatusQA            Status = "qa"
	StatusHandover      Status = "handover"
	StatusClosed        Status = "closed"
)

// pipelineOrder lists all statuses in delivery order. Index is used for
// stable sorting of analytics output.
var pipelineOrder = []Status{
	StatusBacklog,
	StatusCallArranged,
	StatusBriefGathered,
	StatusBuild,
	StatusUIStage,
	StatusDBStage,
	StatusAuthStage,
	StatusQA,
	StatusHandover,
	StatusClosed,
}

var statusLabels = map[Status]string{
	StatusBacklog:       "Backlog",
	StatusCallArranged:  "Call Arranged",
	StatusBriefGathered: "Brief Gathered",
	StatusBuild:         "Build",
	StatusUIStage:       "UI Stage",
	StatusDBStage:       "DB Stage",
	StatusAuthStage:     "Auth Stage",
	StatusQA:            "QA",
	StatusHandover:      "Handover",
	StatusClosed:        "Closed",
}

// Values implements field.EnumValues for ent codegen.
func (Status) Values() []string {
	vals := make([]string, len(pipelineOrder))
	for i, s := range pipelineOrder {
		vals[i] = string(s)
	}
	return vals
}

// String returns the raw enum value.
func (s Status) String() string { return string(s) }

// Valid reports whether s belongs to the closed enumeration.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the human-readable stage name.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Order returns the position of s in the pipeline, or -1 for unknown values.
func (s Status) Order() int {
	for i, v := range pipelineOrder {
		if v == s {
			return i
		}
	}
	return -1
}

// ParseStatus validates a raw status value.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown pipeline status %q", raw)
	}
	return s, nil
}

// AllStatuses returns the full pipeline in delivery order.
func AllStatuses() []Status {
	out := make([]Status, len(pipelineOrder))
	copy(out, pipelineOrder)
	return out
}

// ActiveStatuses returns the non-terminal subset counted by the pipeline
// overview. Closed projects are excluded from load numbers.
func ActiveStatuses() []Status {
	active := make([]Status, 0, len(pipelineOrder)-1)
	for _, s := range pipelineOrder {
		if s != StatusClosed {
			active = append(active, s)
		}
	}
	return active
}

// DefaultStatus is the creation-time status for new projects.
const DefaultStatus = StatusBacklog
