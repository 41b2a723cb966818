// Package analytics derives the dashboard views from project, stage-event
// and invoice rows.
//
// Compute functions are pure over already-loaded rows with an injected
// clock; the service wraps them with scope-filtered loaders and fans the
// sections out concurrently. One failing section degrades to its empty
// value, it never fails the dashboard.
package analytics

import "time"

// Section names used in Dashboard.SectionErrors.
const (
	SectionPipeline = "pipeline_overview"
	SectionRevenue  = "revenue_performance"
	SectionWinRate  = "win_rate"
	SectionVelocity = "velocity_by_stage"
	SectionUpcoming = "upcoming_projects"
	SectionActivity = "activity_feed"
)

// Dashboard is the aggregate analytics response. All six sections are
// always present; a failed section holds its empty value and is listed in
// SectionErrors with an error code.
type Dashboard struct {
	PipelineOverview   []StageCount       `json:"pipeline_overview"`
	RevenuePerformance RevenuePerformance `json:"revenue_performance"`
	WinRate            WinRate            `json:"win_rate"`
	VelocityByStage    []StageVelocity    `json:"velocity_by_stage"`
	UpcomingProjects   []UpcomingProject  `json:"upcoming_projects"`
	ActivityFeed       []ActivityEntry    `json:"activity_feed"`

	// SectionErrors maps a section name to an error code when that
	// section's read failed.
	SectionErrors map[string]string `json:"section_errors,omitempty"`
}

// StageCount is one bar of the pipeline load view.
type StageCount struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

// RevenueBuckets holds the summed amounts of one reporting period.
type RevenueBuckets struct {
	Quoted   float64 `json:"quoted"`
	Invoiced float64 `json:"invoiced"`
	Paid     float64 `json:"paid"`
}

// RevenuePerformance reports bucketed sums for the three comparable
// periods. YearToDate is a monthly average, not a raw total.
type RevenuePerformance struct {
	CurrentMonth  RevenueBuckets `json:"current_month"`
	PreviousMonth RevenueBuckets `json:"previous_month"`
	YearToDate    RevenueBuckets `json:"year_to_date_monthly_avg"`
}

// WinRate reports raw counters; percentage rendering is left to clients.
type WinRate struct {
	Quotes int `json:"quotes"`
	Paid   int `json:"paid"`
}

// StageVelocity is the average dwell time of one transition pair.
type StageVelocity struct {
	Stage string  `json:"stage"`
	Days  float64 `json:"days"`
	Count int     `json:"count"`
}

// UpcomingProject is one row of the due-date forecast list.
type UpcomingProject struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	DueDate   time.Time `json:"due_date"`
	DueInDays int       `json:"due_in_days"`
}

// ActivityEntry is one row of the recent-activity feed.
type ActivityEntry struct {
	ProjectID   string `json:"project_id"`
	ProjectName string `json:"project_name"`
	Description string `json:"description"`
	When        string `json:"when"`
}
