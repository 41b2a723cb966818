package domain

import (
	"encoding/json"
	"time"
)

// EventType defines the type of domain event.
type EventType string

const (
	// Pipeline events
	EventProjectStageChanged EventType = "PROJECT_STAGE_CHANGED"

	// Billing events
	EventBillingReconcileRequested EventType = "BILLING_RECONCILE_REQUESTED"
)

// Event represents an in-process domain event. Events are dispatched after
// the owning transaction commits; handlers are best-effort.
type Event struct {
	EventID       string    `json:"event_id"`
	EventType     EventType `json:"event_type"`
	AggregateType string    `json:"aggregate_type"`
	AggregateID   string    `json:"aggregate_id"`
	Payload       []byte    `json:"payload"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// StageChangedPayload is the payload for PROJECT_STAGE_CHANGED events.
type StageChangedPayload struct {
	ProjectID       string  `json:"project_id"`
	ProjectName     string  `json:"project_name"`
	TenantAccountID string  `json:"tenant_account_id"`
	ClientID        string  `json:"client_id"`
	FromStatus      *Status `json:"from_status,omitempty"`
	ToStatus        Status  `json:"to_status"`
	Actor           string  `json:"actor"`
}

// ToJSON converts payload to JSON bytes.
func (p StageChangedPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// ParseStageChangedPayload decodes a PROJECT_STAGE_CHANGED payload.
func ParseStageChangedPayload(raw []byte) (StageChangedPayload, error) {
	var p StageChangedPayload
	err := json.Unmarshal(raw, &p)
	return p, err
}
