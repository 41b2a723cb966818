package domain

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStageChangedPayload_ToJSON(t *testing.T) {
	from := StatusBuild
	payload := StageChangedPayload{
		ProjectID:       "proj-1",
		ProjectName:     "Portal Rebuild",
		TenantAccountID: "acct-1",
		ClientID:        "org-1",
		FromStatus:      &from,
		ToStatus:        StatusUIStage,
		Actor:           "pm@agency.test",
	}

	data, err := payload.ToJSON()
	require.NoError(t, err)

	decoded, err := ParseStageChangedPayload(data)
	require.NoError(t, err)
	require.Equal(t, payload, decoded)
}

func TestStageChangedPayload_NilFromStatusOmitted(t *testing.T) {
	payload := StageChangedPayload{
		ProjectID: "proj-1",
		ToStatus:  StatusBacklog,
	}

	data, err := payload.ToJSON()
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	_, present := raw["from_status"]
	require.False(t, present, "from_status must be omitted for initial entries")
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("db_stage")
	require.NoError(t, err)
	require.Equal(t, StatusDBStage, s)

	_, err = ParseStatus("launching")
	require.Error(t, err)

	_, err = ParseStatus("")
	require.Error(t, err)
}

func TestStatusOrderMatchesPipeline(t *testing.T) {
	all := AllStatuses()
	require.Len(t, all, 10)
	require.Equal(t, StatusBacklog, all[0])
	require.Equal(t, StatusClosed, all[len(all)-1])

	for i, s := range all {
		require.Equal(t, i, s.Order(), "Order() of %s", s)
	}
	require.Equal(t, -1, Status("launching").Order())
}

func TestActiveStatusesExcludeClosed(t *testing.T) {
	for _, s := range ActiveStatuses() {
		require.NotEqual(t, StatusClosed, s)
	}
	require.Len(t, ActiveStatuses(), 9)
}

func TestStatusLabels(t *testing.T) {
	require.Equal(t, "UI Stage", StatusUIStage.Label())
	require.Equal(t, "QA", StatusQA.Label())
	require.Equal(t, "Call Arranged", StatusCallArranged.Label())
	// Unknown values fall back to the raw string.
	require.Equal(t, "mystery", Status("mystery").Label())
}

func TestDispatcher_DeliversToAllHandlers(t *testing.T) {
	d := NewEventDispatcher()

	var calls []string
	d.Register(EventProjectStageChanged, func(_ context.Context, e *Event) error {
		calls = append(calls, "first:"+e.AggregateID)
		return nil
	})
	d.Register(EventProjectStageChanged, func(_ context.Context, e *Event) error {
		calls = append(calls, "second:"+e.AggregateID)
		return nil
	})

	err := d.Dispatch(context.Background(), &Event{
		EventID:       "evt-1",
		EventType:     EventProjectStageChanged,
		AggregateType: "project",
		AggregateID:   "proj-1",
		CreatedAt:     time.Now(),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"first:proj-1", "second:proj-1"}, calls)
}

func TestDispatcher_FailingHandlerDoesNotBlockOthers(t *testing.T) {
	d := NewEventDispatcher()

	boom := errors.New("boom")
	var secondRan bool
	d.Register(EventProjectStageChanged, func(context.Context, *Event) error { return boom })
	d.Register(EventProjectStageChanged, func(context.Context, *Event) error {
		secondRan = true
		return nil
	})

	err := d.Dispatch(context.Background(), &Event{
		EventID:   "evt-2",
		EventType: EventProjectStageChanged,
	})
	require.ErrorIs(t, err, boom)
	require.True(t, secondRan, "remaining handlers must still run")
}

func TestDispatcher_NoHandlersIsNoop(t *testing.T) {
	d := NewEventDispatcher()
	require.NoError(t, d.Dispatch(context.Background(), &Event{
		EventID:   "evt-3",
		EventType: EventBillingReconcileRequested,
	}))
}

func TestNewIDIsUniqueAndNonEmpty(t *testing.T) {
	seen := make(map[string]bool)
	for range 64 {
		id := NewID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
