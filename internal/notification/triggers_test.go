package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"stageline.io/stageline/ent"
	entnotification "stageline.io/stageline/ent/notification"
	"stageline.io/stageline/internal/domain"
	"stageline.io/stageline/internal/testutil"
)

const triggerTenant = "acct_triggers"

func seedMember(t *testing.T, client *ent.Client, email string, active bool) *ent.User {
	t.Helper()
	return client.User.Create().
		SetID(domain.NewID()).
		SetEmail(email).
		SetDisplayName("Member").
		SetPasswordHash("x").
		SetRole(domain.RoleMember).
		SetTenantAccountID(triggerTenant).
		SetActive(active).
		SaveX(t.Context())
}

func stageChangedEvent(t *testing.T, actor string) *domain.Event {
	t.Helper()
	from := domain.StatusBuild
	raw, err := domain.StageChangedPayload{
		ProjectID:       "proj-1",
		ProjectName:     "Portal",
		TenantAccountID: triggerTenant,
		ClientID:        "org-1",
		FromStatus:      &from,
		ToStatus:        domain.StatusUIStage,
		Actor:           actor,
	}.ToJSON()
	require.NoError(t, err)

	return &domain.Event{
		EventID:       domain.NewID(),
		EventType:     domain.EventProjectStageChanged,
		AggregateType: "project",
		AggregateID:   "proj-1",
		Payload:       raw,
		CreatedBy:     actor,
	}
}

func TestOnProjectStageChanged_NotifiesOtherActiveMembers(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "trig_stage_change")
	triggers := NewTriggers(NewInboxSender(client), client)

	actor := seedMember(t, client, "actor@agency.test", true)
	other := seedMember(t, client, "other@agency.test", true)
	seedMember(t, client, "retired@agency.test", false)

	err := triggers.OnProjectStageChanged(context.Background(), stageChangedEvent(t, actor.Email))
	require.NoError(t, err)

	rows := client.Notification.Query().AllX(t.Context())
	require.Len(t, rows, 1)
	require.Equal(t, other.ID, rows[0].RecipientID)
	require.Equal(t, KindStageChange, rows[0].Kind)
	require.Equal(t, "Portal moved from Build to UI Stage", rows[0].Body)
	require.Equal(t, "project", rows[0].ResourceType)
	require.Equal(t, "proj-1", rows[0].ResourceID)
}

func TestOnProjectStageChanged_InitialEntryWording(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "trig_initial_entry")
	triggers := NewTriggers(NewInboxSender(client), client)

	seedMember(t, client, "other@agency.test", true)

	raw, err := domain.StageChangedPayload{
		ProjectID:       "proj-2",
		ProjectName:     "Fresh Project",
		TenantAccountID: triggerTenant,
		ToStatus:        domain.StatusBacklog,
		Actor:           "someone@else.test",
	}.ToJSON()
	require.NoError(t, err)

	err = triggers.OnProjectStageChanged(context.Background(), &domain.Event{
		EventID:   domain.NewID(),
		EventType: domain.EventProjectStageChanged,
		Payload:   raw,
	})
	require.NoError(t, err)

	row := client.Notification.Query().
		Where(entnotification.ResourceIDEQ("proj-2")).
		OnlyX(t.Context())
	require.Equal(t, "Fresh Project entered Backlog", row.Body)
}

func TestOnProjectStageChanged_NoRecipientsIsNoop(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "trig_no_recipients")
	triggers := NewTriggers(NewInboxSender(client), client)

	actor := seedMember(t, client, "lone@agency.test", true)

	err := triggers.OnProjectStageChanged(context.Background(), stageChangedEvent(t, actor.Email))
	require.NoError(t, err)
	require.Zero(t, client.Notification.Query().CountX(t.Context()))
}

func TestOnProjectStageChanged_MalformedPayload(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "trig_bad_payload")
	triggers := NewTriggers(NewInboxSender(client), client)

	err := triggers.OnProjectStageChanged(context.Background(), &domain.Event{
		EventID:   domain.NewID(),
		EventType: domain.EventProjectStageChanged,
		Payload:   []byte("{not json"),
	})
	require.Error(t, err)
}
