package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	entnotification "stageline.io/stageline/ent/notification"
	"stageline.io/stageline/internal/testutil"
)

func TestInboxSender_Send(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "notif_send")
	sender := NewInboxSender(client)

	err := sender.Send(context.Background(), Params{
		RecipientID:  "u-1",
		Kind:         KindStageChange,
		Title:        "Project stage updated",
		Body:         "Portal moved from Build to UI Stage",
		ResourceType: "project",
		ResourceID:   "proj-1",
	})
	require.NoError(t, err)

	row := client.Notification.Query().
		Where(entnotification.RecipientIDEQ("u-1")).
		OnlyX(t.Context())
	require.Equal(t, KindStageChange, row.Kind)
	require.Equal(t, "Project stage updated", row.Title)
	require.False(t, row.Read)
}

func TestInboxSender_SendRejectsIncompleteParams(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "notif_send_invalid")
	sender := NewInboxSender(client)

	cases := []Params{
		{Kind: KindStageChange, Title: "t"},
		{RecipientID: "u-1", Title: "t"},
		{RecipientID: "u-1", Kind: KindStageChange},
	}
	for _, p := range cases {
		require.Error(t, sender.Send(context.Background(), p))
	}
	require.Zero(t, client.Notification.Query().CountX(t.Context()))
}

func TestInboxSender_SendToManyFansOut(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "notif_send_many")
	sender := NewInboxSender(client)

	err := sender.SendToMany(context.Background(), []string{"u-1", "u-2", "u-3"}, Params{
		Kind:  KindStageChange,
		Title: "Project stage updated",
	})
	require.NoError(t, err)
	require.Equal(t, 3, client.Notification.Query().CountX(t.Context()))
}

func TestInboxSender_SendToManyEmptyRecipients(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "notif_send_none")
	sender := NewInboxSender(client)

	require.NoError(t, sender.SendToMany(context.Background(), nil, Params{
		Kind:  KindStageChange,
		Title: "Project stage updated",
	}))
	require.Zero(t, client.Notification.Query().CountX(t.Context()))
}
