package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"stageline.io/stageline/ent"
	entnotification "stageline.io/stageline/ent/notification"
	"stageline.io/stageline/internal/api/middleware"
	"stageline.io/stageline/internal/domain"
	"stageline.io/stageline/internal/testutil"
)

func seedNotification(t *testing.T, client *ent.Client, recipientID, title string, read bool) *ent.Notification {
	t.Helper()
	return client.Notification.Create().
		SetID(domain.NewID()).
		SetRecipientID(recipientID).
		SetKind("stage_change").
		SetTitle(title).
		SetBody("body").
		SetResourceType("project").
		SetResourceID("proj-1").
		SetRead(read).
		SaveX(t.Context())
}

func authedRequest(t *testing.T, method, target, userID string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, nil)
	if userID != "" {
		req = req.WithContext(middleware.SetUserContext(req.Context(), userID, userID+"@test.local", "member"))
	}
	c.Request = req
	return w, c
}

func TestListNotifications_FiltersByRecipient(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, "notif_list_recipient")
	server := NewServer(ServerDeps{EntClient: client})

	seedNotification(t, client, "u-mine", "for me", false)
	seedNotification(t, client, "u-mine", "also for me", true)
	seedNotification(t, client, "u-other", "not for me", false)

	w, c := authedRequest(t, http.MethodGet, "/notifications", "u-mine")
	server.ListNotifications(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Notifications []notificationItem `json:"notifications"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Notifications) != 2 {
		t.Fatalf("got %d notifications, want 2: %+v", len(resp.Notifications), resp.Notifications)
	}
	for _, n := range resp.Notifications {
		if n.Title == "not for me" {
			t.Fatal("leaked another recipient's notification")
		}
	}
}

func TestListNotifications_UnreadOnly(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, "notif_list_unread")
	server := NewServer(ServerDeps{EntClient: client})

	seedNotification(t, client, "u-1", "unread", false)
	seedNotification(t, client, "u-1", "read", true)

	w, c := authedRequest(t, http.MethodGet, "/notifications?unread_only=true", "u-1")
	server.ListNotifications(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Notifications []notificationItem `json:"notifications"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Notifications) != 1 || resp.Notifications[0].Title != "unread" {
		t.Fatalf("unexpected unread list: %+v", resp.Notifications)
	}
}

func TestListNotifications_Unauthenticated(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, "notif_list_anon")
	server := NewServer(ServerDeps{EntClient: client})

	w, c := authedRequest(t, http.MethodGet, "/notifications", "")
	server.ListNotifications(c)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestMarkNotificationRead_OwnRow(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, "notif_read_own")
	server := NewServer(ServerDeps{EntClient: client})

	n := seedNotification(t, client, "u-1", "to read", false)

	w, c := authedRequest(t, http.MethodPost, "/notifications/"+n.ID+"/read", "u-1")
	c.Params = gin.Params{{Key: "notificationId", Value: n.ID}}
	server.MarkNotificationRead(c)
	// c.Status alone defers the write; flush it so the recorder sees the code.
	c.Writer.WriteHeaderNow()

	if w.Code != http.StatusNoContent {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	got := client.Notification.Query().
		Where(entnotification.IDEQ(n.ID)).
		OnlyX(t.Context())
	if !got.Read {
		t.Fatal("notification not marked read")
	}
}

func TestMarkNotificationRead_ForeignRowIsNotFound(t *testing.T) {
	t.Parallel()
	client := testutil.OpenEntPostgres(t, "notif_read_foreign")
	server := NewServer(ServerDeps{EntClient: client})

	n := seedNotification(t, client, "u-owner", "private", false)

	w, c := authedRequest(t, http.MethodPost, "/notifications/"+n.ID+"/read", "u-intruder")
	c.Params = gin.Params{{Key: "notificationId", Value: n.ID}}
	server.MarkNotificationRead(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	got := client.Notification.Query().
		Where(entnotification.IDEQ(n.ID)).
		OnlyX(t.Context())
	if got.Read {
		t.Fatal("foreign caller must not mark the row read")
	}
}
