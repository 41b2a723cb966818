// Package notification implements the in-app inbox.
//
// Inbox rows are written synchronously by triggers running off the domain
// event dispatcher; external push channels (email, webhooks) would hang off
// the same Sender interface.
package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"stageline.io/stageline/ent"
	"stageline.io/stageline/internal/domain"
	"stageline.io/stageline/internal/pkg/logger"
)

// Kind constants stored in the notifications.kind column.
const (
	KindStageChange = "stage_change"
)

// Params holds the required fields for creating a notification.
type Params struct {
	RecipientID  string
	Kind         string
	Title        string
	Body         string
	ResourceType string
	ResourceID   string
}

// Sender defines the interface for delivering notifications.
type Sender interface {
	// Send creates a notification for a single recipient.
	Send(ctx context.Context, params Params) error

	// SendToMany creates notifications for multiple recipients.
	// Best-effort: logs errors but does not abort on individual failures.
	SendToMany(ctx context.Context, recipientIDs []string, params Params) error
}

// InboxSender writes notifications to the database synchronously within the
// caller's context.
type InboxSender struct {
	client *ent.Client
}

// NewInboxSender creates a new inbox sender.
func NewInboxSender(client *ent.Client) *InboxSender {
	return &InboxSender{client: client}
}

// Send stores a single notification.
func (s *InboxSender) Send(ctx context.Context, params Params) error {
	if err := validateParams(params); err != nil {
		return fmt.Errorf("notification params invalid: %w", err)
	}

	_, err := s.client.Notification.Create().
		SetID(domain.NewID()).
		SetRecipientID(params.RecipientID).
		SetKind(params.Kind).
		SetTitle(params.Title).
		SetBody(params.Body).
		SetResourceType(params.ResourceType).
		SetResourceID(params.ResourceID).
		SetRead(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create notification for user %s: %w", params.RecipientID, err)
	}

	logger.Debug("notification sent",
		zap.String("recipient", params.RecipientID),
		zap.String("kind", params.Kind),
		zap.String("title", params.Title),
	)

	return nil
}

// SendToMany creates notifications for multiple recipients (best-effort).
// Failures are logged but do not prevent delivery to other recipients.
func (s *InboxSender) SendToMany(ctx context.Context, recipientIDs []string, params Params) error {
	if len(recipientIDs) == 0 {
		return nil
	}

	var failCount int
	for _, recipientID := range recipientIDs {
		p := params
		p.RecipientID = recipientID
		if err := s.Send(ctx, p); err != nil {
			failCount++
			logger.Error("notification delivery failed",
				zap.String("recipient", recipientID),
				zap.String("kind", params.Kind),
				zap.Error(err),
			)
		}
	}

	if failCount > 0 {
		return fmt.Errorf("notification delivery failed for %d/%d recipients", failCount, len(recipientIDs))
	}
	return nil
}

// compile-time check
var _ Sender = (*InboxSender)(nil)

func validateParams(p Params) error {
	if p.RecipientID == "" {
		return fmt.Errorf("recipient_id is required")
	}
	if p.Kind == "" {
		return fmt.Errorf("kind is required")
	}
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}
