package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"stageline.io/stageline/ent"
	entuser "stageline.io/stageline/ent/user"
	"stageline.io/stageline/internal/domain"
	"stageline.io/stageline/internal/pkg/logger"
)

// Triggers turns domain events into inbox notifications. Registered on the
// event dispatcher at bootstrap; runs detached from the originating request.
type Triggers struct {
	sender Sender
	client *ent.Client
}

// NewTriggers creates a new notification trigger service.
func NewTriggers(sender Sender, client *ent.Client) *Triggers {
	return &Triggers{sender: sender, client: client}
}

// RegisterOn subscribes the triggers to their event types.
func (t *Triggers) RegisterOn(dispatcher *domain.EventDispatcher) {
	dispatcher.Register(domain.EventProjectStageChanged, t.OnProjectStageChanged)
}

// OnProjectStageChanged notifies all active members of the owning tenant
// about the transition, except the actor who performed it.
func (t *Triggers) OnProjectStageChanged(ctx context.Context, event *domain.Event) error {
	payload, err := domain.ParseStageChangedPayload(event.Payload)
	if err != nil {
		return fmt.Errorf("decode stage change payload: %w", err)
	}

	recipients, err := t.findTenantMemberIDs(ctx, payload.TenantAccountID, payload.Actor)
	if err != nil {
		return fmt.Errorf("find stage change recipients: %w", err)
	}
	if len(recipients) == 0 {
		logger.Debug("no recipients for stage change notification",
			zap.String("project_id", payload.ProjectID),
		)
		return nil
	}

	body := payload.ProjectName + " entered " + payload.ToStatus.Label()
	if payload.FromStatus != nil {
		body = payload.ProjectName + " moved from " + payload.FromStatus.Label() + " to " + payload.ToStatus.Label()
	}

	params := Params{
		Kind:         KindStageChange,
		Title:        "Project stage updated",
		Body:         body,
		ResourceType: "project",
		ResourceID:   payload.ProjectID,
	}
	if err := t.sender.SendToMany(ctx, recipients, params); err != nil {
		return fmt.Errorf("send stage change notifications for project %s: %w", payload.ProjectID, err)
	}
	return nil
}

// findTenantMemberIDs returns active member user IDs of a tenant, excluding
// the actor (matched by email, the audit identity handlers record).
func (t *Triggers) findTenantMemberIDs(ctx context.Context, tenantAccountID, actorEmail string) ([]string, error) {
	if tenantAccountID == "" {
		return nil, nil
	}
	query := t.client.User.Query().
		Where(
			entuser.TenantAccountIDEQ(tenantAccountID),
			entuser.RoleEQ(domain.RoleMember),
			entuser.ActiveEQ(true),
		)
	if actorEmail != "" {
		query = query.Where(entuser.EmailNEQ(actorEmail))
	}
	return query.IDs(ctx)
}
