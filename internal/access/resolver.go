package access

import (
	"context"

	"go.uber.org/zap"

	"stageline.io/stageline/ent"
	"stageline.io/stageline/internal/domain"
	"stageline.io/stageline/internal/pkg/logger"
	"stageline.io/stageline/internal/pkg/worker"
)

// BillingEnqueuer enqueues background billing reconciliation.
// Satisfied by *river.Client via jobs.Enqueuer.
type BillingEnqueuer interface {
	EnqueueBillingReconcile(ctx context.Context, tenantAccountID string) error
}

// Resolver turns an authenticated user ID into a Scope.
type Resolver struct {
	entClient *ent.Client
	billing   BillingEnqueuer
	pools     *worker.Pools
}

// NewResolver creates a scope resolver. billing and pools may be nil in
// tests; member resolution then skips the reconcile enqueue.
func NewResolver(entClient *ent.Client, billing BillingEnqueuer, pools *worker.Pools) *Resolver {
	return &Resolver{entClient: entClient, billing: billing, pools: pools}
}

// Resolve loads the user and computes their visibility scope.
//
// A missing or inactive user resolves to an empty client scope rather than
// an error: the caller still renders a valid, empty view. Members trigger a
// best-effort billing reconcile for their tenant in the background; its
// failure never affects the request.
func (r *Resolver) Resolve(ctx context.Context, userID string) (Scope, error) {
	usr, err := r.entClient.User.Get(ctx, userID)
	if ent.IsNotFound(err) {
		logger.Warn("Scope requested for unknown user, falling back to empty client scope",
			zap.String("user_id", userID),
		)
		return Scope{UserID: userID, Role: domain.RoleClient}, nil
	}
	if err != nil {
		return Scope{}, err
	}
	if !usr.Active {
		return Scope{UserID: userID, Role: domain.RoleClient}, nil
	}

	if usr.Role == domain.RoleMember {
		r.scheduleBillingReconcile(usr.TenantAccountID)
		return Scope{
			UserID:          usr.ID,
			Role:            domain.RoleMember,
			TenantAccountID: usr.TenantAccountID,
		}, nil
	}

	orgs, err := usr.QueryClientOrgs().IDs(ctx)
	if err != nil {
		return Scope{}, err
	}
	return Scope{
		UserID:    usr.ID,
		Role:      domain.RoleClient,
		ClientIDs: orgs,
	}, nil
}

// scheduleBillingReconcile enqueues a reconcile job for the tenant without
// blocking the request. Deduplication happens at the queue level, see
// jobs.BillingReconcileArgs.
func (r *Resolver) scheduleBillingReconcile(tenantAccountID string) {
	if r.billing == nil || r.pools == nil || tenantAccountID == "" {
		return
	}
	err := r.pools.SubmitDetached(func(ctx context.Context) {
		if err := r.billing.EnqueueBillingReconcile(ctx, tenantAccountID); err != nil {
			logger.Warn("Billing reconcile enqueue failed",
				zap.String("tenant_account_id", tenantAccountID),
				zap.Error(err),
			)
		}
	})
	if err != nil {
		logger.Warn("Billing reconcile submit rejected",
			zap.String("tenant_account_id", tenantAccountID),
			zap.Error(err),
		)
	}
}
