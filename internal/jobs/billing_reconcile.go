// Package jobs defines River Queue job types for async processing.
//
// Jobs carry identifiers only; workers reload state from the database when
// they run, so a stale payload can never overwrite fresher rows.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"stageline.io/stageline/internal/billing"
	"stageline.io/stageline/internal/pkg/logger"
)

// BillingReconcileKind is the job kind identifier for billing reconciliation.
const BillingReconcileKind = "billing_reconcile"

// BillingReconcileArgs requests a reconcile of one tenant's billing state.
// Enqueued best-effort whenever a member's scope is resolved.
type BillingReconcileArgs struct {
	TenantAccountID string `json:"tenant_account_id"`
}

// Kind returns the job kind identifier.
func (BillingReconcileArgs) Kind() string { return BillingReconcileKind }

// InsertOpts deduplicates reconciles: at most one pending job per tenant
// per hour, however many member requests arrive in between.
func (BillingReconcileArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// BillingReconcileWorker runs the reconcile through the billing processor.
type BillingReconcileWorker struct {
	river.WorkerDefaults[BillingReconcileArgs]
	processor billing.Processor
}

// NewBillingReconcileWorker creates a reconcile worker.
func NewBillingReconcileWorker(processor billing.Processor) *BillingReconcileWorker {
	return &BillingReconcileWorker{processor: processor}
}

// Work reconciles the tenant named in the job args.
func (w *BillingReconcileWorker) Work(ctx context.Context, job *river.Job[BillingReconcileArgs]) error {
	if w == nil || w.processor == nil {
		return fmt.Errorf("billing reconcile worker is not initialized")
	}
	if job.Args.TenantAccountID == "" {
		logger.Warn("billing reconcile job without tenant, skipping")
		return nil
	}

	if err := w.processor.Reconcile(ctx, job.Args.TenantAccountID); err != nil {
		return fmt.Errorf("reconcile tenant %s: %w", job.Args.TenantAccountID, err)
	}
	logger.Debug("billing reconcile job done",
		zap.String("tenant_account_id", job.Args.TenantAccountID),
	)
	return nil
}

// Enqueuer inserts jobs through the shared River client. It satisfies
// access.BillingEnqueuer.
type Enqueuer struct {
	riverClient *river.Client[pgx.Tx]
}

// NewEnqueuer wraps a River client for job insertion.
func NewEnqueuer(riverClient *river.Client[pgx.Tx]) *Enqueuer {
	return &Enqueuer{riverClient: riverClient}
}

// EnqueueBillingReconcile inserts a deduplicated reconcile job.
func (e *Enqueuer) EnqueueBillingReconcile(ctx context.Context, tenantAccountID string) error {
	if e == nil || e.riverClient == nil {
		return fmt.Errorf("enqueuer is not initialized")
	}
	_, err := e.riverClient.Insert(ctx, BillingReconcileArgs{TenantAccountID: tenantAccountID}, nil)
	return err
}
