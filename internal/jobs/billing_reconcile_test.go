package jobs

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/riverqueue/river"
)

func TestBillingReconcileArgsKind(t *testing.T) {
	t.Parallel()

	if got := (BillingReconcileArgs{}).Kind(); got != "billing_reconcile" {
		t.Fatalf("Kind() = %q, want %q", got, "billing_reconcile")
	}
}

func TestBillingReconcileArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (BillingReconcileArgs{}).InsertOpts()
	if opts.Queue != river.QueueDefault {
		t.Fatalf("Queue = %q, want %q", opts.Queue, river.QueueDefault)
	}
	if opts.MaxAttempts != 3 {
		t.Fatalf("MaxAttempts = %d, want 3", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != time.Hour {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, time.Hour)
	}
	if !opts.UniqueOpts.ByQueue {
		t.Fatal("UniqueOpts.ByQueue = false, want true")
	}
	if !opts.UniqueOpts.ByArgs {
		t.Fatal("UniqueOpts.ByArgs = false, want true")
	}
}

type fakeProcessor struct {
	tenants []string
	err     error
}

func (f *fakeProcessor) Reconcile(_ context.Context, tenantAccountID string) error {
	f.tenants = append(f.tenants, tenantAccountID)
	return f.err
}

func TestBillingReconcileWorkerWork(t *testing.T) {
	t.Parallel()

	t.Run("nil receiver", func(t *testing.T) {
		var w *BillingReconcileWorker
		err := w.Work(context.Background(), &river.Job[BillingReconcileArgs]{})
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})

	t.Run("empty tenant skipped", func(t *testing.T) {
		proc := &fakeProcessor{}
		w := NewBillingReconcileWorker(proc)
		job := &river.Job[BillingReconcileArgs]{Args: BillingReconcileArgs{}}
		if err := w.Work(context.Background(), job); err != nil {
			t.Fatalf("Work() error = %v, want nil", err)
		}
		if len(proc.tenants) != 0 {
			t.Fatalf("processor called %d times, want 0", len(proc.tenants))
		}
	})

	t.Run("delegates to processor", func(t *testing.T) {
		proc := &fakeProcessor{}
		w := NewBillingReconcileWorker(proc)
		job := &river.Job[BillingReconcileArgs]{Args: BillingReconcileArgs{TenantAccountID: "acct-owner"}}
		if err := w.Work(context.Background(), job); err != nil {
			t.Fatalf("Work() error = %v, want nil", err)
		}
		if len(proc.tenants) != 1 || proc.tenants[0] != "acct-owner" {
			t.Fatalf("processor tenants = %v, want [acct-owner]", proc.tenants)
		}
	})

	t.Run("propagates processor failure", func(t *testing.T) {
		proc := &fakeProcessor{err: errors.New("provider down")}
		w := NewBillingReconcileWorker(proc)
		job := &river.Job[BillingReconcileArgs]{Args: BillingReconcileArgs{TenantAccountID: "acct-owner"}}
		err := w.Work(context.Background(), job)
		if err == nil || !strings.Contains(err.Error(), "provider down") {
			t.Fatalf("Work() error = %v, want wrapped provider error", err)
		}
	})
}
