package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"stageline.io/stageline/internal/pkg/logger"
)

func init() {
	// Initialize logger for tests
	_ = logger.Init("error", "json")
}

func TestNewPools(t *testing.T) {
	ctx := context.Background()
	pools, err := NewPools(ctx, DefaultPoolConfig())
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	defer pools.Shutdown()

	if pools.General == nil {
		t.Error("General pool is nil")
	}
	if pools.Analytics == nil {
		t.Error("Analytics pool is nil")
	}
}

func TestPool_Submit(t *testing.T) {
	ctx := context.Background()
	pools, err := NewPools(ctx, PoolConfig{
		GeneralPoolSize:   10,
		AnalyticsPoolSize: 5,
	})
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	defer pools.Shutdown()

	var executed atomic.Bool
	var wg sync.WaitGroup
	wg.Add(1)

	err = pools.Analytics.Submit(ctx, func(ctx context.Context) {
		executed.Store(true)
		wg.Done()
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	wg.Wait()
	if !executed.Load() {
		t.Error("Task was not executed")
	}
}

func TestPool_Submit_CancelledContext(t *testing.T) {
	ctx := context.Background()
	pools, err := NewPools(ctx, DefaultPoolConfig())
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	defer pools.Shutdown()

	cancelledCtx, cancel := context.WithCancel(ctx)
	cancel() // Cancel immediately

	err = pools.Analytics.Submit(cancelledCtx, func(ctx context.Context) {
		t.Error("Task should not execute with cancelled context")
	})
	if err != context.Canceled {
		t.Errorf("Submit() error = %v, want context.Canceled", err)
	}
}

func TestPools_SubmitDetached(t *testing.T) {
	ctx := context.Background()
	pools, err := NewPools(ctx, DefaultPoolConfig())
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}

	var executed atomic.Bool
	var wg sync.WaitGroup
	wg.Add(1)

	err = pools.SubmitDetached(func(ctx context.Context) {
		executed.Store(true)
		wg.Done()
	})
	if err != nil {
		t.Fatalf("SubmitDetached() error = %v", err)
	}

	wg.Wait()
	pools.Shutdown()

	if !executed.Load() {
		t.Error("SubmitDetached() task was not executed")
	}
}

func TestPool_SubmitJoined_RunsDespiteCancelledContext(t *testing.T) {
	ctx := context.Background()
	pools, err := NewPools(ctx, DefaultPoolConfig())
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	defer pools.Shutdown()

	cancelledCtx, cancel := context.WithCancel(ctx)
	cancel()

	var sawCancelled atomic.Bool
	var wg sync.WaitGroup
	wg.Add(1)
	err = pools.Analytics.SubmitJoined(cancelledCtx, func(taskCtx context.Context) {
		defer wg.Done()
		sawCancelled.Store(taskCtx.Err() != nil)
	})
	if err != nil {
		t.Fatalf("SubmitJoined() error = %v", err)
	}

	wg.Wait()
	if !sawCancelled.Load() {
		t.Error("SubmitJoined() task should observe the cancelled context")
	}
}

func TestPools_Metrics(t *testing.T) {
	ctx := context.Background()
	pools, err := NewPools(ctx, DefaultPoolConfig())
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	defer pools.Shutdown()

	m := pools.Metrics()
	if _, ok := m["general"]; !ok {
		t.Error("Metrics() missing general pool entry")
	}
	if _, ok := m["analytics"]; !ok {
		t.Error("Metrics() missing analytics pool entry")
	}
}
