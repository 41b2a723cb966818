// Package worker provides goroutine pool management.
//
// Coding standard: naked goroutines are forbidden. All concurrency goes
// through a Pool with context propagation — request-scoped analytics fan-out
// uses the analytics pool, detached best-effort work uses the general pool.
package worker

import (
	"context"
	"errors"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"stageline.io/stageline/internal/pkg/logger"
)

// ErrPoolClosed is returned when submitting to a closed pool.
var ErrPoolClosed = errors.New("worker pool is closed")

// Task is a context-aware task function.
type Task func(ctx context.Context)

// Pool wraps ants.Pool with context-aware submission.
type Pool struct {
	pool *ants.Pool
	name string
}

// Pools is the worker pool collection.
type Pools struct {
	General   *Pool
	Analytics *Pool

	// serviceCtx is the service lifecycle context for detached tasks
	serviceCtx    context.Context
	serviceCancel context.CancelFunc
}

// PoolConfig contains worker pool configuration.
type PoolConfig struct {
	GeneralPoolSize   int
	AnalyticsPoolSize int
}

// DefaultPoolConfig returns default configuration.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		GeneralPoolSize:   100,
		AnalyticsPoolSize: 64,
	}
}

// NewPools creates the worker pool collection.
func NewPools(ctx context.Context, cfg PoolConfig) (*Pools, error) {
	serviceCtx, serviceCancel := context.WithCancel(ctx)

	// Unified panic recovery
	panicHandler := func(p interface{}) {
		logger.Error("Worker panic recovered",
			zap.Any("panic", p),
			zap.Stack("stack"),
		)
	}

	generalAnts, err := ants.NewPool(cfg.GeneralPoolSize,
		ants.WithPanicHandler(panicHandler),
		ants.WithNonblocking(false),
		ants.WithExpiryDuration(10*time.Second),
	)
	if err != nil {
		serviceCancel()
		return nil, err
	}

	analyticsAnts, err := ants.NewPool(cfg.AnalyticsPoolSize,
		ants.WithPanicHandler(panicHandler),
		ants.WithNonblocking(false),
		ants.WithExpiryDuration(10*time.Second),
	)
	if err != nil {
		generalAnts.Release()
		serviceCancel()
		return nil, err
	}

	return &Pools{
		General:       &Pool{pool: generalAnts, name: "general"},
		Analytics:     &Pool{pool: analyticsAnts, name: "analytics"},
		serviceCtx:    serviceCtx,
		serviceCancel: serviceCancel,
	}, nil
}

// Submit submits a context-aware task.
// The task receives the caller's context and SHOULD check ctx.Done() at
// blocking points. If the context is already cancelled, returns ctx.Err()
// immediately without submitting.
func (p *Pool) Submit(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	return p.pool.Submit(func() {
		// May have been cancelled while queued.
		select {
		case <-ctx.Done():
			logger.Debug("Task skipped: context cancelled",
				zap.String("pool", p.name),
				zap.Error(ctx.Err()),
			)
			return
		default:
		}
		task(ctx)
	})
}

// SubmitJoined submits a task the caller joins on. Unlike Submit, a queued
// task still runs after ctx is cancelled; it observes cancellation through
// its context instead of being skipped, so completion signals inside the
// task are guaranteed to fire.
func (p *Pool) SubmitJoined(ctx context.Context, task Task) error {
	return p.pool.Submit(func() {
		task(ctx)
	})
}

// SubmitDetached submits a detached background task on the general pool.
// Detached tasks use the service lifecycle context instead of a request
// context: they survive request cancellation but respect graceful shutdown.
// Best-effort side effects (billing reconciliation triggers, stage-change
// notifications) go through here.
func (p *Pools) SubmitDetached(task Task) error {
	return p.General.pool.Submit(func() {
		select {
		case <-p.serviceCtx.Done():
			logger.Debug("Detached task skipped: service shutting down")
			return
		default:
		}
		task(p.serviceCtx)
	})
}

// Shutdown gracefully shuts down all pools with a timeout.
// Cancels the service context first, then waits for running tasks.
func (p *Pools) Shutdown() {
	p.serviceCancel()

	const shutdownTimeout = 30 * time.Second
	if err := p.General.pool.ReleaseTimeout(shutdownTimeout); err != nil {
		logger.Warn("General pool shutdown timeout", zap.Error(err))
	}
	if err := p.Analytics.pool.ReleaseTimeout(shutdownTimeout); err != nil {
		logger.Warn("Analytics pool shutdown timeout", zap.Error(err))
	}
}

// Metrics returns pool metrics for observability.
func (p *Pools) Metrics() map[string]interface{} {
	return map[string]interface{}{
		"general": map[string]int{
			"running": p.General.pool.Running(),
			"free":    p.General.pool.Free(),
			"cap":     p.General.pool.Cap(),
		},
		"analytics": map[string]int{
			"running": p.Analytics.pool.Running(),
			"free":    p.Analytics.pool.Free(),
			"cap":     p.Analytics.pool.Cap(),
		},
	}
}
