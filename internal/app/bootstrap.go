// Package app is the composition root: bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"stageline.io/stageline/internal/access"
	"stageline.io/stageline/internal/analytics"
	"stageline.io/stageline/internal/api/handlers"
	"stageline.io/stageline/internal/api/middleware"
	"stageline.io/stageline/internal/billing"
	"stageline.io/stageline/internal/config"
	"stageline.io/stageline/internal/domain"
	"stageline.io/stageline/internal/infrastructure"
	"stageline.io/stageline/internal/jobs"
	"stageline.io/stageline/internal/notification"
	"stageline.io/stageline/internal/pipeline"
	"stageline.io/stageline/internal/pkg/worker"
)

// Application holds composed application dependencies.
type Application struct {
	Config *config.Config
	Router *gin.Engine
	DB     *infrastructure.DatabaseClients
	Pools  *worker.Pools
}

// Bootstrap initializes all dependencies using manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database clients: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize:   cfg.Worker.GeneralPoolSize,
		AnalyticsPoolSize: cfg.Worker.AnalyticsPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	dispatcher := domain.NewEventDispatcher()
	sender := notification.NewInboxSender(db.EntClient)
	notification.NewTriggers(sender, db.EntClient).RegisterOn(dispatcher)

	processor := billing.NewLedgerProcessor(db.EntClient)

	workers := river.NewWorkers()
	river.AddWorker(workers, jobs.NewBillingReconcileWorker(processor))
	river.AddWorker(workers, jobs.NewNotificationCleanupWorker(db.EntClient, cfg.Analytics.NotificationRetention))
	if err := db.InitRiverClient(workers, cfg.River); err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}
	// Notification retention cleanup: run daily and once on startup to avoid
	// long-lived inbox bloat.
	db.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(24*time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.NotificationCleanupArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)

	enqueuer := jobs.NewEnqueuer(db.RiverClient)
	resolver := access.NewResolver(db.EntClient, enqueuer, pools)
	engine := pipeline.NewEngine(db.EntClient, dispatcher, pools)
	analyticsSvc := analytics.NewService(db.EntClient, pools, cfg.Analytics)

	jwtCfg := middleware.JWTConfig{
		SigningKey: []byte(cfg.Security.SessionSecret),
		Issuer:     cfg.Security.TokenIssuer,
		ExpiresIn:  cfg.Security.TokenTTL,
	}

	server := handlers.NewServer(handlers.ServerDeps{
		EntClient: db.EntClient,
		Pool:      db.Pool,
		JWTCfg:    jwtCfg,
		Resolver:  resolver,
		Engine:    engine,
		Analytics: analyticsSvc,
	})

	router, err := newRouter(cfg, server, jwtCfg)
	if err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init router: %w", err)
	}

	return &Application{
		Config: cfg,
		Router: router,
		DB:     db,
		Pools:  pools,
	}, nil
}
