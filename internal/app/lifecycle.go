package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"stageline.io/stageline/internal/pkg/logger"
)

// Start starts all background services (River workers, periodic jobs).
func (a *Application) Start(ctx context.Context) error {
	if a.DB != nil && a.DB.RiverClient != nil {
		if err := a.DB.RiverClient.Start(ctx); err != nil {
			return fmt.Errorf("start river client: %w", err)
		}
		logger.Info("River client started, jobs will now be consumed")
	}
	return nil
}

// Shutdown gracefully shuts down all application components.
func (a *Application) Shutdown() {
	shutdownCtx := context.Background()

	if a.DB != nil && a.DB.RiverClient != nil {
		if err := a.DB.RiverClient.Stop(shutdownCtx); err != nil {
			logger.Error("failed to stop river client", zap.Error(err))
		}
		logger.Info("River client stopped")
	}

	if a.Pools != nil {
		a.Pools.Shutdown()
	}
	if a.DB != nil {
		a.DB.Close()
	}
}
