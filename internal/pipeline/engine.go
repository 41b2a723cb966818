// Package pipeline implements the stage transition engine.
//
// All status mutations of a project go through Engine.Transition: it is the
// single writer of project status and the only producer of stage events, so
// the stage_events table stays an append-only, consistent history.
package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"stageline.io/stageline/ent"
	"stageline.io/stageline/ent/project"
	"stageline.io/stageline/internal/access"
	"stageline.io/stageline/internal/domain"
	apperrors "stageline.io/stageline/internal/pkg/errors"
	"stageline.io/stageline/internal/pkg/logger"
	"stageline.io/stageline/internal/pkg/worker"
)

// Result is the outcome of a transition request.
type Result struct {
	// Project reflects the post-transition row.
	Project *ent.Project

	// Event is the appended stage event, nil when the request was an
	// idempotent no-op.
	Event *ent.StageEvent

	// Changed is false when the project was already in the target status.
	Changed bool
}

// Engine performs atomic stage transitions.
type Engine struct {
	entClient  *ent.Client
	dispatcher *domain.EventDispatcher
	pools      *worker.Pools
}

// NewEngine creates a transition engine. dispatcher and pools may be nil in
// tests; post-commit events are then skipped.
func NewEngine(entClient *ent.Client, dispatcher *domain.EventDispatcher, pools *worker.Pools) *Engine {
	return &Engine{entClient: entClient, dispatcher: dispatcher, pools: pools}
}

// Transition moves a project to a target status.
//
// The target is validated against the status enum before any query runs.
// The project is loaded through the caller's scope, so a project outside the
// scope is indistinguishable from a missing one. A request for the current
// status returns Changed=false without writing anything. Otherwise the
// status swap and the stage event insert commit in one transaction; the swap
// is a compare-and-set on the previously observed status, and losing the
// race surfaces as a conflict rather than a silent overwrite.
func (e *Engine) Transition(ctx context.Context, scope access.Scope, projectID, target, actor string) (*Result, error) {
	toStatus, err := domain.ParseStatus(target)
	if err != nil {
		return nil, apperrors.ErrInvalidStatusf(target)
	}

	preds := append(scope.ProjectPredicates(), project.IDEQ(projectID))
	proj, err := e.entClient.Project.Query().Where(preds...).Only(ctx)
	if ent.IsNotFound(err) {
		return nil, apperrors.ErrProjectNotFoundf(projectID)
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeTransitionFailed, "failed to load project", http.StatusInternalServerError)
	}

	if proj.Status == toStatus {
		logger.Debug("Stage transition no-op",
			zap.String("project_id", projectID),
			zap.String("status", toStatus.String()),
		)
		return &Result{Project: proj, Changed: false}, nil
	}

	fromStatus := proj.Status
	var event *ent.StageEvent
	err = withTx(ctx, e.entClient, func(tx *ent.Tx) error {
		affected, err := tx.Project.Update().
			Where(
				project.IDEQ(proj.ID),
				project.StatusEQ(fromStatus),
			).
			SetStatus(toStatus).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update project status: %w", err)
		}
		if affected == 0 {
			// Lost the race against a concurrent transition.
			return apperrors.ErrTransitionConflictf(proj.ID)
		}

		create := tx.StageEvent.Create().
			SetID(domain.NewID()).
			SetProjectID(proj.ID).
			SetFromStatus(fromStatus).
			SetToStatus(toStatus)
		if actor != "" {
			create.SetChangedBy(actor)
		}
		event, err = create.Save(ctx)
		if err != nil {
			return fmt.Errorf("record stage event: %w", err)
		}

		// Reload so the returned row carries the DB-assigned updated_at.
		proj, err = tx.Project.Get(ctx, proj.ID)
		if err != nil {
			return fmt.Errorf("reload project: %w", err)
		}
		return nil
	})
	if err != nil {
		if _, ok := apperrors.IsAppError(err); ok {
			return nil, err
		}
		return nil, apperrors.Wrap(err, apperrors.CodeTransitionFailed, "stage transition failed", http.StatusInternalServerError)
	}

	logger.Info("Stage transition committed",
		zap.String("project_id", proj.ID),
		zap.String("from", fromStatus.String()),
		zap.String("to", toStatus.String()),
		zap.String("actor", actor),
	)

	e.dispatchStageChanged(proj, fromStatus, toStatus, actor)

	return &Result{Project: proj, Event: event, Changed: true}, nil
}

// dispatchStageChanged publishes the stage-change event after commit.
// Delivery is best-effort and detached from the request: a slow or failing
// subscriber never delays or fails the transition response.
func (e *Engine) dispatchStageChanged(proj *ent.Project, from, to domain.Status, actor string) {
	if e.dispatcher == nil || e.pools == nil {
		return
	}

	payload := domain.StageChangedPayload{
		ProjectID:       proj.ID,
		ProjectName:     proj.Name,
		TenantAccountID: proj.TenantAccountID,
		ClientID:        proj.ClientID,
		FromStatus:      &from,
		ToStatus:        to,
		Actor:           actor,
	}
	raw, err := payload.ToJSON()
	if err != nil {
		logger.Warn("Stage change payload encode failed",
			zap.String("project_id", proj.ID),
			zap.Error(err),
		)
		return
	}
	event := &domain.Event{
		EventID:       domain.NewID(),
		EventType:     domain.EventProjectStageChanged,
		AggregateType: "project",
		AggregateID:   proj.ID,
		Payload:       raw,
		CreatedBy:     actor,
		CreatedAt:     time.Now().UTC(),
	}
	err = e.pools.SubmitDetached(func(ctx context.Context) {
		_ = e.dispatcher.Dispatch(ctx, event)
	})
	if err != nil {
		logger.Warn("Stage change event submit rejected",
			zap.String("project_id", proj.ID),
			zap.Error(err),
		)
	}
}

// withTx executes a function within a transaction.
func withTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}
	return tx.Commit()
}
