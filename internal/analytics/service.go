package analytics

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"stageline.io/stageline/ent"
	"stageline.io/stageline/ent/invoice"
	"stageline.io/stageline/ent/project"
	"stageline.io/stageline/ent/stageevent"
	"stageline.io/stageline/internal/access"
	"stageline.io/stageline/internal/config"
	"stageline.io/stageline/internal/domain"
	apperrors "stageline.io/stageline/internal/pkg/errors"
	"stageline.io/stageline/internal/pkg/logger"
	"stageline.io/stageline/internal/pkg/worker"
)

// Service computes dashboard analytics for one resolved scope per call.
type Service struct {
	entClient *ent.Client
	pools     *worker.Pools
	cfg       config.AnalyticsConfig

	// now is injectable for tests.
	now func() time.Time
}

// NewService creates the analytics service. pools may be nil; sections then
// run sequentially, which tests rely on.
func NewService(entClient *ent.Client, pools *worker.Pools, cfg config.AnalyticsConfig) *Service {
	return &Service{
		entClient: entClient,
		pools:     pools,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Dashboard computes all six sections for the scope.
//
// The sections fan out on the analytics pool and join before returning.
// Each section runs under its own timeout and degrades independently: a
// failed read leaves that section empty and flagged in SectionErrors, the
// dashboard call itself only fails when the request context dies.
func (s *Service) Dashboard(ctx context.Context, scope access.Scope) (*Dashboard, error) {
	dash := &Dashboard{
		PipelineOverview: []StageCount{},
		VelocityByStage:  []StageVelocity{},
		UpcomingProjects: []UpcomingProject{},
		ActivityFeed:     []ActivityEntry{},
	}

	// Empty membership is a valid, empty dashboard, not an error.
	if scope.AllowsNothing() {
		return dash, nil
	}

	now := s.now()
	var mu sync.Mutex
	var wg sync.WaitGroup

	fail := func(err error, sections ...string) {
		mu.Lock()
		defer mu.Unlock()
		if dash.SectionErrors == nil {
			dash.SectionErrors = make(map[string]string, len(sections))
		}
		for _, name := range sections {
			dash.SectionErrors[name] = apperrors.CodeSectionUnavailable
			logger.Warn("Analytics section degraded",
				zap.String("section", name),
				zap.String("user_id", scope.UserID),
				zap.Error(err),
			)
		}
	}

	s.runSection(ctx, &wg, func(ctx context.Context) {
		projects, err := s.loadActiveProjects(ctx, scope)
		if err != nil {
			fail(err, SectionPipeline)
			return
		}
		overview := ComputePipelineLoad(projects)
		mu.Lock()
		dash.PipelineOverview = overview
		mu.Unlock()
	})

	s.runSection(ctx, &wg, func(ctx context.Context) {
		invoices, err := s.loadInvoices(ctx, scope)
		if err != nil {
			fail(err, SectionRevenue, SectionWinRate)
			return
		}
		revenue := ComputeRevenue(invoices, now)
		winRate := ComputeWinRate(invoices)
		mu.Lock()
		dash.RevenuePerformance = revenue
		dash.WinRate = winRate
		mu.Unlock()
	})

	s.runSection(ctx, &wg, func(ctx context.Context) {
		events, err := s.loadStageEvents(ctx, scope)
		if err != nil {
			fail(err, SectionVelocity)
			return
		}
		velocity := ComputeVelocity(events, s.cfg.VelocityPairs)
		mu.Lock()
		dash.VelocityByStage = velocity
		mu.Unlock()
	})

	s.runSection(ctx, &wg, func(ctx context.Context) {
		projects, err := s.loadDueProjects(ctx, scope)
		if err != nil {
			fail(err, SectionUpcoming)
			return
		}
		upcoming := ComputeUpcoming(projects, now, s.cfg.UpcomingLimit)
		mu.Lock()
		dash.UpcomingProjects = upcoming
		mu.Unlock()
	})

	s.runSection(ctx, &wg, func(ctx context.Context) {
		events, err := s.loadRecentEvents(ctx, scope)
		if err != nil {
			fail(err, SectionActivity)
			return
		}
		feed := ComputeActivity(events, now, s.cfg.ActivityLimit)
		mu.Lock()
		dash.ActivityFeed = feed
		mu.Unlock()
	})

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return dash, nil
}

// runSection executes one section task on the analytics pool, falling back
// to inline execution when no pool is available or submission is rejected.
// Every task gets its own deadline so one slow read cannot hold the join.
func (s *Service) runSection(ctx context.Context, wg *sync.WaitGroup, task func(ctx context.Context)) {
	wg.Add(1)
	wrapped := func(ctx context.Context) {
		defer wg.Done()
		sctx, cancel := context.WithTimeout(ctx, s.cfg.SectionTimeout)
		defer cancel()
		task(sctx)
	}

	if s.pools == nil {
		wrapped(ctx)
		return
	}
	if err := s.pools.Analytics.SubmitJoined(ctx, wrapped); err != nil {
		wrapped(ctx)
	}
}

func (s *Service) loadActiveProjects(ctx context.Context, scope access.Scope) ([]*ent.Project, error) {
	return s.entClient.Project.Query().
		Where(scope.ProjectPredicates()...).
		Where(
			project.ArchivedEQ(false),
			project.StatusIn(domain.ActiveStatuses()...),
		).
		All(ctx)
}

func (s *Service) loadDueProjects(ctx context.Context, scope access.Scope) ([]*ent.Project, error) {
	return s.entClient.Project.Query().
		Where(scope.ProjectPredicates()...).
		Where(
			project.ArchivedEQ(false),
			project.DueDateNotNil(),
		).
		Order(ent.Asc(project.FieldDueDate)).
		Limit(s.cfg.UpcomingLimit).
		All(ctx)
}

func (s *Service) loadInvoices(ctx context.Context, scope access.Scope) ([]*ent.Invoice, error) {
	return s.entClient.Invoice.Query().
		Where(invoice.HasProjectWith(scope.ProjectPredicates()...)).
		All(ctx)
}

func (s *Service) loadStageEvents(ctx context.Context, scope access.Scope) ([]*ent.StageEvent, error) {
	return s.entClient.StageEvent.Query().
		Where(stageevent.HasProjectWith(scope.ProjectPredicates()...)).
		Order(ent.Asc(stageevent.FieldProjectID), ent.Asc(stageevent.FieldCreatedAt)).
		All(ctx)
}

func (s *Service) loadRecentEvents(ctx context.Context, scope access.Scope) ([]*ent.StageEvent, error) {
	return s.entClient.StageEvent.Query().
		Where(stageevent.HasProjectWith(scope.ProjectPredicates()...)).
		WithProject().
		Order(ent.Desc(stageevent.FieldCreatedAt)).
		Limit(s.cfg.ActivityLimit).
		All(ctx)
}
