package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	marketplaceapp "github.com/precify/backend/internal/application/marketplace"
	"github.com/precify/backend/internal/domain/marketplace"
	"go.uber.org/zap"
)

// MarketplaceSource enumerates the marketplaces eligible for fee sync.
type MarketplaceSource interface {
	FindPlatformBound(ctx context.Context) ([]marketplace.Marketplace, error)
}

// FeeSyncer refreshes the fees of a single marketplace from its bound
// platform.
type FeeSyncer interface {
	SyncFees(ctx context.Context, tenantID, marketplaceID uuid.UUID, req marketplaceapp.SyncFeesRequest) (*marketplaceapp.MarketplaceResponse, error)
}

// FeeSyncConfig holds the scheduler settings.
type FeeSyncConfig struct {
	Interval      time.Duration
	JobTimeout    time.Duration
	MaxConcurrent int
}

// DefaultFeeSyncConfig returns a config suitable for most deployments.
func DefaultFeeSyncConfig() FeeSyncConfig {
	return FeeSyncConfig{
		Interval:      6 * time.Hour,
		JobTimeout:    30 * time.Second,
		MaxConcurrent: 4,
	}
}

// feeSyncJob is one marketplace to refresh.
type feeSyncJob struct {
	TenantID      uuid.UUID
	MarketplaceID uuid.UUID
	Name          string
}

// FeeSyncScheduler periodically refreshes commission and fixed fees for
// every active marketplace bound to an external platform. Each cycle
// enumerates the bound marketplaces and fans the work out to a fixed
// pool of workers.
type FeeSyncScheduler struct {
	config FeeSyncConfig
	source MarketplaceSource
	syncer FeeSyncer
	log    *zap.Logger

	mu      sync.Mutex
	running bool
	jobs    chan feeSyncJob
	stop    chan struct{}
	wg      sync.WaitGroup
}

// NewFeeSyncScheduler creates a scheduler. Zero config fields fall back
// to the defaults.
func NewFeeSyncScheduler(cfg FeeSyncConfig, source MarketplaceSource, syncer FeeSyncer, log *zap.Logger) *FeeSyncScheduler {
	defaults := DefaultFeeSyncConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = defaults.Interval
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = defaults.JobTimeout
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = defaults.MaxConcurrent
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &FeeSyncScheduler{
		config: cfg,
		source: source,
		syncer: syncer,
		log:    log,
	}
}

// Start launches the worker pool and the cycle ticker. The first cycle
// runs immediately.
func (s *FeeSyncScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrSchedulerAlreadyRunning
	}

	s.jobs = make(chan feeSyncJob, s.config.MaxConcurrent*4)
	s.stop = make(chan struct{})
	s.running = true

	for i := 0; i < s.config.MaxConcurrent; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	s.wg.Add(1)
	go s.loop()

	s.log.Info("Fee sync scheduler started",
		zap.Duration("interval", s.config.Interval),
		zap.Int("max_concurrent", s.config.MaxConcurrent),
	)
	return nil
}

// Stop shuts the scheduler down, waiting for in-flight jobs until ctx
// expires.
func (s *FeeSyncScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	s.running = false
	close(s.stop)
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.log.Info("Fee sync scheduler stopped")
		return nil
	case <-ctx.Done():
		s.log.Warn("Fee sync scheduler stop timed out")
		return ctx.Err()
	}
}

// IsRunning reports whether the scheduler is active.
func (s *FeeSyncScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// TriggerSync runs one enumeration cycle outside the regular schedule.
func (s *FeeSyncScheduler) TriggerSync(ctx context.Context) error {
	if !s.IsRunning() {
		return ErrSchedulerNotRunning
	}
	return s.runCycle(ctx)
}

func (s *FeeSyncScheduler) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	s.cycle()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.cycle()
		}
	}
}

func (s *FeeSyncScheduler) cycle() {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.JobTimeout)
	defer cancel()

	if err := s.runCycle(ctx); err != nil {
		s.log.Error("Fee sync cycle failed", zap.Error(err))
	}
}

// runCycle enumerates the platform-bound marketplaces and queues one
// job per marketplace. Marketplaces that do not fit in the queue are
// skipped until the next cycle.
func (s *FeeSyncScheduler) runCycle(ctx context.Context) error {
	marketplaces, err := s.source.FindPlatformBound(ctx)
	if err != nil {
		return err
	}
	if len(marketplaces) == 0 {
		return nil
	}

	queued := 0
	for _, mp := range marketplaces {
		job := feeSyncJob{
			TenantID:      mp.TenantID,
			MarketplaceID: mp.ID,
			Name:          mp.Name,
		}
		select {
		case s.jobs <- job:
			queued++
		case <-s.stop:
			return ErrSchedulerNotRunning
		default:
			s.log.Warn("Fee sync queue full, deferring marketplace",
				zap.String("marketplace_id", mp.ID.String()),
				zap.String("name", mp.Name),
			)
		}
	}

	s.log.Info("Fee sync cycle queued",
		zap.Int("marketplaces", len(marketplaces)),
		zap.Int("queued", queued),
	)
	return nil
}

// worker drains the queue until the stop signal. Jobs still queued at
// shutdown are dropped; the next cycle re-enumerates everything anyway.
func (s *FeeSyncScheduler) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case <-s.stop:
			return
		case job := <-s.jobs:
			s.processJob(id, job)
		}
	}
}

func (s *FeeSyncScheduler) processJob(workerID int, job feeSyncJob) {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.JobTimeout)
	defer cancel()

	start := time.Now()
	// Zero reference price lets the provider use its site default.
	_, err := s.syncer.SyncFees(ctx, job.TenantID, job.MarketplaceID, marketplaceapp.SyncFeesRequest{})
	if err != nil {
		s.log.Error("Fee sync failed",
			zap.Int("worker", workerID),
			zap.String("marketplace_id", job.MarketplaceID.String()),
			zap.String("name", job.Name),
			zap.Error(err),
		)
		return
	}

	s.log.Info("Fee sync completed",
		zap.Int("worker", workerID),
		zap.String("marketplace_id", job.MarketplaceID.String()),
		zap.String("name", job.Name),
		zap.Duration("duration", time.Since(start)),
	)
}
