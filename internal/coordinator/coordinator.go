package coordinator

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"liiga-goalie-service/internal/domain"
	"liiga-goalie-service/internal/logging"
	"liiga-goalie-service/internal/metrics"
	"liiga-goalie-service/internal/providers"
)

// Liiga stats move slowly; hourly keeps well inside upstream quotas.
const defaultInterval = time.Hour

// Coordinator runs the fetch-normalize-build cycle on an interval and owns
// the last good RefreshResult. The result is replaced wholesale on success
// and read lock-free through an atomic pointer, so consumers never observe a
// half-updated cross-category state. Failed cycles leave the previous result
// and its timestamp untouched.
type Coordinator struct {
	provider   providers.GoalieProvider
	categories []string
	topN       int
	logger     *slog.Logger
	metrics    *metrics.Recorder
	interval   time.Duration
	now        func() time.Time

	result atomic.Pointer[domain.RefreshResult]

	ticker     *time.Ticker
	done       chan struct{}
	stopOnce   sync.Once
	startMu    sync.Mutex
	started    bool
	refreshing atomic.Bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	LastCycleOK         bool
}

// IsReady reports whether the coordinator has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Coordinator with sane defaults.
func New(provider providers.GoalieProvider, categories []string, topN int, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Coordinator {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Coordinator{
		provider:   provider,
		categories: categories,
		topN:       topN,
		logger:     logger,
		metrics:    recorder,
		interval:   interval,
		now:        time.Now,
		done:       make(chan struct{}),
	}
}

// Start begins refreshing until the context is cancelled or Stop is called.
// The first refresh runs immediately to warm data on boot.
func (c *Coordinator) Start(ctx context.Context) {
	c.startMu.Lock()
	if c.started {
		c.startMu.Unlock()
		return
	}
	c.started = true
	c.startMu.Unlock()

	c.ticker = time.NewTicker(c.interval)

	go func() {
		logging.Info(c.logger, "coordinator started", slog.Int64(logging.FieldDurationMS, c.interval.Milliseconds()))
		c.Refresh(ctx)

		for {
			select {
			case <-ctx.Done():
				c.stopTicker()
				logging.Info(c.logger, "coordinator stopped")
				return
			case <-c.done:
				c.stopTicker()
				logging.Info(c.logger, "coordinator stopped")
				return
			case <-c.ticker.C:
				c.Refresh(ctx)
			}
		}
	}()
}

// Stop halts the refresh loop.
func (c *Coordinator) Stop(ctx context.Context) error {
	_ = ctx
	c.stopOnce.Do(func() {
		close(c.done)
		c.stopTicker()
	})
	return nil
}

// Refresh runs one fetch-normalize-build cycle. A refresh triggered while one
// is already in flight is a no-op, so timer ticks and on-demand triggers can
// never overlap. It reports whether a cycle actually ran.
func (c *Coordinator) Refresh(ctx context.Context) bool {
	if !c.refreshing.CompareAndSwap(false, true) {
		return false
	}
	defer c.refreshing.Store(false)

	start := c.now()
	c.recordAttempt(start)

	goalies, err := c.provider.FetchGoalies(ctx)
	if c.metrics != nil {
		c.metrics.RecordRefreshCycle(time.Since(start), err)
	}
	if err != nil {
		logging.Error(c.logger, "refresh fetch failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		c.recordFailure(err, start)
		return true
	}
	if ctx.Err() != nil {
		// Abandoned cycle: never replace the last good result partway through shutdown.
		c.recordFailure(ctx.Err(), start)
		return true
	}

	boards := domain.BuildLeaderboards(goalies, c.categories, c.topN)
	c.result.Store(domain.NewRefreshResult(boards, c.now()))
	c.recordSuccess(start)

	logging.Info(c.logger, "refreshed leaderboards",
		logging.FieldCount, len(goalies),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return true
}

// Result returns the most recent successful RefreshResult, which may be stale
// if the last cycle failed, or nil before the first success.
func (c *Coordinator) Result() *domain.RefreshResult {
	return c.result.Load()
}

// LastSuccess returns the timestamp of the last successful cycle, zero before
// the first success.
func (c *Coordinator) LastSuccess() time.Time {
	c.statusMu.RLock()
	defer c.statusMu.RUnlock()
	return c.status.LastSuccess
}

// Status returns a snapshot of the coordinator's recent health.
func (c *Coordinator) Status() Status {
	c.statusMu.RLock()
	defer c.statusMu.RUnlock()
	return c.status
}

func (c *Coordinator) stopTicker() {
	if c.ticker != nil {
		c.ticker.Stop()
	}
}

func (c *Coordinator) recordAttempt(at time.Time) {
	c.statusMu.Lock()
	defer c.statusMu.Unlock()
	c.status.LastAttempt = at
}

func (c *Coordinator) recordSuccess(at time.Time) {
	c.statusMu.Lock()
	defer c.statusMu.Unlock()
	c.status.ConsecutiveFailures = 0
	c.status.LastError = ""
	c.status.LastSuccess = at
	c.status.LastCycleOK = true
}

func (c *Coordinator) recordFailure(err error, at time.Time) {
	c.statusMu.Lock()
	defer c.statusMu.Unlock()
	c.status.ConsecutiveFailures++
	if err != nil {
		c.status.LastError = err.Error()
	}
	c.status.LastAttempt = at
	c.status.LastCycleOK = false
}
