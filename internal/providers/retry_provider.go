package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"liiga-goalie-service/internal/domain"
	"liiga-goalie-service/internal/metrics"
)

const (
	defaultMaxRetries     = 3
	defaultInitialBackoff = 200 * time.Millisecond
)

// retryingProvider wraps a GoalieProvider with exponential-backoff retries.
// Retries happen within a single refresh cycle; a cycle that exhausts its
// retries fails as a whole and the next scheduled cycle tries again.
type retryingProvider struct {
	inner          GoalieProvider
	logger         *slog.Logger
	metrics        *metrics.Recorder
	name           string
	maxRetries     uint64
	initialBackoff time.Duration
}

// NewRetryingProvider wraps the given provider with retries. Non-positive
// maxRetries/initialBackoff fall back to defaults.
func NewRetryingProvider(inner GoalieProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxRetries int, initialBackoff time.Duration) GoalieProvider {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if initialBackoff <= 0 {
		initialBackoff = defaultInitialBackoff
	}
	return &retryingProvider{
		inner:          inner,
		logger:         logger,
		metrics:        recorder,
		name:           name,
		maxRetries:     uint64(maxRetries),
		initialBackoff: initialBackoff,
	}
}

func (r *retryingProvider) FetchGoalies(ctx context.Context) ([]domain.Record, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}

	var records []domain.Record
	op := func() error {
		start := time.Now()
		fetched, err := r.inner.FetchGoalies(ctx)
		if r.metrics != nil {
			r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		}
		if err != nil {
			return err
		}
		records = fetched
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.initialBackoff
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, r.maxRetries), ctx)

	notify := func(err error, delay time.Duration) {
		if r.logger != nil {
			r.logger.Warn("provider fetch retry",
				slog.String("provider", r.name),
				slog.Int64("retry_in_ms", delay.Milliseconds()),
				"error", err,
			)
		}
	}

	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		if r.logger != nil {
			r.logger.Warn("provider fetch failed", slog.String("provider", r.name), "error", err)
		}
		return nil, err
	}
	return records, nil
}
