package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"liiga-goalie-service/internal/domain"
)

// StubProvider is a test double for providers.GoalieProvider.
type StubProvider struct {
	mu      sync.Mutex
	Records []domain.Record
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}

	// Block, when non-nil, is received from before each fetch returns so
	// tests can hold a cycle open.
	Block chan struct{}
}

// FetchGoalies returns the configured records and error while tracking calls.
func (s *StubProvider) FetchGoalies(ctx context.Context) ([]domain.Record, error) {
	_ = ctx
	s.Calls.Add(1)
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	if s.Block != nil {
		<-s.Block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Records, s.Err
}

// Set atomically swaps the records and error returned by future fetches.
func (s *StubProvider) Set(records []domain.Record, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Records = records
	s.Err = err
}
