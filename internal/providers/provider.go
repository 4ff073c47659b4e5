package providers

import (
	"context"

	"liiga-goalie-service/internal/domain"
)

// GoalieProvider defines how upstream goaltender records are fetched.
// Implementations return the raw records already filtered to goaltenders; an
// empty slice with a nil error is a valid outcome (the upstream had no
// recognizable goalie data).
type GoalieProvider interface {
	FetchGoalies(ctx context.Context) ([]domain.Record, error)
}
