package server

import (
	"context"
	"time"

	"liiga-goalie-service/internal/coordinator"
	"liiga-goalie-service/internal/domain"
)

// refreshLoop defines the minimal coordinator behavior the server needs.
type refreshLoop interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Refresh(ctx context.Context) bool
	Status() coordinator.Status
	Result() *domain.RefreshResult
	LastSuccess() time.Time
}
