package store

import (
	"context"
	"time"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// Run is one stored policy execution.
type Run struct {
	ID          string                     `json:"id"`
	Policy      string                     `json:"policy"`
	TimeQuantum int                        `json:"time_quantum,omitempty"`
	Request     requests.ScheduleRequests  `json:"request"`
	Result      responses.ScheduleResponse `json:"result"`
	CreatedAt   time.Time                  `json:"created_at"`
}

// Store persists simulation runs.
type Store interface {
	CreateRun(ctx context.Context, run *Run) error
	GetRun(ctx context.Context, id string) (*Run, error)
	ListRuns(ctx context.Context, limit int) ([]*Run, error)

	Close() error
	Migrate(ctx context.Context) error
}
