package job

import (
	"context"
	"time"

	"freelancehub/internal/common"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

type BudgetType string

const (
	BudgetFixed  BudgetType = "fixed"
	BudgetHourly BudgetType = "hourly"
)

// Job is a posted work opportunity. Budget amounts are in cents. ClientName is
// a denormalized join field filled on reads, never written back.
type Job struct {
	ID         common.UUID `json:"id"`
	ClientID   common.UUID `json:"client_id"`
	Title      string      `json:"title"`
	Category   string      `json:"category"`
	Status     Status      `json:"status"`
	BudgetMin  int64       `json:"budget_min"`
	BudgetMax  int64       `json:"budget_max"`
	BudgetType BudgetType  `json:"budget_type"`
	Skills     []string    `json:"skills"`
	ClientName string      `json:"client_name,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

type Repository interface {
	Create(ctx context.Context, j Job) (*Job, error)
	GetByID(ctx context.Context, id common.UUID) (*Job, error)
	List(ctx context.Context) ([]Job, error)
	ListOpen(ctx context.Context) ([]Job, error)
	ListByClient(ctx context.Context, clientID common.UUID) ([]Job, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) (*Job, error)
}
