package contract

import (
	"context"
	"time"

	"freelancehub/internal/common"
)

type Status string

const (
	StatusActive     Status = "active"
	StatusCompleted  Status = "completed"
	StatusTerminated Status = "terminated"
)

// Contract is the binding engagement created when an application is accepted.
// ApplicationID ties it back to the accepting application; at most one contract
// exists per accepted application.
type Contract struct {
	ID             common.UUID `json:"id"`
	JobID          common.UUID `json:"job_id"`
	ApplicationID  common.UUID `json:"application_id"`
	FreelancerID   common.UUID `json:"freelancer_id"`
	ClientID       common.UUID `json:"client_id"`
	Rate           int64       `json:"rate"`
	Status         Status      `json:"status"`
	StartDate      time.Time   `json:"start_date"`
	EndDate        *time.Time  `json:"end_date,omitempty"`
	JobTitle       string      `json:"job_title,omitempty"`
	ClientName     string      `json:"client_name,omitempty"`
	FreelancerName string      `json:"freelancer_name,omitempty"`
}

type Repository interface {
	GetByID(ctx context.Context, id common.UUID) (*Contract, error)
	List(ctx context.Context) ([]Contract, error)
	ListByClient(ctx context.Context, clientID common.UUID) ([]Contract, error)
	ListByFreelancer(ctx context.Context, freelancerID common.UUID) ([]Contract, error)
	FindByJobAndFreelancer(ctx context.Context, jobID, freelancerID common.UUID) (*Contract, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status, endDate *time.Time) (*Contract, error)
}
