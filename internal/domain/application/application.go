package application

import (
	"context"
	"time"

	"freelancehub/internal/common"
	"freelancehub/internal/domain/contract"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Application is a freelancer's bid on a job. ContractID is set exactly when
// the application is accepted; a well-formed accepted application always
// carries the contract it produced. Rejection is terminal, a re-application is
// a new record.
type Application struct {
	ID             common.UUID  `json:"id"`
	JobID          common.UUID  `json:"job_id"`
	FreelancerID   common.UUID  `json:"freelancer_id"`
	ProposedRate   int64        `json:"proposed_rate"`
	Status         Status       `json:"status"`
	ContractID     *common.UUID `json:"contract_id,omitempty"`
	JobTitle       string       `json:"job_title,omitempty"`
	FreelancerName string       `json:"freelancer_name,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}

type Repository interface {
	Create(ctx context.Context, app Application) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Application, error)
	List(ctx context.Context) ([]Application, error)
	ListByJob(ctx context.Context, jobID common.UUID) ([]Application, error)
	ListByFreelancer(ctx context.Context, freelancerID common.UUID) ([]Application, error)
	ListByClient(ctx context.Context, clientID common.UUID) ([]Application, error)
	FindByJobAndFreelancer(ctx context.Context, jobID, freelancerID common.UUID) (*Application, error)

	// CommitAccept persists an accept decision as one transaction: the contract
	// row is inserted first, then the application flips pending→accepted with a
	// compare-and-set on status. A concurrent accept or reject that won the race
	// makes the whole commit fail with an invalid_state error and no contract.
	CommitAccept(ctx context.Context, app Application, c contract.Contract) (*Application, *contract.Contract, error)

	// RejectIfPending flips pending→rejected with the same compare-and-set rule.
	RejectIfPending(ctx context.Context, id common.UUID) (*Application, error)
}
