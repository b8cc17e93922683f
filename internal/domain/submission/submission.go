package submission

import (
	"context"
	"time"

	"freelancehub/internal/common"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Submission is freelancer-delivered work against an active contract. A
// rejected submission stays as history; the freelancer resubmits with a new
// record. Feedback is filled by the client on review.
type Submission struct {
	ID           common.UUID `json:"id"`
	ContractID   common.UUID `json:"contract_id"`
	FreelancerID common.UUID `json:"freelancer_id"`
	ClientID     common.UUID `json:"client_id"`
	Notes        string      `json:"notes"`
	Files        []string    `json:"files"`
	Status       Status      `json:"status"`
	Feedback     string      `json:"feedback,omitempty"`
	SubmittedAt  time.Time   `json:"submitted_at"`
}

type Repository interface {
	Create(ctx context.Context, sub Submission) (*Submission, error)
	GetByID(ctx context.Context, id common.UUID) (*Submission, error)
	ListByContract(ctx context.Context, contractID common.UUID) ([]Submission, error)
	ListByClient(ctx context.Context, clientID common.UUID) ([]Submission, error)
	UpdateReview(ctx context.Context, id common.UUID, status Status, feedback string) (*Submission, error)
}
