package payment

import (
	"context"
	"time"

	"freelancehub/internal/common"
)

// Payment records an intent to pay for an accepted submission. Append-only and
// immutable once created; real money movement happens in an external provider.
// SubmissionID anchors the one-payment-per-accepted-submission rule.
type Payment struct {
	ID           common.UUID `json:"id"`
	ContractID   common.UUID `json:"contract_id"`
	SubmissionID common.UUID `json:"submission_id"`
	ClientID     common.UUID `json:"client_id"`
	FreelancerID common.UUID `json:"freelancer_id"`
	Amount       int64       `json:"amount"`
	CreatedAt    time.Time   `json:"created_at"`
}

type Repository interface {
	Create(ctx context.Context, p Payment) (*Payment, error)
	ListByContract(ctx context.Context, contractID common.UUID) ([]Payment, error)
	ExistsForSubmission(ctx context.Context, submissionID common.UUID) (bool, error)
}
