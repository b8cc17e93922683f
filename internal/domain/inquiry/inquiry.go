package inquiry

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

// Inquiry is a client-initiated direct engagement request to a freelancer,
// bypassing the job/application path. Accepting one leads to a contract
// arranged outside this service.
type Inquiry struct {
	ID           common.UUID `json:"id"`
	ClientID     common.UUID `json:"client_id"`
	FreelancerID common.UUID `json:"freelancer_id"`
	Description  string      `json:"description"`
	Status       Status      `json:"status"`
	ClientName   string      `json:"client_name,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

type Repository interface {
	Create(ctx context.Context, inq Inquiry) (*Inquiry, error)
	GetByID(ctx context.Context, id common.UUID) (*Inquiry, error)
	ListByClient(ctx context.Context, clientID common.UUID) ([]Inquiry, error)
	ListByFreelancer(ctx context.Context, freelancerID common.UUID) ([]Inquiry, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) (*Inquiry, error)
}
