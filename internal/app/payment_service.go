package app

import (
	"context"
	"time"

	"freelancehub/internal/common"
	"freelancehub/internal/domain/contract"
	"freelancehub/internal/domain/payment"
	"freelancehub/internal/domain/submission"
	"freelancehub/internal/lifecycle"
)

type PaymentService struct {
	repo        payment.Repository
	contracts   contract.Repository
	submissions submission.Repository
	logger      Logger
	now         func() time.Time
}

func NewPaymentService(repo payment.Repository, contracts contract.Repository, submissions submission.Repository, logger Logger) *PaymentService {
	return &PaymentService{repo: repo, contracts: contracts, submissions: submissions, logger: logger, now: time.Now}
}

// Initiate records a payment intent for the contract's most recent accepted
// submission. One payment per accepted submission; the check here is backed by
// a unique index on payments.submission_id, so a racing duplicate still fails
// with payment_conflict rather than writing a second row.
func (s *PaymentService) Initiate(ctx context.Context, contractID, clientID common.UUID, amount int64) (*payment.Payment, error) {
	c, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if c.ClientID != clientID {
		return nil, common.NewError(common.CodeForbidden, "contract belongs to another client", nil)
	}
	subs, err := s.submissions.ListByContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	accepted := latestAccepted(subs)
	if accepted == nil {
		return nil, common.NewError(common.CodeInvalidState, "contract has no accepted submission", nil)
	}
	alreadyPaid, err := s.repo.ExistsForSubmission(ctx, accepted.ID)
	if err != nil {
		return nil, err
	}
	p, err := lifecycle.InitiatePayment(*c, *accepted, alreadyPaid, amount, s.now())
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.logger.Info("payment initiated", "payment_id", created.ID.String(), "contract_id", contractID.String(), "amount", created.Amount)
	return created, nil
}

func (s *PaymentService) ListByContract(ctx context.Context, contractID, viewerID common.UUID) ([]payment.Payment, error) {
	c, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if c.ClientID != viewerID && c.FreelancerID != viewerID {
		return nil, common.NewError(common.CodeForbidden, "contract belongs to other parties", nil)
	}
	return s.repo.ListByContract(ctx, contractID)
}

func latestAccepted(subs []submission.Submission) *submission.Submission {
	var latest *submission.Submission
	for i := range subs {
		if subs[i].Status != submission.StatusAccepted {
			continue
		}
		if latest == nil || subs[i].SubmittedAt.After(latest.SubmittedAt) {
			latest = &subs[i]
		}
	}
	return latest
}
