package app

import (
	"context"
	"time"

	"freelancehub/internal/common"
	"freelancehub/internal/domain/contract"
	"freelancehub/internal/domain/submission"
	"freelancehub/internal/lifecycle"
)

type SubmissionService struct {
	repo      submission.Repository
	contracts contract.Repository
	now       func() time.Time
}

func NewSubmissionService(repo submission.Repository, contracts contract.Repository) *SubmissionService {
	return &SubmissionService{repo: repo, contracts: contracts, now: time.Now}
}

// Submit creates a pending submission against the freelancer's own active
// contract. Earlier submissions stay as history.
func (s *SubmissionService) Submit(ctx context.Context, contractID, freelancerID common.UUID, notes string, files []string) (*submission.Submission, error) {
	c, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if c.FreelancerID != freelancerID {
		return nil, common.NewError(common.CodeForbidden, "contract belongs to another freelancer", nil)
	}
	sub, err := lifecycle.SubmitProject(*c, notes, files, s.now())
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, sub)
}

// Accept marks a pending submission accepted on behalf of the reviewing
// client. The contract stays active; completion is a separate action.
func (s *SubmissionService) Accept(ctx context.Context, submissionID, clientID common.UUID) (*submission.Submission, error) {
	sub, err := s.repo.GetByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if sub.ClientID != clientID {
		return nil, common.NewError(common.CodeForbidden, "submission belongs to another client", nil)
	}
	reviewed, err := lifecycle.AcceptSubmission(*sub)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateReview(ctx, submissionID, reviewed.Status, reviewed.Feedback)
}

// RequestChanges rejects a pending submission with feedback, returning control
// to the freelancer for a resubmission.
func (s *SubmissionService) RequestChanges(ctx context.Context, submissionID, clientID common.UUID, feedback string) (*submission.Submission, error) {
	sub, err := s.repo.GetByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if sub.ClientID != clientID {
		return nil, common.NewError(common.CodeForbidden, "submission belongs to another client", nil)
	}
	reviewed, err := lifecycle.RequestChanges(*sub, feedback)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateReview(ctx, submissionID, reviewed.Status, reviewed.Feedback)
}

// ListByClient returns every submission awaiting or past the client's review,
// across all of their contracts.
func (s *SubmissionService) ListByClient(ctx context.Context, clientID common.UUID) ([]submission.Submission, error) {
	return s.repo.ListByClient(ctx, clientID)
}

func (s *SubmissionService) ListByContract(ctx context.Context, contractID, viewerID common.UUID) ([]submission.Submission, error) {
	c, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if c.ClientID != viewerID && c.FreelancerID != viewerID {
		return nil, common.NewError(common.CodeForbidden, "contract belongs to other parties", nil)
	}
	return s.repo.ListByContract(ctx, contractID)
}
