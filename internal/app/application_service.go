package app

import (
	"context"
	"time"

	"freelancehub/internal/common"
	"freelancehub/internal/domain/application"
	"freelancehub/internal/domain/contract"
	"freelancehub/internal/domain/job"
	"freelancehub/internal/lifecycle"
)

type ApplicationService struct {
	repo      application.Repository
	jobs      job.Repository
	contracts contract.Repository
	logger    Logger
	now       func() time.Time
}

func NewApplicationService(repo application.Repository, jobs job.Repository, contracts contract.Repository, logger Logger) *ApplicationService {
	return &ApplicationService{repo: repo, jobs: jobs, contracts: contracts, logger: logger, now: time.Now}
}

// Apply creates a pending application for an open job. One application per
// (job, freelancer); a rejected freelancer re-applies with a new record only
// because the old one is terminal, never by reopening it.
func (s *ApplicationService) Apply(ctx context.Context, jobID, freelancerID common.UUID, proposedRate int64) (*application.Application, error) {
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.Status != job.StatusOpen {
		return nil, common.NewError(common.CodeInvalidState, "job is not open for applications", nil)
	}
	if j.ClientID == freelancerID {
		return nil, common.NewError(common.CodeForbidden, "cannot apply to your own job", nil)
	}
	if proposedRate <= 0 {
		return nil, common.NewValidationError("invalid application", map[string]string{"proposed_rate": "proposed_rate must be positive"})
	}
	if existing, err := s.repo.FindByJobAndFreelancer(ctx, jobID, freelancerID); err == nil && existing.Status == application.StatusPending {
		return nil, common.NewError(common.CodeConflict, "already applied", nil)
	} else if err != nil && !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	app := application.Application{
		JobID:        jobID,
		FreelancerID: freelancerID,
		ProposedRate: proposedRate,
		Status:       application.StatusPending,
	}
	return s.repo.Create(ctx, app)
}

// Accept runs the accept transition and commits it as a single transaction.
// The contract row is written before the application status flips, and the
// flip is a compare-and-set on pending, so a concurrent accept or reject loses
// cleanly with invalid_state instead of minting a second contract.
func (s *ApplicationService) Accept(ctx context.Context, applicationID, clientID common.UUID) (*application.Application, *contract.Contract, error) {
	app, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, nil, err
	}
	j, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, nil, err
	}
	if j.ClientID != clientID {
		return nil, nil, common.NewError(common.CodeForbidden, "application belongs to another client's job", nil)
	}
	conflicting, err := s.contracts.FindByJobAndFreelancer(ctx, app.JobID, app.FreelancerID)
	if err != nil && !common.Is(err, common.CodeNotFound) {
		return nil, nil, err
	}
	accepted, c, err := lifecycle.AcceptApplication(*app, j.ClientID, conflicting, s.now())
	if err != nil {
		return nil, nil, err
	}
	committedApp, committedContract, err := s.repo.CommitAccept(ctx, accepted, c)
	if err != nil {
		return nil, nil, err
	}
	// The job moving to in_progress is a follow-up, not part of the atomic
	// accept pair; a failure here leaves a consistent accept in place.
	if _, err := s.jobs.UpdateStatus(ctx, j.ID, job.StatusInProgress); err != nil {
		s.logger.Error("job status follow-up failed", "job_id", j.ID.String(), "error", err.Error())
	}
	s.logger.Info("application accepted", "application_id", committedApp.ID.String(), "contract_id", committedContract.ID.String())
	return committedApp, committedContract, nil
}

// Reject flips a pending application to rejected via the same compare-and-set
// rule. No contract is created on this path.
func (s *ApplicationService) Reject(ctx context.Context, applicationID, clientID common.UUID) (*application.Application, error) {
	app, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	j, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	if j.ClientID != clientID {
		return nil, common.NewError(common.CodeForbidden, "application belongs to another client's job", nil)
	}
	if _, err := lifecycle.RejectApplication(*app); err != nil {
		return nil, err
	}
	return s.repo.RejectIfPending(ctx, applicationID)
}

func (s *ApplicationService) ListByJob(ctx context.Context, jobID, clientID common.UUID) ([]application.Application, error) {
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.ClientID != clientID {
		return nil, common.NewError(common.CodeForbidden, "job belongs to another client", nil)
	}
	return s.repo.ListByJob(ctx, jobID)
}

func (s *ApplicationService) ListByFreelancer(ctx context.Context, freelancerID common.UUID) ([]application.Application, error) {
	return s.repo.ListByFreelancer(ctx, freelancerID)
}

func (s *ApplicationService) ListByClient(ctx context.Context, clientID common.UUID) ([]application.Application, error) {
	return s.repo.ListByClient(ctx, clientID)
}
