package app

import (
	"context"
	"time"

	"freelancehub/internal/common"
	"freelancehub/internal/domain/contract"
	"freelancehub/internal/lifecycle"
)

type ContractService struct {
	repo   contract.Repository
	logger Logger
	now    func() time.Time
}

func NewContractService(repo contract.Repository, logger Logger) *ContractService {
	return &ContractService{repo: repo, logger: logger, now: time.Now}
}

// Complete closes the client's own active contract as delivered. Submissions
// and payments against it stay readable as history.
func (s *ContractService) Complete(ctx context.Context, contractID, clientID common.UUID) (*contract.Contract, error) {
	return s.close(ctx, contractID, clientID, lifecycle.CompleteContract)
}

// Terminate ends the client's own active contract early.
func (s *ContractService) Terminate(ctx context.Context, contractID, clientID common.UUID) (*contract.Contract, error) {
	return s.close(ctx, contractID, clientID, lifecycle.TerminateContract)
}

func (s *ContractService) close(ctx context.Context, contractID, clientID common.UUID, transition func(contract.Contract, time.Time) (contract.Contract, error)) (*contract.Contract, error) {
	c, err := s.repo.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if c.ClientID != clientID {
		return nil, common.NewError(common.CodeForbidden, "contract belongs to another client", nil)
	}
	closed, err := transition(*c, s.now())
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.UpdateStatus(ctx, contractID, closed.Status, closed.EndDate)
	if err != nil {
		return nil, err
	}
	s.logger.Info("contract closed", "contract_id", contractID.String(), "status", string(updated.Status))
	return updated, nil
}
