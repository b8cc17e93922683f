package app

import (
	"context"

	"freelancehub/internal/common"
	"freelancehub/internal/domain/inquiry"
	"freelancehub/internal/domain/user"
	"freelancehub/internal/lifecycle"
)

type InquiryService struct {
	repo  inquiry.Repository
	users user.Repository
}

func NewInquiryService(repo inquiry.Repository, users user.Repository) *InquiryService {
	return &InquiryService{repo: repo, users: users}
}

type CreateInquiryInput struct {
	FreelancerID string `json:"freelancer_id" validate:"required,uuid"`
	Description  string `json:"description" validate:"required,min=20"`
}

// Create opens a direct engagement request from a client to a freelancer.
func (s *InquiryService) Create(ctx context.Context, clientID common.UUID, input CreateInquiryInput) (*inquiry.Inquiry, error) {
	if err := validate.Struct(input); err != nil {
		return nil, common.NewError(common.CodeValidation, "invalid inquiry", err)
	}
	freelancerID, err := common.ParseUUID(input.FreelancerID)
	if err != nil {
		return nil, common.NewValidationError("invalid inquiry", map[string]string{"freelancer_id": "invalid uuid"})
	}
	target, err := s.users.GetByID(ctx, freelancerID)
	if err != nil {
		return nil, err
	}
	if target.Role != user.RoleFreelancer {
		return nil, common.NewValidationError("invalid inquiry", map[string]string{"freelancer_id": "recipient is not a freelancer"})
	}
	inq := inquiry.Inquiry{
		ClientID:     clientID,
		FreelancerID: freelancerID,
		Description:  input.Description,
		Status:       inquiry.StatusPending,
	}
	return s.repo.Create(ctx, inq)
}

// Accept marks the inquiry accepted. The contract that usually follows is
// arranged outside this service.
func (s *InquiryService) Accept(ctx context.Context, inquiryID, freelancerID common.UUID) (*inquiry.Inquiry, error) {
	inq, err := s.repo.GetByID(ctx, inquiryID)
	if err != nil {
		return nil, err
	}
	if inq.FreelancerID != freelancerID {
		return nil, common.NewError(common.CodeForbidden, "inquiry is addressed to another freelancer", nil)
	}
	updated, err := lifecycle.AcceptInquiry(*inq)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateStatus(ctx, inquiryID, updated.Status)
}

func (s *InquiryService) Reject(ctx context.Context, inquiryID, freelancerID common.UUID) (*inquiry.Inquiry, error) {
	inq, err := s.repo.GetByID(ctx, inquiryID)
	if err != nil {
		return nil, err
	}
	if inq.FreelancerID != freelancerID {
		return nil, common.NewError(common.CodeForbidden, "inquiry is addressed to another freelancer", nil)
	}
	updated, err := lifecycle.RejectInquiry(*inq)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateStatus(ctx, inquiryID, updated.Status)
}

func (s *InquiryService) ListByClient(ctx context.Context, clientID common.UUID) ([]inquiry.Inquiry, error) {
	return s.repo.ListByClient(ctx, clientID)
}

func (s *InquiryService) ListByFreelancer(ctx context.Context, freelancerID common.UUID) ([]inquiry.Inquiry, error) {
	return s.repo.ListByFreelancer(ctx, freelancerID)
}
