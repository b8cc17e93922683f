package app

import (
	"context"

	"github.com/go-playground/validator/v10"

	"freelancehub/internal/common"
	"freelancehub/internal/domain/job"
)

var validate = validator.New()

type JobService struct {
	repo job.Repository
}

func NewJobService(repo job.Repository) *JobService {
	return &JobService{repo: repo}
}

type CreateJobInput struct {
	Title      string   `json:"title" validate:"required,min=3"`
	Category   string   `json:"category" validate:"required"`
	BudgetMin  int64    `json:"budget_min" validate:"gte=0"`
	BudgetMax  int64    `json:"budget_max" validate:"gte=0"`
	BudgetType string   `json:"budget_type" validate:"required,oneof=fixed hourly"`
	Skills     []string `json:"skills" validate:"required,min=1,dive,required"`
}

func (s *JobService) Create(ctx context.Context, clientID common.UUID, input CreateJobInput) (*job.Job, error) {
	if err := validate.Struct(input); err != nil {
		return nil, common.NewError(common.CodeValidation, "invalid job", err)
	}
	if input.BudgetMax < input.BudgetMin {
		return nil, common.NewValidationError("invalid job", map[string]string{"budget_max": "budget_max must be at least budget_min"})
	}
	j := job.Job{
		ClientID:   clientID,
		Title:      input.Title,
		Category:   input.Category,
		Status:     job.StatusOpen,
		BudgetMin:  input.BudgetMin,
		BudgetMax:  input.BudgetMax,
		BudgetType: job.BudgetType(input.BudgetType),
		Skills:     input.Skills,
	}
	return s.repo.Create(ctx, j)
}

func (s *JobService) Get(ctx context.Context, id common.UUID) (*job.Job, error) {
	return s.repo.GetByID(ctx, id)
}

// Browse lists jobs still open for applications.
func (s *JobService) Browse(ctx context.Context) ([]job.Job, error) {
	return s.repo.ListOpen(ctx)
}

func (s *JobService) ListByClient(ctx context.Context, clientID common.UUID) ([]job.Job, error) {
	return s.repo.ListByClient(ctx, clientID)
}
