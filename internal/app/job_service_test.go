package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelancehub/internal/common"
	"freelancehub/internal/domain/job"
)

func validJobInput() CreateJobInput {
	return CreateJobInput{
		Title:      "Landing page redesign",
		Category:   "web",
		BudgetMin:  100000,
		BudgetMax:  250000,
		BudgetType: "fixed",
		Skills:     []string{"figma", "react"},
	}
}

func TestJobServiceCreate(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewJobService(repo)
	clientID := common.NewUUID()

	j, err := svc.Create(context.Background(), clientID, validJobInput())
	require.NoError(t, err)
	assert.Equal(t, job.StatusOpen, j.Status)
	assert.Equal(t, clientID, j.ClientID)
	assert.Equal(t, job.BudgetFixed, j.BudgetType)
	assert.False(t, j.ID.IsZero())
}

func TestJobServiceCreateValidation(t *testing.T) {
	svc := NewJobService(newFakeJobRepo())
	clientID := common.NewUUID()

	cases := map[string]func(*CreateJobInput){
		"short title":      func(in *CreateJobInput) { in.Title = "ab" },
		"missing category": func(in *CreateJobInput) { in.Category = "" },
		"bad budget type":  func(in *CreateJobInput) { in.BudgetType = "retainer" },
		"no skills":        func(in *CreateJobInput) { in.Skills = nil },
		"blank skill":      func(in *CreateJobInput) { in.Skills = []string{""} },
		"inverted budget":  func(in *CreateJobInput) { in.BudgetMin = 300000 },
		"negative budget":  func(in *CreateJobInput) { in.BudgetMin = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validJobInput()
			mutate(&in)
			_, err := svc.Create(context.Background(), clientID, in)
			assert.Equal(t, common.CodeValidation, common.CodeOf(err))
		})
	}
}

func TestJobServiceBrowseOpenOnly(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewJobService(repo)
	repo.add(job.Job{ID: common.NewUUID(), Status: job.StatusOpen})
	repo.add(job.Job{ID: common.NewUUID(), Status: job.StatusInProgress})
	repo.add(job.Job{ID: common.NewUUID(), Status: job.StatusCancelled})

	open, err := svc.Browse(context.Background())
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, job.StatusOpen, open[0].Status)
}

func TestJobServiceListByClient(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewJobService(repo)
	clientID := common.NewUUID()
	repo.add(job.Job{ID: common.NewUUID(), ClientID: clientID, Status: job.StatusOpen})
	repo.add(job.Job{ID: common.NewUUID(), ClientID: common.NewUUID(), Status: job.StatusOpen})

	mine, err := svc.ListByClient(context.Background(), clientID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}
