package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"freelancehub/internal/activity"
	"freelancehub/internal/common"
	"freelancehub/internal/domain/application"
	"freelancehub/internal/domain/contract"
	"freelancehub/internal/domain/inquiry"
	"freelancehub/internal/domain/job"
	"freelancehub/internal/domain/user"
)

func TestBuildAdminView(t *testing.T) {
	users := []user.User{
		{ID: common.NewUUID(), Role: user.RoleClient},
		{ID: common.NewUUID(), Role: user.RoleFreelancer},
		{ID: common.NewUUID(), Role: user.RoleFreelancer},
		{ID: common.NewUUID(), Role: user.RoleAdmin},
	}
	jobs := []job.Job{
		{Status: job.StatusOpen},
		{Status: job.StatusOpen},
		{Status: job.StatusInProgress},
		{Status: job.StatusCompleted},
		{Status: job.StatusCancelled},
	}
	apps := []application.Application{
		{Status: application.StatusPending},
		{Status: application.StatusAccepted},
		{Status: application.StatusRejected},
		{Status: application.StatusRejected},
	}
	contracts := []contract.Contract{
		{Status: contract.StatusActive},
		{Status: contract.StatusCompleted},
		{Status: contract.StatusTerminated},
	}
	feed := []activity.Item{{Kind: activity.KindJob}}

	view := BuildAdminView(users, jobs, apps, contracts, feed)

	assert.Equal(t, UserCounts{Total: 4, Clients: 1, Freelancers: 2, Admins: 1}, view.Users)
	assert.Equal(t, JobCounts{Total: 5, Open: 2, InProgress: 1, Completed: 1, Cancelled: 1}, view.Jobs)
	assert.Equal(t, ApplicationCounts{Total: 4, Pending: 1, Accepted: 1, Rejected: 2}, view.Applications)
	assert.Equal(t, ContractCounts{Total: 3, Active: 1, Completed: 1, Terminated: 1}, view.Contracts)
	assert.Len(t, view.Feed, 1)
}

func TestBuildClientView(t *testing.T) {
	jobs := []job.Job{{Status: job.StatusOpen}, {Status: job.StatusInProgress}}
	contracts := []contract.Contract{{ID: common.NewUUID(), Status: contract.StatusActive}}

	view := BuildClientView(jobs, contracts)

	assert.Equal(t, JobCounts{Total: 2, Open: 1, InProgress: 1}, view.Jobs)
	assert.Equal(t, contracts, view.Contracts)
}

func TestBuildFreelancerView(t *testing.T) {
	apps := []application.Application{
		{Status: application.StatusPending},
		{Status: application.StatusAccepted},
	}
	contracts := []contract.Contract{
		{Status: contract.StatusActive},
		{Status: contract.StatusActive},
		{Status: contract.StatusCompleted},
	}
	changes := []application.Application{apps[1]}
	inqs := []inquiry.Inquiry{{Status: inquiry.StatusPending}}

	view := BuildFreelancerView(apps, contracts, changes, inqs)

	assert.Equal(t, ApplicationCounts{Total: 2, Pending: 1, Accepted: 1}, view.Applications)
	assert.Equal(t, 2, view.ActiveContracts)
	assert.Equal(t, changes, view.StatusChanges)
	assert.Equal(t, inqs, view.Inquiries)
}

func TestBuildViewsEmpty(t *testing.T) {
	view := BuildAdminView(nil, nil, nil, nil, nil)
	assert.Zero(t, view.Users.Total)
	assert.Zero(t, view.Jobs.Total)
	assert.Zero(t, view.Applications.Total)
	assert.Zero(t, view.Contracts.Total)
}
