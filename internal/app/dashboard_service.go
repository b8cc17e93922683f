package app

import (
	"context"

	"freelancehub/internal/activity"
	"freelancehub/internal/common"
	"freelancehub/internal/dashboard"
	"freelancehub/internal/domain/application"
	"freelancehub/internal/domain/contract"
	"freelancehub/internal/domain/inquiry"
	"freelancehub/internal/domain/job"
	"freelancehub/internal/domain/user"
)

// DashboardService assembles the role-scoped dashboard views. Every load
// re-fetches the entity snapshots it needs and recomputes the derived views;
// nothing is cached across loads.
type DashboardService struct {
	users        user.Repository
	jobs         job.Repository
	applications application.Repository
	contracts    contract.Repository
	inquiries    inquiry.Repository
	dismissals   *activity.DismissalStore
}

func NewDashboardService(users user.Repository, jobs job.Repository, applications application.Repository, contracts contract.Repository, inquiries inquiry.Repository, dismissals *activity.DismissalStore) *DashboardService {
	return &DashboardService{
		users:        users,
		jobs:         jobs,
		applications: applications,
		contracts:    contracts,
		inquiries:    inquiries,
		dismissals:   dismissals,
	}
}

func (s *DashboardService) AdminView(ctx context.Context) (*dashboard.AdminView, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, err
	}
	apps, err := s.applications.List(ctx)
	if err != nil {
		return nil, err
	}
	contracts, err := s.contracts.List(ctx)
	if err != nil {
		return nil, err
	}
	feed := activity.BuildFeed(jobs, apps, activity.DefaultFeedLimit)
	view := dashboard.BuildAdminView(users, jobs, apps, contracts, feed)
	return &view, nil
}

func (s *DashboardService) ClientView(ctx context.Context, clientID common.UUID) (*dashboard.ClientView, error) {
	jobs, err := s.jobs.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	contracts, err := s.contracts.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	view := dashboard.BuildClientView(jobs, contracts)
	return &view, nil
}

func (s *DashboardService) FreelancerView(ctx context.Context, freelancerID common.UUID, sessionKey string) (*dashboard.FreelancerView, error) {
	apps, err := s.applications.ListByFreelancer(ctx, freelancerID)
	if err != nil {
		return nil, err
	}
	contracts, err := s.contracts.ListByFreelancer(ctx, freelancerID)
	if err != nil {
		return nil, err
	}
	inqs, err := s.inquiries.ListByFreelancer(ctx, freelancerID)
	if err != nil {
		return nil, err
	}
	dismissed := s.dismissals.Set(sessionKey)
	view := dashboard.BuildFreelancerView(
		apps,
		contracts,
		activity.RecentStatusChanges(apps, dismissed),
		activity.PendingInquiries(inqs, dismissed),
	)
	return &view, nil
}

// Feed exposes the admin activity feed on its own.
func (s *DashboardService) Feed(ctx context.Context, limit int) ([]activity.Item, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, err
	}
	apps, err := s.applications.List(ctx)
	if err != nil {
		return nil, err
	}
	return activity.BuildFeed(jobs, apps, limit), nil
}

// Dismiss hides a notification for the rest of the viewer's session. The
// underlying entity is untouched.
func (s *DashboardService) Dismiss(sessionKey string, id common.UUID) {
	s.dismissals.Dismiss(sessionKey, id)
}
