// Package dashboard shapes already-fetched entity collections into the three
// role-scoped dashboard views. Pure aggregation: no fetching, no mutation.
package dashboard

import (
	"freelancehub/internal/activity"
	"freelancehub/internal/domain/application"
	"freelancehub/internal/domain/contract"
	"freelancehub/internal/domain/inquiry"
	"freelancehub/internal/domain/job"
	"freelancehub/internal/domain/user"
)

type UserCounts struct {
	Total       int `json:"total"`
	Clients     int `json:"clients"`
	Freelancers int `json:"freelancers"`
	Admins      int `json:"admins"`
}

type ApplicationCounts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

type ContractCounts struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	Completed  int `json:"completed"`
	Terminated int `json:"terminated"`
}

type JobCounts struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
}

type AdminView struct {
	Users        UserCounts        `json:"users"`
	Jobs         JobCounts         `json:"jobs"`
	Applications ApplicationCounts `json:"applications"`
	Contracts    ContractCounts    `json:"contracts"`
	Feed         []activity.Item   `json:"feed"`
}

type ClientView struct {
	Jobs      JobCounts           `json:"jobs"`
	Contracts []contract.Contract `json:"contracts"`
}

type FreelancerView struct {
	Applications    ApplicationCounts         `json:"applications"`
	ActiveContracts int                       `json:"active_contracts"`
	StatusChanges   []application.Application `json:"status_changes"`
	Inquiries       []inquiry.Inquiry         `json:"inquiries"`
}

func BuildAdminView(users []user.User, jobs []job.Job, apps []application.Application, contracts []contract.Contract, feed []activity.Item) AdminView {
	return AdminView{
		Users:        countUsers(users),
		Jobs:         countJobs(jobs),
		Applications: countApplications(apps),
		Contracts:    countContracts(contracts),
		Feed:         feed,
	}
}

func BuildClientView(jobs []job.Job, contracts []contract.Contract) ClientView {
	return ClientView{
		Jobs:      countJobs(jobs),
		Contracts: contracts,
	}
}

func BuildFreelancerView(apps []application.Application, contracts []contract.Contract, statusChanges []application.Application, inquiries []inquiry.Inquiry) FreelancerView {
	active := 0
	for _, c := range contracts {
		if c.Status == contract.StatusActive {
			active++
		}
	}
	return FreelancerView{
		Applications:    countApplications(apps),
		ActiveContracts: active,
		StatusChanges:   statusChanges,
		Inquiries:       inquiries,
	}
}

func countUsers(users []user.User) UserCounts {
	counts := UserCounts{Total: len(users)}
	for _, u := range users {
		switch u.Role {
		case user.RoleClient:
			counts.Clients++
		case user.RoleFreelancer:
			counts.Freelancers++
		case user.RoleAdmin:
			counts.Admins++
		}
	}
	return counts
}

func countJobs(jobs []job.Job) JobCounts {
	counts := JobCounts{Total: len(jobs)}
	for _, j := range jobs {
		switch j.Status {
		case job.StatusOpen:
			counts.Open++
		case job.StatusInProgress:
			counts.InProgress++
		case job.StatusCompleted:
			counts.Completed++
		case job.StatusCancelled:
			counts.Cancelled++
		}
	}
	return counts
}

func countApplications(apps []application.Application) ApplicationCounts {
	counts := ApplicationCounts{Total: len(apps)}
	for _, app := range apps {
		switch app.Status {
		case application.StatusPending:
			counts.Pending++
		case application.StatusAccepted:
			counts.Accepted++
		case application.StatusRejected:
			counts.Rejected++
		}
	}
	return counts
}

func countContracts(contracts []contract.Contract) ContractCounts {
	counts := ContractCounts{Total: len(contracts)}
	for _, c := range contracts {
		switch c.Status {
		case contract.StatusActive:
			counts.Active++
		case contract.StatusCompleted:
			counts.Completed++
		case contract.StatusTerminated:
			counts.Terminated++
		}
	}
	return counts
}
