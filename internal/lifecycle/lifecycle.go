// Package lifecycle encodes the legal state transitions of the engagement
// entities as pure functions. Each function takes entity snapshots plus
// parameters and returns the updated snapshots and any newly created records,
// or a typed error. Persisting the result is the caller's job; nothing here
// touches storage.
package lifecycle

import (
	"strings"
	"time"

	"freelancehub/internal/common"
	"freelancehub/internal/domain/application"
	"freelancehub/internal/domain/contract"
	"freelancehub/internal/domain/inquiry"
	"freelancehub/internal/domain/payment"
	"freelancehub/internal/domain/submission"
)

// AcceptApplication turns a pending application into an accepted one and
// produces the contract that acceptance mandates. clientID is the owner of the
// job being applied to; conflicting is an existing contract for the same
// (job, freelancer) pair, nil when there is none.
func AcceptApplication(app application.Application, clientID common.UUID, conflicting *contract.Contract, now time.Time) (application.Application, contract.Contract, error) {
	if app.Status != application.StatusPending {
		return application.Application{}, contract.Contract{}, common.NewError(common.CodeInvalidState, "application already reviewed", nil)
	}
	if conflicting != nil {
		return application.Application{}, contract.Contract{}, common.NewError(common.CodeInvalidState, "contract already exists for this job and freelancer", nil)
	}
	c := contract.Contract{
		ID:            common.NewUUID(),
		JobID:         app.JobID,
		ApplicationID: app.ID,
		FreelancerID:  app.FreelancerID,
		ClientID:      clientID,
		Rate:          app.ProposedRate,
		Status:        contract.StatusActive,
		StartDate:     now.UTC(),
	}
	app.Status = application.StatusAccepted
	app.ContractID = &c.ID
	return app, c, nil
}

// RejectApplication is the terminal alternative to acceptance. No contract is
// ever created on this path.
func RejectApplication(app application.Application) (application.Application, error) {
	if app.Status != application.StatusPending {
		return application.Application{}, common.NewError(common.CodeInvalidState, "application already reviewed", nil)
	}
	app.Status = application.StatusRejected
	return app, nil
}

// SubmitProject creates a pending submission against an active contract.
// Multiple submissions per contract are allowed; the newest one is current.
func SubmitProject(c contract.Contract, notes string, files []string, now time.Time) (submission.Submission, error) {
	if c.Status != contract.StatusActive {
		return submission.Submission{}, common.NewError(common.CodeInvalidState, "contract is not active", nil)
	}
	if strings.TrimSpace(notes) == "" {
		return submission.Submission{}, common.NewValidationError("invalid submission", map[string]string{"notes": "notes are required"})
	}
	return submission.Submission{
		ID:           common.NewUUID(),
		ContractID:   c.ID,
		FreelancerID: c.FreelancerID,
		ClientID:     c.ClientID,
		Notes:        notes,
		Files:        files,
		Status:       submission.StatusPending,
		SubmittedAt:  now.UTC(),
	}, nil
}

// AcceptSubmission marks a pending submission accepted. The contract is left
// untouched; completing it is a separate, externally triggered action.
func AcceptSubmission(sub submission.Submission) (submission.Submission, error) {
	if sub.Status != submission.StatusPending {
		return submission.Submission{}, common.NewError(common.CodeInvalidState, "submission already reviewed", nil)
	}
	sub.Status = submission.StatusAccepted
	return sub, nil
}

// RequestChanges rejects a pending submission and hands control back to the
// freelancer. The rejected record stays as history.
func RequestChanges(sub submission.Submission, feedback string) (submission.Submission, error) {
	if sub.Status != submission.StatusPending {
		return submission.Submission{}, common.NewError(common.CodeInvalidState, "submission already reviewed", nil)
	}
	sub.Status = submission.StatusRejected
	sub.Feedback = feedback
	return sub, nil
}

// InitiatePayment records a payment intent for an accepted submission.
// alreadyPaid reports whether a payment for that submission exists; the
// storage layer backs this with a unique index on submission_id.
func InitiatePayment(c contract.Contract, sub submission.Submission, alreadyPaid bool, amount int64, now time.Time) (payment.Payment, error) {
	if sub.ContractID != c.ID {
		return payment.Payment{}, common.NewError(common.CodeInvalidState, "submission does not belong to this contract", nil)
	}
	if sub.Status != submission.StatusAccepted {
		return payment.Payment{}, common.NewError(common.CodeInvalidState, "submission is not accepted", nil)
	}
	if alreadyPaid {
		return payment.Payment{}, common.NewError(common.CodePaymentConflict, "payment already exists for this submission", nil)
	}
	if amount != c.Rate {
		return payment.Payment{}, common.NewValidationError("invalid payment amount", map[string]string{"amount": "amount must equal the contract rate"})
	}
	return payment.Payment{
		ID:           common.NewUUID(),
		ContractID:   c.ID,
		SubmissionID: sub.ID,
		ClientID:     c.ClientID,
		FreelancerID: c.FreelancerID,
		Amount:       amount,
		CreatedAt:    now.UTC(),
	}, nil
}

// CompleteContract closes an active contract as successfully delivered and
// stamps the end date. Submissions and payments against it stay as history.
func CompleteContract(c contract.Contract, now time.Time) (contract.Contract, error) {
	if c.Status != contract.StatusActive {
		return contract.Contract{}, common.NewError(common.CodeInvalidState, "contract is not active", nil)
	}
	end := now.UTC()
	c.Status = contract.StatusCompleted
	c.EndDate = &end
	return c, nil
}

// TerminateContract ends an active contract early. Terminal, like completion.
func TerminateContract(c contract.Contract, now time.Time) (contract.Contract, error) {
	if c.Status != contract.StatusActive {
		return contract.Contract{}, common.NewError(common.CodeInvalidState, "contract is not active", nil)
	}
	end := now.UTC()
	c.Status = contract.StatusTerminated
	c.EndDate = &end
	return c, nil
}

// AcceptInquiry marks a pending inquiry accepted. Any contract that follows is
// arranged outside this engine.
func AcceptInquiry(inq inquiry.Inquiry) (inquiry.Inquiry, error) {
	if inq.Status != inquiry.StatusPending {
		return inquiry.Inquiry{}, common.NewError(common.CodeInvalidState, "inquiry already reviewed", nil)
	}
	inq.Status = inquiry.StatusAccepted
	return inq, nil
}

func RejectInquiry(inq inquiry.Inquiry) (inquiry.Inquiry, error) {
	if inq.Status != inquiry.StatusPending {
		return inquiry.Inquiry{}, common.NewError(common.CodeInvalidState, "inquiry already reviewed", nil)
	}
	inq.Status = inquiry.StatusRejected
	return inq, nil
}
