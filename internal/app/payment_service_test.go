package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelancehub/internal/common"
	"freelancehub/internal/domain/contract"
	"freelancehub/internal/domain/submission"
)

type paymentFixture struct {
	svc         *PaymentService
	payments    *fakePaymentRepo
	contracts   *fakeContractRepo
	submissions *fakeSubmissionRepo
	contractID  common.UUID
	clientID    common.UUID
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	contracts := newFakeContractRepo()
	submissions := newFakeSubmissionRepo()
	payments := newFakePaymentRepo()

	clientID := common.NewUUID()
	c := contract.Contract{
		ID:           common.NewUUID(),
		JobID:        common.NewUUID(),
		FreelancerID: common.NewUUID(),
		ClientID:     clientID,
		Rate:         8000,
		Status:       contract.StatusActive,
		StartDate:    time.Now().UTC(),
	}
	contracts.add(c)

	return &paymentFixture{
		svc:         NewPaymentService(payments, contracts, submissions, nopLogger{}),
		payments:    payments,
		contracts:   contracts,
		submissions: submissions,
		contractID:  c.ID,
		clientID:    clientID,
	}
}

func (f *paymentFixture) acceptedSubmission(t *testing.T, at time.Time) submission.Submission {
	t.Helper()
	sub := submission.Submission{
		ID:          common.NewUUID(),
		ContractID:  f.contractID,
		ClientID:    f.clientID,
		Notes:       "done",
		Status:      submission.StatusAccepted,
		SubmittedAt: at,
	}
	f.submissions.add(sub)
	return sub
}

func TestPaymentServiceInitiate(t *testing.T) {
	f := newPaymentFixture(t)
	sub := f.acceptedSubmission(t, time.Now().UTC())

	p, err := f.svc.Initiate(context.Background(), f.contractID, f.clientID, 8000)
	require.NoError(t, err)
	assert.Equal(t, sub.ID, p.SubmissionID)
	assert.Equal(t, f.contractID, p.ContractID)
	assert.Equal(t, int64(8000), p.Amount)
}

func TestPaymentServiceInitiateTwice(t *testing.T) {
	f := newPaymentFixture(t)
	f.acceptedSubmission(t, time.Now().UTC())

	_, err := f.svc.Initiate(context.Background(), f.contractID, f.clientID, 8000)
	require.NoError(t, err)

	_, err = f.svc.Initiate(context.Background(), f.contractID, f.clientID, 8000)
	assert.Equal(t, common.CodePaymentConflict, common.CodeOf(err))

	// No second row.
	items, err := f.svc.ListByContract(context.Background(), f.contractID, f.clientID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

// The payment anchors to the newest accepted submission, so accepting a
// resubmission opens the door to one more payment while the first stays put.
func TestPaymentServiceInitiatePerSubmission(t *testing.T) {
	f := newPaymentFixture(t)
	base := time.Now().UTC()
	first := f.acceptedSubmission(t, base)

	p1, err := f.svc.Initiate(context.Background(), f.contractID, f.clientID, 8000)
	require.NoError(t, err)
	assert.Equal(t, first.ID, p1.SubmissionID)

	second := f.acceptedSubmission(t, base.Add(time.Hour))
	p2, err := f.svc.Initiate(context.Background(), f.contractID, f.clientID, 8000)
	require.NoError(t, err)
	assert.Equal(t, second.ID, p2.SubmissionID)

	items, err := f.svc.ListByContract(context.Background(), f.contractID, f.clientID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestPaymentServiceInitiateNoAcceptedSubmission(t *testing.T) {
	f := newPaymentFixture(t)
	f.submissions.add(submission.Submission{
		ID:         common.NewUUID(),
		ContractID: f.contractID,
		Status:     submission.StatusPending,
	})

	_, err := f.svc.Initiate(context.Background(), f.contractID, f.clientID, 8000)
	assert.Equal(t, common.CodeInvalidState, common.CodeOf(err))
}

func TestPaymentServiceInitiateAmountMismatch(t *testing.T) {
	f := newPaymentFixture(t)
	f.acceptedSubmission(t, time.Now().UTC())

	_, err := f.svc.Initiate(context.Background(), f.contractID, f.clientID, 7999)
	assert.Equal(t, common.CodeValidation, common.CodeOf(err))

	items, err := f.svc.ListByContract(context.Background(), f.contractID, f.clientID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPaymentServiceInitiateWrongClient(t *testing.T) {
	f := newPaymentFixture(t)
	f.acceptedSubmission(t, time.Now().UTC())

	_, err := f.svc.Initiate(context.Background(), f.contractID, common.NewUUID(), 8000)
	assert.Equal(t, common.CodeForbidden, common.CodeOf(err))
}

func TestPaymentServiceListPartyOnly(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.svc.ListByContract(context.Background(), f.contractID, common.NewUUID())
	assert.Equal(t, common.CodeForbidden, common.CodeOf(err))
}
