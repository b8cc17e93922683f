package app

import (
	"context"
	"sync"
	"time"

	"freelancehub/internal/common"
	"freelancehub/internal/domain/application"
	"freelancehub/internal/domain/contract"
	"freelancehub/internal/domain/inquiry"
	"freelancehub/internal/domain/job"
	"freelancehub/internal/domain/payment"
	"freelancehub/internal/domain/submission"
	"freelancehub/internal/domain/user"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[common.UUID]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[common.UUID]user.User)}
}

func (r *fakeUserRepo) add(u user.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
}

func (r *fakeUserRepo) GetByID(_ context.Context, id common.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	return &u, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []user.User
	for _, u := range r.users {
		items = append(items, u)
	}
	return items, nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[common.UUID]job.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[common.UUID]job.Job)}
}

func (r *fakeJobRepo) add(j job.Job) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[j.ID] = j
}

func (r *fakeJobRepo) Create(_ context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j.ID = common.NewUUID()
	j.CreatedAt = time.Now().UTC()
	r.jobs[j.ID] = j
	return &j, nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id common.UUID) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	return &j, nil
}

func (r *fakeJobRepo) List(_ context.Context) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []job.Job
	for _, j := range r.jobs {
		items = append(items, j)
	}
	return items, nil
}

func (r *fakeJobRepo) ListOpen(ctx context.Context) ([]job.Job, error) {
	all, _ := r.List(ctx)
	var items []job.Job
	for _, j := range all {
		if j.Status == job.StatusOpen {
			items = append(items, j)
		}
	}
	return items, nil
}

func (r *fakeJobRepo) ListByClient(ctx context.Context, clientID common.UUID) ([]job.Job, error) {
	all, _ := r.List(ctx)
	var items []job.Job
	for _, j := range all {
		if j.ClientID == clientID {
			items = append(items, j)
		}
	}
	return items, nil
}

func (r *fakeJobRepo) UpdateStatus(_ context.Context, id common.UUID, status job.Status) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	j.Status = status
	r.jobs[id] = j
	return &j, nil
}

type fakeContractRepo struct {
	mu        sync.Mutex
	contracts map[common.UUID]contract.Contract
}

func newFakeContractRepo() *fakeContractRepo {
	return &fakeContractRepo{contracts: make(map[common.UUID]contract.Contract)}
}

func (r *fakeContractRepo) add(c contract.Contract) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contracts[c.ID] = c
}

func (r *fakeContractRepo) GetByID(_ context.Context, id common.UUID) (*contract.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.contracts[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "contract not found", nil)
	}
	return &c, nil
}

func (r *fakeContractRepo) List(_ context.Context) ([]contract.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []contract.Contract
	for _, c := range r.contracts {
		items = append(items, c)
	}
	return items, nil
}

func (r *fakeContractRepo) ListByClient(ctx context.Context, clientID common.UUID) ([]contract.Contract, error) {
	all, _ := r.List(ctx)
	var items []contract.Contract
	for _, c := range all {
		if c.ClientID == clientID {
			items = append(items, c)
		}
	}
	return items, nil
}

func (r *fakeContractRepo) ListByFreelancer(ctx context.Context, freelancerID common.UUID) ([]contract.Contract, error) {
	all, _ := r.List(ctx)
	var items []contract.Contract
	for _, c := range all {
		if c.FreelancerID == freelancerID {
			items = append(items, c)
		}
	}
	return items, nil
}

func (r *fakeContractRepo) FindByJobAndFreelancer(_ context.Context, jobID, freelancerID common.UUID) (*contract.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.contracts {
		if c.JobID == jobID && c.FreelancerID == freelancerID {
			return &c, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "contract not found", nil)
}

func (r *fakeContractRepo) UpdateStatus(_ context.Context, id common.UUID, status contract.Status, endDate *time.Time) (*contract.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.contracts[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "contract not found", nil)
	}
	c.Status = status
	c.EndDate = endDate
	r.contracts[id] = c
	return &c, nil
}

type fakeApplicationRepo struct {
	mu        sync.Mutex
	apps      map[common.UUID]application.Application
	contracts *fakeContractRepo
}

func newFakeApplicationRepo(contracts *fakeContractRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[common.UUID]application.Application), contracts: contracts}
}

func (r *fakeApplicationRepo) add(app application.Application) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps[app.ID] = app
}

func (r *fakeApplicationRepo) Create(_ context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app.ID = common.NewUUID()
	app.CreatedAt = time.Now().UTC()
	r.apps[app.ID] = app
	return &app, nil
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	return &app, nil
}

func (r *fakeApplicationRepo) List(_ context.Context) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, app := range r.apps {
		items = append(items, app)
	}
	return items, nil
}

func (r *fakeApplicationRepo) ListByJob(ctx context.Context, jobID common.UUID) ([]application.Application, error) {
	all, _ := r.List(ctx)
	var items []application.Application
	for _, app := range all {
		if app.JobID == jobID {
			items = append(items, app)
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) ListByFreelancer(ctx context.Context, freelancerID common.UUID) ([]application.Application, error) {
	all, _ := r.List(ctx)
	var items []application.Application
	for _, app := range all {
		if app.FreelancerID == freelancerID {
			items = append(items, app)
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) ListByClient(_ context.Context, _ common.UUID) ([]application.Application, error) {
	return nil, nil
}

func (r *fakeApplicationRepo) FindByJobAndFreelancer(_ context.Context, jobID, freelancerID common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.apps {
		if app.JobID == jobID && app.FreelancerID == freelancerID {
			return &app, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

// CommitAccept mirrors the storage contract: the status flip only lands if the
// stored application is still pending, and losing the race leaves no contract
// behind.
func (r *fakeApplicationRepo) CommitAccept(_ context.Context, app application.Application, c contract.Contract) (*application.Application, *contract.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.apps[app.ID]
	if !ok {
		return nil, nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	if stored.Status != application.StatusPending {
		return nil, nil, common.NewError(common.CodeInvalidState, "application already reviewed", nil)
	}
	r.contracts.add(c)
	stored.Status = application.StatusAccepted
	stored.ContractID = &c.ID
	r.apps[app.ID] = stored
	return &stored, &c, nil
}

func (r *fakeApplicationRepo) RejectIfPending(_ context.Context, id common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.apps[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	if stored.Status != application.StatusPending {
		return nil, common.NewError(common.CodeInvalidState, "application already reviewed", nil)
	}
	stored.Status = application.StatusRejected
	r.apps[id] = stored
	return &stored, nil
}

type fakeSubmissionRepo struct {
	mu   sync.Mutex
	subs map[common.UUID]submission.Submission
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{subs: make(map[common.UUID]submission.Submission)}
}

func (r *fakeSubmissionRepo) add(sub submission.Submission) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[sub.ID] = sub
}

func (r *fakeSubmissionRepo) Create(_ context.Context, sub submission.Submission) (*submission.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sub.ID.IsZero() {
		sub.ID = common.NewUUID()
	}
	r.subs[sub.ID] = sub
	return &sub, nil
}

func (r *fakeSubmissionRepo) GetByID(_ context.Context, id common.UUID) (*submission.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub, ok := r.subs[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "submission not found", nil)
	}
	return &sub, nil
}

func (r *fakeSubmissionRepo) ListByContract(_ context.Context, contractID common.UUID) ([]submission.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []submission.Submission
	for _, sub := range r.subs {
		if sub.ContractID == contractID {
			items = append(items, sub)
		}
	}
	return items, nil
}

func (r *fakeSubmissionRepo) ListByClient(_ context.Context, clientID common.UUID) ([]submission.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []submission.Submission
	for _, sub := range r.subs {
		if sub.ClientID == clientID {
			items = append(items, sub)
		}
	}
	return items, nil
}

func (r *fakeSubmissionRepo) UpdateReview(_ context.Context, id common.UUID, status submission.Status, feedback string) (*submission.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub, ok := r.subs[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "submission not found", nil)
	}
	if sub.Status != submission.StatusPending {
		return nil, common.NewError(common.CodeInvalidState, "submission already reviewed", nil)
	}
	sub.Status = status
	sub.Feedback = feedback
	r.subs[id] = sub
	return &sub, nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[common.UUID]payment.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[common.UUID]payment.Payment)}
}

func (r *fakePaymentRepo) Create(_ context.Context, p payment.Payment) (*payment.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.payments {
		if existing.SubmissionID == p.SubmissionID {
			return nil, common.NewError(common.CodePaymentConflict, "payment already exists for this submission", nil)
		}
	}
	r.payments[p.ID] = p
	return &p, nil
}

func (r *fakePaymentRepo) ListByContract(_ context.Context, contractID common.UUID) ([]payment.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []payment.Payment
	for _, p := range r.payments {
		if p.ContractID == contractID {
			items = append(items, p)
		}
	}
	return items, nil
}

func (r *fakePaymentRepo) ExistsForSubmission(_ context.Context, submissionID common.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.payments {
		if p.SubmissionID == submissionID {
			return true, nil
		}
	}
	return false, nil
}

type fakeInquiryRepo struct {
	mu        sync.Mutex
	inquiries map[common.UUID]inquiry.Inquiry
}

func newFakeInquiryRepo() *fakeInquiryRepo {
	return &fakeInquiryRepo{inquiries: make(map[common.UUID]inquiry.Inquiry)}
}

func (r *fakeInquiryRepo) add(inq inquiry.Inquiry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inquiries[inq.ID] = inq
}

func (r *fakeInquiryRepo) Create(_ context.Context, inq inquiry.Inquiry) (*inquiry.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inq.ID = common.NewUUID()
	inq.CreatedAt = time.Now().UTC()
	r.inquiries[inq.ID] = inq
	return &inq, nil
}

func (r *fakeInquiryRepo) GetByID(_ context.Context, id common.UUID) (*inquiry.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inq, ok := r.inquiries[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "inquiry not found", nil)
	}
	return &inq, nil
}

func (r *fakeInquiryRepo) ListByClient(_ context.Context, clientID common.UUID) ([]inquiry.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []inquiry.Inquiry
	for _, inq := range r.inquiries {
		if inq.ClientID == clientID {
			items = append(items, inq)
		}
	}
	return items, nil
}

func (r *fakeInquiryRepo) ListByFreelancer(_ context.Context, freelancerID common.UUID) ([]inquiry.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []inquiry.Inquiry
	for _, inq := range r.inquiries {
		if inq.FreelancerID == freelancerID {
			items = append(items, inq)
		}
	}
	return items, nil
}

func (r *fakeInquiryRepo) UpdateStatus(_ context.Context, id common.UUID, status inquiry.Status) (*inquiry.Inquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inq, ok := r.inquiries[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "inquiry not found", nil)
	}
	if inq.Status != inquiry.StatusPending {
		return nil, common.NewError(common.CodeInvalidState, "inquiry already reviewed", nil)
	}
	inq.Status = status
	r.inquiries[id] = inq
	return &inq, nil
}
