package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"freelancehub/internal/common"
	"freelancehub/internal/domain/submission"
)

const submissionColumns = `id, contract_id, freelancer_id, client_id, notes, files, status, feedback, submitted_at`

type SubmissionRepository struct {
	db *sql.DB
}

func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, sub submission.Submission) (*submission.Submission, error) {
	if sub.ID.IsZero() {
		sub.ID = common.NewUUID()
	}
	if sub.SubmittedAt.IsZero() {
		sub.SubmittedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO submissions (id, contract_id, freelancer_id, client_id, notes, files, status, feedback, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		sub.ID, sub.ContractID, sub.FreelancerID, sub.ClientID, sub.Notes, pq.Array(sub.Files), sub.Status, sub.Feedback, sub.SubmittedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create submission", err)
	}
	return &sub, nil
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id common.UUID) (*submission.Submission, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE id = $1`, id)
	sub, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "submission not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load submission", err)
	}
	return sub, nil
}

func (r *SubmissionRepository) ListByContract(ctx context.Context, contractID common.UUID) ([]submission.Submission, error) {
	return r.list(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE contract_id = $1 ORDER BY submitted_at DESC`, contractID)
}

func (r *SubmissionRepository) ListByClient(ctx context.Context, clientID common.UUID) ([]submission.Submission, error) {
	return r.list(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE client_id = $1 ORDER BY submitted_at DESC`, clientID)
}

func (r *SubmissionRepository) UpdateReview(ctx context.Context, id common.UUID, status submission.Status, feedback string) (*submission.Submission, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE submissions SET status = $1, feedback = $2 WHERE id = $3 AND status = $4`,
		status, feedback, id, submission.StatusPending)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update submission", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update submission", err)
	}
	if affected == 0 {
		return nil, common.NewError(common.CodeInvalidState, "submission already reviewed", nil)
	}
	return r.GetByID(ctx, id)
}

func (r *SubmissionRepository) list(ctx context.Context, query string, args ...any) ([]submission.Submission, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list submissions", err)
	}
	defer rows.Close()
	var items []submission.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan submission", err)
		}
		items = append(items, *sub)
	}
	return items, nil
}

func scanSubmission(row rowScanner) (*submission.Submission, error) {
	var sub submission.Submission
	if err := row.Scan(&sub.ID, &sub.ContractID, &sub.FreelancerID, &sub.ClientID, &sub.Notes, pq.Array(&sub.Files), &sub.Status, &sub.Feedback, &sub.SubmittedAt); err != nil {
		return nil, err
	}
	return &sub, nil
}
