package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"freelancehub/internal/common"
	"freelancehub/internal/domain/payment"
)

type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create inserts the payment row. payments.submission_id carries a unique
// index; a violation means a concurrent initiate won the race and is reported
// as payment_conflict.
func (r *PaymentRepository) Create(ctx context.Context, p payment.Payment) (*payment.Payment, error) {
	if p.ID.IsZero() {
		p.ID = common.NewUUID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO payments (id, contract_id, submission_id, client_id, freelancer_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.ContractID, p.SubmissionID, p.ClientID, p.FreelancerID, p.Amount, p.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, common.NewError(common.CodePaymentConflict, "payment already exists for this submission", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create payment", err)
	}
	return &p, nil
}

func (r *PaymentRepository) ListByContract(ctx context.Context, contractID common.UUID) ([]payment.Payment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, contract_id, submission_id, client_id, freelancer_id, amount, created_at
		FROM payments WHERE contract_id = $1 ORDER BY created_at DESC`, contractID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list payments", err)
	}
	defer rows.Close()
	var items []payment.Payment
	for rows.Next() {
		var p payment.Payment
		if err := rows.Scan(&p.ID, &p.ContractID, &p.SubmissionID, &p.ClientID, &p.FreelancerID, &p.Amount, &p.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan payment", err)
		}
		items = append(items, p)
	}
	return items, nil
}

func (r *PaymentRepository) ExistsForSubmission(ctx context.Context, submissionID common.UUID) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM payments WHERE submission_id = $1)`, submissionID)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, common.NewError(common.CodeInternal, "failed to check payment", err)
	}
	return exists, nil
}
