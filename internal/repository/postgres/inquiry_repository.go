package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"freelancehub/internal/common"
	"freelancehub/internal/domain/inquiry"
)

const inquiryColumns = `i.id, i.client_id, i.freelancer_id, i.description, i.status, COALESCE(u.name, ''), i.created_at`

const inquiryJoins = ` FROM inquiries i LEFT JOIN users u ON u.id = i.client_id`

type InquiryRepository struct {
	db *sql.DB
}

func NewInquiryRepository(db *sql.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

func (r *InquiryRepository) Create(ctx context.Context, inq inquiry.Inquiry) (*inquiry.Inquiry, error) {
	inq.ID = common.NewUUID()
	inq.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO inquiries (id, client_id, freelancer_id, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		inq.ID, inq.ClientID, inq.FreelancerID, inq.Description, inq.Status, inq.CreatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create inquiry", err)
	}
	return &inq, nil
}

func (r *InquiryRepository) GetByID(ctx context.Context, id common.UUID) (*inquiry.Inquiry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+inquiryColumns+inquiryJoins+` WHERE i.id = $1`, id)
	inq, err := scanInquiry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "inquiry not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load inquiry", err)
	}
	return inq, nil
}

func (r *InquiryRepository) ListByClient(ctx context.Context, clientID common.UUID) ([]inquiry.Inquiry, error) {
	return r.list(ctx, `SELECT `+inquiryColumns+inquiryJoins+` WHERE i.client_id = $1 ORDER BY i.created_at DESC`, clientID)
}

func (r *InquiryRepository) ListByFreelancer(ctx context.Context, freelancerID common.UUID) ([]inquiry.Inquiry, error) {
	return r.list(ctx, `SELECT `+inquiryColumns+inquiryJoins+` WHERE i.freelancer_id = $1 ORDER BY i.created_at DESC`, freelancerID)
}

func (r *InquiryRepository) UpdateStatus(ctx context.Context, id common.UUID, status inquiry.Status) (*inquiry.Inquiry, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE inquiries SET status = $1 WHERE id = $2 AND status = $3`,
		status, id, inquiry.StatusPending)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update inquiry", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update inquiry", err)
	}
	if affected == 0 {
		return nil, common.NewError(common.CodeInvalidState, "inquiry already reviewed", nil)
	}
	return r.GetByID(ctx, id)
}

func (r *InquiryRepository) list(ctx context.Context, query string, args ...any) ([]inquiry.Inquiry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list inquiries", err)
	}
	defer rows.Close()
	var items []inquiry.Inquiry
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan inquiry", err)
		}
		items = append(items, *inq)
	}
	return items, nil
}

func scanInquiry(row rowScanner) (*inquiry.Inquiry, error) {
	var inq inquiry.Inquiry
	if err := row.Scan(&inq.ID, &inq.ClientID, &inq.FreelancerID, &inq.Description, &inq.Status, &inq.ClientName, &inq.CreatedAt); err != nil {
		return nil, err
	}
	return &inq, nil
}
