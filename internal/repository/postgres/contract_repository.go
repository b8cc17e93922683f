package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"freelancehub/internal/common"
	"freelancehub/internal/domain/contract"
)

const contractColumns = `c.id, c.job_id, c.application_id, c.freelancer_id, c.client_id, c.rate, c.status, c.start_date, c.end_date, COALESCE(j.title, ''), COALESCE(cu.name, ''), COALESCE(fu.name, '')`

const contractJoins = ` FROM contracts c
	LEFT JOIN jobs j ON j.id = c.job_id
	LEFT JOIN users cu ON cu.id = c.client_id
	LEFT JOIN users fu ON fu.id = c.freelancer_id`

type ContractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) GetByID(ctx context.Context, id common.UUID) (*contract.Contract, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+contractColumns+contractJoins+` WHERE c.id = $1`, id)
	c, err := scanContract(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "contract not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load contract", err)
	}
	return c, nil
}

func (r *ContractRepository) List(ctx context.Context) ([]contract.Contract, error) {
	return r.list(ctx, `SELECT `+contractColumns+contractJoins+` ORDER BY c.start_date DESC`)
}

func (r *ContractRepository) ListByClient(ctx context.Context, clientID common.UUID) ([]contract.Contract, error) {
	return r.list(ctx, `SELECT `+contractColumns+contractJoins+` WHERE c.client_id = $1 ORDER BY c.start_date DESC`, clientID)
}

func (r *ContractRepository) ListByFreelancer(ctx context.Context, freelancerID common.UUID) ([]contract.Contract, error) {
	return r.list(ctx, `SELECT `+contractColumns+contractJoins+` WHERE c.freelancer_id = $1 ORDER BY c.start_date DESC`, freelancerID)
}

func (r *ContractRepository) FindByJobAndFreelancer(ctx context.Context, jobID, freelancerID common.UUID) (*contract.Contract, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+contractColumns+contractJoins+` WHERE c.job_id = $1 AND c.freelancer_id = $2`, jobID, freelancerID)
	c, err := scanContract(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "contract not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load contract", err)
	}
	return c, nil
}

func (r *ContractRepository) UpdateStatus(ctx context.Context, id common.UUID, status contract.Status, endDate *time.Time) (*contract.Contract, error) {
	_, err := r.db.ExecContext(ctx, `UPDATE contracts SET status = $1, end_date = $2 WHERE id = $3`, status, endDate, id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update contract", err)
	}
	return r.GetByID(ctx, id)
}

func (r *ContractRepository) list(ctx context.Context, query string, args ...any) ([]contract.Contract, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list contracts", err)
	}
	defer rows.Close()
	var items []contract.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan contract", err)
		}
		items = append(items, *c)
	}
	return items, nil
}

func scanContract(row rowScanner) (*contract.Contract, error) {
	var c contract.Contract
	var endDate sql.NullTime
	if err := row.Scan(&c.ID, &c.JobID, &c.ApplicationID, &c.FreelancerID, &c.ClientID, &c.Rate, &c.Status, &c.StartDate, &endDate, &c.JobTitle, &c.ClientName, &c.FreelancerName); err != nil {
		return nil, err
	}
	if endDate.Valid {
		c.EndDate = &endDate.Time
	}
	return &c, nil
}
