package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"freelancehub/internal/common"
	"freelancehub/internal/domain/job"
)

const jobColumns = `j.id, j.client_id, j.title, j.category, j.status, j.budget_min, j.budget_max, j.budget_type, j.skills, COALESCE(u.name, ''), j.created_at`

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	j.ID = common.NewUUID()
	j.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO jobs (id, client_id, title, category, status, budget_min, budget_max, budget_type, skills, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		j.ID, j.ClientID, j.Title, j.Category, j.Status, j.BudgetMin, j.BudgetMax, j.BudgetType, pq.Array(j.Skills), j.CreatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return &j, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs j LEFT JOIN users u ON u.id = j.client_id WHERE j.id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job", err)
	}
	return j, nil
}

func (r *JobRepository) List(ctx context.Context) ([]job.Job, error) {
	return r.list(ctx, `SELECT `+jobColumns+` FROM jobs j LEFT JOIN users u ON u.id = j.client_id ORDER BY j.created_at DESC`)
}

func (r *JobRepository) ListOpen(ctx context.Context) ([]job.Job, error) {
	return r.list(ctx, `SELECT `+jobColumns+` FROM jobs j LEFT JOIN users u ON u.id = j.client_id WHERE j.status = $1 ORDER BY j.created_at DESC`, job.StatusOpen)
}

func (r *JobRepository) ListByClient(ctx context.Context, clientID common.UUID) ([]job.Job, error) {
	return r.list(ctx, `SELECT `+jobColumns+` FROM jobs j LEFT JOIN users u ON u.id = j.client_id WHERE j.client_id = $1 ORDER BY j.created_at DESC`, clientID)
}

func (r *JobRepository) UpdateStatus(ctx context.Context, id common.UUID, status job.Status) (*job.Job, error) {
	_, err := r.db.ExecContext(ctx, `UPDATE jobs SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job", err)
	}
	return r.GetByID(ctx, id)
}

func (r *JobRepository) list(ctx context.Context, query string, args ...any) ([]job.Job, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	defer rows.Close()
	var items []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan job", err)
		}
		items = append(items, *j)
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*job.Job, error) {
	var j job.Job
	if err := row.Scan(&j.ID, &j.ClientID, &j.Title, &j.Category, &j.Status, &j.BudgetMin, &j.BudgetMax, &j.BudgetType, pq.Array(&j.Skills), &j.ClientName, &j.CreatedAt); err != nil {
		return nil, err
	}
	return &j, nil
}
