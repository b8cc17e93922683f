package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"freelancehub/internal/common"
	"freelancehub/internal/domain/application"
	"freelancehub/internal/domain/contract"
)

const applicationColumns = `a.id, a.job_id, a.freelancer_id, a.proposed_rate, a.status, a.contract_id, COALESCE(j.title, ''), COALESCE(u.name, ''), a.created_at`

const applicationJoins = ` FROM applications a
	LEFT JOIN jobs j ON j.id = a.job_id
	LEFT JOIN users u ON u.id = a.freelancer_id`

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.ID = common.NewUUID()
	app.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO applications (id, job_id, freelancer_id, proposed_rate, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		app.ID, app.JobID, app.FreelancerID, app.ProposedRate, app.Status, app.CreatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+applicationJoins+` WHERE a.id = $1`, id)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return app, nil
}

func (r *ApplicationRepository) List(ctx context.Context) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+applicationJoins+` ORDER BY a.created_at DESC`)
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID common.UUID) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+applicationJoins+` WHERE a.job_id = $1 ORDER BY a.created_at DESC`, jobID)
}

func (r *ApplicationRepository) ListByFreelancer(ctx context.Context, freelancerID common.UUID) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+applicationJoins+` WHERE a.freelancer_id = $1 ORDER BY a.created_at DESC`, freelancerID)
}

func (r *ApplicationRepository) ListByClient(ctx context.Context, clientID common.UUID) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+applicationJoins+` WHERE j.client_id = $1 ORDER BY a.created_at DESC`, clientID)
}

func (r *ApplicationRepository) FindByJobAndFreelancer(ctx context.Context, jobID, freelancerID common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+applicationJoins+` WHERE a.job_id = $1 AND a.freelancer_id = $2 ORDER BY a.created_at DESC LIMIT 1`, jobID, freelancerID)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return app, nil
}

// CommitAccept persists an accept decision atomically. The contract insert
// comes first, then the status flip guarded by status = 'pending'; losing the
// compare-and-set rolls the contract back out, so no reader ever sees an
// accepted application without its contract or a contract without its accept.
func (r *ApplicationRepository) CommitAccept(ctx context.Context, app application.Application, c contract.Contract) (*application.Application, *contract.Contract, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, common.NewError(common.CodeInternal, "failed to begin accept", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `INSERT INTO contracts (id, job_id, application_id, freelancer_id, client_id, rate, status, start_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.JobID, c.ApplicationID, c.FreelancerID, c.ClientID, c.Rate, c.Status, c.StartDate)
	if err != nil {
		return nil, nil, common.NewError(common.CodeInternal, "failed to create contract", err)
	}

	result, err := tx.ExecContext(ctx, `UPDATE applications SET status = $1, contract_id = $2 WHERE id = $3 AND status = $4`,
		application.StatusAccepted, c.ID, app.ID, application.StatusPending)
	if err != nil {
		return nil, nil, common.NewError(common.CodeInternal, "failed to update application", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, nil, common.NewError(common.CodeInternal, "failed to update application", err)
	}
	if affected == 0 {
		return nil, nil, common.NewError(common.CodeInvalidState, "application already reviewed", nil)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, common.NewError(common.CodeInternal, "failed to commit accept", err)
	}
	return &app, &c, nil
}

func (r *ApplicationRepository) RejectIfPending(ctx context.Context, id common.UUID) (*application.Application, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1 WHERE id = $2 AND status = $3`,
		application.StatusRejected, id, application.StatusPending)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application", err)
	}
	if affected == 0 {
		return nil, common.NewError(common.CodeInvalidState, "application already reviewed", nil)
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) list(ctx context.Context, query string, args ...any) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()
	var items []application.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, *app)
	}
	return items, nil
}

func scanApplication(row rowScanner) (*application.Application, error) {
	var app application.Application
	var contractID sql.NullString
	if err := row.Scan(&app.ID, &app.JobID, &app.FreelancerID, &app.ProposedRate, &app.Status, &contractID, &app.JobTitle, &app.FreelancerName, &app.CreatedAt); err != nil {
		return nil, err
	}
	if contractID.Valid {
		id := common.UUID(contractID.String)
		app.ContractID = &id
	}
	return &app, nil
}
