package repository

import (
	"context"
	"errors"
	"time"

	"yogaflow/internal/domain/quota"
	"yogaflow/internal/infra"
	"yogaflow/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type QuotaRepository struct {
	db db.DBTX
}

func NewQuotaRepository(dbtx db.DBTX) *QuotaRepository {
	return &QuotaRepository{db: dbtx}
}

const quotaColumns = `student_id, status, trial_used, trial_limit, sessions_used, sessions_limit,
		       customer_ref, period_start, period_end, updated_at`

func (r *QuotaRepository) Create(ctx context.Context, q *quota.Quota) error {
	query := `
		INSERT INTO subscription_quotas (student_id, status, trial_used, trial_limit, sessions_used, sessions_limit, customer_ref, period_start, period_end)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (student_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		q.StudentID(), q.Status().String(),
		q.TrialUsed(), q.TrialLimit(), q.SessionsUsed(), q.SessionsLimit(),
		q.CustomerRef(), q.PeriodStart(), q.PeriodEnd())
	if err != nil {
		return infra.WrapRepoErr("failed to create quota", err)
	}
	return nil
}

func (r *QuotaRepository) FindByStudentForUpdate(ctx context.Context, studentID uuid.UUID) (*quota.Quota, error) {
	query := `
		SELECT ` + quotaColumns + `
		FROM subscription_quotas
		WHERE student_id = $1
		FOR UPDATE
	`
	return scanQuota(r.db.QueryRow(ctx, query, studentID))
}

func (r *QuotaRepository) FindByCustomerRefForUpdate(ctx context.Context, customerRef string) (*quota.Quota, error) {
	query := `
		SELECT ` + quotaColumns + `
		FROM subscription_quotas
		WHERE customer_ref = $1
		FOR UPDATE
	`
	return scanQuota(r.db.QueryRow(ctx, query, customerRef))
}

func (r *QuotaRepository) Save(ctx context.Context, q *quota.Quota) error {
	query := `
		UPDATE subscription_quotas
		SET status = $2, trial_used = $3, sessions_used = $4,
		    customer_ref = $5, period_start = $6, period_end = $7, updated_at = now()
		WHERE student_id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		q.StudentID(), q.Status().String(), q.TrialUsed(), q.SessionsUsed(),
		q.CustomerRef(), q.PeriodStart(), q.PeriodEnd())
	if err != nil {
		return infra.WrapRepoErr("failed to save quota", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("quota not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanQuota(row pgx.Row) (*quota.Quota, error) {
	var (
		studentID                                          uuid.UUID
		status                                             string
		trialUsed, trialLimit, sessionsUsed, sessionsLimit int
		customerRef                                        *string
		periodStart, periodEnd                             *time.Time
		updatedAt                                          time.Time
	)
	err := row.Scan(&studentID, &status, &trialUsed, &trialLimit, &sessionsUsed, &sessionsLimit,
		&customerRef, &periodStart, &periodEnd, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("quota not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan quota", err)
	}

	q, err := quota.ReconstructQuota(studentID, quota.Status(status),
		trialUsed, trialLimit, sessionsUsed, sessionsLimit,
		customerRef, periodStart, periodEnd, updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid quota status in storage", err)
	}
	return q, nil
}
