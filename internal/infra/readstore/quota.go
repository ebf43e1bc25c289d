package readstore

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

type QuotaReadStore struct {
	db db.DBTX
}

func NewQuotaReadStore(dbtx db.DBTX) *QuotaReadStore {
	return &QuotaReadStore{db: dbtx}
}

func (r *QuotaReadStore) FindByStudent(ctx context.Context, studentID uuid.UUID) (*quota.Quota, error) {
	query := `
		SELECT student_id, status, trial_used, trial_limit, sessions_used, sessions_limit,
		       customer_ref, period_start, period_end, updated_at
		FROM subscription_quotas
		WHERE student_id = $1
	`

	var (
		sid                                                uuid.UUID
		status                                             string
		trialUsed, trialLimit, sessionsUsed, sessionsLimit int
		customerRef                                        *string
		periodStart, periodEnd                             *time.Time
		updatedAt                                          time.Time
	)
	err := r.db.QueryRow(ctx, query, studentID).Scan(
		&sid, &status, &trialUsed, &trialLimit, &sessionsUsed, &sessionsLimit,
		&customerRef, &periodStart, &periodEnd, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("quota not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quota", err)
	}

	q, err := quota.ReconstructQuota(sid, quota.Status(status),
		trialUsed, trialLimit, sessionsUsed, sessionsLimit,
		customerRef, periodStart, periodEnd, updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid quota status in storage", err)
	}
	return q, nil
}
