//go:build unit || e2e

package builder

import (
	"time"

	domquota "yogaflow/internal/domain/quota"

	"github.com/google/uuid"
)

type QuotaBuilder struct {
	StudentID     uuid.UUID
	Status        domquota.Status
	TrialUsed     int
	TrialLimit    int
	SessionsUsed  int
	SessionsLimit int
	CustomerRef   *string
	PeriodStart   *time.Time
	PeriodEnd     *time.Time
	UpdatedAt     time.Time
}

func NewQuotaBuilder() *QuotaBuilder {
	ref := "cus_test_123"
	return &QuotaBuilder{
		StudentID:     uuid.New(),
		Status:        domquota.StatusTrial,
		TrialUsed:     0,
		TrialLimit:    domquota.TrialLimit,
		SessionsUsed:  0,
		SessionsLimit: domquota.SessionsLimit,
		CustomerRef:   &ref,
		UpdatedAt:     time.Now(),
	}
}

func (q *QuotaBuilder) With(mutate func(*QuotaBuilder)) *QuotaBuilder {
	mutate(q)
	return q
}

func (q *QuotaBuilder) BuildDomain() (*domquota.Quota, error) {
	return domquota.ReconstructQuota(
		q.StudentID,
		q.Status,
		q.TrialUsed, q.TrialLimit, q.SessionsUsed, q.SessionsLimit,
		q.CustomerRef,
		q.PeriodStart, q.PeriodEnd,
		q.UpdatedAt,
	)
}
