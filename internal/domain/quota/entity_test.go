//go:build unit

package quota_test

import (
	"testing"
	"time"

	"yogaflow/internal/domain/quota"
	"yogaflow/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuota_CheckEligibility(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*builder.QuotaBuilder)
		wantTrial bool
		errIs     error
	}{
		{
			name:      "trial with payment method and remaining sessions is eligible",
			mutate:    func(b *builder.QuotaBuilder) {},
			wantTrial: true,
		},
		{
			name: "exhausted trial is reported before the missing payment method",
			mutate: func(b *builder.QuotaBuilder) {
				b.TrialUsed = b.TrialLimit
				b.CustomerRef = nil
			},
			errIs: quota.ErrTrialExhausted,
		},
		{
			name: "trial without payment method is blocked",
			mutate: func(b *builder.QuotaBuilder) {
				b.CustomerRef = nil
			},
			errIs: quota.ErrPaymentMethodRequired,
		},
		{
			name: "trial with empty customer ref is blocked",
			mutate: func(b *builder.QuotaBuilder) {
				empty := ""
				b.CustomerRef = &empty
			},
			errIs: quota.ErrPaymentMethodRequired,
		},
		{
			name: "active subscription with remaining sessions is eligible",
			mutate: func(b *builder.QuotaBuilder) {
				b.Status = quota.StatusActive
				b.SessionsUsed = b.SessionsLimit - 1
			},
		},
		{
			name: "active subscription at the monthly limit is blocked",
			mutate: func(b *builder.QuotaBuilder) {
				b.Status = quota.StatusActive
				b.SessionsUsed = b.SessionsLimit
			},
			errIs: quota.ErrQuotaExhausted,
		},
		{
			name: "past due subscription is blocked",
			mutate: func(b *builder.QuotaBuilder) {
				b.Status = quota.StatusPastDue
			},
			errIs: quota.ErrSubscriptionInactive,
		},
		{
			name: "canceled subscription is blocked",
			mutate: func(b *builder.QuotaBuilder) {
				b.Status = quota.StatusCanceled
			},
			errIs: quota.ErrSubscriptionInactive,
		},
		{
			name: "incomplete subscription is blocked",
			mutate: func(b *builder.QuotaBuilder) {
				b.Status = quota.StatusIncomplete
			},
			errIs: quota.ErrSubscriptionInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := builder.NewQuotaBuilder().With(tt.mutate).BuildDomain()
			require.NoError(t, err)

			ent, err := q.CheckEligibility()

			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTrial, ent.IsTrial)
			assert.False(t, ent.Bypass)
		})
	}
}

func TestQuota_ConsumeAndRestore(t *testing.T) {
	t.Run("consume and restore one trial unit round-trips", func(t *testing.T) {
		q, err := builder.NewQuotaBuilder().BuildDomain()
		require.NoError(t, err)

		q.Consume(true)
		assert.Equal(t, 1, q.TrialUsed())

		q.Restore(true)
		assert.Equal(t, 0, q.TrialUsed())
	})

	t.Run("consume and restore one monthly unit round-trips", func(t *testing.T) {
		q, err := builder.NewQuotaBuilder().With(func(b *builder.QuotaBuilder) {
			b.Status = quota.StatusActive
		}).BuildDomain()
		require.NoError(t, err)

		q.Consume(false)
		assert.Equal(t, 1, q.SessionsUsed())

		q.Restore(false)
		assert.Equal(t, 0, q.SessionsUsed())
	})

	t.Run("restore floors at zero", func(t *testing.T) {
		q, err := builder.NewQuotaBuilder().BuildDomain()
		require.NoError(t, err)

		q.Restore(true)
		q.Restore(false)

		assert.Equal(t, 0, q.TrialUsed())
		assert.Equal(t, 0, q.SessionsUsed())
	})
}

func TestQuota_ResetCycle(t *testing.T) {
	periodStart := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	t.Run("resets counters and activates the subscription", func(t *testing.T) {
		q, err := builder.NewQuotaBuilder().With(func(b *builder.QuotaBuilder) {
			b.Status = quota.StatusPastDue
			b.SessionsUsed = 3
		}).BuildDomain()
		require.NoError(t, err)

		q.ResetCycle(periodStart, periodEnd)

		assert.Equal(t, quota.StatusActive, q.Status())
		assert.Equal(t, 0, q.SessionsUsed())
		require.NotNil(t, q.PeriodStart())
		assert.True(t, q.PeriodStart().Equal(periodStart))
	})

	t.Run("redelivered period bounds are a no-op", func(t *testing.T) {
		q, err := builder.NewQuotaBuilder().BuildDomain()
		require.NoError(t, err)

		q.ResetCycle(periodStart, periodEnd)
		q.Consume(false)

		q.ResetCycle(periodStart, periodEnd)

		assert.Equal(t, 1, q.SessionsUsed())
	})
}

func TestQuota_RegisterPaymentMethod(t *testing.T) {
	q := quota.NewTrialQuota(builder.NewQuotaBuilder().StudentID)
	assert.False(t, q.HasPaymentMethod())

	q.RegisterPaymentMethod("")
	assert.False(t, q.HasPaymentMethod())

	q.RegisterPaymentMethod("cus_abc")
	assert.True(t, q.HasPaymentMethod())
}

func TestReconstructQuota_InvalidStatus(t *testing.T) {
	b := builder.NewQuotaBuilder()
	_, err := quota.ReconstructQuota(
		b.StudentID, quota.Status("suspended"),
		0, quota.TrialLimit, 0, quota.SessionsLimit,
		nil, nil, nil, time.Now(),
	)
	assert.ErrorIs(t, err, quota.ErrInvalidStatus)
}
