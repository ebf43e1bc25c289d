//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	domquota "yogaflow/internal/domain/quota"
	"yogaflow/internal/infra"
	"yogaflow/internal/usecase/commands"
	"yogaflow/internal/usecase/shared"
	"yogaflow/tests/common/builder"
	mock_shared "yogaflow/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type billingFixture struct {
	uow    *mock_shared.MockUnitOfWork
	tx     *mock_shared.MockTx
	quotas *mock_shared.MockQuotaRepository
	uc     commands.BillingCommands
}

func newBillingFixture(t *testing.T) *billingFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &billingFixture{
		uow:    mock_shared.NewMockUnitOfWork(ctrl),
		tx:     mock_shared.NewMockTx(ctrl),
		quotas: mock_shared.NewMockQuotaRepository(ctrl),
	}

	f.tx.EXPECT().Quotas().Return(f.quotas).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()

	f.uc = commands.NewBillingUseCase(f.uow)
	return f
}

const customerRef = "cus_test_123"

func TestApplyCycleRenewed(t *testing.T) {
	periodStart := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	t.Run("resets the monthly counter and activates", func(t *testing.T) {
		f := newBillingFixture(t)

		q, err := builder.NewQuotaBuilder().With(func(b *builder.QuotaBuilder) {
			b.Status = domquota.StatusPastDue
			b.SessionsUsed = 3
		}).BuildDomain()
		require.NoError(t, err)

		f.quotas.EXPECT().FindByCustomerRefForUpdate(gomock.Any(), customerRef).Return(q, nil)
		f.quotas.EXPECT().Save(gomock.Any(), q).Return(nil)

		err = f.uc.ApplyCycleRenewed(context.Background(), customerRef, periodStart, periodEnd)

		require.NoError(t, err)
		assert.Equal(t, domquota.StatusActive, q.Status())
		assert.Equal(t, 0, q.SessionsUsed())
	})

	t.Run("unknown customer is dropped without error", func(t *testing.T) {
		f := newBillingFixture(t)

		f.quotas.EXPECT().FindByCustomerRefForUpdate(gomock.Any(), customerRef).
			Return(nil, infra.WrapRepoErr("quota not found", nil, infra.KindNotFound))

		err := f.uc.ApplyCycleRenewed(context.Background(), customerRef, periodStart, periodEnd)

		assert.NoError(t, err)
	})
}

func TestApplySubscriptionStatus(t *testing.T) {
	t.Run("updates the subscription status", func(t *testing.T) {
		f := newBillingFixture(t)

		q, err := builder.NewQuotaBuilder().BuildDomain()
		require.NoError(t, err)

		f.quotas.EXPECT().FindByCustomerRefForUpdate(gomock.Any(), customerRef).Return(q, nil)
		f.quotas.EXPECT().Save(gomock.Any(), q).Return(nil)

		err = f.uc.ApplySubscriptionStatus(context.Background(), customerRef, domquota.StatusPastDue)

		require.NoError(t, err)
		assert.Equal(t, domquota.StatusPastDue, q.Status())
	})

	t.Run("invalid status is rejected and nothing is saved", func(t *testing.T) {
		f := newBillingFixture(t)

		q, err := builder.NewQuotaBuilder().BuildDomain()
		require.NoError(t, err)

		f.quotas.EXPECT().FindByCustomerRefForUpdate(gomock.Any(), customerRef).Return(q, nil)

		err = f.uc.ApplySubscriptionStatus(context.Background(), customerRef, domquota.Status("paused"))

		assert.ErrorIs(t, err, commands.ErrInvalidSubscriptionStatus)
	})
}

func TestApplySubscriptionCanceled(t *testing.T) {
	f := newBillingFixture(t)

	q, err := builder.NewQuotaBuilder().With(func(b *builder.QuotaBuilder) {
		b.Status = domquota.StatusActive
	}).BuildDomain()
	require.NoError(t, err)

	f.quotas.EXPECT().FindByCustomerRefForUpdate(gomock.Any(), customerRef).Return(q, nil)
	f.quotas.EXPECT().Save(gomock.Any(), q).Return(nil)

	err = f.uc.ApplySubscriptionCanceled(context.Background(), customerRef)

	require.NoError(t, err)
	assert.Equal(t, domquota.StatusCanceled, q.Status())
}

func TestRegisterPaymentMethod(t *testing.T) {
	studentID := uuid.New()

	t.Run("links the customer to an existing quota", func(t *testing.T) {
		f := newBillingFixture(t)

		q, err := builder.NewQuotaBuilder().With(func(b *builder.QuotaBuilder) {
			b.StudentID = studentID
			b.CustomerRef = nil
		}).BuildDomain()
		require.NoError(t, err)

		f.quotas.EXPECT().FindByStudentForUpdate(gomock.Any(), studentID).Return(q, nil)
		f.quotas.EXPECT().Save(gomock.Any(), q).Return(nil)

		err = f.uc.RegisterPaymentMethod(context.Background(), studentID, customerRef)

		require.NoError(t, err)
		assert.True(t, q.HasPaymentMethod())
	})

	t.Run("provisions the trial row on first contact", func(t *testing.T) {
		f := newBillingFixture(t)

		q, err := builder.NewQuotaBuilder().With(func(b *builder.QuotaBuilder) {
			b.StudentID = studentID
			b.CustomerRef = nil
		}).BuildDomain()
		require.NoError(t, err)

		gomock.InOrder(
			f.quotas.EXPECT().FindByStudentForUpdate(gomock.Any(), studentID).
				Return(nil, infra.WrapRepoErr("quota not found", nil, infra.KindNotFound)),
			f.quotas.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
			f.quotas.EXPECT().FindByStudentForUpdate(gomock.Any(), studentID).Return(q, nil),
			f.quotas.EXPECT().Save(gomock.Any(), q).Return(nil),
		)

		err = f.uc.RegisterPaymentMethod(context.Background(), studentID, customerRef)

		require.NoError(t, err)
		assert.True(t, q.HasPaymentMethod())
	})
}
