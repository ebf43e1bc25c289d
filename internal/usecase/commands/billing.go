package commands

import (
	"context"
	"log/slog"
	"time"

	"yogaflow/internal/domain/quota"
	"yogaflow/internal/infra"
	"yogaflow/internal/pkg/errs"
	"yogaflow/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidSubscriptionStatus = errs.New("invalid subscription status")

// BillingCommands applies billing-provider webhook events to the quota
// ledger. Every operation is idempotent under event redelivery, and events
// for customers this service has never seen are dropped with a log line so
// the provider stops retrying.
type BillingCommands interface {
	ApplyCycleRenewed(ctx context.Context, customerRef string, periodStart, periodEnd time.Time) error
	ApplySubscriptionStatus(ctx context.Context, customerRef string, status quota.Status) error
	ApplySubscriptionCanceled(ctx context.Context, customerRef string) error
	RegisterPaymentMethod(ctx context.Context, studentID uuid.UUID, customerRef string) error
}

type billingUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewBillingUseCase(uow shared.UnitOfWork) BillingCommands {
	return &billingUseCaseImpl{uow: uow}
}

func (b *billingUseCaseImpl) ApplyCycleRenewed(ctx context.Context, customerRef string, periodStart, periodEnd time.Time) error {
	return b.withQuotaByRef(ctx, customerRef, func(q *quota.Quota) error {
		q.ResetCycle(periodStart, periodEnd)
		return nil
	})
}

func (b *billingUseCaseImpl) ApplySubscriptionStatus(ctx context.Context, customerRef string, status quota.Status) error {
	return b.withQuotaByRef(ctx, customerRef, func(q *quota.Quota) error {
		if err := q.SetStatus(status); err != nil {
			return errs.Mark(err, ErrInvalidSubscriptionStatus)
		}
		return nil
	})
}

func (b *billingUseCaseImpl) ApplySubscriptionCanceled(ctx context.Context, customerRef string) error {
	return b.withQuotaByRef(ctx, customerRef, func(q *quota.Quota) error {
		q.MarkCanceled()
		return nil
	})
}

// RegisterPaymentMethod links the billing customer to the student's quota,
// provisioning the trial row on first contact. Safe to replay.
func (b *billingUseCaseImpl) RegisterPaymentMethod(ctx context.Context, studentID uuid.UUID, customerRef string) error {
	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		studentQuota, err := tx.Quotas().FindByStudentForUpdate(ctx, studentID)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if err := tx.Quotas().Create(ctx, quota.NewTrialQuota(studentID)); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			studentQuota, err = tx.Quotas().FindByStudentForUpdate(ctx, studentID)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		studentQuota.RegisterPaymentMethod(customerRef)
		if err := tx.Quotas().Save(ctx, studentQuota); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (b *billingUseCaseImpl) withQuotaByRef(ctx context.Context, customerRef string, apply func(q *quota.Quota) error) error {
	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		studentQuota, err := tx.Quotas().FindByCustomerRefForUpdate(ctx, customerRef)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				slog.Warn("billing event for unknown customer, dropped", "customer_ref", customerRef)
				return nil
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := apply(studentQuota); err != nil {
			return err
		}
		if err := tx.Quotas().Save(ctx, studentQuota); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
