package quota

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	TrialLimit    = 2
	SessionsLimit = 4
)

// Ineligibility reasons, in the priority order callers must surface them.
var (
	ErrNoSubscription        = errors.New("no subscription record")
	ErrTrialExhausted        = errors.New("trial sessions exhausted")
	ErrQuotaExhausted        = errors.New("monthly session quota exhausted")
	ErrSubscriptionInactive  = errors.New("subscription is not trial or active")
	ErrPaymentMethodRequired = errors.New("trial requires a payment method on file")

	ErrInvalidStatus = errors.New("invalid subscription status")
)

// Entitlement says how a booking draws down the ledger. Bypass is the
// admin escape hatch: no quota row is touched at all.
type Entitlement struct {
	IsTrial bool
	Bypass  bool
}

// Quota is one student's subscription ledger: trial and monthly counters,
// billing status and the payment-method-on-file flag derived from the
// external customer reference.
type Quota struct {
	studentID     uuid.UUID
	status        Status
	trialUsed     int
	trialLimit    int
	sessionsUsed  int
	sessionsLimit int
	customerRef   *string
	periodStart   *time.Time
	periodEnd     *time.Time
	updatedAt     time.Time
}

// NewTrialQuota is the onboarding state: trial status, nothing consumed,
// no payment method yet.
func NewTrialQuota(studentID uuid.UUID) *Quota {
	return &Quota{
		studentID:     studentID,
		status:        StatusTrial,
		trialLimit:    TrialLimit,
		sessionsLimit: SessionsLimit,
	}
}

func ReconstructQuota(
	studentID uuid.UUID,
	status Status,
	trialUsed, trialLimit, sessionsUsed, sessionsLimit int,
	customerRef *string,
	periodStart, periodEnd *time.Time,
	updatedAt time.Time,
) (*Quota, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Quota{
		studentID:     studentID,
		status:        status,
		trialUsed:     trialUsed,
		trialLimit:    trialLimit,
		sessionsUsed:  sessionsUsed,
		sessionsLimit: sessionsLimit,
		customerRef:   customerRef,
		periodStart:   periodStart,
		periodEnd:     periodEnd,
		updatedAt:     updatedAt,
	}, nil
}

func (q *Quota) StudentID() uuid.UUID    { return q.studentID }
func (q *Quota) Status() Status          { return q.status }
func (q *Quota) TrialUsed() int          { return q.trialUsed }
func (q *Quota) TrialLimit() int         { return q.trialLimit }
func (q *Quota) SessionsUsed() int       { return q.sessionsUsed }
func (q *Quota) SessionsLimit() int      { return q.sessionsLimit }
func (q *Quota) CustomerRef() *string    { return q.customerRef }
func (q *Quota) PeriodStart() *time.Time { return q.periodStart }
func (q *Quota) PeriodEnd() *time.Time   { return q.periodEnd }

func (q *Quota) HasPaymentMethod() bool {
	return q.customerRef != nil && *q.customerRef != ""
}

// CheckEligibility decides whether one more session may be booked and on
// which counter it lands. The returned errors are ordered policy reasons,
// not infrastructure failures.
func (q *Quota) CheckEligibility() (Entitlement, error) {
	switch q.status {
	case StatusTrial:
		if q.trialUsed >= q.trialLimit {
			return Entitlement{}, ErrTrialExhausted
		}
		// Card-on-file gate: abuse guard for free trial sessions.
		if !q.HasPaymentMethod() {
			return Entitlement{}, ErrPaymentMethodRequired
		}
		return Entitlement{IsTrial: true}, nil
	case StatusActive:
		if q.sessionsUsed >= q.sessionsLimit {
			return Entitlement{}, ErrQuotaExhausted
		}
		return Entitlement{}, nil
	default:
		return Entitlement{}, ErrSubscriptionInactive
	}
}

// Consume draws exactly one unit; callers must have passed CheckEligibility
// inside the same transaction.
func (q *Quota) Consume(isTrial bool) {
	if isTrial {
		q.trialUsed++
		return
	}
	q.sessionsUsed++
}

// Restore gives one unit back, flooring at zero.
func (q *Quota) Restore(isTrial bool) {
	if isTrial {
		if q.trialUsed > 0 {
			q.trialUsed--
		}
		return
	}
	if q.sessionsUsed > 0 {
		q.sessionsUsed--
	}
}

// ResetCycle starts a fresh active billing period. Idempotent under webhook
// redelivery: reapplying the same period bounds is a no-op.
func (q *Quota) ResetCycle(periodStart, periodEnd time.Time) {
	if q.periodStart != nil && q.periodStart.Equal(periodStart) {
		return
	}
	q.status = StatusActive
	q.sessionsUsed = 0
	q.periodStart = &periodStart
	q.periodEnd = &periodEnd
}

func (q *Quota) MarkCanceled() {
	q.status = StatusCanceled
}

func (q *Quota) SetStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	q.status = status
	return nil
}

func (q *Quota) RegisterPaymentMethod(customerRef string) {
	if customerRef == "" {
		return
	}
	q.customerRef = &customerRef
}
