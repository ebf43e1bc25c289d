package queries

import (
	"context"

	"yogaflow/internal/domain/quota"
	"yogaflow/internal/infra"

	"github.com/google/uuid"
)

type EligibilityQueries interface {
	// GetForStudent reports whether the student could book one more session
	// right now, and why not if they cannot.
	GetForStudent(ctx context.Context, studentID uuid.UUID) (*EligibilityView, error)
}

type QuotaViewRepo interface {
	FindByStudent(ctx context.Context, studentID uuid.UUID) (*quota.Quota, error)
}

type eligibilityQueriesImpl struct {
	repo QuotaViewRepo
}

func NewEligibilityQueries(repo QuotaViewRepo) EligibilityQueries {
	return &eligibilityQueriesImpl{repo: repo}
}

func (q *eligibilityQueriesImpl) GetForStudent(ctx context.Context, studentID uuid.UUID) (*EligibilityView, error) {
	studentQuota, err := q.repo.FindByStudent(ctx, studentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// No quota row yet: report the onboarding counters with the
			// missing-record reason, which outranks every other reason.
			reason := quota.ErrNoSubscription.Error()
			return &EligibilityView{
				Status:            quota.StatusTrial.String(),
				TrialRemaining:    quota.TrialLimit,
				SessionsRemaining: quota.SessionsLimit,
				Reason:            &reason,
			}, nil
		}
		return nil, err
	}

	view := &EligibilityView{
		Status:            studentQuota.Status().String(),
		TrialRemaining:    max(studentQuota.TrialLimit()-studentQuota.TrialUsed(), 0),
		SessionsRemaining: max(studentQuota.SessionsLimit()-studentQuota.SessionsUsed(), 0),
	}

	entitlement, err := studentQuota.CheckEligibility()
	if err != nil {
		reason := err.Error()
		view.Reason = &reason
		return view, nil
	}

	view.Eligible = true
	view.IsTrial = entitlement.IsTrial
	return view, nil
}
