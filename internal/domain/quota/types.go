package quota

type Status string

// Statuses mirror the billing provider's subscription states. Only trial and
// active entitle a student to book.
const (
	StatusTrial      Status = "trial"
	StatusActive     Status = "active"
	StatusCanceled   Status = "canceled"
	StatusPastDue    Status = "past_due"
	StatusIncomplete Status = "incomplete"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusTrial, StatusActive, StatusCanceled, StatusPastDue, StatusIncomplete:
		return true
	default:
		return false
	}
}
