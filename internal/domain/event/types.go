package event

type Status string

const (
	StatusDraft      Status = "DRAFT"
	StatusOpen       Status = "OPEN"
	StatusFull       Status = "FULL"
	StatusCancelled  Status = "CANCELLED"
	StatusCompleted  Status = "COMPLETED"
	StatusPollActive Status = "POLL_ACTIVE"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusOpen, StatusFull, StatusCancelled, StatusCompleted, StatusPollActive:
		return true
	default:
		return false
	}
}

// IsBookable is true for the two statuses derived from occupancy.
func (s Status) IsBookable() bool {
	return s == StatusOpen || s == StatusFull
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// DeletableStatuses lists statuses the retention job may delete once the event is old enough.
var DeletableStatuses = []Status{StatusDraft, StatusOpen, StatusFull, StatusCancelled, StatusCompleted}
