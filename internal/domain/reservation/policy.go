package reservation

import (
	"fmt"
	"math"
	"time"

	"dinner-club/internal/pkg/errs"
)

const DefaultCancellationWindow = 24 * time.Hour

var ErrDeadlinePassed = errs.Tagged(errs.KindDeadlinePassed, "Cannot cancel within 24 hours of the event")

// hoursApart uses the absolute distance, so an event that started less than
// the window ago is treated the same as one about to start.
func hoursApart(eventDate, now time.Time) time.Duration {
	d := eventDate.Sub(now)
	if d < 0 {
		d = -d
	}
	return d
}

func CanCancel(eventDate, now time.Time, window time.Duration) bool {
	return hoursApart(eventDate, now) >= window
}

func CheckCancellationDeadline(eventDate, now time.Time, window time.Duration) error {
	if CanCancel(eventDate, now, window) {
		return nil
	}
	return ErrDeadlinePassed.WithDetail("hoursUntilEvent", math.Round(eventDate.Sub(now).Hours()*10)/10)
}

// TimeUntilEvent renders the distance to the event in whole days, rounded up.
// Past events come out as a negative day count.
func TimeUntilEvent(eventDate, now time.Time) string {
	days := int(math.Ceil(eventDate.Sub(now).Hours() / 24))
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days < 7:
		return fmt.Sprintf("%d days", days)
	default:
		return fmt.Sprintf("%d weeks", int(math.Ceil(float64(days)/7)))
	}
}
