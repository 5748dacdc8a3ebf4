package reservation

import (
	"cmp"
	"slices"
)

// SelectPromotions picks waitlisted reservations first-come-first-served
// whose party fits the seats still free. A party that does not fit is skipped,
// not split, and later smaller parties may still be promoted.
func SelectPromotions(waitlist []*Reservation, seats int) []*Reservation {
	if seats <= 0 || len(waitlist) == 0 {
		return nil
	}

	queue := slices.Clone(waitlist)
	slices.SortStableFunc(queue, func(a, b *Reservation) int {
		if c := a.createdAt.Compare(b.createdAt); c != 0 {
			return c
		}
		return cmp.Compare(a.id.String(), b.id.String())
	})

	var promoted []*Reservation
	for _, r := range queue {
		if seats == 0 {
			break
		}
		if r.status != StatusWaitlist {
			continue
		}
		if n := r.GuestCount(); n <= seats {
			promoted = append(promoted, r)
			seats -= n
		}
	}
	return promoted
}
