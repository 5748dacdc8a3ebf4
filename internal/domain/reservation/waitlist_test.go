//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"dinner-club/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func waitlisted(id int, guests int, createdAt time.Time) *reservation.Reservation {
	return reservation.ReconstructReservation(reservation.ReconstructParams{
		ID:         uuid.NewSHA1(uuid.NameSpaceOID, []byte{byte(id)}),
		EventID:    uuid.Nil,
		GuestName:  "guest",
		GuestEmail: "guest@example.com",
		GuestCount: guests,
		Status:     reservation.StatusWaitlist,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	})
}

func counts(rs []*reservation.Reservation) []int {
	out := make([]int, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.GuestCount())
	}
	return out
}

func TestSelectPromotions(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("先着順に空席分だけ繰り上げる", func(t *testing.T) {
		wl := []*reservation.Reservation{
			waitlisted(1, 1, base),
			waitlisted(2, 1, base.Add(time.Minute)),
			waitlisted(3, 1, base.Add(2*time.Minute)),
		}
		got := reservation.SelectPromotions(wl, 2)
		assert.Len(t, got, 2)
		assert.Equal(t, wl[0].ID(), got[0].ID())
		assert.Equal(t, wl[1].ID(), got[1].ID())
	})

	t.Run("入り切らない組は飛ばして後続の小さい組を繰り上げる", func(t *testing.T) {
		wl := []*reservation.Reservation{
			waitlisted(1, 3, base),
			waitlisted(2, 2, base.Add(time.Minute)),
			waitlisted(3, 1, base.Add(2*time.Minute)),
		}
		got := reservation.SelectPromotions(wl, 2)
		assert.Equal(t, []int{2}, counts(got))
	})

	t.Run("入力順ではなく作成日時順", func(t *testing.T) {
		late := waitlisted(1, 1, base.Add(time.Hour))
		early := waitlisted(2, 1, base)
		got := reservation.SelectPromotions([]*reservation.Reservation{late, early}, 1)
		assert.Len(t, got, 1)
		assert.Equal(t, early.ID(), got[0].ID())
	})

	t.Run("空席ゼロなら何もしない", func(t *testing.T) {
		assert.Empty(t, reservation.SelectPromotions([]*reservation.Reservation{waitlisted(1, 1, base)}, 0))
	})

	t.Run("部分的な繰り上げはしない", func(t *testing.T) {
		got := reservation.SelectPromotions([]*reservation.Reservation{waitlisted(1, 4, base)}, 3)
		assert.Empty(t, got)
	})
}
