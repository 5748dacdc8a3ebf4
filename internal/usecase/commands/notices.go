package commands

import (
	"context"
	"log/slog"

	"dinner-club/internal/domain/event"
	"dinner-club/internal/domain/reservation"
	"dinner-club/internal/infra"
	"dinner-club/internal/usecase/shared"

	"github.com/google/uuid"
)

type recipient struct {
	email string
	name  string
}

// Notices are built after commit from plain reads. A failed lookup drops that
// notice only; the booking or cancellation it describes is already durable.
func (r *reservationCommandsImpl) creationNotices(
	ctx context.Context,
	ev *event.Event,
	res *reservation.Reservation,
	plainToken string,
) []Notice {
	reads := r.uow.CommandReads()
	to := recipientOf(ctx, reads, res)
	if to == nil {
		return nil
	}

	data := reservationData(ev, res)
	topic := TopicReservationConfirmed
	if res.Status() == reservation.StatusWaitlist {
		topic = TopicReservationWaitlisted
	}
	if plainToken != "" {
		data["guestToken"] = plainToken
	}

	notices := []Notice{{Topic: topic, To: to.email, Name: to.name, Data: data}}

	if res.Status() == reservation.StatusConfirmed {
		if chef := lookupRecipient(ctx, reads, ev.ChefID()); chef != nil {
			notices = append(notices, Notice{
				Topic: TopicChefNewReservation,
				To:    chef.email,
				Name:  chef.name,
				Data: map[string]any{
					"eventId":    ev.ID().String(),
					"eventTitle": ev.Title(),
					"eventDate":  ev.Date(),
					"attendee":   to.name,
					"guestCount": res.GuestCount(),
				},
			})
		}
	}
	return notices
}

func (r *reservationCommandsImpl) cancellationNotices(
	ctx context.Context,
	ev *event.Event,
	cancelled *reservation.Reservation,
	promoted []*reservation.Reservation,
) []Notice {
	var notices []Notice
	reads := r.uow.CommandReads()

	if to := recipientOf(ctx, reads, cancelled); to != nil {
		notices = append(notices, Notice{
			Topic: TopicReservationCancelled,
			To:    to.email,
			Name:  to.name,
			Data:  reservationData(ev, cancelled),
		})

		if chef := lookupRecipient(ctx, reads, ev.ChefID()); chef != nil {
			notices = append(notices, Notice{
				Topic: TopicChefCancellation,
				To:    chef.email,
				Name:  chef.name,
				Data: map[string]any{
					"eventId":    ev.ID().String(),
					"eventTitle": ev.Title(),
					"eventDate":  ev.Date(),
					"attendee":   to.name,
					"guestCount": cancelled.GuestCount(),
					"promoted":   len(promoted),
				},
			})
		}
	}

	for _, p := range promoted {
		pto := recipientOf(ctx, reads, p)
		if pto == nil {
			continue
		}
		notices = append(notices, Notice{
			Topic: TopicWaitlistPromoted,
			To:    pto.email,
			Name:  pto.name,
			Data:  reservationData(ev, p),
		})
	}
	return notices
}

func reservationData(ev *event.Event, res *reservation.Reservation) map[string]any {
	return map[string]any{
		"reservationId": res.ID().String(),
		"eventId":       ev.ID().String(),
		"eventTitle":    ev.Title(),
		"eventDate":     ev.Date(),
		"guestCount":    res.GuestCount(),
		"status":        res.Status().String(),
	}
}

// recipientOf returns nil when nobody can be reached for a reservation.
func recipientOf(ctx context.Context, reads shared.CommandReads, res *reservation.Reservation) *recipient {
	if g := res.Guest(); g != nil {
		return &recipient{email: g.Email(), name: g.Name()}
	}
	if res.UserID() == nil {
		return nil
	}
	return lookupRecipient(ctx, reads, *res.UserID())
}

func lookupRecipient(ctx context.Context, reads shared.CommandReads, userID uuid.UUID) *recipient {
	u, err := reads.UserByID(ctx, userID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("skipping notice, recipient lookup failed", "user_id", userID, "error", err.Error())
		}
		return nil
	}
	return &recipient{email: u.Email, name: u.Name}
}
