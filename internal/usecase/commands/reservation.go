package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dinner-club/internal/domain/event"
	"dinner-club/internal/domain/reservation"
	"dinner-club/internal/infra"
	"dinner-club/internal/pkg/clock"
	"dinner-club/internal/pkg/errs"
	"dinner-club/internal/pkg/guesttoken"
	"dinner-club/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	msgReservationConfirmed = "Reservation confirmed!"
	msgReservationWaitlist  = "Added to waitlist. You'll be notified if spots become available."
	msgReservationCancelled = "Reservation cancelled. %d people promoted from waitlist."
)

var (
	ErrReservationNotFound  = errs.Tagged(errs.KindNotFound, "Reservation not found")
	ErrDuplicateReservation = errs.Tagged(errs.KindDuplicateReservation, "You already have a reservation for this event")
	ErrInvalidToken         = errs.Tagged(errs.KindInvalidToken, "Invalid or expired token")
	ErrTokenExpired         = errs.Tagged(errs.KindTokenExpired, "Token has expired")
)

type CreateReservationInput struct {
	EventID    uuid.UUID
	UserID     *uuid.UUID
	GuestName  string
	GuestEmail string
	GuestCount int
}

// GuestProof is what a guest presents to act on a reservation: the token
// handed out at booking time, or the contact email it was made with.
type GuestProof struct {
	Token string
	Email string
}

type ReservationResult struct {
	ID             uuid.UUID
	EventID        uuid.UUID
	UserID         *uuid.UUID
	GuestName      *string
	GuestEmail     *string
	TokenExpiresAt *time.Time
	GuestCount     int
	Status         string
	CreatedAt      time.Time
}

type CreateReservationResult struct {
	Reservation ReservationResult
	// GuestToken is the plaintext token; it is never stored and cannot be recovered later.
	GuestToken  string
	Waitlisted  bool
	Message     string
	EventStatus string
}

type CancelResult struct {
	Cancelled            ReservationResult
	PromotedFromWaitlist int
	Promoted             []ReservationResult
	EventStatus          string
	Message              string
}

type EventSummary struct {
	ID     uuid.UUID
	Title  string
	Date   time.Time
	Status string
}

type GuestReservationResult struct {
	Reservation ReservationResult
	Event       EventSummary
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, input CreateReservationInput) (*CreateReservationResult, error)
	CancelReservation(ctx context.Context, reservationID, userID uuid.UUID) (*CancelResult, error)
	CancelGuestReservation(ctx context.Context, reservationID uuid.UUID, proof GuestProof) (*CancelResult, error)
	ValidateGuestToken(ctx context.Context, token string) (*GuestReservationResult, error)
}

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	events   EventCommands
	issuer   TokenIssuer
	mailer   Mailer
	recorder Recorder
	clock    clock.Clock
	policy   ReservationPolicy
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	events EventCommands,
	issuer TokenIssuer,
	mailer Mailer,
	recorder Recorder,
	clock clock.Clock,
	policy ReservationPolicy,
) ReservationCommands {
	if policy.CancellationWindow <= 0 {
		policy.CancellationWindow = reservation.DefaultCancellationWindow
	}
	if policy.TokenGrace <= 0 {
		policy.TokenGrace = reservation.DefaultTokenGrace
	}
	if policy.MaxGuests <= 0 {
		policy.MaxGuests = reservation.DefaultMaxGuests
	}
	return &reservationCommandsImpl{
		uow:      uow,
		events:   events,
		issuer:   issuer,
		mailer:   mailer,
		recorder: recorder,
		clock:    clock,
		policy:   policy,
	}
}

func (r *reservationCommandsImpl) CreateReservation(ctx context.Context, input CreateReservationInput) (*CreateReservationResult, error) {
	count, err := reservation.NewGuestCount(input.GuestCount, r.policy.MaxGuests)
	if err != nil {
		return nil, err
	}

	var guest *reservation.Guest
	if input.UserID == nil {
		g, err := reservation.NewGuest(input.GuestName, input.GuestEmail)
		if err != nil {
			return nil, err
		}
		guest = &g
	}

	var (
		created     *reservation.Reservation
		booked      *event.Event
		plainToken  string
		eventStatus event.Status
	)

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()
		plainToken = ""

		ev, err := tx.Events().LockByID(ctx, input.EventID)
		if err != nil {
			return translateRepoErr(err, ErrEventNotFound)
		}
		if !ev.Status().IsBookable() || ev.Date().Before(now) {
			return ErrEventNotBookable.WithDetail("status", ev.Status().String())
		}

		if input.UserID != nil {
			exists, err := tx.Reservations().ExistsActiveForUser(ctx, ev.ID(), *input.UserID)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if exists {
				return ErrDuplicateReservation
			}
		}

		availability, err := r.events.AvailabilityIn(ctx, tx, ev, count.Value())
		if err != nil {
			return err
		}

		status := reservation.StatusConfirmed
		if !availability.Available {
			if !ev.AllowWaitlist() {
				return ErrEventFull.WithDetail("remaining", availability.Remaining)
			}
			status = reservation.StatusWaitlist
		}

		if guest != nil {
			created, err = reservation.NewGuestReservation(ev.ID(), *guest, count, status, now)
			if err != nil {
				return err
			}
			token, err := r.issuer.Issue()
			if err != nil {
				return err
			}
			if err := created.AttachGuestToken(reservation.NewGuestToken(token.Hash, ev.Date(), r.policy.TokenGrace)); err != nil {
				return err
			}
			plainToken = token.Plain
		} else {
			created, err = reservation.NewUserReservation(ev.ID(), *input.UserID, count, status, now)
			if err != nil {
				return err
			}
		}

		if err := tx.Reservations().Create(ctx, created); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateReservation
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		eventStatus = ev.Status()
		if status == reservation.StatusConfirmed {
			if eventStatus, err = r.events.RefreshStatusIn(ctx, tx, ev); err != nil {
				return err
			}
		}

		booked = ev
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.recorder.IncCreated(created.Status().String())
	r.deliver(ctx, r.creationNotices(ctx, booked, created, plainToken))

	message := msgReservationConfirmed
	waitlisted := created.Status() == reservation.StatusWaitlist
	if waitlisted {
		message = msgReservationWaitlist
	}

	return &CreateReservationResult{
		Reservation: toReservationResult(created),
		GuestToken:  plainToken,
		Waitlisted:  waitlisted,
		Message:     message,
		EventStatus: eventStatus.String(),
	}, nil
}

func (r *reservationCommandsImpl) CancelReservation(ctx context.Context, reservationID, userID uuid.UUID) (*CancelResult, error) {
	return r.cancel(ctx, reservationID, "user", func(res *reservation.Reservation, _ time.Time) error {
		if !res.OwnedBy(userID) {
			return reservation.ErrNotOwner
		}
		return nil
	})
}

func (r *reservationCommandsImpl) CancelGuestReservation(ctx context.Context, reservationID uuid.UUID, proof GuestProof) (*CancelResult, error) {
	return r.cancel(ctx, reservationID, "guest", func(res *reservation.Reservation, now time.Time) error {
		if !res.IsGuest() {
			return reservation.ErrNotGuestReservation
		}
		if proof.Token != "" {
			token := res.GuestToken()
			if token == nil || token.Hash() != r.issuer.Hash(proof.Token) {
				return ErrInvalidToken
			}
			if token.Expired(now) {
				return ErrTokenExpired
			}
			return nil
		}
		if proof.Email != "" && res.Guest().MatchesEmail(proof.Email) {
			return nil
		}
		return reservation.ErrNotOwner
	})
}

func (r *reservationCommandsImpl) cancel(
	ctx context.Context,
	reservationID uuid.UUID,
	path string,
	authorize func(res *reservation.Reservation, now time.Time) error,
) (*CancelResult, error) {
	snapshot, err := r.uow.CommandReads().ReservationByID(ctx, reservationID)
	if err != nil {
		return nil, translateRepoErr(err, ErrReservationNotFound)
	}

	var (
		cancelled   *reservation.Reservation
		promoted    []*reservation.Reservation
		target      *event.Event
		eventStatus event.Status
	)

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()

		// Lock order is event then reservation, the same as CreateReservation.
		ev, err := tx.Events().LockByID(ctx, snapshot.EventID)
		if err != nil {
			return translateRepoErr(err, ErrEventNotFound)
		}
		res, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			return translateRepoErr(err, ErrReservationNotFound)
		}

		if err := authorize(res, now); err != nil {
			return err
		}
		if res.IsCancelled() {
			return reservation.ErrAlreadyCancelled
		}
		if err := reservation.CheckCancellationDeadline(ev.Date(), now, r.policy.CancellationWindow); err != nil {
			return err
		}

		freed, err := res.Cancel(now)
		if err != nil {
			return err
		}
		if err := tx.Reservations().UpdateStatus(ctx, res); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		cancelled = res

		promoted, err = r.promoteWaitlist(ctx, tx, ev, freed, now)
		if err != nil {
			return err
		}

		if eventStatus, err = r.events.RefreshStatusIn(ctx, tx, ev); err != nil {
			return err
		}

		target = ev
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.recorder.IncCancelled(path)
	r.recorder.AddPromotions(len(promoted))
	r.deliver(ctx, r.cancellationNotices(ctx, target, cancelled, promoted))

	promotedResults := make([]ReservationResult, 0, len(promoted))
	for _, p := range promoted {
		promotedResults = append(promotedResults, toReservationResult(p))
	}

	return &CancelResult{
		Cancelled:            toReservationResult(cancelled),
		PromotedFromWaitlist: len(promoted),
		Promoted:             promotedResults,
		EventStatus:          eventStatus.String(),
		Message:              fmt.Sprintf(msgReservationCancelled, len(promoted)),
	}, nil
}

// promoteWaitlist never fills more seats than the cancellation freed, and
// never more than the event still has free.
func (r *reservationCommandsImpl) promoteWaitlist(
	ctx context.Context,
	tx shared.Tx,
	ev *event.Event,
	freed int,
	now time.Time,
) ([]*reservation.Reservation, error) {
	if freed <= 0 {
		return nil, nil
	}

	confirmed, err := tx.Reservations().SumConfirmedGuests(ctx, ev.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	budget := min(freed, max(ev.MaxCapacity()-confirmed, 0))
	if budget == 0 {
		return nil, nil
	}

	waitlist, err := tx.Reservations().ListWaitlist(ctx, ev.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	selected := reservation.SelectPromotions(waitlist, budget)
	for _, p := range selected {
		if err := p.Promote(now); err != nil {
			return nil, err
		}
		if err := tx.Reservations().UpdateStatus(ctx, p); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return selected, nil
}

func (r *reservationCommandsImpl) ValidateGuestToken(ctx context.Context, token string) (*GuestReservationResult, error) {
	if !guesttoken.WellFormed(token) {
		return nil, ErrInvalidToken
	}

	reads := r.uow.CommandReads()
	snapshot, err := reads.ReservationByTokenHash(ctx, r.issuer.Hash(token))
	if err != nil {
		return nil, translateRepoErr(err, ErrInvalidToken)
	}
	if snapshot.TokenExpiresAt == nil || r.clock.Now().After(*snapshot.TokenExpiresAt) {
		return nil, ErrTokenExpired
	}

	ev, err := reads.EventByID(ctx, snapshot.EventID)
	if err != nil {
		return nil, translateRepoErr(err, ErrEventNotFound)
	}

	return &GuestReservationResult{
		Reservation: ReservationResult{
			ID:             snapshot.ID,
			EventID:        snapshot.EventID,
			UserID:         snapshot.UserID,
			GuestName:      snapshot.GuestName,
			GuestEmail:     snapshot.GuestEmail,
			TokenExpiresAt: snapshot.TokenExpiresAt,
			GuestCount:     snapshot.GuestCount,
			Status:         snapshot.Status,
			CreatedAt:      snapshot.CreatedAt,
		},
		Event: EventSummary{
			ID:     ev.ID,
			Title:  ev.Title,
			Date:   ev.Date,
			Status: ev.Status,
		},
	}, nil
}

func (r *reservationCommandsImpl) deliver(ctx context.Context, notices []Notice) {
	if len(notices) == 0 {
		return
	}
	if err := r.mailer.Send(ctx, notices...); err != nil {
		slog.Warn("failed to queue notifications", "count", len(notices), "error", err.Error())
	}
}

func toReservationResult(res *reservation.Reservation) ReservationResult {
	result := ReservationResult{
		ID:         res.ID(),
		EventID:    res.EventID(),
		UserID:     res.UserID(),
		GuestCount: res.GuestCount(),
		Status:     res.Status().String(),
		CreatedAt:  res.CreatedAt(),
	}
	if g := res.Guest(); g != nil {
		name, email := g.Name(), g.Email()
		result.GuestName = &name
		result.GuestEmail = &email
	}
	if t := res.GuestToken(); t != nil {
		expires := t.ExpiresAt()
		result.TokenExpiresAt = &expires
	}
	return result
}
