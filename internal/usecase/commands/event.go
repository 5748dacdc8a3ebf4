package commands

import (
	"context"
	"time"

	"dinner-club/internal/domain/event"
	"dinner-club/internal/domain/reservation"
	"dinner-club/internal/infra"
	"dinner-club/internal/pkg/clock"
	"dinner-club/internal/pkg/errs"
	"dinner-club/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEventNotFound           = errs.Tagged(errs.KindNotFound, "Event not found")
	ErrEventNotBookable        = errs.Tagged(errs.KindEventNotBookable, "Event is not open for reservations")
	ErrEventFull               = errs.Tagged(errs.KindEventFull, "Event is full and does not allow waitlist")
	ErrHostRoleRequired        = errs.Tagged(errs.KindUnauthorized, "Only chefs can create events")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateEventInput struct {
	Title         string
	Description   string
	Date          time.Time
	MaxCapacity   int
	AllowWaitlist bool
	Publish       bool
}

type EventResult struct {
	ID            uuid.UUID
	ChefID        uuid.UUID
	Title         string
	Description   string
	Date          time.Time
	MaxCapacity   int
	Status        string
	AllowWaitlist bool
	CreatedAt     time.Time
}

type EventCommands interface {
	CheckAvailability(ctx context.Context, eventID uuid.UUID, requested int) (*event.Availability, error)
	UpdateEventStatus(ctx context.Context, eventID uuid.UUID) (event.Status, error)
	CreateEvent(ctx context.Context, actor Actor, input CreateEventInput) (*EventResult, error)

	// Transaction-scoped forms. The caller is expected to hold the event row lock.
	AvailabilityIn(ctx context.Context, tx shared.Tx, ev *event.Event, requested int) (event.Availability, error)
	RefreshStatusIn(ctx context.Context, tx shared.Tx, ev *event.Event) (event.Status, error)
}

type eventCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewEventCommands(uow shared.UnitOfWork, clock clock.Clock) EventCommands {
	return &eventCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (e *eventCommandsImpl) CheckAvailability(ctx context.Context, eventID uuid.UUID, requested int) (*event.Availability, error) {
	if requested < reservation.MinGuestCount {
		return nil, reservation.ErrInvalidGuestCount
	}

	var result event.Availability
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ev, err := tx.Events().FindByID(ctx, eventID)
		if err != nil {
			return translateRepoErr(err, ErrEventNotFound)
		}
		result, err = e.AvailabilityIn(ctx, tx, ev, requested)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (e *eventCommandsImpl) UpdateEventStatus(ctx context.Context, eventID uuid.UUID) (event.Status, error) {
	var status event.Status
	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ev, err := tx.Events().LockByID(ctx, eventID)
		if err != nil {
			return translateRepoErr(err, ErrEventNotFound)
		}
		status, err = e.RefreshStatusIn(ctx, tx, ev)
		return err
	})
	return status, err
}

func (e *eventCommandsImpl) CreateEvent(ctx context.Context, actor Actor, input CreateEventInput) (*EventResult, error) {
	if !actor.Role.CanHost() {
		return nil, ErrHostRoleRequired
	}

	ev, err := event.NewEvent(event.NewEventParams{
		ChefID:        actor.UserID,
		Title:         input.Title,
		Description:   input.Description,
		Date:          input.Date,
		MaxCapacity:   input.MaxCapacity,
		AllowWaitlist: input.AllowWaitlist,
		Publish:       input.Publish,
	}, e.clock.Now())
	if err != nil {
		return nil, err
	}

	err = e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Events().Create(ctx, ev); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &EventResult{
		ID:            ev.ID(),
		ChefID:        ev.ChefID(),
		Title:         ev.Title(),
		Description:   ev.Description(),
		Date:          ev.Date(),
		MaxCapacity:   ev.MaxCapacity(),
		Status:        ev.Status().String(),
		AllowWaitlist: ev.AllowWaitlist(),
		CreatedAt:     ev.CreatedAt(),
	}, nil
}

func (e *eventCommandsImpl) AvailabilityIn(ctx context.Context, tx shared.Tx, ev *event.Event, requested int) (event.Availability, error) {
	confirmed, err := tx.Reservations().SumConfirmedGuests(ctx, ev.ID())
	if err != nil {
		return event.Availability{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return ev.CheckAvailability(confirmed, requested), nil
}

// RefreshStatusIn persists only when the derived status differs, so repeated calls are no-ops.
func (e *eventCommandsImpl) RefreshStatusIn(ctx context.Context, tx shared.Tx, ev *event.Event) (event.Status, error) {
	confirmed, err := tx.Reservations().SumConfirmedGuests(ctx, ev.ID())
	if err != nil {
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !ev.ApplyOccupancy(confirmed, e.clock.Now()) {
		return ev.Status(), nil
	}

	if err := tx.Events().UpdateStatus(ctx, ev); err != nil {
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return ev.Status(), nil
}

func translateRepoErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}
