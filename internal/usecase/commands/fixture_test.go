//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"dinner-club/internal/domain/event"
	"dinner-club/internal/domain/reservation"
	"dinner-club/internal/infra"
	"dinner-club/internal/pkg/clock"
	"dinner-club/internal/usecase/commands"
	"dinner-club/internal/usecase/shared"
	commandsmock "dinner-club/tests/mock/commands"
	sharedmock "dinner-club/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/mock/gomock"
)

var baseNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	events        *sharedmock.MockEventRepository
	reservations  *sharedmock.MockReservationRepository
	notifications *sharedmock.MockNotificationRepository
	users         *sharedmock.MockUserRepository
	reads         *sharedmock.MockCommandReads
	mailer        *commandsmock.MockMailer
	recorder      *commandsmock.MockRecorder
	issuer        *commandsmock.MockTokenIssuer
	clock         *clock.MockClock
}

// newFixture wires a UnitOfWork whose Within runs the callback against mocked repositories.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		events:        sharedmock.NewMockEventRepository(ctrl),
		reservations:  sharedmock.NewMockReservationRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		mailer:        commandsmock.NewMockMailer(ctrl),
		recorder:      commandsmock.NewMockRecorder(ctrl),
		issuer:        commandsmock.NewMockTokenIssuer(ctrl),
		clock:         clock.NewMockClock(baseNow),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Events().Return(f.events).AnyTimes()
	f.tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()

	return f
}

func (f *fixture) eventCommands() commands.EventCommands {
	return commands.NewEventCommands(f.uow, f.clock)
}

func (f *fixture) reservationCommands() commands.ReservationCommands {
	return commands.NewReservationCommands(
		f.uow, f.eventCommands(), f.issuer, f.mailer, f.recorder, f.clock,
		commands.ReservationPolicy{CancellationWindow: 24 * time.Hour, TokenGrace: 24 * time.Hour, MaxGuests: 20},
	)
}

// expectUsers answers every account lookup with a generated contact.
func (f *fixture) expectUsers() {
	f.reads.EXPECT().UserByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
			return &shared.UserSnapshot{ID: id, Email: id.String()[:8] + "@example.com", Name: "User " + id.String()[:4], Role: "attendee"}, nil
		}).AnyTimes()
}

// captureNotices records everything handed to the mailer.
func (f *fixture) captureNotices() *[]commands.Notice {
	var sent []commands.Notice
	f.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, notices ...commands.Notice) error {
			sent = append(sent, notices...)
			return nil
		}).AnyTimes()
	return &sent
}

type eventOpts struct {
	status        event.Status
	capacity      int
	allowWaitlist bool
	date          time.Time
}

func newEvent(o eventOpts) *event.Event {
	if o.status == "" {
		o.status = event.StatusOpen
	}
	if o.capacity == 0 {
		o.capacity = 10
	}
	if o.date.IsZero() {
		o.date = baseNow.Add(72 * time.Hour)
	}
	return event.ReconstructEvent(uuid.New(), uuid.New(), "Supper Club", "", o.date, o.capacity, o.status, o.allowWaitlist, baseNow.Add(-time.Hour), baseNow.Add(-time.Hour))
}

func userReservation(eventID, userID uuid.UUID, guests int, status reservation.Status, createdAt time.Time) *reservation.Reservation {
	uid := userID
	return reservation.ReconstructReservation(reservation.ReconstructParams{
		ID:         uuid.New(),
		EventID:    eventID,
		UserID:     &uid,
		GuestCount: guests,
		Status:     status,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	})
}

func guestReservation(eventID uuid.UUID, email, tokenHash string, expires time.Time, guests int, status reservation.Status) *reservation.Reservation {
	return reservation.ReconstructReservation(reservation.ReconstructParams{
		ID:             uuid.New(),
		EventID:        eventID,
		GuestName:      "Guest",
		GuestEmail:     email,
		TokenHash:      tokenHash,
		TokenExpiresAt: &expires,
		GuestCount:     guests,
		Status:         status,
		CreatedAt:      baseNow.Add(-time.Hour),
		UpdatedAt:      baseNow.Add(-time.Hour),
	})
}

func notFound() error {
	return infra.WrapRepoErr("not found", pgx.ErrNoRows, infra.KindNotFound)
}

func topics(notices []commands.Notice) []string {
	out := make([]string, 0, len(notices))
	for _, n := range notices {
		out = append(out, n.Topic)
	}
	return out
}
