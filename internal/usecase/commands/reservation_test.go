//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dinner-club/internal/domain/event"
	"dinner-club/internal/domain/reservation"
	"dinner-club/internal/infra"
	"dinner-club/internal/pkg/errs"
	"dinner-club/internal/pkg/guesttoken"
	"dinner-club/internal/usecase/commands"
	"dinner-club/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("残席があればCONFIRMEDで作成し満席になればFULLへ更新する", func(t *testing.T) {
		f := newFixture(t)
		ev := newEvent(eventOpts{capacity: 10})
		userID := uuid.New()

		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.reservations.EXPECT().ExistsActiveForUser(gomock.Any(), ev.ID(), userID).Return(false, nil)
		f.reservations.EXPECT().SumConfirmedGuests(gomock.Any(), ev.ID()).Return(8, nil)
		f.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.reservations.EXPECT().SumConfirmedGuests(gomock.Any(), ev.ID()).Return(10, nil)
		f.events.EXPECT().UpdateStatus(gomock.Any(), ev).Return(nil)
		f.expectUsers()
		sent := f.captureNotices()
		f.recorder.EXPECT().IncCreated("CONFIRMED")

		result, err := f.reservationCommands().CreateReservation(ctx, commands.CreateReservationInput{
			EventID: ev.ID(), UserID: &userID, GuestCount: 2,
		})

		require.NoError(t, err)
		assert.Equal(t, "CONFIRMED", result.Reservation.Status)
		assert.False(t, result.Waitlisted)
		assert.Equal(t, "Reservation confirmed!", result.Message)
		assert.Equal(t, "FULL", result.EventStatus)
		assert.Empty(t, result.GuestToken)
		assert.Equal(t, []string{commands.TopicReservationConfirmed, commands.TopicChefNewReservation}, topics(*sent))
	})

	t.Run("満席でウェイトリスト可ならWAITLISTで作成しステータスは更新しない", func(t *testing.T) {
		f := newFixture(t)
		ev := newEvent(eventOpts{capacity: 10, status: event.StatusFull, allowWaitlist: true})
		userID := uuid.New()

		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.reservations.EXPECT().ExistsActiveForUser(gomock.Any(), ev.ID(), userID).Return(false, nil)
		f.reservations.EXPECT().SumConfirmedGuests(gomock.Any(), ev.ID()).Return(10, nil)
		f.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.expectUsers()
		sent := f.captureNotices()
		f.recorder.EXPECT().IncCreated("WAITLIST")

		result, err := f.reservationCommands().CreateReservation(ctx, commands.CreateReservationInput{
			EventID: ev.ID(), UserID: &userID, GuestCount: 2,
		})

		require.NoError(t, err)
		assert.Equal(t, "WAITLIST", result.Reservation.Status)
		assert.True(t, result.Waitlisted)
		assert.Equal(t, "Added to waitlist. You'll be notified if spots become available.", result.Message)
		assert.Equal(t, "FULL", result.EventStatus)
		assert.Equal(t, []string{commands.TopicReservationWaitlisted}, topics(*sent))
	})

	t.Run("満席でウェイトリスト不可ならEventFullで残席数を返す", func(t *testing.T) {
		f := newFixture(t)
		ev := newEvent(eventOpts{capacity: 10})
		userID := uuid.New()

		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.reservations.EXPECT().ExistsActiveForUser(gomock.Any(), ev.ID(), userID).Return(false, nil)
		f.reservations.EXPECT().SumConfirmedGuests(gomock.Any(), ev.ID()).Return(9, nil)

		_, err := f.reservationCommands().CreateReservation(ctx, commands.CreateReservationInput{
			EventID: ev.ID(), UserID: &userID, GuestCount: 2,
		})

		require.ErrorIs(t, err, commands.ErrEventFull)
		assert.Equal(t, 1, errs.DetailOf(err)["remaining"])
	})

	t.Run("同じイベントに有効な予約があれば重複エラー", func(t *testing.T) {
		f := newFixture(t)
		ev := newEvent(eventOpts{})
		userID := uuid.New()

		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.reservations.EXPECT().ExistsActiveForUser(gomock.Any(), ev.ID(), userID).Return(true, nil)

		_, err := f.reservationCommands().CreateReservation(ctx, commands.CreateReservationInput{
			EventID: ev.ID(), UserID: &userID, GuestCount: 1,
		})

		require.ErrorIs(t, err, commands.ErrDuplicateReservation)
		kind, ok := errs.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, errs.KindDuplicateReservation, kind)
	})

	t.Run("一意制約違反は重複エラーに変換する", func(t *testing.T) {
		f := newFixture(t)
		ev := newEvent(eventOpts{})
		userID := uuid.New()
		dup := infra.WrapRepoErr("create reservation", &pgconn.PgError{Code: "23505"})

		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.reservations.EXPECT().ExistsActiveForUser(gomock.Any(), ev.ID(), userID).Return(false, nil)
		f.reservations.EXPECT().SumConfirmedGuests(gomock.Any(), ev.ID()).Return(0, nil)
		f.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dup)

		_, err := f.reservationCommands().CreateReservation(ctx, commands.CreateReservationInput{
			EventID: ev.ID(), UserID: &userID, GuestCount: 1,
		})

		require.ErrorIs(t, err, commands.ErrDuplicateReservation)
	})

	t.Run("ゲスト予約はトークンを発行しハッシュだけを保存する", func(t *testing.T) {
		f := newFixture(t)
		ev := newEvent(eventOpts{capacity: 10})
		token := guesttoken.Token{Plain: "plain-token", Hash: "hashed-token"}

		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.reservations.EXPECT().SumConfirmedGuests(gomock.Any(), ev.ID()).Return(0, nil)
		f.issuer.EXPECT().Issue().Return(token, nil)
		f.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *reservation.Reservation) error {
				require.NotNil(t, r.GuestToken())
				assert.Equal(t, "hashed-token", r.GuestToken().Hash())
				assert.Equal(t, ev.Date().Add(24*time.Hour), r.GuestToken().ExpiresAt())
				assert.Nil(t, r.UserID())
				return nil
			})
		f.reservations.EXPECT().SumConfirmedGuests(gomock.Any(), ev.ID()).Return(3, nil)
		f.expectUsers()
		sent := f.captureNotices()
		f.recorder.EXPECT().IncCreated("CONFIRMED")

		result, err := f.reservationCommands().CreateReservation(ctx, commands.CreateReservationInput{
			EventID: ev.ID(), GuestName: "Ada", GuestEmail: "ada@example.com", GuestCount: 3,
		})

		require.NoError(t, err)
		assert.Equal(t, "plain-token", result.GuestToken)
		require.NotNil(t, result.Reservation.GuestEmail)
		assert.Equal(t, "ada@example.com", *result.Reservation.GuestEmail)
		assert.Equal(t, "OPEN", result.EventStatus)
		require.Len(t, *sent, 2)
		assert.Equal(t, "ada@example.com", (*sent)[0].To)
		assert.Equal(t, "plain-token", (*sent)[0].Data["guestToken"])
	})

	t.Run("通知の失敗は予約結果に影響しない", func(t *testing.T) {
		f := newFixture(t)
		ev := newEvent(eventOpts{capacity: 10})
		userID := uuid.New()

		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.reservations.EXPECT().ExistsActiveForUser(gomock.Any(), ev.ID(), userID).Return(false, nil)
		f.reservations.EXPECT().SumConfirmedGuests(gomock.Any(), ev.ID()).Return(0, nil).Times(2)
		f.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.expectUsers()
		f.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("queue down"))
		f.recorder.EXPECT().IncCreated("CONFIRMED")

		result, err := f.reservationCommands().CreateReservation(ctx, commands.CreateReservationInput{
			EventID: ev.ID(), UserID: &userID, GuestCount: 1,
		})

		require.NoError(t, err)
		assert.Equal(t, "CONFIRMED", result.Reservation.Status)
	})

	t.Run("宛先の照会に失敗しても予約は確定し通知だけを省く", func(t *testing.T) {
		f := newFixture(t)
		ev := newEvent(eventOpts{capacity: 10})
		userID := uuid.New()

		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.reservations.EXPECT().ExistsActiveForUser(gomock.Any(), ev.ID(), userID).Return(false, nil)
		f.reservations.EXPECT().SumConfirmedGuests(gomock.Any(), ev.ID()).Return(0, nil).Times(2)
		f.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.reads.EXPECT().UserByID(gomock.Any(), userID).Return(nil, errors.New("connection reset"))
		f.recorder.EXPECT().IncCreated("CONFIRMED")

		result, err := f.reservationCommands().CreateReservation(ctx, commands.CreateReservationInput{
			EventID: ev.ID(), UserID: &userID, GuestCount: 1,
		})

		require.NoError(t, err)
		assert.Equal(t, "CONFIRMED", result.Reservation.Status)
	})

	t.Run("シェフの照会に失敗してもゲストへの通知は送る", func(t *testing.T) {
		f := newFixture(t)
		ev := newEvent(eventOpts{capacity: 10})

		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.reservations.EXPECT().SumConfirmedGuests(gomock.Any(), ev.ID()).Return(0, nil).Times(2)
		f.issuer.EXPECT().Issue().Return(guesttoken.Token{Plain: "plain-token", Hash: "hashed"}, nil)
		f.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.reads.EXPECT().UserByID(gomock.Any(), ev.ChefID()).Return(nil, errors.New("connection reset"))
		sent := f.captureNotices()
		f.recorder.EXPECT().IncCreated("CONFIRMED")

		result, err := f.reservationCommands().CreateReservation(ctx, commands.CreateReservationInput{
			EventID: ev.ID(), GuestName: "Ada", GuestEmail: "ada@example.com", GuestCount: 2,
		})

		require.NoError(t, err)
		assert.Equal(t, "plain-token", result.GuestToken)
		assert.Equal(t, []string{commands.TopicReservationConfirmed}, topics(*sent))
	})

	t.Run("予約できないイベントと入力の検証", func(t *testing.T) {
		draft := newEvent(eventOpts{status: event.StatusDraft})
		past := newEvent(eventOpts{date: baseNow.Add(-time.Hour)})
		userID := uuid.New()

		cases := []struct {
			name  string
			input commands.CreateReservationInput
			setup func(f *fixture)
			want  error
		}{
			{
				name:  "下書きのイベント",
				input: commands.CreateReservationInput{EventID: draft.ID(), UserID: &userID, GuestCount: 1},
				setup: func(f *fixture) { f.events.EXPECT().LockByID(gomock.Any(), draft.ID()).Return(draft, nil) },
				want:  commands.ErrEventNotBookable,
			},
			{
				name:  "開催済みのイベント",
				input: commands.CreateReservationInput{EventID: past.ID(), UserID: &userID, GuestCount: 1},
				setup: func(f *fixture) { f.events.EXPECT().LockByID(gomock.Any(), past.ID()).Return(past, nil) },
				want:  commands.ErrEventNotBookable,
			},
			{
				name:  "存在しないイベント",
				input: commands.CreateReservationInput{EventID: uuid.New(), UserID: &userID, GuestCount: 1},
				setup: func(f *fixture) { f.events.EXPECT().LockByID(gomock.Any(), gomock.Any()).Return(nil, notFound()) },
				want:  commands.ErrEventNotFound,
			},
			{
				name:  "人数が0",
				input: commands.CreateReservationInput{EventID: uuid.New(), UserID: &userID, GuestCount: 0},
				want:  reservation.ErrInvalidGuestCount,
			},
			{
				name:  "人数が上限超過",
				input: commands.CreateReservationInput{EventID: uuid.New(), UserID: &userID, GuestCount: 21},
				want:  reservation.ErrInvalidGuestCount,
			},
			{
				name:  "ゲストのメールアドレスが不正",
				input: commands.CreateReservationInput{EventID: uuid.New(), GuestName: "Ada", GuestEmail: "nope", GuestCount: 1},
				want:  reservation.ErrInvalidGuestEmail,
			},
			{
				name:  "ゲストの名前が空",
				input: commands.CreateReservationInput{EventID: uuid.New(), GuestEmail: "ada@example.com", GuestCount: 1},
				want:  reservation.ErrInvalidGuestName,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)
				if tc.setup != nil {
					tc.setup(f)
				}
				_, err := f.reservationCommands().CreateReservation(ctx, tc.input)
				require.ErrorIs(t, err, tc.want)
			})
		}
	})
}

func TestCancelReservation(t *testing.T) {
	ctx := context.Background()

	snapshotOf := func(r *reservation.Reservation) *shared.ReservationSnapshot {
		return &shared.ReservationSnapshot{ID: r.ID(), EventID: r.EventID(), UserID: r.UserID(), GuestCount: r.GuestCount(), Status: r.Status().String()}
	}

	t.Run("確定予約のキャンセルで空いた席の範囲でウェイトリストを先着順に繰り上げる", func(t *testing.T) {
		f := newFixture(t)
		ev := newEvent(eventOpts{capacity: 10, status: event.StatusFull, allowWaitlist: true})
		owner := uuid.New()
		target := userReservation(ev.ID(), owner, 4, reservation.StatusConfirmed, baseNow.Add(-48*time.Hour))
		first := userReservation(ev.ID(), uuid.New(), 3, reservation.StatusWaitlist, baseNow.Add(-30*time.Hour))
		tooBig := userReservation(ev.ID(), uuid.New(), 2, reservation.StatusWaitlist, baseNow.Add(-20*time.Hour))
		small := userReservation(ev.ID(), uuid.New(), 1, reservation.StatusWaitlist, baseNow.Add(-10*time.Hour))

		f.reads.EXPECT().ReservationByID(gomock.Any(), target.ID()).Return(snapshotOf(target), nil)
		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.reservations.EXPECT().FindByID(gomock.Any(), target.ID()).Return(target, nil)
		f.reservations.EXPECT().UpdateStatus(gomock.Any(), target).Return(nil)
		f.reservations.EXPECT().SumConfirmedGuests(gomock.Any(), ev.ID()).Return(6, nil)
		f.reservations.EXPECT().ListWaitlist(gomock.Any(), ev.ID()).Return([]*reservation.Reservation{small, tooBig, first}, nil)
		f.reservations.EXPECT().UpdateStatus(gomock.Any(), first).Return(nil)
		f.reservations.EXPECT().UpdateStatus(gomock.Any(), small).Return(nil)
		f.reservations.EXPECT().SumConfirmedGuests(gomock.Any(), ev.ID()).Return(10, nil)
		f.expectUsers()
		sent := f.captureNotices()
		f.recorder.EXPECT().IncCancelled("user")
		f.recorder.EXPECT().AddPromotions(2)

		result, err := f.reservationCommands().CancelReservation(ctx, target.ID(), owner)

		require.NoError(t, err)
		assert.Equal(t, "CANCELLED", result.Cancelled.Status)
		assert.Equal(t, 2, result.PromotedFromWaitlist)
		require.Len(t, result.Promoted, 2)
		assert.Equal(t, first.ID(), result.Promoted[0].ID)
		assert.Equal(t, small.ID(), result.Promoted[1].ID)
		assert.Equal(t, reservation.StatusWaitlist, tooBig.Status())
		assert.Equal(t, "FULL", result.EventStatus)
		assert.Equal(t, "Reservation cancelled. 2 people promoted from waitlist.", result.Message)
		assert.Equal(t, []string{
			commands.TopicReservationCancelled,
			commands.TopicChefCancellation,
			commands.TopicWaitlistPromoted,
			commands.TopicWaitlistPromoted,
		}, topics(*sent))
	})

	t.Run("ウェイトリストのキャンセルは席を空けないので繰り上げない", func(t *testing.T) {
		f := newFixture(t)
		ev := newEvent(eventOpts{capacity: 10, status: event.StatusFull, allowWaitlist: true})
		owner := uuid.New()
		target := userReservation(ev.ID(), owner, 2, reservation.StatusWaitlist, baseNow.Add(-48*time.Hour))

		f.reads.EXPECT().ReservationByID(gomock.Any(), target.ID()).Return(snapshotOf(target), nil)
		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.reservations.EXPECT().FindByID(gomock.Any(), target.ID()).Return(target, nil)
		f.reservations.EXPECT().UpdateStatus(gomock.Any(), target).Return(nil)
		f.reservations.EXPECT().SumConfirmedGuests(gomock.Any(), ev.ID()).Return(10, nil)
		f.expectUsers()
		f.captureNotices()
		f.recorder.EXPECT().IncCancelled("user")
		f.recorder.EXPECT().AddPromotions(0)

		result, err := f.reservationCommands().CancelReservation(ctx, target.ID(), owner)

		require.NoError(t, err)
		assert.Zero(t, result.PromotedFromWaitlist)
		assert.Empty(t, result.Promoted)
		assert.Equal(t, "Reservation cancelled. 0 people promoted from waitlist.", result.Message)
	})

	t.Run("繰り上げ対象がいなければ満席からOPENに戻る", func(t *testing.T) {
		f := newFixture(t)
		ev := newEvent(eventOpts{capacity: 10, status: event.StatusFull})
		owner := uuid.New()
		target := userReservation(ev.ID(), owner, 3, reservation.StatusConfirmed, baseNow.Add(-48*time.Hour))

		f.reads.EXPECT().ReservationByID(gomock.Any(), target.ID()).Return(snapshotOf(target), nil)
		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.reservations.EXPECT().FindByID(gomock.Any(), target.ID()).Return(target, nil)
		f.reservations.EXPECT().UpdateStatus(gomock.Any(), target).Return(nil)
		f.reservations.EXPECT().SumConfirmedGuests(gomock.Any(), ev.ID()).Return(7, nil).Times(2)
		f.reservations.EXPECT().ListWaitlist(gomock.Any(), ev.ID()).Return(nil, nil)
		f.events.EXPECT().UpdateStatus(gomock.Any(), ev).Return(nil)
		f.expectUsers()
		f.captureNotices()
		f.recorder.EXPECT().IncCancelled("user")
		f.recorder.EXPECT().AddPromotions(0)

		result, err := f.reservationCommands().CancelReservation(ctx, target.ID(), owner)

		require.NoError(t, err)
		assert.Equal(t, "OPEN", result.EventStatus)
	})

	t.Run("宛先の照会に失敗してもキャンセルは確定する", func(t *testing.T) {
		f := newFixture(t)
		ev := newEvent(eventOpts{capacity: 10})
		owner := uuid.New()
		target := userReservation(ev.ID(), owner, 2, reservation.StatusConfirmed, baseNow.Add(-48*time.Hour))

		f.reads.EXPECT().ReservationByID(gomock.Any(), target.ID()).Return(snapshotOf(target), nil)
		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.reservations.EXPECT().FindByID(gomock.Any(), target.ID()).Return(target, nil)
		f.reservations.EXPECT().UpdateStatus(gomock.Any(), target).Return(nil)
		f.reservations.EXPECT().SumConfirmedGuests(gomock.Any(), ev.ID()).Return(0, nil).Times(2)
		f.reservations.EXPECT().ListWaitlist(gomock.Any(), ev.ID()).Return(nil, nil)
		f.reads.EXPECT().UserByID(gomock.Any(), owner).Return(nil, errors.New("connection reset"))
		f.recorder.EXPECT().IncCancelled("user")
		f.recorder.EXPECT().AddPromotions(0)

		result, err := f.reservationCommands().CancelReservation(ctx, target.ID(), owner)

		require.NoError(t, err)
		assert.Equal(t, "CANCELLED", result.Cancelled.Status)
		assert.Equal(t, reservation.StatusCancelled, target.Status())
	})

	t.Run("キャンセルが拒否されるケース", func(t *testing.T) {
		owner := uuid.New()

		cases := []struct {
			name    string
			eventAt time.Time
			status  reservation.Status
			caller  uuid.UUID
			want    error
		}{
			{name: "他人の予約", eventAt: baseNow.Add(72 * time.Hour), status: reservation.StatusConfirmed, caller: uuid.New(), want: reservation.ErrNotOwner},
			{name: "キャンセル済み", eventAt: baseNow.Add(72 * time.Hour), status: reservation.StatusCancelled, caller: owner, want: reservation.ErrAlreadyCancelled},
			{name: "開催24時間前を切っている", eventAt: baseNow.Add(23 * time.Hour), status: reservation.StatusConfirmed, caller: owner, want: reservation.ErrDeadlinePassed},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)
				ev := newEvent(eventOpts{date: tc.eventAt})
				target := userReservation(ev.ID(), owner, 2, tc.status, baseNow.Add(-48*time.Hour))

				f.reads.EXPECT().ReservationByID(gomock.Any(), target.ID()).Return(snapshotOf(target), nil)
				f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
				f.reservations.EXPECT().FindByID(gomock.Any(), target.ID()).Return(target, nil)

				_, err := f.reservationCommands().CancelReservation(ctx, target.ID(), tc.caller)
				require.ErrorIs(t, err, tc.want)
			})
		}
	})

	t.Run("ちょうど24時間前ならキャンセルできる", func(t *testing.T) {
		f := newFixture(t)
		ev := newEvent(eventOpts{date: baseNow.Add(24 * time.Hour)})
		owner := uuid.New()
		target := userReservation(ev.ID(), owner, 1, reservation.StatusConfirmed, baseNow.Add(-48*time.Hour))

		f.reads.EXPECT().ReservationByID(gomock.Any(), target.ID()).Return(snapshotOf(target), nil)
		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.reservations.EXPECT().FindByID(gomock.Any(), target.ID()).Return(target, nil)
		f.reservations.EXPECT().UpdateStatus(gomock.Any(), target).Return(nil)
		f.reservations.EXPECT().SumConfirmedGuests(gomock.Any(), ev.ID()).Return(0, nil).Times(2)
		f.reservations.EXPECT().ListWaitlist(gomock.Any(), ev.ID()).Return(nil, nil)
		f.expectUsers()
		f.captureNotices()
		f.recorder.EXPECT().IncCancelled("user")
		f.recorder.EXPECT().AddPromotions(0)

		_, err := f.reservationCommands().CancelReservation(ctx, target.ID(), owner)
		require.NoError(t, err)
	})

	t.Run("存在しない予約はNotFound", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.reads.EXPECT().ReservationByID(gomock.Any(), id).Return(nil, notFound())

		_, err := f.reservationCommands().CancelReservation(ctx, id, uuid.New())

		require.ErrorIs(t, err, commands.ErrReservationNotFound)
		kind, _ := errs.KindOf(err)
		assert.Equal(t, errs.KindNotFound, kind)
	})
}

func TestCancelGuestReservation(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, r *reservation.Reservation, ev *event.Event) *fixture {
		f := newFixture(t)
		f.reads.EXPECT().ReservationByID(gomock.Any(), r.ID()).
			Return(&shared.ReservationSnapshot{ID: r.ID(), EventID: ev.ID(), UserID: r.UserID()}, nil)
		f.events.EXPECT().LockByID(gomock.Any(), ev.ID()).Return(ev, nil)
		f.reservations.EXPECT().FindByID(gomock.Any(), r.ID()).Return(r, nil)
		f.issuer.EXPECT().Hash(gomock.Any()).DoAndReturn(func(plain string) string { return "h:" + plain }).AnyTimes()
		return f
	}
	expectSuccess := func(f *fixture, r *reservation.Reservation, ev *event.Event) {
		f.reservations.EXPECT().UpdateStatus(gomock.Any(), r).Return(nil)
		f.reservations.EXPECT().SumConfirmedGuests(gomock.Any(), ev.ID()).Return(0, nil).AnyTimes()
		f.reservations.EXPECT().ListWaitlist(gomock.Any(), ev.ID()).Return(nil, nil).AnyTimes()
		f.expectUsers()
		f.captureNotices()
		f.recorder.EXPECT().IncCancelled("guest")
		f.recorder.EXPECT().AddPromotions(0)
	}

	t.Run("メールアドレスは大文字小文字を区別せず照合する", func(t *testing.T) {
		ev := newEvent(eventOpts{})
		r := guestReservation(ev.ID(), "Ada@Example.com", "h:tok", ev.Date().Add(24*time.Hour), 2, reservation.StatusConfirmed)
		f := setup(t, r, ev)
		expectSuccess(f, r, ev)

		result, err := f.reservationCommands().CancelGuestReservation(ctx, r.ID(), commands.GuestProof{Email: "ada@example.COM"})

		require.NoError(t, err)
		assert.Equal(t, "CANCELLED", result.Cancelled.Status)
	})

	t.Run("有効なトークンでキャンセルできる", func(t *testing.T) {
		ev := newEvent(eventOpts{})
		r := guestReservation(ev.ID(), "ada@example.com", "h:tok", ev.Date().Add(24*time.Hour), 2, reservation.StatusConfirmed)
		f := setup(t, r, ev)
		expectSuccess(f, r, ev)

		_, err := f.reservationCommands().CancelGuestReservation(ctx, r.ID(), commands.GuestProof{Token: "tok"})
		require.NoError(t, err)
	})

	t.Run("ゲスト予約のキャンセルが拒否されるケース", func(t *testing.T) {
		cases := []struct {
			name  string
			build func(ev *event.Event) *reservation.Reservation
			proof commands.GuestProof
			want  error
		}{
			{
				name: "ユーザー予約はゲスト経路で扱えない",
				build: func(ev *event.Event) *reservation.Reservation {
					return userReservation(ev.ID(), uuid.New(), 1, reservation.StatusConfirmed, baseNow)
				},
				proof: commands.GuestProof{Email: "ada@example.com"},
				want:  reservation.ErrNotGuestReservation,
			},
			{
				name: "別のトークン",
				build: func(ev *event.Event) *reservation.Reservation {
					return guestReservation(ev.ID(), "ada@example.com", "h:tok", ev.Date().Add(24*time.Hour), 1, reservation.StatusConfirmed)
				},
				proof: commands.GuestProof{Token: "other"},
				want:  commands.ErrInvalidToken,
			},
			{
				name: "期限切れのトークン",
				build: func(ev *event.Event) *reservation.Reservation {
					return guestReservation(ev.ID(), "ada@example.com", "h:tok", baseNow.Add(-time.Minute), 1, reservation.StatusConfirmed)
				},
				proof: commands.GuestProof{Token: "tok"},
				want:  commands.ErrTokenExpired,
			},
			{
				name: "メールアドレス不一致",
				build: func(ev *event.Event) *reservation.Reservation {
					return guestReservation(ev.ID(), "ada@example.com", "h:tok", ev.Date().Add(24*time.Hour), 1, reservation.StatusConfirmed)
				},
				proof: commands.GuestProof{Email: "eve@example.com"},
				want:  reservation.ErrNotOwner,
			},
			{
				name: "証明なし",
				build: func(ev *event.Event) *reservation.Reservation {
					return guestReservation(ev.ID(), "ada@example.com", "h:tok", ev.Date().Add(24*time.Hour), 1, reservation.StatusConfirmed)
				},
				want: reservation.ErrNotOwner,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ev := newEvent(eventOpts{})
				r := tc.build(ev)
				f := setup(t, r, ev)

				_, err := f.reservationCommands().CancelGuestReservation(ctx, r.ID(), tc.proof)
				require.ErrorIs(t, err, tc.want)
			})
		}
	})
}

func TestValidateGuestToken(t *testing.T) {
	ctx := context.Background()
	plain := "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

	t.Run("形式が不正なトークンは照会せずに拒否する", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.reservationCommands().ValidateGuestToken(ctx, "short")

		require.ErrorIs(t, err, commands.ErrInvalidToken)
	})

	t.Run("該当する予約がなければInvalidToken", func(t *testing.T) {
		f := newFixture(t)
		f.issuer.EXPECT().Hash(plain).Return("hash")
		f.reads.EXPECT().ReservationByTokenHash(gomock.Any(), "hash").Return(nil, notFound())

		_, err := f.reservationCommands().ValidateGuestToken(ctx, plain)

		require.ErrorIs(t, err, commands.ErrInvalidToken)
		assert.Equal(t, "Invalid or expired token", err.Error())
	})

	t.Run("有効期限を過ぎていればTokenExpired", func(t *testing.T) {
		f := newFixture(t)
		expired := baseNow.Add(-time.Second)
		f.issuer.EXPECT().Hash(plain).Return("hash")
		f.reads.EXPECT().ReservationByTokenHash(gomock.Any(), "hash").
			Return(&shared.ReservationSnapshot{ID: uuid.New(), TokenExpiresAt: &expired}, nil)

		_, err := f.reservationCommands().ValidateGuestToken(ctx, plain)

		require.ErrorIs(t, err, commands.ErrTokenExpired)
	})

	t.Run("有効なトークンは予約とイベントの概要を返す", func(t *testing.T) {
		f := newFixture(t)
		expires := baseNow.Add(96 * time.Hour)
		eventID := uuid.New()
		name, email := "Ada", "ada@example.com"
		snap := &shared.ReservationSnapshot{
			ID: uuid.New(), EventID: eventID, GuestName: &name, GuestEmail: &email,
			TokenExpiresAt: &expires, GuestCount: 2, Status: "CONFIRMED",
		}
		f.issuer.EXPECT().Hash(plain).Return("hash")
		f.reads.EXPECT().ReservationByTokenHash(gomock.Any(), "hash").Return(snap, nil)
		f.reads.EXPECT().EventByID(gomock.Any(), eventID).
			Return(&shared.EventSnapshot{ID: eventID, Title: "Supper Club", Date: baseNow.Add(72 * time.Hour), Status: "OPEN"}, nil)

		result, err := f.reservationCommands().ValidateGuestToken(ctx, plain)

		require.NoError(t, err)
		assert.Equal(t, snap.ID, result.Reservation.ID)
		assert.Equal(t, "Supper Club", result.Event.Title)
		assert.Equal(t, 2, result.Reservation.GuestCount)
	})
}
