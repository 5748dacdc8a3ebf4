//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dinner-club/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutboxMailer(t *testing.T) {
	ctx := context.Background()

	t.Run("通知ごとにメールジョブを1件登録する", func(t *testing.T) {
		f := newFixture(t)
		notices := []commands.Notice{
			{Topic: commands.TopicReservationCancelled, To: "ada@example.com", Name: "Ada", Data: map[string]any{"guestCount": 2}},
			{Topic: commands.TopicChefCancellation, To: "chef@example.com", Name: "Chef"},
		}

		var payloads [][]byte
		f.notifications.EXPECT().CreateJob(gomock.Any(), "email", gomock.Any(), gomock.Any(), baseNow).
			DoAndReturn(func(_ context.Context, _, _ string, payload []byte, _ time.Time) error {
				payloads = append(payloads, payload)
				return nil
			}).Times(2)

		err := commands.NewOutboxMailer(f.uow, f.clock).Send(ctx, notices...)

		require.NoError(t, err)
		require.Len(t, payloads, 2)
		var decoded commands.Notice
		require.NoError(t, json.Unmarshal(payloads[0], &decoded))
		assert.Equal(t, "ada@example.com", decoded.To)
		assert.Equal(t, commands.TopicReservationCancelled, decoded.Topic)
		assert.InDelta(t, 2, decoded.Data["guestCount"], 0)
	})

	t.Run("通知がなければトランザクションを開始しない", func(t *testing.T) {
		f := newFixture(t)

		require.NoError(t, commands.NewOutboxMailer(f.uow, f.clock).Send(ctx))
	})

	t.Run("登録に失敗したらエラーを返す", func(t *testing.T) {
		f := newFixture(t)
		f.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		err := commands.NewOutboxMailer(f.uow, f.clock).Send(ctx, commands.Notice{Topic: commands.TopicWaitlistPromoted})

		require.ErrorIs(t, err, commands.ErrNotificationEnqueue)
	})
}
