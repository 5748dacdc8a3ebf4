//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dinner-club/internal/domain/event"
	"dinner-club/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCleanupPastEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("保持期間より古いイベントを投票中以外のステータスで削除する", func(t *testing.T) {
		f := newFixture(t)
		wantCutoff := baseNow.Add(-30 * 24 * time.Hour)
		f.events.EXPECT().DeletePast(gomock.Any(), wantCutoff, event.DeletableStatuses).Return(int64(3), nil)
		f.recorder.EXPECT().AddEventsDeleted(int64(3))

		got, err := commands.NewCleanupCommands(f.uow, f.recorder, f.clock, 30).CleanupPastEvents(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(3), got.Deleted)
		assert.Equal(t, wantCutoff, got.Cutoff)
		assert.NotContains(t, event.DeletableStatuses, event.StatusPollActive)
	})

	t.Run("保持日数が未設定なら30日", func(t *testing.T) {
		f := newFixture(t)
		f.events.EXPECT().DeletePast(gomock.Any(), baseNow.AddDate(0, 0, -30), gomock.Any()).Return(int64(0), nil)
		f.recorder.EXPECT().AddEventsDeleted(int64(0))

		_, err := commands.NewCleanupCommands(f.uow, f.recorder, f.clock, 0).CleanupPastEvents(ctx)

		require.NoError(t, err)
	})

	t.Run("削除に失敗したらメトリクスを記録しない", func(t *testing.T) {
		f := newFixture(t)
		f.events.EXPECT().DeletePast(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("boom"))

		_, err := commands.NewCleanupCommands(f.uow, f.recorder, f.clock, 30).CleanupPastEvents(ctx)

		require.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})
}
