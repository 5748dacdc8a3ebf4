//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"dinner-club/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestShouldRetry(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		attempt int
		want    bool
	}{
		{name: "シリアライズ失敗はリトライ", err: &pgconn.PgError{Code: "40001"}, attempt: 0, want: true},
		{name: "デッドロックはリトライ", err: &pgconn.PgError{Code: "40P01"}, attempt: 2, want: true},
		{name: "ラップされていても判定できる", err: errs.Wrap(&pgconn.PgError{Code: "40001"}, "lock event"), attempt: 0, want: true},
		{name: "上限到達でリトライしない", err: &pgconn.PgError{Code: "40001"}, attempt: 3, want: false},
		{name: "一意制約違反はリトライしない", err: &pgconn.PgError{Code: "23505"}, attempt: 0, want: false},
		{name: "PgError以外はリトライしない", err: errors.New("boom"), attempt: 0, want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, shouldRetry(c.err, c.attempt, 3))
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := range 3 {
		wait := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, wait, floor)
		assert.Less(t, wait, floor+floor/5+time.Nanosecond)
	}
}
