//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"dinner-club/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "一意制約違反は重複扱い", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "外部キー違反", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "チェック制約違反", err: &pgconn.PgError{Code: "23514"}, want: infra.KindConstraintViolated},
		{name: "その他はDB障害", err: errors.New("connection reset"), want: infra.KindDBFailure},
		{name: "明示した種別が優先", err: pgx.ErrNoRows, kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", c.err, c.kind...)
			assert.True(t, infra.IsKind(err, c.want))
			assert.ErrorIs(t, err, c.err)
		})
	}
}
