//go:build unit

package user_test

import (
	"testing"

	"dinner-club/internal/domain/user"
	"dinner-club/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.Email{}),
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		role, _ := user.NewRole("attendee")
		expected := user.NewUser(email, "Test User", "hashed_password", role, actual.CreatedAt())

		if diff := cmp.Diff(expected.Email(), actual.Email(), cmpOpts...); diff != "" {
			t.Errorf("Email mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, expected.Role(), actual.Role())
		assert.Equal(t, expected.Name(), actual.Name())

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "attendee ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("attendee") },
			},
			{
				name:   "chef ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("chef") },
			},
			{
				name:   "admin ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "無効なロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("viewer") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "空のロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("主催権限", func(t *testing.T) {
		assert.False(t, user.RoleAttendee.CanHost())
		assert.True(t, user.RoleChef.CanHost())
		assert.True(t, user.RoleAdmin.CanHost())
	})

	t.Run("メールアドレスは大文字小文字を区別せず比較", func(t *testing.T) {
		email, err := user.NewEmail("Chef@Example.com")
		require.NoError(t, err)
		assert.True(t, email.Equal("chef@example.COM"))
		assert.False(t, email.Equal("other@example.com"))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
