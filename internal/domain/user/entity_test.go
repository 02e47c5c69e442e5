//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"cinema-ticketing/internal/domain/user"
	"cinema-ticketing/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("builds a customer", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		profile, err := builder.NewUserBuilder().BuildProfile()
		require.NoError(t, err)
		expected := user.NewUser(profile, "hashed_password", user.RoleCustomer, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "emma", actual.Username().Value())
		assert.Equal(t, 0, actual.Points())
		assert.False(t, actual.IsAdmin())
		assert.False(t, actual.Changed())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid", mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") }},
			{name: "empty", mutate: func(b *builder.UserBuilder) { b.WithEmail("") }, errIs: user.ErrInvalidEmail},
			{name: "malformed", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") }, errIs: user.ErrInvalidEmail},
			{name: "missing at sign", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") }, errIs: user.ErrInvalidEmail},
		})
	})

	t.Run("username", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid", mutate: func(b *builder.UserBuilder) { b.WithUsername("nico") }},
			{name: "blank", mutate: func(b *builder.UserBuilder) { b.WithUsername("   ") }, errIs: user.ErrInvalidUsername},
			{name: "too long", mutate: func(b *builder.UserBuilder) { b.WithUsername(strings.Repeat("u", 51)) }, errIs: user.ErrUsernameTooLong},
		})
	})

	t.Run("names", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "blank name", mutate: func(b *builder.UserBuilder) { b.WithName("", "Stone") }, errIs: user.ErrInvalidName},
			{name: "blank surname", mutate: func(b *builder.UserBuilder) { b.WithName("Emma", " ") }, errIs: user.ErrInvalidName},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "admin", mutate: func(b *builder.UserBuilder) { b.AsAdmin() }},
			{name: "customer", mutate: func(b *builder.UserBuilder) { b.WithRole("customer") }},
			{name: "unknown", mutate: func(b *builder.UserBuilder) { b.WithRole("operator") }, errIs: user.ErrInvalidRole},
			{name: "empty", mutate: func(b *builder.UserBuilder) { b.WithRole("") }, errIs: user.ErrInvalidRole},
		})
	})
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		repeated string
		errIs    error
	}{
		{name: "valid", password: "correct-horse-1", repeated: "correct-horse-1"},
		{name: "exactly twelve", password: "123456789012", repeated: "123456789012"},
		{name: "too short", password: "12345678901", repeated: "12345678901", errIs: user.ErrPasswordTooWeak},
		{name: "mismatch", password: "correct-horse-1", repeated: "correct-horse-2", errIs: user.ErrPasswordsDontMatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := user.NewPassword(tt.password, tt.repeated)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.password, p.Value())
		})
	}
}

func TestAddPoints(t *testing.T) {
	u, err := builder.NewUserBuilder().WithPoints(20).BuildDomain()
	require.NoError(t, err)

	require.NoError(t, u.AddPoints(10))
	assert.Equal(t, 30, u.Points())
	assert.True(t, u.Changed())

	assert.ErrorIs(t, u.AddPoints(0), user.ErrInvalidPoints)
	assert.Equal(t, 30, u.Points())
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
