//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cinema-ticketing/internal/domain/user"
	"cinema-ticketing/internal/infra/memstore"
	"cinema-ticketing/internal/usecase/commands"
	"cinema-ticketing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// barrier blocks the first two arrivals until both are present.
type barrier struct {
	mu      sync.Mutex
	arrived int
	release chan struct{}
}

func newBarrier() *barrier { return &barrier{release: make(chan struct{})} }

func (b *barrier) arrive() error {
	b.mu.Lock()
	b.arrived++
	n := b.arrived
	if n == 2 {
		close(b.release)
	}
	b.mu.Unlock()
	if n > 2 {
		return nil
	}
	select {
	case <-b.release:
		return nil
	case <-time.After(5 * time.Second):
		return errors.New("barrier timed out")
	}
}

type barrierUoW struct {
	shared.UnitOfWork
	b *barrier
}

func (u barrierUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.UnitOfWork.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, barrierTx{Tx: tx, b: u.b})
	})
}

type barrierTx struct {
	shared.Tx
	b *barrier
}

func (t barrierTx) Users() shared.UserRepository {
	return barrierUsers{UserRepository: t.Tx.Users(), b: t.b}
}

type barrierUsers struct {
	shared.UserRepository
	b *barrier
}

func (r barrierUsers) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	exists, err := r.UserRepository.ExistsByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return exists, r.b.arrive()
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a customer with no points", func(t *testing.T) {
		f := newFixture(t)
		res, err := f.accounts.RegisterUser(ctx, registerRequest("emma"))
		require.NoError(t, err)
		assert.Equal(t, "emma", res.Username)

		view, err := f.store.UserReads().FindByID(ctx, res.UserID)
		require.NoError(t, err)
		assert.Equal(t, "customer", view.Role)
		assert.Zero(t, view.Points)
		assert.Equal(t, t0, view.CreatedAt)
	})

	t.Run("username must be unique", func(t *testing.T) {
		f := newFixture(t)
		f.registerUser(t, "emma")

		_, err := f.accounts.RegisterUser(ctx, registerRequest("emma"))
		assert.ErrorIs(t, err, commands.ErrUsernameTaken)
		assert.Equal(t, 1, f.store.UserCount())
	})

	t.Run("validates the request", func(t *testing.T) {
		f := newFixture(t)
		tests := []struct {
			name    string
			mutate  func(r *commands.RegisterUserRequest)
			wantErr error
		}{
			{"blank name", func(r *commands.RegisterUserRequest) { r.Name = " " }, user.ErrInvalidName},
			{"bad email", func(r *commands.RegisterUserRequest) { r.Email = "nope" }, user.ErrInvalidEmail},
			{"blank username", func(r *commands.RegisterUserRequest) { r.Username = "" }, user.ErrInvalidUsername},
			{"short password", func(r *commands.RegisterUserRequest) { r.Password, r.RepeatPassword = "short", "short" }, user.ErrPasswordTooWeak},
			{"passwords differ", func(r *commands.RegisterUserRequest) { r.RepeatPassword = "another-long-password" }, user.ErrPasswordsDontMatch},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := registerRequest("emma")
				tt.mutate(&req)
				_, err := f.accounts.RegisterUser(ctx, req)
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
		assert.Zero(t, f.store.UserCount())
	})
}

func TestConcurrentRegistrationSameUsername(t *testing.T) {
	store := memstore.NewStore()
	inner := memstore.NewUnitOfWork(store, shared.RetryPolicy{MaxAttempts: 3})
	f := newFixtureWithUoW(t, store, barrierUoW{UnitOfWork: inner, b: newBarrier()})

	results := make(chan error, 2)
	for range 2 {
		go func() {
			_, err := f.accounts.RegisterUser(context.Background(), registerRequest("emma"))
			results <- err
		}()
	}

	var success, taken int
	for range 2 {
		err := <-results
		switch {
		case err == nil:
			success++
		case errors.Is(err, commands.ErrUsernameTaken):
			taken++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, success)
	assert.Equal(t, 1, taken)
	assert.Equal(t, 1, store.UserCount())
}

func TestEnsureAdmin(t *testing.T) {
	f := newFixture(t)
	req := registerRequest("root")

	require.NoError(t, f.accounts.EnsureAdmin(context.Background(), req))
	require.NoError(t, f.accounts.EnsureAdmin(context.Background(), req))
	assert.Equal(t, 1, f.store.UserCount())

	res, err := f.accounts.Login(context.Background(), commands.LoginRequest{Username: "root", Password: req.Password})
	require.NoError(t, err)
	assert.Equal(t, "admin", res.Role)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token and audits the success", func(t *testing.T) {
		f := newFixture(t)
		userID := f.registerUser(t, "emma")

		res, err := f.accounts.Login(ctx, commands.LoginRequest{Username: "emma", Password: "correct-horse-battery"})
		require.NoError(t, err)
		assert.Equal(t, userID, res.UserID)
		assert.Equal(t, "customer", res.Role)

		claims, err := f.tokens.ValidateToken(res.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "emma", claims.Username)

		audits := f.store.LoginAudits()
		require.Len(t, audits, 1)
		assert.True(t, audits[0].Succeeded)
		assert.Equal(t, userID, audits[0].UserID)
	})

	t.Run("wrong password is audited as a failure", func(t *testing.T) {
		f := newFixture(t)
		userID := f.registerUser(t, "emma")

		_, err := f.accounts.Login(ctx, commands.LoginRequest{Username: "emma", Password: "wrong-password-here"})
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)

		audits := f.store.LoginAudits()
		require.Len(t, audits, 1)
		assert.False(t, audits[0].Succeeded)
		assert.Equal(t, userID, audits[0].UserID)
	})

	t.Run("unknown username looks like a wrong password", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.accounts.Login(ctx, commands.LoginRequest{Username: "ghost", Password: "whatever-password"})
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)

		audits := f.store.LoginAudits()
		require.Len(t, audits, 1)
		assert.Equal(t, uuid.Nil, audits[0].UserID)
		assert.Equal(t, "ghost", audits[0].Username)
	})

	t.Run("blank credentials are rejected before lookup", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.accounts.Login(ctx, commands.LoginRequest{Username: "emma"})
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
		assert.Empty(t, f.store.LoginAudits())
	})
}
