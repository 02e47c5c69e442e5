//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"cinema-ticketing/internal/infra/memstore"
	"cinema-ticketing/internal/infra/payment"
	"cinema-ticketing/internal/pkg/clock"
	"cinema-ticketing/internal/pkg/jwt"
	"cinema-ticketing/internal/pkg/password"
	"cinema-ticketing/internal/usecase/commands"
	"cinema-ticketing/internal/usecase/queries"
	"cinema-ticketing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var (
	t0           = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	holdDuration = 5 * time.Minute
	validCard    = commands.Card{Number: "4111111111111111", Holder: "Emma Stone", ExpMonth: 12, ExpYear: 2030, CVV: "123"}
	declinedCard = commands.Card{Number: "4111111111111112", Holder: "Emma Stone", ExpMonth: 12, ExpYear: 2030, CVV: "123"}
)

type fixture struct {
	store    *memstore.Store
	uow      shared.UnitOfWork
	clock    *clock.MockClock
	gateway  *payment.FakeGateway
	tokens   *jwt.Service
	booking  commands.BookingCommands
	ratings  commands.RatingCommands
	accounts commands.AccountCommands
	catalog  commands.CatalogCommands
	shows    queries.ShowQueries
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWithAttempts(t, 3)
}

func newFixtureWithAttempts(t *testing.T, maxAttempts int) *fixture {
	t.Helper()
	store := memstore.NewStore()
	uow := memstore.NewUnitOfWork(store, shared.RetryPolicy{MaxAttempts: maxAttempts})
	return newFixtureWithUoW(t, store, uow)
}

func newFixtureWithUoW(t *testing.T, store *memstore.Store, uow shared.UnitOfWork) *fixture {
	t.Helper()
	clk := clock.NewMockClock(t0)
	gateway := payment.NewFakeGateway(clk)
	tokens := jwt.NewService("test-secret", time.Hour)
	hasher := password.NewHasherWithCost(bcrypt.MinCost)

	return &fixture{
		store:    store,
		uow:      uow,
		clock:    clk,
		gateway:  gateway,
		tokens:   tokens,
		booking:  commands.NewBookingUseCase(uow, clk, gateway, nil, nil, holdDuration),
		ratings:  commands.NewRatingUseCase(uow, clk, nil),
		accounts: commands.NewAccountUseCase(uow, clk, hasher, tokens, nil),
		catalog:  commands.NewCatalogUseCase(uow, clk),
		shows:    queries.NewShowQueries(store.ShowReads(), nil, clk),
	}
}

func registerRequest(username string) commands.RegisterUserRequest {
	return commands.RegisterUserRequest{
		Name:           "Emma",
		Surname:        "Stone",
		Email:          username + "@example.com",
		Username:       username,
		Password:       "correct-horse-battery",
		RepeatPassword: "correct-horse-battery",
	}
}

func (f *fixture) registerUser(t *testing.T, username string) uuid.UUID {
	t.Helper()
	res, err := f.accounts.RegisterUser(context.Background(), registerRequest(username))
	require.NoError(t, err)
	return res.UserID
}

func (f *fixture) addMovie(t *testing.T, name string) uuid.UUID {
	t.Helper()
	id, err := f.catalog.AddMovie(context.Background(), commands.AddMovieRequest{Name: name, DurationMinutes: 100})
	require.NoError(t, err)
	return id
}

// scheduleShow schedules a show one day ahead on a theater with seats 1..seats.
func (f *fixture) scheduleShow(t *testing.T, seats int, unitPrice string) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	movieID := f.addMovie(t, "Small Fish")
	theaterID, err := f.catalog.AddTheater(ctx, commands.AddTheaterRequest{Name: "Room A", SeatCount: seats})
	require.NoError(t, err)
	showID, err := f.catalog.ScheduleShow(ctx, commands.ScheduleShowRequest{
		MovieID:   movieID,
		TheaterID: theaterID,
		StartTime: f.clock.Now().Add(24 * time.Hour),
		UnitPrice: unitPrice,
	})
	require.NoError(t, err)
	return showID
}

func (f *fixture) seatStates(t *testing.T, showID uuid.UUID) map[int]string {
	t.Helper()
	view, err := f.shows.SeatMap(context.Background(), showID)
	require.NoError(t, err)
	out := make(map[int]string, len(view.Seats))
	for _, s := range view.Seats {
		out[s.Number] = s.State
	}
	return out
}
