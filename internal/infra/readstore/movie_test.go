//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"cinema-ticketing/internal/infra"
	"cinema-ticketing/internal/infra/pgquery"
	"cinema-ticketing/internal/pkg/pgconv"
	"cinema-ticketing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMovieReadQueries struct {
	mock.Mock
}

func (m *MockMovieReadQueries) GetMovie(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Movie, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pgquery.Movie), args.Error(1)
}

func (m *MockMovieReadQueries) ListRatesFirstPage(ctx context.Context, db pgquery.DBTX, arg pgquery.ListRatesFirstPageParams) ([]pgquery.RateRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]pgquery.RateRow), args.Error(1)
}

func (m *MockMovieReadQueries) ListRatesKeyset(ctx context.Context, db pgquery.DBTX, arg pgquery.ListRatesKeysetParams) ([]pgquery.RateRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]pgquery.RateRow), args.Error(1)
}

func (m *MockMovieReadQueries) ListMovieActors(ctx context.Context, db pgquery.DBTX, movieIDs []uuid.UUID) ([]pgquery.MovieActor, error) {
	args := m.Called(ctx, db, movieIDs)
	return args.Get(0).([]pgquery.MovieActor), args.Error(1)
}

func (m *MockMovieReadQueries) ListMoviesByName(ctx context.Context, db pgquery.DBTX, arg pgquery.ListMoviesParams) ([]pgquery.Movie, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]pgquery.Movie), args.Error(1)
}

func (m *MockMovieReadQueries) ListMoviesByReleaseDate(ctx context.Context, db pgquery.DBTX, arg pgquery.ListMoviesParams) ([]pgquery.Movie, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]pgquery.Movie), args.Error(1)
}

func (m *MockMovieReadQueries) ListMoviesByRating(ctx context.Context, db pgquery.DBTX, arg pgquery.ListMoviesParams) ([]pgquery.Movie, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]pgquery.Movie), args.Error(1)
}

func TestMovieFindByID(t *testing.T) {
	id := uuid.New()
	release := time.Date(2003, 12, 10, 0, 0, 0, 0, time.UTC)

	t.Run("with release date", func(t *testing.T) {
		mockQueries := new(MockMovieReadQueries)
		mockQueries.On("GetMovie", mock.Anything, mock.Anything, id).Return(pgquery.Movie{
			ID:               id,
			Name:             "Big Fish",
			DurationMinutes:  125,
			ReleaseDate:      pgconv.OptionalDateToPgtype(release),
			Genres:           []string{"Drama"},
			RatingTotalValue: 11,
			RatingTotalVotes: 3,
		}, nil)
		mockQueries.On("ListMovieActors", mock.Anything, mock.Anything, []uuid.UUID{id}).Return([]pgquery.MovieActor{
			{MovieID: id, Position: 0, Name: "Ewan", Surname: "McGregor", CharacterName: "Edward Bloom"},
		}, nil)

		mv, err := NewMovieReadStore(mockQueries, nil).FindByID(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, mv.ReleaseDate)
		assert.True(t, release.Equal(*mv.ReleaseDate))
		assert.Equal(t, int64(11), mv.RatingTotal)
		assert.Equal(t, int64(3), mv.RatingVotes)
		assert.Equal(t, []queries.ActorView{{Name: "Ewan McGregor", CharacterName: "Edward Bloom"}}, mv.Actors)
	})

	t.Run("without release date", func(t *testing.T) {
		mockQueries := new(MockMovieReadQueries)
		mockQueries.On("GetMovie", mock.Anything, mock.Anything, id).Return(pgquery.Movie{ID: id, Name: "Big Fish"}, nil)
		mockQueries.On("ListMovieActors", mock.Anything, mock.Anything, []uuid.UUID{id}).Return([]pgquery.MovieActor(nil), nil)

		mv, err := NewMovieReadStore(mockQueries, nil).FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.Nil(t, mv.ReleaseDate)
		assert.Equal(t, []queries.ActorView{}, mv.Actors)
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockMovieReadQueries)
		mockQueries.On("GetMovie", mock.Anything, mock.Anything, id).Return(pgquery.Movie{}, pgx.ErrNoRows)

		_, err := NewMovieReadStore(mockQueries, nil).FindByID(context.Background(), id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestMovieFindRatesKeyset(t *testing.T) {
	movieID := uuid.New()
	lastID := uuid.New()
	lastCreated := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	want := pgquery.ListRatesKeysetParams{
		MovieID:   movieID,
		CreatedAt: pgconv.TimeToPgtype(lastCreated),
		ID:        lastID,
		Limit:     2,
	}

	mockQueries := new(MockMovieReadQueries)
	mockQueries.On("ListRatesKeyset", mock.Anything, mock.Anything, want).Return([]pgquery.RateRow{
		{ID: uuid.New(), Username: "ada", Value: 4, CreatedAt: pgconv.TimeToPgtype(lastCreated.Add(-time.Minute))},
	}, nil)

	rates, err := NewMovieReadStore(mockQueries, nil).FindRatesKeyset(context.Background(), movieID, lastCreated, lastID, 2)
	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, 4, rates[0].Value)
	assert.Equal(t, "ada", rates[0].Username)
	mockQueries.AssertExpectations(t)
}

func TestMovieFindRatesFirstPageError(t *testing.T) {
	mockQueries := new(MockMovieReadQueries)
	mockQueries.On("ListRatesFirstPage", mock.Anything, mock.Anything, mock.Anything).Return([]pgquery.RateRow(nil), assert.AnError)

	_, err := NewMovieReadStore(mockQueries, nil).FindRatesFirstPage(context.Background(), uuid.New(), 10)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestMovieFindMovies(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	rows := []pgquery.Movie{
		{ID: first, Name: "Big Fish", DurationMinutes: 125},
		{ID: second, Name: "Small Fish", DurationMinutes: 102},
	}

	testCases := []struct {
		name    string
		filter  queries.MovieFilter
		method  string
		pattern string
	}{
		{name: "name order without search", filter: queries.MovieFilter{Sort: queries.MovieSortName}, method: "ListMoviesByName", pattern: "%%"},
		{name: "release order", filter: queries.MovieFilter{Sort: queries.MovieSortReleaseDate}, method: "ListMoviesByReleaseDate", pattern: "%%"},
		{name: "rating order with search", filter: queries.MovieFilter{Search: "FISH", Sort: queries.MovieSortRating}, method: "ListMoviesByRating", pattern: "%fish%"},
		{name: "like wildcards are literal", filter: queries.MovieFilter{Search: `50%_off\`}, method: "ListMoviesByName", pattern: `%50\%\_off\\%`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockQueries := new(MockMovieReadQueries)
			mockQueries.On(tc.method, mock.Anything, mock.Anything, pgquery.ListMoviesParams{
				NamePattern: tc.pattern,
				Offset:      20,
				Limit:       11,
			}).Return(rows, nil)
			mockQueries.On("ListMovieActors", mock.Anything, mock.Anything, []uuid.UUID{first, second}).Return([]pgquery.MovieActor{
				{MovieID: second, Position: 0, Name: "Carlos", Surname: "Kalchi", CharacterName: "Jorge Pasa"},
				{MovieID: second, Position: 1, Name: "Jose", Surname: "Hermes", CharacterName: "Franco Elizalde"},
			}, nil)

			movies, err := NewMovieReadStore(mockQueries, nil).FindMovies(context.Background(), tc.filter, 20, 11)
			require.NoError(t, err)
			require.Len(t, movies, 2)
			assert.Equal(t, "Big Fish", movies[0].Name)
			assert.Empty(t, movies[0].Actors)
			assert.Equal(t, []queries.ActorView{
				{Name: "Carlos Kalchi", CharacterName: "Jorge Pasa"},
				{Name: "Jose Hermes", CharacterName: "Franco Elizalde"},
			}, movies[1].Actors)
			mockQueries.AssertExpectations(t)
		})
	}

	t.Run("empty page skips the cast query", func(t *testing.T) {
		mockQueries := new(MockMovieReadQueries)
		mockQueries.On("ListMoviesByName", mock.Anything, mock.Anything, mock.Anything).Return([]pgquery.Movie{}, nil)

		movies, err := NewMovieReadStore(mockQueries, nil).FindMovies(context.Background(), queries.MovieFilter{Search: "nothing"}, 0, 5)
		require.NoError(t, err)
		assert.Empty(t, movies)
		mockQueries.AssertNotCalled(t, "ListMovieActors", mock.Anything, mock.Anything, mock.Anything)
	})
}
