//go:build unit

package repository_test

import (
	"context"
	"testing"

	"cinema-ticketing/internal/domain/movie"
	"cinema-ticketing/internal/domain/rating"
	"cinema-ticketing/internal/infra"
	"cinema-ticketing/internal/infra/pgquery"
	"cinema-ticketing/internal/infra/repository"
	"cinema-ticketing/internal/pkg/errs"
	repositorymock "cinema-ticketing/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMovieRepository_UpdateRatings(t *testing.T) {
	ctx := context.Background()
	movieID := uuid.New()
	userID := uuid.New()
	row := pgquery.Movie{
		ID:               movieID,
		Name:             "Small Fish",
		DurationMinutes:  100,
		RatingTotalValue: 9,
		RatingTotalVotes: 2,
		Version:          2,
	}

	testCases := []struct {
		name        string
		rowsUpdated int64
		expectErr   error
	}{
		{name: "success: totals written under the loaded version", rowsUpdated: 1},
		{name: "error: movie changed concurrently", rowsUpdated: 0, expectErr: errs.ErrWriteConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockMovieQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewMovieRepository(mockQueries, mockDB)

			mockQueries.EXPECT().GetMovie(ctx, mockDB, movieID).Return(row, nil)
			mockQueries.EXPECT().ListMovieActors(ctx, mockDB, []uuid.UUID{movieID}).Return(nil, nil)
			m, err := repo.FindByID(ctx, movieID)
			require.NoError(t, err)

			v, err := rating.NewValue(4)
			require.NoError(t, err)
			c, err := rating.NewComment("")
			require.NoError(t, err)
			m.Rate(userID, v, c, now)

			mockQueries.EXPECT().UpdateMovieRatings(ctx, mockDB, pgquery.UpdateMovieRatingsParams{
				ID:               movieID,
				RatingTotalValue: 13,
				RatingTotalVotes: 3,
				Version:          3,
				ExpectedVersion:  2,
			}).Return(tc.rowsUpdated, nil)

			err = repo.UpdateRatings(ctx, m)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				assert.True(t, infra.IsKind(err, infra.KindConflict))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMovieRepository_Create(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockMovieQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewMovieRepository(mockQueries, mockDB)

	ewan, err := movie.NewActor("Ewan", "McGregor", "Edward Bloom")
	require.NoError(t, err)
	m, err := movie.NewMovie(movie.Params{Name: "Big Fish", DurationMinutes: 125, Actors: []movie.Actor{ewan}})
	require.NoError(t, err)

	mockQueries.EXPECT().InsertMovie(ctx, mockDB, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgquery.DBTX, row pgquery.Movie) error {
			assert.Equal(t, m.ID(), row.ID)
			assert.Equal(t, []string{}, row.Genres)
			return nil
		})
	mockQueries.EXPECT().CopyMovieActors(ctx, mockDB, []pgquery.MovieActor{
		{MovieID: m.ID(), Position: 0, Name: "Ewan", Surname: "McGregor", CharacterName: "Edward Bloom"},
	}).Return(int64(1), nil)

	assert.NoError(t, repo.Create(ctx, m))
}

func TestMovieRepository_SaveCast(t *testing.T) {
	ctx := context.Background()
	movieID := uuid.New()
	row := pgquery.Movie{ID: movieID, Name: "Big Fish", DurationMinutes: 125, Version: 4}
	cast := []pgquery.MovieActor{
		{MovieID: movieID, Position: 0, Name: "Ewan", Surname: "McGregor", CharacterName: "Edward Bloom"},
	}

	testCases := []struct {
		name        string
		rowsUpdated int64
		expectErr   error
	}{
		{name: "success: new actors appended after the loaded cast", rowsUpdated: 1},
		{name: "error: cast changed concurrently", rowsUpdated: 0, expectErr: errs.ErrWriteConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockMovieQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewMovieRepository(mockQueries, mockDB)

			mockQueries.EXPECT().GetMovie(ctx, mockDB, movieID).Return(row, nil)
			mockQueries.EXPECT().ListMovieActors(ctx, mockDB, []uuid.UUID{movieID}).Return(cast, nil)
			m, err := repo.FindByID(ctx, movieID)
			require.NoError(t, err)
			require.Len(t, m.Actors(), 1)

			a, err := movie.NewActor("Albert", "Finney", "Edward Bloom")
			require.NoError(t, err)
			m.AddActor(a)

			mockQueries.EXPECT().BumpMovieVersion(ctx, mockDB, pgquery.BumpMovieVersionParams{
				ID:              movieID,
				Version:         5,
				ExpectedVersion: 4,
			}).Return(tc.rowsUpdated, nil)
			if tc.expectErr == nil {
				mockQueries.EXPECT().CopyMovieActors(ctx, mockDB, []pgquery.MovieActor{
					{MovieID: movieID, Position: 1, Name: "Albert", Surname: "Finney", CharacterName: "Edward Bloom"},
				}).Return(int64(1), nil)
			}

			err = repo.SaveCast(ctx, m)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("no new actors writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockMovieQueries(ctrl)
		repo := repository.NewMovieRepository(mockQueries, &mockDBTX{})

		m := movie.Reconstruct(movieID, movie.Params{Name: "Big Fish", DurationMinutes: 125}, rating.Accumulator{}, 1)
		assert.NoError(t, repo.SaveCast(ctx, m))
	})
}

func TestRateRepository_Create(t *testing.T) {
	ctx := context.Background()
	v, err := rating.NewValue(5)
	require.NoError(t, err)
	c, err := rating.NewComment("great")
	require.NoError(t, err)
	rate := rating.NewRate(uuid.New(), uuid.New(), v, c, now)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockMovieQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewRateRepository(mockQueries, mockDB)

		mockQueries.EXPECT().InsertRate(ctx, mockDB, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ pgquery.DBTX, arg pgquery.InsertRateParams) error {
				assert.Equal(t, int16(5), arg.Value)
				assert.Equal(t, "great", arg.Comment)
				return nil
			})

		assert.NoError(t, repo.Create(ctx, rate))
	})

	t.Run("error: second vote by the same user is a write conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockMovieQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewRateRepository(mockQueries, mockDB)

		mockQueries.EXPECT().InsertRate(ctx, mockDB, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		assert.ErrorIs(t, repo.Create(ctx, rate), errs.ErrWriteConflict)
	})
}
