//go:build unit

package movie_test

import (
	"testing"
	"time"

	"cinema-ticketing/internal/domain/movie"
	"cinema-ticketing/internal/domain/rating"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMovie(t *testing.T) {
	m, err := movie.NewMovie(movie.Params{
		Name:            "  Small Fish  ",
		DurationMinutes: 102,
		Genres:          []string{"Drama", " ", "Comedy"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Small Fish", m.Name())
	assert.Equal(t, []string{"Drama", "Comedy"}, m.Genres())
	assert.Equal(t, "0.00", m.RatingAverage().String())
	assert.False(t, m.Changed())

	_, err = movie.NewMovie(movie.Params{Name: "", DurationMinutes: 90})
	assert.ErrorIs(t, err, movie.ErrInvalidName)
	_, err = movie.NewMovie(movie.Params{Name: "x", DurationMinutes: 0})
	assert.ErrorIs(t, err, movie.ErrInvalidDuration)
}

func TestMovieRate(t *testing.T) {
	acc, err := rating.ReconstructAccumulator(7, 2)
	require.NoError(t, err)
	m := movie.Reconstruct(uuid.New(), movie.Params{Name: "Rock in the School", DurationMinutes: 95}, acc, 4)

	userID := uuid.New()
	v, _ := rating.NewValue(4)
	c, _ := rating.NewComment("nice")
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	r := m.Rate(userID, v, c, now)

	assert.Equal(t, m.ID(), r.MovieID())
	assert.Equal(t, userID, r.UserID())
	assert.Equal(t, now, r.CreatedAt())
	assert.Equal(t, "3.67", m.RatingAverage().String())
	assert.Equal(t, int64(5), m.Version())
	assert.Equal(t, int64(4), m.LoadedVersion())
	assert.True(t, m.Changed())
}

func TestNewActor(t *testing.T) {
	a, err := movie.NewActor(" Carlos ", "Kalchi", " Jorge Pasa ")
	require.NoError(t, err)
	assert.Equal(t, "Carlos Kalchi", a.FullName())
	assert.Equal(t, "Jorge Pasa", a.CharacterName())

	_, err = movie.NewActor("Carlos", " ", "Jorge")
	assert.ErrorIs(t, err, movie.ErrInvalidActorName)
	_, err = movie.NewActor("Carlos", "Kalchi", "")
	assert.ErrorIs(t, err, movie.ErrInvalidCharacterName)
}

func TestMovieAddActor(t *testing.T) {
	carlos := movie.ReconstructActor("Carlos", "Kalchi", "Jorge Pasa")
	m := movie.Reconstruct(uuid.New(), movie.Params{
		Name:            "Small Fish",
		DurationMinutes: 102,
		Actors:          []movie.Actor{carlos},
	}, rating.NewAccumulator(), 1)

	pos, added := m.NewActors()
	assert.Equal(t, 1, pos)
	assert.Empty(t, added)

	jose, err := movie.NewActor("Jose", "Hermes", "Franco Elizalde")
	require.NoError(t, err)
	m.AddActor(jose)

	pos, added = m.NewActors()
	assert.Equal(t, 1, pos)
	assert.Equal(t, []movie.Actor{jose}, added)
	assert.Equal(t, []movie.Actor{carlos, jose}, m.Actors())
	assert.Equal(t, int64(2), m.Version())
	assert.True(t, m.Changed())
}

func TestNewMovieCastIsNew(t *testing.T) {
	carlos := movie.ReconstructActor("Carlos", "Kalchi", "Jorge Pasa")
	m, err := movie.NewMovie(movie.Params{Name: "Small Fish", DurationMinutes: 102, Actors: []movie.Actor{carlos}})
	require.NoError(t, err)

	pos, added := m.NewActors()
	assert.Equal(t, 0, pos)
	assert.Equal(t, []movie.Actor{carlos}, added)
}
