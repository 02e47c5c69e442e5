package movie

import (
	"slices"
	"strings"
	"time"

	"cinema-ticketing/internal/domain/rating"
	"cinema-ticketing/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidName     = errs.New("movie name is required")
	ErrInvalidDuration = errs.New("movie duration must be positive")
)

type Movie struct {
	id              uuid.UUID
	name            string
	plot            string
	durationMinutes int
	releaseDate     time.Time
	genres          []string
	directors       []string
	actors          []Actor
	loadedActors    int
	ratings         rating.Accumulator
	version         int64
	loadedVersion   int64
}

type Params struct {
	Name            string
	Plot            string
	DurationMinutes int
	ReleaseDate     time.Time
	Genres          []string
	Directors       []string
	Actors          []Actor
}

func NewMovie(p Params) (*Movie, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if p.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	return &Movie{
		id:              uuid.New(),
		name:            name,
		plot:            strings.TrimSpace(p.Plot),
		durationMinutes: p.DurationMinutes,
		releaseDate:     p.ReleaseDate,
		genres:          clean(p.Genres),
		directors:       clean(p.Directors),
		actors:          slices.Clone(p.Actors),
		ratings:         rating.NewAccumulator(),
	}, nil
}

func Reconstruct(id uuid.UUID, p Params, ratings rating.Accumulator, version int64) *Movie {
	return &Movie{
		id:              id,
		name:            p.Name,
		plot:            p.Plot,
		durationMinutes: p.DurationMinutes,
		releaseDate:     p.ReleaseDate,
		genres:          slices.Clone(p.Genres),
		directors:       slices.Clone(p.Directors),
		actors:          slices.Clone(p.Actors),
		loadedActors:    len(p.Actors),
		ratings:         ratings,
		version:         version,
		loadedVersion:   version,
	}
}

func (m *Movie) ID() uuid.UUID                 { return m.id }
func (m *Movie) Name() string                  { return m.name }
func (m *Movie) Plot() string                  { return m.plot }
func (m *Movie) DurationMinutes() int          { return m.durationMinutes }
func (m *Movie) ReleaseDate() time.Time        { return m.releaseDate }
func (m *Movie) Genres() []string              { return slices.Clone(m.genres) }
func (m *Movie) Directors() []string           { return slices.Clone(m.directors) }
func (m *Movie) Actors() []Actor               { return slices.Clone(m.actors) }
func (m *Movie) Ratings() rating.Accumulator   { return m.ratings }
func (m *Movie) Version() int64                { return m.version }
func (m *Movie) LoadedVersion() int64          { return m.loadedVersion }
func (m *Movie) Changed() bool                 { return m.version != m.loadedVersion }
func (m *Movie) RatingAverage() rating.Average { return m.ratings.Average() }

// Rate records the vote on the movie totals and returns the rate to persist.
func (m *Movie) Rate(userID uuid.UUID, v rating.Value, c rating.Comment, now time.Time) *rating.Rate {
	m.ratings.RecordVote(v)
	m.version++
	return rating.NewRate(m.id, userID, v, c, now)
}

// AddActor appends a cast entry. The movie version moves so that concurrent
// cast changes conflict.
func (m *Movie) AddActor(a Actor) {
	m.actors = append(m.actors, a)
	m.version++
}

// NewActors returns the cast entries added since the movie was loaded, with
// the position of the first one.
func (m *Movie) NewActors() (int, []Actor) {
	return m.loadedActors, slices.Clone(m.actors[m.loadedActors:])
}

func clean(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
