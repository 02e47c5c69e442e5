package repository

import (
	"context"

	"cinema-ticketing/internal/domain/movie"
	"cinema-ticketing/internal/domain/rating"
	"cinema-ticketing/internal/infra"
	"cinema-ticketing/internal/infra/pgquery"
	"cinema-ticketing/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=movie.go -destination=../../../tests/mock/repository/movie_mock.go -package=repositorymock

type MovieQueries interface {
	GetMovie(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Movie, error)
	InsertMovie(ctx context.Context, db pgquery.DBTX, m pgquery.Movie) error
	UpdateMovieRatings(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateMovieRatingsParams) (int64, error)
	RateExists(ctx context.Context, db pgquery.DBTX, userID, movieID uuid.UUID) (bool, error)
	InsertRate(ctx context.Context, db pgquery.DBTX, arg pgquery.InsertRateParams) error
	ListMovieActors(ctx context.Context, db pgquery.DBTX, movieIDs []uuid.UUID) ([]pgquery.MovieActor, error)
	CopyMovieActors(ctx context.Context, db pgquery.DBTX, actors []pgquery.MovieActor) (int64, error)
	BumpMovieVersion(ctx context.Context, db pgquery.DBTX, arg pgquery.BumpMovieVersionParams) (int64, error)
}

type MovieRepository struct {
	queries MovieQueries
	db      pgquery.DBTX
}

func NewMovieRepository(queries MovieQueries, db pgquery.DBTX) *MovieRepository {
	return &MovieRepository{queries: queries, db: db}
}

func (r *MovieRepository) FindByID(ctx context.Context, id uuid.UUID) (*movie.Movie, error) {
	row, err := r.queries.GetMovie(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("movie not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find movie", err)
	}
	acc, err := rating.ReconstructAccumulator(row.RatingTotalValue, row.RatingTotalVotes)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt movie rating totals", err)
	}
	cast, err := r.queries.ListMovieActors(ctx, r.db, []uuid.UUID{id})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load movie cast", err)
	}
	return movie.Reconstruct(row.ID, movie.Params{
		Name:            row.Name,
		Plot:            row.Plot,
		DurationMinutes: int(row.DurationMinutes),
		ReleaseDate:     pgconv.DateFromPgtype(row.ReleaseDate),
		Genres:          row.Genres,
		Directors:       row.Directors,
		Actors:          toActors(cast),
	}, acc, row.Version), nil
}

func toActors(rows []pgquery.MovieActor) []movie.Actor {
	actors := make([]movie.Actor, len(rows))
	for i, a := range rows {
		actors[i] = movie.ReconstructActor(a.Name, a.Surname, a.CharacterName)
	}
	return actors
}

func (r *MovieRepository) Create(ctx context.Context, m *movie.Movie) error {
	err := r.queries.InsertMovie(ctx, r.db, pgquery.Movie{
		ID:               m.ID(),
		Name:             m.Name(),
		Plot:             m.Plot(),
		DurationMinutes:  int32(m.DurationMinutes()), // #nosec G115 -- minutes fit in int32
		ReleaseDate:      pgconv.OptionalDateToPgtype(m.ReleaseDate()),
		Genres:           nonNil(m.Genres()),
		Directors:        nonNil(m.Directors()),
		RatingTotalValue: m.Ratings().TotalValue(),
		RatingTotalVotes: m.Ratings().TotalVotes(),
		Version:          m.Version(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create movie", err)
	}
	return r.copyNewActors(ctx, m)
}

// SaveCast writes the actors added since load, guarded by the loaded version.
func (r *MovieRepository) SaveCast(ctx context.Context, m *movie.Movie) error {
	if _, added := m.NewActors(); len(added) == 0 {
		return nil
	}
	n, err := r.queries.BumpMovieVersion(ctx, r.db, pgquery.BumpMovieVersionParams{
		ID:              m.ID(),
		Version:         m.Version(),
		ExpectedVersion: m.LoadedVersion(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update movie version", err)
	}
	if n == 0 {
		return infra.Conflict("movie cast changed concurrently")
	}
	return r.copyNewActors(ctx, m)
}

func (r *MovieRepository) copyNewActors(ctx context.Context, m *movie.Movie) error {
	first, added := m.NewActors()
	if len(added) == 0 {
		return nil
	}
	rows := make([]pgquery.MovieActor, len(added))
	for i, a := range added {
		rows[i] = pgquery.MovieActor{
			MovieID:       m.ID(),
			Position:      int32(first + i), // #nosec G115 -- cast positions fit in int32
			Name:          a.Name(),
			Surname:       a.Surname(),
			CharacterName: a.CharacterName(),
		}
	}
	if _, err := r.queries.CopyMovieActors(ctx, r.db, rows); err != nil {
		return infra.WrapRepoErr("failed to write movie cast", err)
	}
	return nil
}

func (r *MovieRepository) UpdateRatings(ctx context.Context, m *movie.Movie) error {
	if !m.Changed() {
		return nil
	}
	n, err := r.queries.UpdateMovieRatings(ctx, r.db, pgquery.UpdateMovieRatingsParams{
		ID:               m.ID(),
		RatingTotalValue: m.Ratings().TotalValue(),
		RatingTotalVotes: m.Ratings().TotalVotes(),
		Version:          m.Version(),
		ExpectedVersion:  m.LoadedVersion(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update movie ratings", err)
	}
	if n == 0 {
		return infra.Conflict("movie ratings changed concurrently")
	}
	return nil
}

type RateRepository struct {
	queries MovieQueries
	db      pgquery.DBTX
}

func NewRateRepository(queries MovieQueries, db pgquery.DBTX) *RateRepository {
	return &RateRepository{queries: queries, db: db}
}

func (r *RateRepository) ExistsByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (bool, error) {
	exists, err := r.queries.RateExists(ctx, r.db, userID, movieID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check existing rate", err)
	}
	return exists, nil
}

// Create relies on the (movie_id, user_id) unique key; a duplicate surfaces as
// a write conflict.
func (r *RateRepository) Create(ctx context.Context, rt *rating.Rate) error {
	err := r.queries.InsertRate(ctx, r.db, pgquery.InsertRateParams{
		ID:        rt.ID(),
		MovieID:   rt.MovieID(),
		UserID:    rt.UserID(),
		Value:     int16(rt.Value().Int()), // #nosec G115 -- 0..5
		Comment:   rt.Comment().Value(),
		CreatedAt: pgconv.TimeToPgtype(rt.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create rate", err)
	}
	return nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
