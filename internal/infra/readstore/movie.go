package readstore

import (
	"context"
	"strings"
	"time"

	"cinema-ticketing/internal/infra"
	"cinema-ticketing/internal/infra/pgquery"
	"cinema-ticketing/internal/pkg/pgconv"
	"cinema-ticketing/internal/usecase/queries"

	"github.com/google/uuid"
)

type MovieReadQueries interface {
	GetMovie(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Movie, error)
	ListRatesFirstPage(ctx context.Context, db pgquery.DBTX, arg pgquery.ListRatesFirstPageParams) ([]pgquery.RateRow, error)
	ListRatesKeyset(ctx context.Context, db pgquery.DBTX, arg pgquery.ListRatesKeysetParams) ([]pgquery.RateRow, error)
	ListMovieActors(ctx context.Context, db pgquery.DBTX, movieIDs []uuid.UUID) ([]pgquery.MovieActor, error)
	ListMoviesByName(ctx context.Context, db pgquery.DBTX, arg pgquery.ListMoviesParams) ([]pgquery.Movie, error)
	ListMoviesByReleaseDate(ctx context.Context, db pgquery.DBTX, arg pgquery.ListMoviesParams) ([]pgquery.Movie, error)
	ListMoviesByRating(ctx context.Context, db pgquery.DBTX, arg pgquery.ListMoviesParams) ([]pgquery.Movie, error)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type MovieReadStore struct {
	queries MovieReadQueries
	db      pgquery.DBTX
}

func NewMovieReadStore(queries MovieReadQueries, db pgquery.DBTX) *MovieReadStore {
	return &MovieReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MovieReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MovieView, error) {
	row, err := r.queries.GetMovie(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("movie not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find movie", err)
	}

	views, err := r.withCast(ctx, []pgquery.Movie{row})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (r *MovieReadStore) FindMovies(ctx context.Context, filter queries.MovieFilter, offset, limit int32) ([]*queries.MovieView, error) {
	arg := pgquery.ListMoviesParams{
		NamePattern: "%" + likeEscaper.Replace(strings.ToLower(filter.Search)) + "%",
		Offset:      offset,
		Limit:       limit,
	}
	var (
		rows []pgquery.Movie
		err  error
	)
	switch filter.Sort {
	case queries.MovieSortReleaseDate:
		rows, err = r.queries.ListMoviesByReleaseDate(ctx, r.db, arg)
	case queries.MovieSortRating:
		rows, err = r.queries.ListMoviesByRating(ctx, r.db, arg)
	default:
		rows, err = r.queries.ListMoviesByName(ctx, r.db, arg)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list movies", err)
	}
	return r.withCast(ctx, rows)
}

// withCast loads the cast of every movie in one query.
func (r *MovieReadStore) withCast(ctx context.Context, rows []pgquery.Movie) ([]*queries.MovieView, error) {
	if len(rows) == 0 {
		return []*queries.MovieView{}, nil
	}
	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	cast, err := r.queries.ListMovieActors(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load movie cast", err)
	}
	byMovie := make(map[uuid.UUID][]queries.ActorView, len(rows))
	for _, a := range cast {
		byMovie[a.MovieID] = append(byMovie[a.MovieID], queries.ActorView{
			Name:          a.Name + " " + a.Surname,
			CharacterName: a.CharacterName,
		})
	}

	views := make([]*queries.MovieView, len(rows))
	for i, row := range rows {
		views[i] = toMovieView(row, byMovie[row.ID])
	}
	return views, nil
}

func toMovieView(row pgquery.Movie, actors []queries.ActorView) *queries.MovieView {
	if actors == nil {
		actors = []queries.ActorView{}
	}
	mv := &queries.MovieView{
		ID:              row.ID,
		Name:            row.Name,
		Plot:            row.Plot,
		DurationMinutes: int(row.DurationMinutes),
		Genres:          row.Genres,
		Directors:       row.Directors,
		Actors:          actors,
		RatingTotal:     row.RatingTotalValue,
		RatingVotes:     row.RatingTotalVotes,
	}
	if row.ReleaseDate.Valid {
		release := pgconv.DateFromPgtype(row.ReleaseDate)
		mv.ReleaseDate = &release
	}
	return mv
}

func (r *MovieReadStore) FindRatesFirstPage(ctx context.Context, movieID uuid.UUID, limit int32) ([]*queries.RateView, error) {
	rows, err := r.queries.ListRatesFirstPage(ctx, r.db, pgquery.ListRatesFirstPageParams{
		MovieID: movieID,
		Limit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rates", err)
	}
	return toRateViews(rows), nil
}

func (r *MovieReadStore) FindRatesKeyset(ctx context.Context, movieID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.RateView, error) {
	rows, err := r.queries.ListRatesKeyset(ctx, r.db, pgquery.ListRatesKeysetParams{
		MovieID:   movieID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rates with cursor", err)
	}
	return toRateViews(rows), nil
}

func toRateViews(rows []pgquery.RateRow) []*queries.RateView {
	views := make([]*queries.RateView, len(rows))
	for i, row := range rows {
		views[i] = &queries.RateView{
			ID:        row.ID,
			UserID:    row.UserID,
			Username:  row.Username,
			Value:     int(row.Value),
			Comment:   row.Comment,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views
}
