package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const getMovie = `SELECT ` + movieColumns + `
FROM movies WHERE id = $1`

func (q *Queries) GetMovie(ctx context.Context, db DBTX, id uuid.UUID) (Movie, error) {
	var m Movie
	err := db.QueryRow(ctx, getMovie, id).Scan(
		&m.ID, &m.Name, &m.Plot, &m.DurationMinutes, &m.ReleaseDate, &m.Genres, &m.Directors,
		&m.RatingTotalValue, &m.RatingTotalVotes, &m.Version)
	return m, err
}

const insertMovie = `INSERT INTO movies (id, name, plot, duration_minutes, release_date, genres, directors,
                    rating_total_value, rating_total_votes, version)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (q *Queries) InsertMovie(ctx context.Context, db DBTX, m Movie) error {
	_, err := db.Exec(ctx, insertMovie,
		m.ID, m.Name, m.Plot, m.DurationMinutes, m.ReleaseDate, m.Genres, m.Directors,
		m.RatingTotalValue, m.RatingTotalVotes, m.Version)
	return err
}

type UpdateMovieRatingsParams struct {
	ID               uuid.UUID
	RatingTotalValue int64
	RatingTotalVotes int64
	Version          int64
	ExpectedVersion  int64
}

const updateMovieRatings = `UPDATE movies
SET rating_total_value = $2, rating_total_votes = $3, version = $4
WHERE id = $1 AND version = $5`

func (q *Queries) UpdateMovieRatings(ctx context.Context, db DBTX, arg UpdateMovieRatingsParams) (int64, error) {
	tag, err := db.Exec(ctx, updateMovieRatings,
		arg.ID, arg.RatingTotalValue, arg.RatingTotalVotes, arg.Version, arg.ExpectedVersion)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const rateExists = `SELECT EXISTS (SELECT 1 FROM user_rates WHERE user_id = $1 AND movie_id = $2)`

func (q *Queries) RateExists(ctx context.Context, db DBTX, userID, movieID uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, rateExists, userID, movieID).Scan(&exists)
	return exists, err
}

type InsertRateParams struct {
	ID        uuid.UUID
	MovieID   uuid.UUID
	UserID    uuid.UUID
	Value     int16
	Comment   string
	CreatedAt pgtype.Timestamptz
}

const insertRate = `INSERT INTO user_rates (id, movie_id, user_id, value, comment, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func (q *Queries) InsertRate(ctx context.Context, db DBTX, arg InsertRateParams) error {
	_, err := db.Exec(ctx, insertRate, arg.ID, arg.MovieID, arg.UserID, arg.Value, arg.Comment, arg.CreatedAt)
	return err
}

type RateRow struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Username  string
	Value     int16
	Comment   string
	CreatedAt pgtype.Timestamptz
}

type ListRatesFirstPageParams struct {
	MovieID uuid.UUID
	Limit   int32
}

const listRatesFirstPage = `SELECT r.id, r.user_id, u.username, r.value, r.comment, r.created_at
FROM user_rates r
JOIN users u ON u.id = r.user_id
WHERE r.movie_id = $1
ORDER BY r.created_at DESC, r.id DESC
LIMIT $2`

func (q *Queries) ListRatesFirstPage(ctx context.Context, db DBTX, arg ListRatesFirstPageParams) ([]RateRow, error) {
	rows, err := db.Query(ctx, listRatesFirstPage, arg.MovieID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanRate)
}

type ListRatesKeysetParams struct {
	MovieID   uuid.UUID
	CreatedAt pgtype.Timestamptz
	ID        uuid.UUID
	Limit     int32
}

const listRatesKeyset = `SELECT r.id, r.user_id, u.username, r.value, r.comment, r.created_at
FROM user_rates r
JOIN users u ON u.id = r.user_id
WHERE r.movie_id = $1
  AND (r.created_at, r.id) < ($2, $3)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $4`

func (q *Queries) ListRatesKeyset(ctx context.Context, db DBTX, arg ListRatesKeysetParams) ([]RateRow, error) {
	rows, err := db.Query(ctx, listRatesKeyset, arg.MovieID, arg.CreatedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanRate)
}

func scanRate(row pgx.CollectableRow) (RateRow, error) {
	var r RateRow
	err := row.Scan(&r.ID, &r.UserID, &r.Username, &r.Value, &r.Comment, &r.CreatedAt)
	return r, err
}

const listMovieActors = `SELECT movie_id, position, name, surname, character_name
FROM movie_actors
WHERE movie_id = ANY($1::uuid[])
ORDER BY movie_id, position`

func (q *Queries) ListMovieActors(ctx context.Context, db DBTX, movieIDs []uuid.UUID) ([]MovieActor, error) {
	rows, err := db.Query(ctx, listMovieActors, movieIDs)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (MovieActor, error) {
		var a MovieActor
		err := row.Scan(&a.MovieID, &a.Position, &a.Name, &a.Surname, &a.CharacterName)
		return a, err
	})
}

func (q *Queries) CopyMovieActors(ctx context.Context, db DBTX, actors []MovieActor) (int64, error) {
	return db.CopyFrom(ctx,
		pgx.Identifier{"movie_actors"},
		[]string{"movie_id", "position", "name", "surname", "character_name"},
		pgx.CopyFromSlice(len(actors), func(i int) ([]any, error) {
			a := actors[i]
			return []any{a.MovieID, a.Position, a.Name, a.Surname, a.CharacterName}, nil
		}),
	)
}

type BumpMovieVersionParams struct {
	ID              uuid.UUID
	Version         int64
	ExpectedVersion int64
}

const bumpMovieVersion = `UPDATE movies SET version = $2 WHERE id = $1 AND version = $3`

func (q *Queries) BumpMovieVersion(ctx context.Context, db DBTX, arg BumpMovieVersionParams) (int64, error) {
	tag, err := db.Exec(ctx, bumpMovieVersion, arg.ID, arg.Version, arg.ExpectedVersion)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ListMoviesParams.NamePattern is a lower-case LIKE pattern; "%" matches every movie.
type ListMoviesParams struct {
	NamePattern string
	Offset      int32
	Limit       int32
}

const movieColumns = `id, name, plot, duration_minutes, release_date, genres, directors,
       rating_total_value, rating_total_votes, version`

const listMoviesByName = `SELECT ` + movieColumns + `
FROM movies
WHERE lower(name) LIKE $1
ORDER BY lower(name) COLLATE "C", id
OFFSET $2 LIMIT $3`

const listMoviesByReleaseDate = `SELECT ` + movieColumns + `
FROM movies
WHERE lower(name) LIKE $1
ORDER BY release_date DESC NULLS LAST, id
OFFSET $2 LIMIT $3`

// Equal vote counts share a denominator, so ordering by the total orders by average.
const listMoviesByRating = `SELECT ` + movieColumns + `
FROM movies
WHERE lower(name) LIKE $1
ORDER BY rating_total_votes DESC, rating_total_value DESC, id
OFFSET $2 LIMIT $3`

func (q *Queries) ListMoviesByName(ctx context.Context, db DBTX, arg ListMoviesParams) ([]Movie, error) {
	return q.listMovies(ctx, db, listMoviesByName, arg)
}

func (q *Queries) ListMoviesByReleaseDate(ctx context.Context, db DBTX, arg ListMoviesParams) ([]Movie, error) {
	return q.listMovies(ctx, db, listMoviesByReleaseDate, arg)
}

func (q *Queries) ListMoviesByRating(ctx context.Context, db DBTX, arg ListMoviesParams) ([]Movie, error) {
	return q.listMovies(ctx, db, listMoviesByRating, arg)
}

func (q *Queries) listMovies(ctx context.Context, db DBTX, sql string, arg ListMoviesParams) ([]Movie, error) {
	rows, err := db.Query(ctx, sql, arg.NamePattern, arg.Offset, arg.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Movie, error) {
		var m Movie
		err := row.Scan(
			&m.ID, &m.Name, &m.Plot, &m.DurationMinutes, &m.ReleaseDate, &m.Genres, &m.Directors,
			&m.RatingTotalValue, &m.RatingTotalVotes, &m.Version)
		return m, err
	})
}
