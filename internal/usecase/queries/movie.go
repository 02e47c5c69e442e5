package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"cinema-ticketing/internal/domain/rating"
	"cinema-ticketing/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=movie.go -destination=../../../tests/mock/queries/movie_mock.go -package=queriesmock

var (
	ErrMovieNotFound    = errs.New("movie not found")
	ErrInvalidMovieSort = errs.New("movie sort must be one of name, release_date, rating")
)

type MovieSort string

const (
	// Name ascending.
	MovieSortName MovieSort = "name"
	// Newest release first; movies without a release date last.
	MovieSortReleaseDate MovieSort = "release_date"
	// Most votes first, then highest average.
	MovieSortRating MovieSort = "rating"
)

// MovieFilter selects a page of movies. Search matches a case-insensitive
// part of the name; empty matches every movie.
type MovieFilter struct {
	Search string
	Sort   MovieSort
}

type MovieReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MovieView, error)
	// Rates are ordered newest first, ties broken by id descending.
	FindRatesFirstPage(ctx context.Context, movieID uuid.UUID, limit int32) ([]*RateView, error)
	FindRatesKeyset(ctx context.Context, movieID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*RateView, error)
	// Ties in the sort key are broken by id ascending.
	FindMovies(ctx context.Context, filter MovieFilter, offset, limit int32) ([]*MovieView, error)
}

type MovieQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*MovieView, error)
	ListRates(ctx context.Context, movieID uuid.UUID, cursor *Cursor, limit int) ([]*RateView, *Cursor, error)
	ListMovies(ctx context.Context, filter MovieFilter, cursor *Cursor, limit int) ([]*MovieView, *Cursor, error)
}

type movieQueriesImpl struct {
	repo MovieReadStore
}

func NewMovieQueries(repo MovieReadStore) MovieQueries {
	return &movieQueriesImpl{repo: repo}
}

func (q *movieQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*MovieView, error) {
	mv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	if err := withAverage(mv); err != nil {
		return nil, err
	}
	return mv, nil
}

func (q *movieQueriesImpl) ListMovies(ctx context.Context, filter MovieFilter, cursor *Cursor, limit int) ([]*MovieView, *Cursor, error) {
	switch filter.Sort {
	case "":
		filter.Sort = MovieSortName
	case MovieSortName, MovieSortReleaseDate, MovieSortRating:
	default:
		return nil, nil, ErrInvalidMovieSort
	}
	filter.Search = strings.TrimSpace(filter.Search)

	offset := 0
	if cursor != nil && cursor.After != "" {
		var err error
		if offset, err = DecodeOffsetCursor(cursor.After); err != nil {
			return nil, nil, ErrInvalidCursor
		}
	}
	limit = ValidateLimit(limit)

	rows, err := q.repo.FindMovies(ctx, filter, int32(offset), int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		next = &Cursor{After: EncodeOffsetCursor(offset + limit)}
	}
	for _, mv := range rows {
		if err := withAverage(mv); err != nil {
			return nil, nil, err
		}
	}
	return rows, next, nil
}

func withAverage(mv *MovieView) error {
	acc, err := rating.ReconstructAccumulator(mv.RatingTotal, mv.RatingVotes)
	if err != nil {
		return err
	}
	mv.RatingAverage = acc.Average().String()
	return nil
}

func (q *movieQueriesImpl) ListRates(ctx context.Context, movieID uuid.UUID, cursor *Cursor, limit int) ([]*RateView, *Cursor, error) {
	if _, err := q.GetByID(ctx, movieID); err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*RateView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindRatesFirstPage(ctx, movieID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindRatesKeyset(ctx, movieID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
