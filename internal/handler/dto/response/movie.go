package response

import (
	"time"

	"cinema-ticketing/internal/usecase/commands"
	"cinema-ticketing/internal/usecase/queries"

	"github.com/google/uuid"
)

type RateResponse struct {
	RateID       uuid.UUID `json:"id"`
	MovieID      uuid.UUID `json:"movie_id"`
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	Value        int       `json:"value"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
	MovieAverage string    `json:"movie_average"`
	TotalVotes   int64     `json:"total_votes"`
}

func FromRatingRecord(r *commands.RatingRecord) (*RateResponse, error) {
	return from[RateResponse](r)
}

type RateListResponse struct {
	Rates      []*queries.RateView `json:"rates"`
	NextCursor string              `json:"next_cursor,omitempty"`
}

func NewRateListResponse(rates []*queries.RateView, next *queries.Cursor) *RateListResponse {
	resp := &RateListResponse{Rates: rates}
	if resp.Rates == nil {
		resp.Rates = []*queries.RateView{}
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}

type MovieListResponse struct {
	Movies     []*queries.MovieView `json:"movies"`
	NextCursor string               `json:"next_cursor,omitempty"`
}

func NewMovieListResponse(movies []*queries.MovieView, next *queries.Cursor) *MovieListResponse {
	resp := &MovieListResponse{Movies: movies}
	if resp.Movies == nil {
		resp.Movies = []*queries.MovieView{}
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
