package request

import (
	"cinema-ticketing/internal/usecase/commands"
	"cinema-ticketing/internal/usecase/queries"

	"github.com/google/uuid"
)

type RateRequest struct {
	// Pointer so that an explicit zero passes the required rule.
	Value   *int   `json:"value" binding:"required,min=0,max=5"`
	Comment string `json:"comment" binding:"max=1000"`
}

func (r *RateRequest) ToCommand(userID, movieID uuid.UUID) commands.RateRequest {
	return commands.RateRequest{
		UserID:  userID,
		MovieID: movieID,
		Value:   *r.Value,
		Comment: r.Comment,
	}
}

type MovieListQuery struct {
	Search string `form:"q" binding:"max=100"`
	Sort   string `form:"sort" binding:"omitempty,oneof=name release_date rating"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
	After  string `form:"after"`
}

func (q *MovieListQuery) Filter() queries.MovieFilter {
	return queries.MovieFilter{Search: q.Search, Sort: queries.MovieSort(q.Sort)}
}

func (q *MovieListQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}
