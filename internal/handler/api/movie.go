package api

import (
	"net/http"

	reqdto "cinema-ticketing/internal/handler/dto/request"
	resdto "cinema-ticketing/internal/handler/dto/response"
	"cinema-ticketing/internal/handler/httperr"
	"cinema-ticketing/internal/usecase/commands"
	"cinema-ticketing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	ratings commands.RatingCommands
	movies  queries.MovieQueries
}

func NewMovieHandler(ratings commands.RatingCommands, movies queries.MovieQueries) *MovieHandler {
	return &MovieHandler{ratings: ratings, movies: movies}
}

// @Summary List movies
// @Description Paged movies, optionally filtered by part of the name
// @Tags movies
// @Produce json
// @Param q query string false "Case-insensitive part of the movie name"
// @Param sort query string false "name (default), release_date or rating"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.MovieListResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /movies [get]
func (h *MovieHandler) List(c *gin.Context) {
	var q reqdto.MovieListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeInvalidRequest, "Invalid query parameters", nil)
		return
	}

	movies, next, err := h.movies.ListMovies(c.Request.Context(), q.Filter(), q.Cursor(), q.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewMovieListResponse(movies, next))
}

// @Summary Get movie
// @Description Movie detail with its rating average rounded to two decimals
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} queries.MovieView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /movies/{id} [get]
func (h *MovieHandler) Get(c *gin.Context) {
	movieID, ok := pathID(c, "id", "movie")
	if !ok {
		return
	}

	view, err := h.movies.GetByID(c.Request.Context(), movieID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary List movie rates
// @Description Rates of a movie, newest first, with keyset pagination
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.RateListResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /movies/{id}/rates [get]
func (h *MovieHandler) ListRates(c *gin.Context) {
	movieID, ok := pathID(c, "id", "movie")
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", queries.DefaultListLimit)
	if !ok {
		return
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	rates, next, err := h.movies.ListRates(c.Request.Context(), movieID, cursor, limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewRateListResponse(rates, next))
}

// @Summary Rate movie
// @Description Records the caller's single vote (0 to 5) for a movie
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Movie ID"
// @Param request body reqdto.RateRequest true "Rate request"
// @Success 201 {object} resdto.RateResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /movies/{id}/rates [post]
func (h *MovieHandler) Rate(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	movieID, ok := pathID(c, "id", "movie")
	if !ok {
		return
	}

	var req reqdto.RateRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.ratings.Rate(c.Request.Context(), req.ToCommand(userID, movieID))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	resp, err := resdto.FromRatingRecord(record)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
