//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"cinema-ticketing/internal/domain/rating"
	"cinema-ticketing/internal/handler/api"
	reqdto "cinema-ticketing/internal/handler/dto/request"
	resdto "cinema-ticketing/internal/handler/dto/response"
	"cinema-ticketing/internal/handler/httperr"
	"cinema-ticketing/internal/usecase/commands"
	"cinema-ticketing/internal/usecase/queries"
	"cinema-ticketing/tests/common/httptest"
	commandsmock "cinema-ticketing/tests/mock/commands"
	queriesmock "cinema-ticketing/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MovieHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockRatings *commandsmock.MockRatingCommands
	mockMovies  *queriesmock.MockMovieQueries
	userID      uuid.UUID
	movieID     uuid.UUID
}

func (s *MovieHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	reqdto.RegisterValidators()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRatings = commandsmock.NewMockRatingCommands(s.mockCtrl)
	s.mockMovies = queriesmock.NewMockMovieQueries(s.mockCtrl)
	handler := api.NewMovieHandler(s.mockRatings, s.mockMovies)
	s.userID = uuid.New()
	s.movieID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.GET("/movies", handler.List)
	s.router.GET("/movies/:id", handler.Get)
	s.router.GET("/movies/:id/rates", handler.ListRates)
	s.router.POST("/movies/:id/rates", authMiddleware, handler.Rate)
	s.router.POST("/anonymous/movies/:id/rates", handler.Rate)
}

func (s *MovieHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMovieHandlerSuite(t *testing.T) {
	suite.Run(t, new(MovieHandlerTestSuite))
}

func (s *MovieHandlerTestSuite) TestGet() {
	s.Run("success: returns the movie with its average", func() {
		view := &queries.MovieView{
			ID:            s.movieID,
			Name:          "Small Fish",
			Genres:        []string{"drama"},
			Directors:     []string{"Lucia Vega"},
			RatingVotes:   3,
			RatingAverage: "4.33",
		}
		s.mockMovies.EXPECT().GetByID(gomock.Any(), s.movieID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/movies/"+s.movieID.String(), nil, "")

		var response queries.MovieView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("4.33", response.RatingAverage)
		s.Equal(int64(3), response.RatingVotes)
	})

	s.Run("error: unknown movie is 404", func() {
		s.mockMovies.EXPECT().GetByID(gomock.Any(), s.movieID).Return(nil, queries.ErrMovieNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/movies/"+s.movieID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Movie not found")
	})

	s.Run("error: invalid id is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/movies/42", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid movie ID format")
	})
}

func (s *MovieHandlerTestSuite) TestListRates() {
	url := "/movies/" + s.movieID.String() + "/rates"
	rate := &queries.RateView{ID: uuid.New(), UserID: s.userID, Username: "emma", Value: 4, CreatedAt: time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC)}

	s.Run("success: first page uses the default limit", func() {
		next := &queries.Cursor{After: "opaque-token"}
		s.mockMovies.EXPECT().ListRates(gomock.Any(), s.movieID, gomock.Nil(), queries.DefaultListLimit).
			Return([]*queries.RateView{rate}, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.RateListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Rates, 1)
		s.Equal("emma", response.Rates[0].Username)
		s.Equal("opaque-token", response.NextCursor)
	})

	s.Run("success: passes cursor and limit through", func() {
		s.mockMovies.EXPECT().ListRates(gomock.Any(), s.movieID, &queries.Cursor{After: "abc"}, 5).
			Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=abc&limit=5", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"rates":[]}`, rec.Body.String())
	})

	s.Run("error: malformed cursor is 422", func() {
		s.mockMovies.EXPECT().ListRates(gomock.Any(), s.movieID, gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=%25%25", nil, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		httptest.AssertErrorCode(s.T(), rec, httperr.CodeValidationFailed)
	})

	s.Run("error: non numeric limit is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=many", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit parameter")
	})
}

func (s *MovieHandlerTestSuite) TestRate() {
	url := "/movies/" + s.movieID.String() + "/rates"

	s.Run("success: returns 201 with the new average", func() {
		expected := commands.RateRequest{UserID: s.userID, MovieID: s.movieID, Value: 0, Comment: "not for me"}
		record := &commands.RatingRecord{
			RateID:       uuid.New(),
			MovieID:      s.movieID,
			UserID:       s.userID,
			Username:     "emma",
			Value:        0,
			Comment:      "not for me",
			MovieAverage: rating.Average(250),
			TotalVotes:   2,
		}
		s.mockRatings.EXPECT().Rate(gomock.Any(), expected).Return(record, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"value": 0, "comment": "not for me"}, "")

		var response resdto.RateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(record.RateID, response.RateID)
		s.Equal("2.50", response.MovieAverage)
		s.Equal(int64(2), response.TotalVotes)
	})

	s.Run("error: 400 Bad Request on invalid body", func() {
		testCases := []struct {
			name string
			body map[string]any
		}{
			{"missing value", map[string]any{"comment": "fine"}},
			{"value above five", map[string]any{"value": 6}},
			{"negative value", map[string]any{"value": -1}},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
		}{
			{"already rated", commands.ErrAlreadyRated, http.StatusConflict, httperr.CodeAlreadyRated},
			{"movie not found", commands.ErrMovieNotFound, http.StatusNotFound, httperr.CodeMovieNotFound},
			{"comment too long", rating.ErrCommentTooLong, http.StatusUnprocessableEntity, httperr.CodeValidationFailed},
			{"internal server error", errors.New("boom"), http.StatusInternalServerError, httperr.CodeInternal},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockRatings.EXPECT().Rate(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"value": 3}, "")
				s.Equal(tc.expectedStatus, rec.Code)
				httptest.AssertErrorCode(s.T(), rec, tc.expectedCode)
			})
		}
	})

	s.Run("error: missing identity is 500", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/anonymous"+url, map[string]any{"value": 3}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *MovieHandlerTestSuite) TestList() {
	s.Run("success: passes search, sort and cursor through", func() {
		filter := queries.MovieFilter{Search: "fish", Sort: queries.MovieSortRating}
		views := []*queries.MovieView{
			{ID: s.movieID, Name: "Big Fish", Actors: []queries.ActorView{{Name: "Ewan McGregor", CharacterName: "Edward Bloom"}}},
		}
		s.mockMovies.EXPECT().ListMovies(gomock.Any(), filter, &queries.Cursor{After: "abc"}, 10).
			Return(views, &queries.Cursor{After: "next-page"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/movies?q=fish&sort=rating&limit=10&after=abc", nil, "")

		var response resdto.MovieListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Movies, 1)
		s.Equal("Big Fish", response.Movies[0].Name)
		s.Equal("Edward Bloom", response.Movies[0].Actors[0].CharacterName)
		s.Equal("next-page", response.NextCursor)
	})

	s.Run("success: no parameters lists every movie", func() {
		s.mockMovies.EXPECT().ListMovies(gomock.Any(), queries.MovieFilter{}, gomock.Nil(), 0).
			Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/movies", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"movies":[]}`, rec.Body.String())
	})

	s.Run("error: unknown sort is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/movies?sort=budget", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: stale cursor is 422", func() {
		s.mockMovies.EXPECT().ListMovies(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/movies?after=zzz", nil, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		httptest.AssertErrorCode(s.T(), rec, httperr.CodeValidationFailed)
	})
}
