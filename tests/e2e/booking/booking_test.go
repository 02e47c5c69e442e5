//go:build e2e

package booking_test

import (
	"net/http"
	"testing"
	"time"

	"cinema-ticketing/internal/domain/user"
	resdto "cinema-ticketing/internal/handler/dto/response"
	"cinema-ticketing/internal/handler/httperr"
	"cinema-ticketing/internal/usecase/queries"
	"cinema-ticketing/tests/common/authtest"
	"cinema-ticketing/tests/common/builder"
	"cinema-ticketing/tests/common/dbtest"
	"cinema-ticketing/tests/common/httptest"
	"cinema-ticketing/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const adminPassword = "admin-password-123"

type bookingSuite struct {
	e2e.SharedSuite
	adminToken string
	movieID    uuid.UUID
	showID     uuid.UUID
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

// SetupSubTest seeds a fresh catalog through the admin API.
func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	dbtest.CreateTestUser(t, s.DB, "admin", adminPassword, string(user.RoleAdmin))
	s.adminToken = authtest.LoginUser(t, s.Router, "admin", adminPassword)

	s.movieID = s.create("/api/admin/movies", map[string]any{
		"name":             "Small Fish",
		"duration_minutes": 104,
		"genres":           []string{"drama"},
		"directors":        []string{"Lucia Vega"},
	})
	theaterID := s.create("/api/admin/theaters", map[string]any{"name": "Room 1", "seat_count": 10})
	s.showID = s.create("/api/admin/shows", map[string]any{
		"movie_id":       s.movieID,
		"theater_id":     theaterID,
		"start_time":     time.Now().UTC().Add(48 * time.Hour).Truncate(time.Minute),
		"unit_price":     "10.00",
		"points_to_earn": 5,
	})
}

func (s *bookingSuite) create(url string, body map[string]any) uuid.UUID {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, body, s.adminToken)
	var created resdto.CreatedResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
	return created.ID
}

func (s *bookingSuite) seatMap() queries.ShowSeatMapView {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/shows/"+s.showID.String(), nil, "")
	var view queries.ShowSeatMapView
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
	return view
}

func seatState(view queries.ShowSeatMapView, number int) string {
	for _, st := range view.Seats {
		if st.Number == number {
			return st.State
		}
	}
	return ""
}

func (s *bookingSuite) TestReserveAndPurchase() {
	s.Run("held seats are sold and the ticket is queued for email", func() {
		t := s.T()
		token := authtest.RegisterAndLogin(t, s.Router, "emma")
		b := builder.NewBookingBuilder().WithShow(s.showID).WithSeats(1, 2)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/shows/"+s.showID.String()+"/reservations", b.BuildReserveDTO(), token)
		var reservation resdto.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &reservation)
		require.Equal(t, "20.00", reservation.Total)
		require.Equal(t, "held", seatState(s.seatMap(), 1))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/shows/"+s.showID.String()+"/purchases", b.BuildPurchaseDTO(), token)
		var ticket resdto.TicketResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &ticket)
		require.Equal(t, "20.00", ticket.Total)
		require.Equal(t, 5, ticket.PointsWon)
		require.Equal(t, "emma", ticket.Username)

		view := s.seatMap()
		require.Equal(t, "confirmed", seatState(view, 1))
		require.Equal(t, "confirmed", seatState(view, 2))
		require.Equal(t, 8, view.AvailableSeats)

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "sales", "show_id = $1", s.showID))
		require.Equal(t, 2, dbtest.CountRows(t, s.DB, "sale_seats", ""))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "notification_jobs", "status = 'queued'"))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "users", "username = 'emma' AND points = 5"))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/shows/"+s.showID.String()+"/purchases", b.BuildPurchaseDTO(), token)
		require.Equal(t, http.StatusConflict, w.Code)
		httptest.AssertErrorCode(t, w, httperr.CodeReservationRequired)
	})

	s.Run("overlapping reservation changes nothing", func() {
		t := s.T()
		first := authtest.RegisterAndLogin(t, s.Router, "emma")
		second := authtest.RegisterAndLogin(t, s.Router, "lucia")
		url := "/api/shows/" + s.showID.String() + "/reservations"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, map[string]any{"seats": []int{2}}, first)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url, map[string]any{"seats": []int{2, 3}}, second)
		require.Equal(t, http.StatusConflict, w.Code)
		httptest.AssertErrorCode(t, w, httperr.CodeSeatsBusy)
		require.Equal(t, "available", seatState(s.seatMap(), 3))
	})

	s.Run("declined card keeps the hold and records no sale", func() {
		t := s.T()
		token := authtest.RegisterAndLogin(t, s.Router, "emma")
		b := builder.NewBookingBuilder().WithShow(s.showID).WithSeats(4)
		b.Card.Number = "4242424242424241"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/shows/"+s.showID.String()+"/reservations", b.BuildReserveDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/shows/"+s.showID.String()+"/purchases", b.BuildPurchaseDTO(), token)
		require.Equal(t, http.StatusPaymentRequired, w.Code)
		httptest.AssertErrorCode(t, w, httperr.CodePaymentFailed)

		require.Equal(t, "held", seatState(s.seatMap(), 4))
		require.Zero(t, dbtest.CountRows(t, s.DB, "sales", ""))
		require.Zero(t, dbtest.CountRows(t, s.DB, "notification_jobs", ""))
	})

	s.Run("seat outside the theater is rejected", func() {
		t := s.T()
		token := authtest.RegisterAndLogin(t, s.Router, "emma")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/shows/"+s.showID.String()+"/reservations",
			map[string]any{"seats": []int{1, 11}}, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Equal(t, "available", seatState(s.seatMap(), 1))
	})
}

func (s *bookingSuite) TestAdminAccess() {
	s.Run("customers cannot manage the catalog", func() {
		t := s.T()
		token := authtest.RegisterAndLogin(t, s.Router, "emma")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/admin/theaters", map[string]any{"name": "Room 2", "seat_count": 5}, token)
		require.Equal(t, http.StatusForbidden, w.Code)
		httptest.AssertErrorCode(t, w, httperr.CodeForbidden)
	})

	s.Run("upcoming shows list the scheduled show", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/shows?days=3", nil, "")

		var body struct {
			Shows []queries.ShowSummaryView `json:"shows"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Len(t, body.Shows, 1)
		require.Equal(t, s.showID, body.Shows[0].ShowID)
		require.Equal(t, 10, body.Shows[0].AvailableSeats)
	})
}

func (s *bookingSuite) TestRating() {
	s.Run("one vote per user updates the average", func() {
		t := s.T()
		url := "/api/movies/" + s.movieID.String() + "/rates"
		emma := authtest.RegisterAndLogin(t, s.Router, "emma")
		lucia := authtest.RegisterAndLogin(t, s.Router, "lucia")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, map[string]any{"value": 4, "comment": "tense"}, emma)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url, map[string]any{"value": 3}, lucia)
		var rate resdto.RateResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &rate)
		require.Equal(t, "3.50", rate.MovieAverage)
		require.Equal(t, int64(2), rate.TotalVotes)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url, map[string]any{"value": 5}, emma)
		require.Equal(t, http.StatusConflict, w.Code)
		httptest.AssertErrorCode(t, w, httperr.CodeAlreadyRated)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url+"?limit=1", nil, "")
		var page resdto.RateListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Rates, 1)
		require.NotEmpty(t, page.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url+"?limit=1&after="+page.NextCursor, nil, "")
		var next resdto.RateListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &next)
		require.Len(t, next.Rates, 1)
		require.NotEqual(t, page.Rates[0].ID, next.Rates[0].ID)
		require.Empty(t, next.NextCursor)
	})
}
