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

type ShowHandler struct {
	booking commands.BookingCommands
	shows   queries.ShowQueries
}

func NewShowHandler(booking commands.BookingCommands, shows queries.ShowQueries) *ShowHandler {
	return &ShowHandler{booking: booking, shows: shows}
}

// @Summary Upcoming shows
// @Description Shows starting within the next days, earliest first
// @Tags shows
// @Produce json
// @Param days query int false "Window in days (default 7, max 31)"
// @Success 200 {object} map[string][]queries.ShowSummaryView
// @Failure 400 {object} httperr.Response
// @Router /shows [get]
func (h *ShowHandler) List(c *gin.Context) {
	days, ok := queryInt(c, "days", 0)
	if !ok {
		return
	}

	views, err := h.shows.Upcoming(c.Request.Context(), days)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	if views == nil {
		views = []*queries.ShowSummaryView{}
	}
	c.JSON(http.StatusOK, gin.H{"shows": views})
}

// @Summary Show seat map
// @Description Seats of a show with expired holds reported as available
// @Tags shows
// @Produce json
// @Param id path string true "Show ID"
// @Success 200 {object} queries.ShowSeatMapView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /shows/{id} [get]
func (h *ShowHandler) SeatMap(c *gin.Context) {
	showID, ok := pathID(c, "id", "show")
	if !ok {
		return
	}

	view, err := h.shows.SeatMap(c.Request.Context(), showID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Reserve seats
// @Description Holds all requested seats for the caller, or none of them
// @Tags shows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Show ID"
// @Param request body reqdto.ReserveRequest true "Seats to hold"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /shows/{id}/reservations [post]
func (h *ShowHandler) Reserve(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	showID, ok := pathID(c, "id", "show")
	if !ok {
		return
	}

	var req reqdto.ReserveRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.booking.Reserve(c.Request.Context(), userID, showID, req.Seats)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	resp, err := resdto.FromReservationResult(result)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Purchase seats
// @Description Confirms seats held by the caller and charges the card
// @Tags shows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Show ID"
// @Param request body reqdto.PurchaseRequest true "Seats and card"
// @Success 201 {object} resdto.TicketResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /shows/{id}/purchases [post]
func (h *ShowHandler) Purchase(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	showID, ok := pathID(c, "id", "show")
	if !ok {
		return
	}

	var req reqdto.PurchaseRequest
	if !bindJSON(c, &req) {
		return
	}

	ticket, err := h.booking.ConfirmAndCharge(c.Request.Context(), req.ToCommand(userID, showID))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	resp, err := resdto.FromTicket(ticket)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
