package response

import (
	"time"

	"cinema-ticketing/internal/domain/sale"
	"cinema-ticketing/internal/usecase/commands"

	"github.com/google/uuid"
)

type SeatResponse struct {
	Number int    `json:"number"`
	State  string `json:"state"`
}

type ReservationResponse struct {
	ShowID        uuid.UUID      `json:"show_id"`
	MovieName     string         `json:"movie_name"`
	StartTime     time.Time      `json:"start_time"`
	HeldSeats     []int          `json:"held_seats"`
	HoldExpiresAt time.Time      `json:"hold_expires_at"`
	Total         string         `json:"total"`
	Seats         []SeatResponse `json:"seats"`
}

func FromReservationResult(r *commands.ReservationResult) (*ReservationResponse, error) {
	return from[ReservationResponse](r)
}

type TicketResponse struct {
	SaleID    uuid.UUID `json:"sale_id"`
	Total     string    `json:"total"`
	PointsWon int       `json:"points_won"`
	SoldAt    time.Time `json:"sold_at"`
	Username  string    `json:"username"`
	Seats     []int     `json:"seats"`
	MovieName string    `json:"movie_name"`
	ShowStart time.Time `json:"show_start"`
}

func FromTicket(t *sale.Ticket) (*TicketResponse, error) {
	return from[TicketResponse](t)
}
