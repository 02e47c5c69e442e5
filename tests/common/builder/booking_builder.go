//go:build unit || e2e

package builder

import (
	"time"

	"cinema-ticketing/internal/domain/money"
	"cinema-ticketing/internal/domain/sale"
	"cinema-ticketing/internal/domain/seat"
	reqdto "cinema-ticketing/internal/handler/dto/request"
	"cinema-ticketing/internal/usecase/commands"

	"github.com/google/uuid"
)

// ValidCardNumber passes the Luhn check of the fake gateway.
const ValidCardNumber = "4242424242424242"

type BookingBuilder struct {
	ShowID    uuid.UUID
	MovieName string
	StartTime time.Time
	Seats     []int
	UnitCents int64
	Card      reqdto.CardRequest
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ShowID:    uuid.New(),
		MovieName: "Small Fish",
		StartTime: time.Date(2030, 5, 1, 20, 0, 0, 0, time.UTC),
		Seats:     []int{3, 4},
		UnitCents: 1000,
		Card: reqdto.CardRequest{
			Number:   ValidCardNumber,
			Holder:   "Emma Stone",
			ExpMonth: 12,
			ExpYear:  2035,
			CVV:      "123",
		},
	}
}

func (b *BookingBuilder) WithSeats(seats ...int) *BookingBuilder {
	b.Seats = seats
	return b
}

func (b *BookingBuilder) WithShow(showID uuid.UUID) *BookingBuilder {
	b.ShowID = showID
	return b
}

func (b *BookingBuilder) BuildReserveDTO() reqdto.ReserveRequest {
	return reqdto.ReserveRequest{Seats: b.Seats}
}

func (b *BookingBuilder) BuildPurchaseDTO() reqdto.PurchaseRequest {
	return reqdto.PurchaseRequest{Seats: b.Seats, Card: b.Card}
}

func (b *BookingBuilder) total() money.Amount {
	return money.Amount(b.UnitCents * int64(len(b.Seats)))
}

func (b *BookingBuilder) BuildReservationResult(expiresAt time.Time) *commands.ReservationResult {
	seats := make([]commands.SeatStatus, 0, len(b.Seats))
	for _, n := range b.Seats {
		seats = append(seats, commands.SeatStatus{Number: n, State: seat.StateHeld})
	}
	return &commands.ReservationResult{
		ShowID:        b.ShowID,
		MovieName:     b.MovieName,
		StartTime:     b.StartTime,
		HeldSeats:     b.Seats,
		HoldExpiresAt: expiresAt,
		Total:         b.total(),
		Seats:         seats,
	}
}

func (b *BookingBuilder) BuildTicket(username string, soldAt time.Time) *sale.Ticket {
	return &sale.Ticket{
		SaleID:    uuid.New(),
		Total:     b.total(),
		PointsWon: 10,
		SoldAt:    soldAt,
		Username:  username,
		Seats:     b.Seats,
		MovieName: b.MovieName,
		ShowStart: b.StartTime,
	}
}
