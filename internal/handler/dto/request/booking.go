package request

import (
	"cinema-ticketing/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReserveRequest struct {
	Seats []int `json:"seats" binding:"required,seatnumbers"`
}

type CardRequest struct {
	Number   string `json:"number" binding:"required,numeric,min=12,max=19"`
	Holder   string `json:"holder" binding:"required,max=100"`
	ExpMonth int    `json:"exp_month" binding:"required,min=1,max=12"`
	ExpYear  int    `json:"exp_year" binding:"required,min=2000"`
	CVV      string `json:"cvv" binding:"required,numeric,min=3,max=4"`
}

type PurchaseRequest struct {
	Seats []int       `json:"seats" binding:"required,seatnumbers"`
	Card  CardRequest `json:"card"`
}

func (r *PurchaseRequest) ToCommand(userID, showID uuid.UUID) commands.PurchaseRequest {
	return commands.PurchaseRequest{
		UserID:      userID,
		ShowID:      showID,
		SeatNumbers: r.Seats,
		Card: commands.Card{
			Number:   r.Card.Number,
			Holder:   r.Card.Holder,
			ExpMonth: r.Card.ExpMonth,
			ExpYear:  r.Card.ExpYear,
			CVV:      r.Card.CVV,
		},
	}
}
