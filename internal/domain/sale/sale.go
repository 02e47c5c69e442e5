package sale

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"cinema-ticketing/internal/domain/money"

	"github.com/google/uuid"
)

const (
	NewSaleEmailSubject = "You have new tickets!"
	// DisplayTimeLayout formats show and sale times for customers.
	DisplayTimeLayout = "01-02-2006 15:04"
)

type Sale struct {
	id         uuid.UUID
	userID     uuid.UUID
	username   string
	email      string
	showID     uuid.UUID
	movieName  string
	showStart  time.Time
	seats      []int
	total      money.Amount
	pointsWon  int
	paymentRef string
	soldAt     time.Time
}

type Params struct {
	UserID     uuid.UUID
	Username   string
	Email      string
	ShowID     uuid.UUID
	MovieName  string
	ShowStart  time.Time
	Seats      []int
	Total      money.Amount
	PointsWon  int
	PaymentRef string
	SoldAt     time.Time
}

func NewSale(p Params) *Sale {
	return Reconstruct(uuid.New(), p)
}

func Reconstruct(id uuid.UUID, p Params) *Sale {
	seats := slices.Clone(p.Seats)
	slices.Sort(seats)
	return &Sale{
		id:         id,
		userID:     p.UserID,
		username:   p.Username,
		email:      p.Email,
		showID:     p.ShowID,
		movieName:  p.MovieName,
		showStart:  p.ShowStart,
		seats:      slices.Compact(seats),
		total:      p.Total,
		pointsWon:  p.PointsWon,
		paymentRef: p.PaymentRef,
		soldAt:     p.SoldAt,
	}
}

func (s *Sale) ID() uuid.UUID        { return s.id }
func (s *Sale) UserID() uuid.UUID    { return s.userID }
func (s *Sale) Username() string     { return s.username }
func (s *Sale) Email() string        { return s.email }
func (s *Sale) ShowID() uuid.UUID    { return s.showID }
func (s *Sale) MovieName() string    { return s.movieName }
func (s *Sale) ShowStart() time.Time { return s.showStart }
func (s *Sale) Seats() []int         { return slices.Clone(s.seats) }
func (s *Sale) Total() money.Amount  { return s.total }
func (s *Sale) PointsWon() int       { return s.pointsWon }
func (s *Sale) PaymentRef() string   { return s.paymentRef }
func (s *Sale) SoldAt() time.Time    { return s.soldAt }

// Ticket is what the purchaser gets back after paying.
type Ticket struct {
	SaleID    uuid.UUID
	Total     money.Amount
	PointsWon int
	SoldAt    time.Time
	Username  string
	Seats     []int
	MovieName string
	ShowStart time.Time
}

func (s *Sale) Ticket() Ticket {
	return Ticket{
		SaleID:    s.id,
		Total:     s.total,
		PointsWon: s.pointsWon,
		SoldAt:    s.soldAt,
		Username:  s.username,
		Seats:     s.Seats(),
		MovieName: s.movieName,
		ShowStart: s.showStart,
	}
}

type Email struct {
	To      string
	Subject string
	Body    string
}

func (s *Sale) NewSaleEmail() Email {
	seats := make([]string, 0, len(s.seats))
	for _, n := range s.seats {
		seats = append(seats, strconv.Itoa(n))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s!\n", s.username)
	b.WriteString("You have new tickets!\n")
	b.WriteString("Here are the details of your booking:\n")
	fmt.Fprintf(&b, "Movie: %s\n", s.movieName)
	fmt.Fprintf(&b, "Seats: %s\n", strings.Join(seats, ","))
	fmt.Fprintf(&b, "Show time: %s\n", s.showStart.Format(DisplayTimeLayout))
	fmt.Fprintf(&b, "Total paid: %s", s.total)
	return Email{To: s.email, Subject: NewSaleEmailSubject, Body: b.String()}
}
