package queries

import (
	"time"

	"github.com/google/uuid"
)

// SeatRecord is a stored seat row. State is the persisted state, before expiry is applied.
type SeatRecord struct {
	Number        int        `json:"number"`
	State         string     `json:"state"`
	HolderID      uuid.UUID  `json:"holder_id"`
	HoldExpiresAt *time.Time `json:"hold_expires_at,omitempty"`
}

// ShowSnapshot is the cacheable form of a show's seat map.
type ShowSnapshot struct {
	ShowID       uuid.UUID    `json:"show_id"`
	MovieID      uuid.UUID    `json:"movie_id"`
	MovieName    string       `json:"movie_name"`
	TheaterID    uuid.UUID    `json:"theater_id"`
	TheaterName  string       `json:"theater_name"`
	StartTime    time.Time    `json:"start_time"`
	UnitPrice    string       `json:"unit_price"`
	PointsToEarn int          `json:"points_to_earn"`
	Seats        []SeatRecord `json:"seats"`
}

type SeatView struct {
	Number    int    `json:"number"`
	State     string `json:"state"`
	Available bool   `json:"available"`
}

type ShowSeatMapView struct {
	ShowID         uuid.UUID  `json:"show_id"`
	MovieID        uuid.UUID  `json:"movie_id"`
	MovieName      string     `json:"movie_name"`
	TheaterID      uuid.UUID  `json:"theater_id"`
	TheaterName    string     `json:"theater_name"`
	StartTime      time.Time  `json:"start_time"`
	UnitPrice      string     `json:"unit_price"`
	PointsToEarn   int        `json:"points_to_earn"`
	AvailableSeats int        `json:"available_seats"`
	Seats          []SeatView `json:"seats"`
}

type ShowSummaryView struct {
	ShowID         uuid.UUID `json:"show_id"`
	MovieID        uuid.UUID `json:"movie_id"`
	MovieName      string    `json:"movie_name"`
	TheaterName    string    `json:"theater_name"`
	StartTime      time.Time `json:"start_time"`
	UnitPrice      string    `json:"unit_price"`
	AvailableSeats int       `json:"available_seats"`
}

type MovieView struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Plot            string      `json:"plot"`
	DurationMinutes int         `json:"duration_minutes"`
	ReleaseDate     *time.Time  `json:"release_date,omitempty"`
	Genres          []string    `json:"genres"`
	Directors       []string    `json:"directors"`
	Actors          []ActorView `json:"actors"`
	RatingTotal     int64       `json:"-"`
	RatingVotes     int64       `json:"rating_votes"`
	RatingAverage   string      `json:"rating_average"`
}

type ActorView struct {
	Name          string `json:"name"`
	CharacterName string `json:"character_name"`
}

type RateView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Value     int       `json:"value"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}
