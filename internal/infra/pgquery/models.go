package pgquery

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Surname      string
	Email        string
	Username     string
	PasswordHash string
	Role         string
	Points       int32
	Version      int64
	CreatedAt    pgtype.Timestamptz
}

type Movie struct {
	ID               uuid.UUID
	Name             string
	Plot             string
	DurationMinutes  int32
	ReleaseDate      pgtype.Date
	Genres           []string
	Directors        []string
	RatingTotalValue int64
	RatingTotalVotes int64
	Version          int64
}

type MovieActor struct {
	MovieID       uuid.UUID
	Position      int32
	Name          string
	Surname       string
	CharacterName string
}

type ShowSeat struct {
	SeatNumber    int32
	State         string
	HolderID      pgtype.UUID
	HoldExpiresAt pgtype.Timestamptz
	Version       int64
}

type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     pgtype.Timestamptz
	Attempts  int32
	Status    string
	LastError pgtype.Text
	CreatedAt pgtype.Timestamptz
}
