package rating

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"cinema-ticketing/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MinValue         = 0
	MaxValue         = 5
	MaxCommentLength = 1000
)

var (
	ErrInvalidRating       = errs.New("rating must be between 0 and 5")
	ErrCommentTooLong      = errs.New("comment must be at most 1000 characters")
	ErrInvalidAccumulation = errs.New("rating totals are inconsistent")
)

type Value int

func NewValue(v int) (Value, error) {
	if v < MinValue || v > MaxValue {
		return 0, ErrInvalidRating
	}
	return Value(v), nil
}

func (v Value) Int() int { return int(v) }

// Accumulator keeps the running totals of a movie's votes. It only grows.
type Accumulator struct {
	totalValue int64
	totalVotes int64
}

func NewAccumulator() Accumulator { return Accumulator{} }

func ReconstructAccumulator(totalValue, totalVotes int64) (Accumulator, error) {
	if totalValue < 0 || totalVotes < 0 || totalValue > totalVotes*MaxValue {
		return Accumulator{}, ErrInvalidAccumulation
	}
	return Accumulator{totalValue: totalValue, totalVotes: totalVotes}, nil
}

func (a *Accumulator) RecordVote(v Value) {
	a.totalValue += int64(v)
	a.totalVotes++
}

func (a Accumulator) TotalValue() int64 { return a.totalValue }
func (a Accumulator) TotalVotes() int64 { return a.totalVotes }

// AverageHundredths is round_half_up(totalValue/totalVotes, 2) scaled by 100.
func (a Accumulator) AverageHundredths() int64 {
	if a.totalVotes == 0 {
		return 0
	}
	return (a.totalValue*200 + a.totalVotes) / (2 * a.totalVotes)
}

type Average int64

func (a Accumulator) Average() Average { return Average(a.AverageHundredths()) }

func (a Average) Hundredths() int64 { return int64(a) }

func (a Average) Float64() float64 { return float64(a) / 100 }

func (a Average) String() string {
	return fmt.Sprintf("%d.%02d", int64(a)/100, int64(a)%100)
}

type Comment struct {
	value string
}

func NewComment(s string) (Comment, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{value: s}, nil
}

func (c Comment) Value() string { return c.value }

// Rate is one user's vote on a movie. A user rates a movie at most once.
type Rate struct {
	id        uuid.UUID
	movieID   uuid.UUID
	userID    uuid.UUID
	value     Value
	comment   Comment
	createdAt time.Time
}

func NewRate(movieID, userID uuid.UUID, value Value, comment Comment, now time.Time) *Rate {
	return &Rate{
		id:        uuid.New(),
		movieID:   movieID,
		userID:    userID,
		value:     value,
		comment:   comment,
		createdAt: now,
	}
}

func ReconstructRate(id, movieID, userID uuid.UUID, value Value, comment Comment, createdAt time.Time) *Rate {
	return &Rate{id: id, movieID: movieID, userID: userID, value: value, comment: comment, createdAt: createdAt}
}

func (r *Rate) ID() uuid.UUID        { return r.id }
func (r *Rate) MovieID() uuid.UUID   { return r.movieID }
func (r *Rate) UserID() uuid.UUID    { return r.userID }
func (r *Rate) Value() Value         { return r.value }
func (r *Rate) Comment() Comment     { return r.comment }
func (r *Rate) CreatedAt() time.Time { return r.createdAt }
