package commands

import (
	"errors"

	"cinema-ticketing/internal/domain/auth"
	"cinema-ticketing/internal/domain/rating"
	"cinema-ticketing/internal/domain/seat"
	"cinema-ticketing/internal/domain/show"
	"cinema-ticketing/internal/pkg/errs"
)

var (
	ErrShowNotFound       = errs.New("show not found")
	ErrUserNotFound       = errs.New("user not found")
	ErrMovieNotFound      = errs.New("movie not found")
	ErrTheaterNotFound    = errs.New("theater not found")
	ErrInvalidSeatNumbers = errs.New("seats must be a non-empty list of seats of the show")
	ErrAlreadyRated       = errs.New("the user has already rated this movie")
	ErrUsernameTaken      = errs.New("username already taken")
	ErrPaymentFailed      = errs.New("payment could not be processed")
	ErrShowStartInPast    = errs.New("show start time must be in the future")
	ErrTokenGeneration    = errs.New("token generation failed")
)

// Domain errors surfaced unchanged by the commands.
var (
	ErrSeatBusy             = seat.ErrSeatBusy
	ErrSelectedSeatsBusy    = show.ErrSelectedSeatsBusy
	ErrReservationRequired  = seat.ErrReservationRequired
	ErrInvalidRating        = rating.ErrInvalidRating
	ErrInvalidCredentials   = auth.ErrInvalidCredentials
	ErrConcurrencyExhausted = errs.ErrConcurrencyExhausted
)

// notFoundAs replaces a store miss with the command level sentinel.
func notFoundAs(err, target error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return target
	}
	return err
}
