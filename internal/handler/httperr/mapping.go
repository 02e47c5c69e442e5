package httperr

import (
	"errors"
	"net/http"

	"cinema-ticketing/internal/domain/money"
	"cinema-ticketing/internal/domain/movie"
	"cinema-ticketing/internal/domain/rating"
	"cinema-ticketing/internal/domain/show"
	"cinema-ticketing/internal/domain/theater"
	"cinema-ticketing/internal/domain/user"
	"cinema-ticketing/internal/pkg/errs"
	"cinema-ticketing/internal/usecase/commands"
	"cinema-ticketing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	CodeInvalidRequest        = "INVALID_REQUEST"
	CodeValidationFailed      = "VALIDATION_FAILED"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeForbidden             = "FORBIDDEN"
	CodeInvalidCredentials    = "INVALID_CREDENTIALS"
	CodeShowNotFound          = "SHOW_NOT_FOUND"
	CodeMovieNotFound         = "MOVIE_NOT_FOUND"
	CodeUserNotFound          = "USER_NOT_FOUND"
	CodeTheaterNotFound       = "THEATER_NOT_FOUND"
	CodeSeatsBusy             = "SEATS_BUSY"
	CodeReservationRequired   = "RESERVATION_REQUIRED"
	CodeAlreadyRated          = "ALREADY_RATED"
	CodeUsernameTaken         = "USERNAME_TAKEN"
	CodePaymentFailed         = "PAYMENT_FAILED"
	CodeConcurrencyExhausted  = "CONCURRENCY_EXHAUSTED"
	CodeInternal              = "INTERNAL_ERROR"
	messageInternalError      = "Internal server error"
	messageConcurrencyFailure = "The request could not be completed because of concurrent updates, please retry"
)

type mapping struct {
	targets []error
	status  int
	code    string
	// Empty message echoes the matched sentinel.
	message string
}

// Checked in order; the first match wins.
var mappings = []mapping{
	{
		targets: []error{errs.ErrConcurrencyExhausted},
		status:  http.StatusConflict,
		code:    CodeConcurrencyExhausted,
		message: messageConcurrencyFailure,
	},
	{
		targets: []error{commands.ErrShowNotFound, queries.ErrShowNotFound},
		status:  http.StatusNotFound,
		code:    CodeShowNotFound,
		message: "Show not found",
	},
	{
		targets: []error{commands.ErrMovieNotFound, queries.ErrMovieNotFound},
		status:  http.StatusNotFound,
		code:    CodeMovieNotFound,
		message: "Movie not found",
	},
	{
		targets: []error{commands.ErrUserNotFound, queries.ErrUserNotFound},
		status:  http.StatusNotFound,
		code:    CodeUserNotFound,
		message: "User not found",
	},
	{
		targets: []error{commands.ErrTheaterNotFound},
		status:  http.StatusNotFound,
		code:    CodeTheaterNotFound,
		message: "Theater not found",
	},
	{
		targets: []error{commands.ErrInvalidCredentials},
		status:  http.StatusUnauthorized,
		code:    CodeInvalidCredentials,
		message: "Invalid username or password",
	},
	{
		targets: []error{commands.ErrSelectedSeatsBusy, commands.ErrSeatBusy},
		status:  http.StatusConflict,
		code:    CodeSeatsBusy,
		message: "One or more selected seats are not available",
	},
	{
		targets: []error{commands.ErrReservationRequired},
		status:  http.StatusConflict,
		code:    CodeReservationRequired,
		message: "The selected seats must be reserved by you before purchase",
	},
	{
		targets: []error{commands.ErrAlreadyRated},
		status:  http.StatusConflict,
		code:    CodeAlreadyRated,
		message: "You have already rated this movie",
	},
	{
		targets: []error{commands.ErrUsernameTaken},
		status:  http.StatusConflict,
		code:    CodeUsernameTaken,
		message: "Username already taken",
	},
	{
		targets: []error{commands.ErrPaymentFailed},
		status:  http.StatusPaymentRequired,
		code:    CodePaymentFailed,
		message: "Payment could not be processed",
	},
	{
		targets: []error{
			commands.ErrInvalidSeatNumbers,
			commands.ErrShowStartInPast,
			queries.ErrInvalidCursor,
			queries.ErrInvalidMovieSort,
			rating.ErrInvalidRating,
			rating.ErrCommentTooLong,
			money.ErrInvalidPrice,
			money.ErrPriceTooPrecise,
			user.ErrInvalidEmail,
			user.ErrInvalidUsername,
			user.ErrUsernameTooLong,
			user.ErrInvalidName,
			user.ErrNameTooLong,
			user.ErrPasswordTooWeak,
			user.ErrPasswordsDontMatch,
			movie.ErrInvalidName,
			movie.ErrInvalidDuration,
			movie.ErrInvalidActorName,
			movie.ErrInvalidCharacterName,
			theater.ErrInvalidName,
			theater.ErrNoSeats,
			theater.ErrInvalidSeatNumber,
			theater.ErrDuplicateSeatNumber,
			show.ErrInvalidPoints,
			show.ErrNoSeats,
			show.ErrDuplicateSeatNumber,
		},
		status: http.StatusUnprocessableEntity,
		code:   CodeValidationFailed,
	},
}

// AbortWithDomainError maps err to its status and stable code. Unknown errors become 500.
func AbortWithDomainError(c *gin.Context, err error) {
	for _, m := range mappings {
		for _, target := range m.targets {
			if !errors.Is(err, target) {
				continue
			}
			msg := m.message
			if msg == "" {
				msg = target.Error()
			}
			AbortWithCode(c, m.status, err, m.code, msg, nil)
			return
		}
	}
	AbortWithCode(c, http.StatusInternalServerError, err, CodeInternal, messageInternalError, nil)
}
