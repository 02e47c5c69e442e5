package shared

import (
	"context"
	"time"

	"cinema-ticketing/internal/domain/movie"
	"cinema-ticketing/internal/domain/notification"
	"cinema-ticketing/internal/domain/rating"
	"cinema-ticketing/internal/domain/sale"
	"cinema-ticketing/internal/domain/show"
	"cinema-ticketing/internal/domain/theater"
	"cinema-ticketing/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: write transaction, retried on write conflicts
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: single attempt, nothing is persisted
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out repositories bound to one transaction attempt.
// Lookups return errors matching errs.ErrNotFound for missing rows.
// Writes return errors matching errs.ErrWriteConflict when a row changed
// since it was loaded or a uniqueness rule was hit concurrently.
type Tx interface {
	Shows() ShowRepository
	Theaters() TheaterRepository
	Movies() MovieRepository
	Rates() RateRepository
	Users() UserRepository
	LoginAudits() LoginAuditRepository
	Sales() SaleRepository
	Notifications() NotificationRepository
}

type ShowRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*show.Show, error)
	Create(ctx context.Context, s *show.Show) error
	// SaveSeats flushes the seats changed since load, each guarded by its loaded version.
	SaveSeats(ctx context.Context, s *show.Show) error
}

type TheaterRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*theater.Theater, error)
	Create(ctx context.Context, t *theater.Theater) error
}

type MovieRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*movie.Movie, error)
	Create(ctx context.Context, m *movie.Movie) error
	// UpdateRatings persists the rating totals guarded by the loaded version.
	UpdateRatings(ctx context.Context, m *movie.Movie) error
	// SaveCast persists actors added since load, guarded by the loaded version.
	SaveCast(ctx context.Context, m *movie.Movie) error
}

type RateRepository interface {
	ExistsByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (bool, error)
	Create(ctx context.Context, r *rating.Rate) error
}

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, u *user.User) error
	// UpdatePoints persists the points guarded by the loaded version.
	UpdatePoints(ctx context.Context, u *user.User) error
}

type LoginAuditRepository interface {
	Create(ctx context.Context, a user.LoginAudit) error
}

type SaleRepository interface {
	Create(ctx context.Context, s *sale.Sale) error
}

type NotificationRepository interface {
	Enqueue(ctx context.Context, job notification.Job) error
	// ClaimDue leases up to limit queued jobs due at now by moving their run time to leaseUntil.
	ClaimDue(ctx context.Context, now, leaseUntil time.Time, limit int) ([]notification.Job, error)
	Complete(ctx context.Context, id uuid.UUID, attempts int, outcome notification.Outcome) error
}
