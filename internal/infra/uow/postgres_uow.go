package uow

import (
	"context"
	"errors"
	"log/slog"

	"cinema-ticketing/internal/infra"
	"cinema-ticketing/internal/infra/pgquery"
	"cinema-ticketing/internal/infra/repository"
	"cinema-ticketing/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *pgquery.Queries
	policy shared.RetryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgquery.Queries, policy shared.RetryPolicy) *PostgresUoW {
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		policy: policy,
	}
}

// ReadCommitted; versioned writes and unique keys surface concurrent changes as conflicts.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	begin := func(ctx context.Context) (*pgTx, error) {
		return u.begin(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	}
	return shared.RunWithRetries(ctx, u.policy, begin, func(ctx context.Context, tx *pgTx) error {
		return fn(ctx, tx)
	})
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx, err := u.begin(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return err
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (u *PostgresUoW) begin(ctx context.Context, options pgx.TxOptions) (*pgTx, error) {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return nil, err
	}
	return &pgTx{tx: pgxTx, q: u.q}, nil
}

type pgTx struct {
	tx pgx.Tx
	q  *pgquery.Queries

	// Lazy-initialized repositories
	showRepo         *repository.ShowRepository
	theaterRepo      *repository.TheaterRepository
	movieRepo        *repository.MovieRepository
	rateRepo         *repository.RateRepository
	userRepo         *repository.UserRepository
	loginAuditRepo   *repository.LoginAuditRepository
	saleRepo         *repository.SaleRepository
	notificationRepo *repository.NotificationRepository
}

// Conflicts raised at COMMIT are classified like statement errors.
func (t *pgTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit transaction", err)
	}
	return nil
}

// Rollback after a successful commit is a no-op.
func (t *pgTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}

func (t *pgTx) Shows() shared.ShowRepository {
	if t.showRepo == nil {
		t.showRepo = repository.NewShowRepository(t.q, t.tx)
	}
	return t.showRepo
}

func (t *pgTx) Theaters() shared.TheaterRepository {
	if t.theaterRepo == nil {
		t.theaterRepo = repository.NewTheaterRepository(t.q, t.tx)
	}
	return t.theaterRepo
}

func (t *pgTx) Movies() shared.MovieRepository {
	if t.movieRepo == nil {
		t.movieRepo = repository.NewMovieRepository(t.q, t.tx)
	}
	return t.movieRepo
}

func (t *pgTx) Rates() shared.RateRepository {
	if t.rateRepo == nil {
		t.rateRepo = repository.NewRateRepository(t.q, t.tx)
	}
	return t.rateRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.q, t.tx)
	}
	return t.userRepo
}

func (t *pgTx) LoginAudits() shared.LoginAuditRepository {
	if t.loginAuditRepo == nil {
		t.loginAuditRepo = repository.NewLoginAuditRepository(t.q, t.tx)
	}
	return t.loginAuditRepo
}

func (t *pgTx) Sales() shared.SaleRepository {
	if t.saleRepo == nil {
		t.saleRepo = repository.NewSaleRepository(t.q, t.tx)
	}
	return t.saleRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.q, t.tx)
	}
	return t.notificationRepo
}
