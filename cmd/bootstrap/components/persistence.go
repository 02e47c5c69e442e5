package components

import (
	"errors"

	"cinema-ticketing/internal/infra/memstore"
	"cinema-ticketing/internal/infra/pgquery"
	"cinema-ticketing/internal/infra/readstore"
	"cinema-ticketing/internal/infra/uow"
	"cinema-ticketing/internal/pkg/config"
	"cinema-ticketing/internal/usecase/queries"
	"cinema-ticketing/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var errMissingPool = errors.New("postgres driver selected without a connection pool")

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewRetryPolicy,
		NewPersistence,
	),
)

type Persistence struct {
	fx.Out

	UoW    shared.UnitOfWork
	Shows  queries.ShowReadStore
	Movies queries.MovieReadStore
	Users  queries.UserReadStore
}

type persistenceParams struct {
	fx.In

	Config config.Config
	Policy shared.RetryPolicy
	Pool   *pgxpool.Pool `optional:"true"`
}

func NewRetryPolicy(cfg config.Config, observer shared.RetryObserver) shared.RetryPolicy {
	return shared.RetryPolicy{
		MaxAttempts: cfg.Booking.TxMaxAttempts,
		BaseBackoff: cfg.Booking.TxRetryBackoff,
		Observer:    observer,
	}
}

// NewPersistence selects the storage backend named by DB_DRIVER.
func NewPersistence(p persistenceParams) (Persistence, error) {
	if p.Config.DB.Driver == config.DriverMemory {
		store := memstore.NewStore()
		return Persistence{
			UoW:    memstore.NewUnitOfWork(store, p.Policy),
			Shows:  store.ShowReads(),
			Movies: store.MovieReads(),
			Users:  store.UserReads(),
		}, nil
	}

	if p.Pool == nil {
		return Persistence{}, errMissingPool
	}
	q := pgquery.New()
	return Persistence{
		UoW:    uow.NewPostgresUoW(p.Pool, q, p.Policy),
		Shows:  readstore.NewShowReadStore(q, p.Pool),
		Movies: readstore.NewMovieReadStore(q, p.Pool),
		Users:  readstore.NewUserReadStore(q, p.Pool),
	}, nil
}
