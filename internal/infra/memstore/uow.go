package memstore

import (
	"context"

	"cinema-ticketing/internal/usecase/shared"
)

type UnitOfWork struct {
	store  *Store
	policy shared.RetryPolicy
}

func NewUnitOfWork(store *Store, policy shared.RetryPolicy) *UnitOfWork {
	return &UnitOfWork{store: store, policy: policy}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return shared.RunWithRetries(ctx, u.policy, u.begin, func(ctx context.Context, tx *memTx) error {
		return fn(ctx, tx)
	})
}

// WithinReadOnly discards anything fn writes.
func (u *UnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx, err := u.begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()
	return fn(ctx, tx)
}

func (u *UnitOfWork) begin(ctx context.Context) (*memTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &memTx{store: u.store}, nil
}

// op is one buffered write. check runs against committed state under the
// commit lock; apply runs only when every check of the transaction passed.
type op struct {
	check func(s *Store) error
	apply func(s *Store)
}

type memTx struct {
	store *Store
	ops   []op
}

func (t *memTx) add(check func(s *Store) error, apply func(s *Store)) {
	t.ops = append(t.ops, op{check: check, apply: apply})
}

func (t *memTx) Commit(context.Context) error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.commitConflicts > 0 {
		s.commitConflicts--
		return conflict("injected commit conflict")
	}
	for _, o := range t.ops {
		if o.check == nil {
			continue
		}
		if err := o.check(s); err != nil {
			return err
		}
	}
	for _, o := range t.ops {
		o.apply(s)
	}
	t.ops = nil
	return nil
}

func (t *memTx) Rollback(context.Context) error {
	t.ops = nil
	return nil
}

func (t *memTx) Shows() shared.ShowRepository                 { return showRepo{t} }
func (t *memTx) Theaters() shared.TheaterRepository           { return theaterRepo{t} }
func (t *memTx) Movies() shared.MovieRepository               { return movieRepo{t} }
func (t *memTx) Rates() shared.RateRepository                 { return rateRepo{t} }
func (t *memTx) Users() shared.UserRepository                 { return userRepo{t} }
func (t *memTx) LoginAudits() shared.LoginAuditRepository     { return loginAuditRepo{t} }
func (t *memTx) Sales() shared.SaleRepository                 { return saleRepo{t} }
func (t *memTx) Notifications() shared.NotificationRepository { return notificationRepo{t} }
