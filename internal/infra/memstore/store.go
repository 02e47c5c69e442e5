// Package memstore is an in-process store with the same optimistic
// semantics as the Postgres repositories: reads see committed rows,
// writes are buffered per transaction and validated against row versions
// and unique keys when the transaction commits.
package memstore

import (
	"slices"
	"sync"
	"time"

	"cinema-ticketing/internal/domain/money"
	"cinema-ticketing/internal/domain/movie"
	"cinema-ticketing/internal/domain/notification"
	"cinema-ticketing/internal/domain/sale"
	"cinema-ticketing/internal/domain/seat"
	"cinema-ticketing/internal/domain/user"
	"cinema-ticketing/internal/pkg/errs"

	"github.com/google/uuid"
)

type userRow struct {
	id           uuid.UUID
	name         string
	surname      string
	email        string
	username     string
	passwordHash string
	role         string
	points       int
	createdAt    time.Time
	version      int64
}

type movieRow struct {
	id      uuid.UUID
	params  movie.Params
	total   int64
	votes   int64
	version int64
}

type rateKey struct {
	movieID uuid.UUID
	userID  uuid.UUID
}

type rateRow struct {
	id        uuid.UUID
	movieID   uuid.UUID
	userID    uuid.UUID
	value     int
	comment   string
	createdAt time.Time
}

type theaterRow struct {
	id    uuid.UUID
	name  string
	seats []int
}

type showRow struct {
	id        uuid.UUID
	movieID   uuid.UUID
	movieName string
	theaterID uuid.UUID
	startTime time.Time
	unitPrice money.UnitPrice
	points    int
}

type seatRow struct {
	state   seat.State
	holder  uuid.UUID
	expiry  time.Time
	version int64
}

type Store struct {
	mu sync.RWMutex

	users     map[uuid.UUID]userRow
	usernames map[string]uuid.UUID
	audits    []user.LoginAudit
	movies    map[uuid.UUID]movieRow
	rates     map[uuid.UUID]rateRow
	rateKeys  map[rateKey]uuid.UUID
	theaters  map[uuid.UUID]theaterRow
	shows     map[uuid.UUID]showRow
	seats     map[uuid.UUID]map[int]seatRow
	sales     []*sale.Sale
	jobs      map[uuid.UUID]notification.Job

	commitConflicts int
}

func NewStore() *Store {
	return &Store{
		users:     make(map[uuid.UUID]userRow),
		usernames: make(map[string]uuid.UUID),
		movies:    make(map[uuid.UUID]movieRow),
		rates:     make(map[uuid.UUID]rateRow),
		rateKeys:  make(map[rateKey]uuid.UUID),
		theaters:  make(map[uuid.UUID]theaterRow),
		shows:     make(map[uuid.UUID]showRow),
		seats:     make(map[uuid.UUID]map[int]seatRow),
		jobs:      make(map[uuid.UUID]notification.Job),
	}
}

// InjectCommitConflicts makes the next n commits fail with a write conflict.
func (s *Store) InjectCommitConflicts(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitConflicts = n
}

func (s *Store) Sales() []*sale.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.sales)
}

func (s *Store) LoginAudits() []user.LoginAudit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.audits)
}

// Jobs returns every notification job ordered by creation.
func (s *Store) Jobs() []notification.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]notification.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, j)
	}
	slices.SortFunc(out, func(a, b notification.Job) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return out
}

func (s *Store) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

func notFound(format string, args ...any) error {
	return errs.Wrapf(errs.ErrNotFound, format, args...)
}

func conflict(format string, args ...any) error {
	return errs.Wrapf(errs.ErrWriteConflict, format, args...)
}
