package memstore

import (
	"context"
	"slices"
	"time"

	"cinema-ticketing/internal/domain/movie"
	"cinema-ticketing/internal/domain/notification"
	"cinema-ticketing/internal/domain/rating"
	"cinema-ticketing/internal/domain/sale"
	"cinema-ticketing/internal/domain/seat"
	"cinema-ticketing/internal/domain/show"
	"cinema-ticketing/internal/domain/theater"
	"cinema-ticketing/internal/domain/user"

	"github.com/google/uuid"
)

type showRepo struct{ tx *memTx }

func (r showRepo) FindByID(_ context.Context, id uuid.UUID) (*show.Show, error) {
	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.shows[id]
	if !ok {
		return nil, notFound("show %s", id)
	}
	seats := make([]*seat.Seat, 0, len(s.seats[id]))
	for number, sr := range s.seats[id] {
		st, err := seat.Reconstruct(number, sr.state, sr.holder, sr.expiry, sr.version)
		if err != nil {
			return nil, err
		}
		seats = append(seats, st)
	}
	inv, err := show.ReconstructInventory(id, seats)
	if err != nil {
		return nil, err
	}
	return show.Reconstruct(id, show.Params{
		MovieID:      row.movieID,
		MovieName:    row.movieName,
		TheaterID:    row.theaterID,
		StartTime:    row.startTime,
		UnitPrice:    row.unitPrice,
		PointsToEarn: row.points,
	}, inv), nil
}

func (r showRepo) Create(_ context.Context, sh *show.Show) error {
	row := showRow{
		id:        sh.ID(),
		movieID:   sh.MovieID(),
		movieName: sh.MovieName(),
		theaterID: sh.TheaterID(),
		startTime: sh.StartTime(),
		unitPrice: sh.UnitPrice(),
		points:    sh.PointsToEarn(),
	}
	seats := make(map[int]seatRow, sh.Inventory().Len())
	for _, st := range sh.Inventory().Seats() {
		seats[st.Number()] = seatRow{state: st.State(), holder: st.HolderID(), expiry: st.HoldExpiry(), version: st.Version()}
	}
	r.tx.add(
		func(s *Store) error {
			if _, exists := s.shows[row.id]; exists {
				return conflict("show %s already exists", row.id)
			}
			return nil
		},
		func(s *Store) {
			s.shows[row.id] = row
			s.seats[row.id] = seats
		},
	)
	return nil
}

func (r showRepo) SaveSeats(_ context.Context, sh *show.Show) error {
	showID := sh.ID()
	for _, st := range sh.Inventory().Changed() {
		number, loaded := st.Number(), st.LoadedVersion()
		next := seatRow{state: st.State(), holder: st.HolderID(), expiry: st.HoldExpiry(), version: st.Version()}
		r.tx.add(
			func(s *Store) error {
				cur, ok := s.seats[showID][number]
				if !ok {
					return notFound("seat %d of show %s", number, showID)
				}
				if cur.version != loaded {
					return conflict("seat %d of show %s changed", number, showID)
				}
				return nil
			},
			func(s *Store) { s.seats[showID][number] = next },
		)
	}
	return nil
}

type theaterRepo struct{ tx *memTx }

func (r theaterRepo) FindByID(_ context.Context, id uuid.UUID) (*theater.Theater, error) {
	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.theaters[id]
	if !ok {
		return nil, notFound("theater %s", id)
	}
	return theater.Reconstruct(row.id, row.name, row.seats), nil
}

func (r theaterRepo) Create(_ context.Context, t *theater.Theater) error {
	row := theaterRow{id: t.ID(), name: t.Name(), seats: t.SeatNumbers()}
	r.tx.add(
		func(s *Store) error {
			if _, exists := s.theaters[row.id]; exists {
				return conflict("theater %s already exists", row.id)
			}
			return nil
		},
		func(s *Store) { s.theaters[row.id] = row },
	)
	return nil
}

type movieRepo struct{ tx *memTx }

func (r movieRepo) FindByID(_ context.Context, id uuid.UUID) (*movie.Movie, error) {
	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.movies[id]
	if !ok {
		return nil, notFound("movie %s", id)
	}
	acc, err := rating.ReconstructAccumulator(row.total, row.votes)
	if err != nil {
		return nil, err
	}
	return movie.Reconstruct(row.id, row.params, acc, row.version), nil
}

func (r movieRepo) Create(_ context.Context, m *movie.Movie) error {
	row := movieRow{
		id: m.ID(),
		params: movie.Params{
			Name:            m.Name(),
			Plot:            m.Plot(),
			DurationMinutes: m.DurationMinutes(),
			ReleaseDate:     m.ReleaseDate(),
			Genres:          m.Genres(),
			Directors:       m.Directors(),
			Actors:          m.Actors(),
		},
		total:   m.Ratings().TotalValue(),
		votes:   m.Ratings().TotalVotes(),
		version: m.Version(),
	}
	r.tx.add(
		func(s *Store) error {
			if _, exists := s.movies[row.id]; exists {
				return conflict("movie %s already exists", row.id)
			}
			return nil
		},
		func(s *Store) { s.movies[row.id] = row },
	)
	return nil
}

func (r movieRepo) UpdateRatings(_ context.Context, m *movie.Movie) error {
	id, loaded := m.ID(), m.LoadedVersion()
	total, votes, version := m.Ratings().TotalValue(), m.Ratings().TotalVotes(), m.Version()
	r.tx.add(
		func(s *Store) error {
			cur, ok := s.movies[id]
			if !ok {
				return notFound("movie %s", id)
			}
			if cur.version != loaded {
				return conflict("movie %s changed", id)
			}
			return nil
		},
		func(s *Store) {
			row := s.movies[id]
			row.total, row.votes, row.version = total, votes, version
			s.movies[id] = row
		},
	)
	return nil
}

func (r movieRepo) SaveCast(_ context.Context, m *movie.Movie) error {
	if _, added := m.NewActors(); len(added) == 0 {
		return nil
	}
	id, loaded, version, actors := m.ID(), m.LoadedVersion(), m.Version(), m.Actors()
	r.tx.add(
		func(s *Store) error {
			cur, ok := s.movies[id]
			if !ok {
				return notFound("movie %s", id)
			}
			if cur.version != loaded {
				return conflict("movie %s changed", id)
			}
			return nil
		},
		func(s *Store) {
			row := s.movies[id]
			row.params.Actors = actors
			row.version = version
			s.movies[id] = row
		},
	)
	return nil
}

type rateRepo struct{ tx *memTx }

func (r rateRepo) ExistsByUserAndMovie(_ context.Context, userID, movieID uuid.UUID) (bool, error) {
	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.rateKeys[rateKey{movieID: movieID, userID: userID}]
	return ok, nil
}

func (r rateRepo) Create(_ context.Context, rt *rating.Rate) error {
	row := rateRow{
		id:        rt.ID(),
		movieID:   rt.MovieID(),
		userID:    rt.UserID(),
		value:     rt.Value().Int(),
		comment:   rt.Comment().Value(),
		createdAt: rt.CreatedAt(),
	}
	key := rateKey{movieID: row.movieID, userID: row.userID}
	r.tx.add(
		func(s *Store) error {
			if _, exists := s.rateKeys[key]; exists {
				return conflict("user %s already rated movie %s", key.userID, key.movieID)
			}
			return nil
		},
		func(s *Store) {
			s.rates[row.id] = row
			s.rateKeys[key] = row.id
		},
	)
	return nil
}

type userRepo struct{ tx *memTx }

func (r userRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.users[id]
	if !ok {
		return nil, notFound("user %s", id)
	}
	return toUser(row)
}

func (r userRepo) FindByUsername(_ context.Context, username string) (*user.User, error) {
	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return nil, notFound("user %q", username)
	}
	return toUser(s.users[id])
}

func (r userRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	s := r.tx.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.usernames[username]
	return ok, nil
}

func (r userRepo) Create(_ context.Context, u *user.User) error {
	row := userRow{
		id:           u.ID(),
		name:         u.Name().Value(),
		surname:      u.Surname().Value(),
		email:        u.Email().Value(),
		username:     u.Username().Value(),
		passwordHash: u.PasswordHash(),
		role:         u.Role().String(),
		points:       u.Points(),
		createdAt:    u.CreatedAt(),
		version:      u.Version(),
	}
	r.tx.add(
		func(s *Store) error {
			if _, taken := s.usernames[row.username]; taken {
				return conflict("username %q already exists", row.username)
			}
			if _, exists := s.users[row.id]; exists {
				return conflict("user %s already exists", row.id)
			}
			return nil
		},
		func(s *Store) {
			s.users[row.id] = row
			s.usernames[row.username] = row.id
		},
	)
	return nil
}

func (r userRepo) UpdatePoints(_ context.Context, u *user.User) error {
	id, loaded, points, version := u.ID(), u.LoadedVersion(), u.Points(), u.Version()
	r.tx.add(
		func(s *Store) error {
			cur, ok := s.users[id]
			if !ok {
				return notFound("user %s", id)
			}
			if cur.version != loaded {
				return conflict("user %s changed", id)
			}
			return nil
		},
		func(s *Store) {
			row := s.users[id]
			row.points, row.version = points, version
			s.users[id] = row
		},
	)
	return nil
}

func toUser(row userRow) (*user.User, error) {
	profile, err := user.NewProfile(row.name, row.surname, row.email, row.username)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(row.role)
	if err != nil {
		return nil, err
	}
	return user.Reconstruct(row.id, profile, row.passwordHash, role, row.points, row.createdAt, row.version), nil
}

type loginAuditRepo struct{ tx *memTx }

func (r loginAuditRepo) Create(_ context.Context, a user.LoginAudit) error {
	r.tx.add(nil, func(s *Store) { s.audits = append(s.audits, a) })
	return nil
}

type saleRepo struct{ tx *memTx }

func (r saleRepo) Create(_ context.Context, sl *sale.Sale) error {
	r.tx.add(nil, func(s *Store) { s.sales = append(s.sales, sl) })
	return nil
}

type notificationRepo struct{ tx *memTx }

func (r notificationRepo) Enqueue(_ context.Context, job notification.Job) error {
	r.tx.add(nil, func(s *Store) { s.jobs[job.ID] = job })
	return nil
}

func (r notificationRepo) ClaimDue(_ context.Context, now, leaseUntil time.Time, limit int) ([]notification.Job, error) {
	s := r.tx.store
	s.mu.RLock()
	due := make([]notification.Job, 0)
	for _, j := range s.jobs {
		if j.Status == notification.StatusQueued && !j.RunAt.After(now) {
			due = append(due, j)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(due, func(a, b notification.Job) int { return a.RunAt.Compare(b.RunAt) })
	if len(due) > limit {
		due = due[:limit]
	}

	for _, j := range due {
		id, runAt := j.ID, j.RunAt
		r.tx.add(
			func(s *Store) error {
				cur, ok := s.jobs[id]
				if !ok || cur.Status != notification.StatusQueued || !cur.RunAt.Equal(runAt) {
					return conflict("notification job %s claimed concurrently", id)
				}
				return nil
			},
			func(s *Store) {
				cur := s.jobs[id]
				cur.RunAt = leaseUntil
				s.jobs[id] = cur
			},
		)
	}
	return due, nil
}

func (r notificationRepo) Complete(_ context.Context, id uuid.UUID, attempts int, outcome notification.Outcome) error {
	r.tx.add(
		func(s *Store) error {
			if _, ok := s.jobs[id]; !ok {
				return notFound("notification job %s", id)
			}
			return nil
		},
		func(s *Store) {
			cur := s.jobs[id]
			cur.Status = outcome.Status
			cur.RunAt = outcome.RunAt
			cur.Attempts = attempts
			cur.LastError = outcome.LastError
			s.jobs[id] = cur
		},
	)
	return nil
}
