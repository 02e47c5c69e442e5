package memstore

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"cinema-ticketing/internal/domain/seat"
	"cinema-ticketing/internal/usecase/queries"

	"github.com/google/uuid"
)

func (s *Store) ShowReads() queries.ShowReadStore   { return showReads{s} }
func (s *Store) MovieReads() queries.MovieReadStore { return movieReads{s} }
func (s *Store) UserReads() queries.UserReadStore   { return userReads{s} }

type showReads struct{ s *Store }

func (r showReads) FindSnapshot(_ context.Context, showID uuid.UUID) (*queries.ShowSnapshot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.shows[showID]
	if !ok {
		return nil, notFound("show %s", showID)
	}
	snap := &queries.ShowSnapshot{
		ShowID:       row.id,
		MovieID:      row.movieID,
		MovieName:    row.movieName,
		TheaterID:    row.theaterID,
		TheaterName:  r.s.theaters[row.theaterID].name,
		StartTime:    row.startTime,
		UnitPrice:    row.unitPrice.String(),
		PointsToEarn: row.points,
	}
	for number, sr := range r.s.seats[showID] {
		rec := queries.SeatRecord{Number: number, State: sr.state.String(), HolderID: sr.holder}
		if sr.state == seat.StateHeld {
			expiry := sr.expiry
			rec.HoldExpiresAt = &expiry
		}
		snap.Seats = append(snap.Seats, rec)
	}
	slices.SortFunc(snap.Seats, func(a, b queries.SeatRecord) int { return a.Number - b.Number })
	return snap, nil
}

func (r showReads) ListBetween(_ context.Context, from, until, now time.Time) ([]*queries.ShowSummaryView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*queries.ShowSummaryView, 0)
	for id, row := range r.s.shows {
		if row.startTime.Before(from) || !row.startTime.Before(until) {
			continue
		}
		available := 0
		for _, sr := range r.s.seats[id] {
			if sr.state == seat.StateAvailable || (sr.state == seat.StateHeld && !now.Before(sr.expiry)) {
				available++
			}
		}
		out = append(out, &queries.ShowSummaryView{
			ShowID:         id,
			MovieID:        row.movieID,
			MovieName:      row.movieName,
			TheaterName:    r.s.theaters[row.theaterID].name,
			StartTime:      row.startTime,
			UnitPrice:      row.unitPrice.String(),
			AvailableSeats: available,
		})
	}
	slices.SortFunc(out, func(a, b *queries.ShowSummaryView) int {
		if c := a.StartTime.Compare(b.StartTime); c != 0 {
			return c
		}
		return strings.Compare(a.MovieName, b.MovieName)
	})
	return out, nil
}

type movieReads struct{ s *Store }

func (r movieReads) FindByID(_ context.Context, id uuid.UUID) (*queries.MovieView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.movies[id]
	if !ok {
		return nil, notFound("movie %s", id)
	}
	return movieView(row), nil
}

func (r movieReads) FindMovies(_ context.Context, filter queries.MovieFilter, offset, limit int32) ([]*queries.MovieView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	matched := make([]movieRow, 0, len(r.s.movies))
	for _, row := range r.s.movies {
		if strings.Contains(strings.ToLower(row.params.Name), search) {
			matched = append(matched, row)
		}
	}
	slices.SortFunc(matched, movieOrder(filter.Sort))

	out := make([]*queries.MovieView, 0, limit)
	for i := int(offset); i < len(matched) && len(out) < int(limit); i++ {
		out = append(out, movieView(matched[i]))
	}
	return out, nil
}

// movieOrder mirrors the ORDER BY clauses of the Postgres listing queries.
func movieOrder(sort queries.MovieSort) func(a, b movieRow) int {
	byID := func(a, b movieRow) int { return strings.Compare(a.id.String(), b.id.String()) }
	switch sort {
	case queries.MovieSortReleaseDate:
		return func(a, b movieRow) int {
			ad, bd := a.params.ReleaseDate, b.params.ReleaseDate
			switch {
			case ad.IsZero() && !bd.IsZero():
				return 1
			case !ad.IsZero() && bd.IsZero():
				return -1
			}
			if c := bd.Compare(ad); c != 0 {
				return c
			}
			return byID(a, b)
		}
	case queries.MovieSortRating:
		return func(a, b movieRow) int {
			if c := cmp.Compare(b.votes, a.votes); c != 0 {
				return c
			}
			if c := cmp.Compare(b.total, a.total); c != 0 {
				return c
			}
			return byID(a, b)
		}
	default:
		return func(a, b movieRow) int {
			if c := strings.Compare(strings.ToLower(a.params.Name), strings.ToLower(b.params.Name)); c != 0 {
				return c
			}
			return byID(a, b)
		}
	}
}

func movieView(row movieRow) *queries.MovieView {
	actors := make([]queries.ActorView, len(row.params.Actors))
	for i, a := range row.params.Actors {
		actors[i] = queries.ActorView{Name: a.FullName(), CharacterName: a.CharacterName()}
	}
	mv := &queries.MovieView{
		ID:              row.id,
		Name:            row.params.Name,
		Plot:            row.params.Plot,
		DurationMinutes: row.params.DurationMinutes,
		Genres:          slices.Clone(row.params.Genres),
		Directors:       slices.Clone(row.params.Directors),
		Actors:          actors,
		RatingTotal:     row.total,
		RatingVotes:     row.votes,
	}
	if !row.params.ReleaseDate.IsZero() {
		release := row.params.ReleaseDate
		mv.ReleaseDate = &release
	}
	return mv
}

func (r movieReads) FindRatesFirstPage(_ context.Context, movieID uuid.UUID, limit int32) ([]*queries.RateView, error) {
	return r.rates(movieID, nil, limit), nil
}

func (r movieReads) FindRatesKeyset(_ context.Context, movieID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.RateView, error) {
	after := func(v *queries.RateView) bool {
		created := v.CreatedAt.Truncate(time.Microsecond)
		if c := created.Compare(lastCreatedAt); c != 0 {
			return c < 0
		}
		return strings.Compare(v.ID.String(), lastID.String()) < 0
	}
	return r.rates(movieID, after, limit), nil
}

func (r movieReads) rates(movieID uuid.UUID, keep func(*queries.RateView) bool, limit int32) []*queries.RateView {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*queries.RateView, 0)
	for _, row := range r.s.rates {
		if row.movieID != movieID {
			continue
		}
		v := &queries.RateView{
			ID:        row.id,
			UserID:    row.userID,
			Username:  r.s.users[row.userID].username,
			Value:     row.value,
			Comment:   row.comment,
			CreatedAt: row.createdAt,
		}
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	slices.SortFunc(out, func(a, b *queries.RateView) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID.String(), a.ID.String())
	})
	if len(out) > int(limit) {
		out = out[:limit]
	}
	return out
}

type userReads struct{ s *Store }

func (r userReads) FindByID(_ context.Context, id uuid.UUID) (*queries.UserView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.users[id]
	if !ok {
		return nil, notFound("user %s", id)
	}
	return &queries.UserView{
		ID:        row.id,
		Name:      row.name,
		Surname:   row.surname,
		Email:     row.email,
		Username:  row.username,
		Role:      row.role,
		Points:    row.points,
		CreatedAt: row.createdAt,
	}, nil
}
