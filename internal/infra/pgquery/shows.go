package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ShowRow struct {
	ID           uuid.UUID
	MovieID      uuid.UUID
	MovieName    string
	TheaterID    uuid.UUID
	TheaterName  string
	StartTime    pgtype.Timestamptz
	UnitPriceE4  int64
	PointsToEarn int32
}

const getShow = `SELECT s.id, s.movie_id, m.name, s.theater_id, t.name, s.start_time, s.unit_price_e4, s.points_to_earn
FROM shows s
JOIN movies m ON m.id = s.movie_id
JOIN theaters t ON t.id = s.theater_id
WHERE s.id = $1`

func (q *Queries) GetShow(ctx context.Context, db DBTX, id uuid.UUID) (ShowRow, error) {
	var s ShowRow
	err := db.QueryRow(ctx, getShow, id).Scan(
		&s.ID, &s.MovieID, &s.MovieName, &s.TheaterID, &s.TheaterName, &s.StartTime, &s.UnitPriceE4, &s.PointsToEarn)
	return s, err
}

const listShowSeats = `SELECT seat_number, state, holder_id, hold_expires_at, version
FROM show_seats
WHERE show_id = $1
ORDER BY seat_number`

func (q *Queries) ListShowSeats(ctx context.Context, db DBTX, showID uuid.UUID) ([]ShowSeat, error) {
	rows, err := db.Query(ctx, listShowSeats, showID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (ShowSeat, error) {
		var s ShowSeat
		err := row.Scan(&s.SeatNumber, &s.State, &s.HolderID, &s.HoldExpiresAt, &s.Version)
		return s, err
	})
}

type InsertShowParams struct {
	ID           uuid.UUID
	MovieID      uuid.UUID
	TheaterID    uuid.UUID
	StartTime    pgtype.Timestamptz
	UnitPriceE4  int64
	PointsToEarn int32
}

const insertShow = `INSERT INTO shows (id, movie_id, theater_id, start_time, unit_price_e4, points_to_earn)
VALUES ($1, $2, $3, $4, $5, $6)`

func (q *Queries) InsertShow(ctx context.Context, db DBTX, arg InsertShowParams) error {
	_, err := db.Exec(ctx, insertShow, arg.ID, arg.MovieID, arg.TheaterID, arg.StartTime, arg.UnitPriceE4, arg.PointsToEarn)
	return err
}

type CopyShowSeatsParams struct {
	ShowID uuid.UUID
	Seat   ShowSeat
}

func (q *Queries) CopyShowSeats(ctx context.Context, db DBTX, arg []CopyShowSeatsParams) (int64, error) {
	return db.CopyFrom(ctx,
		pgx.Identifier{"show_seats"},
		[]string{"show_id", "seat_number", "state", "holder_id", "hold_expires_at", "version"},
		pgx.CopyFromSlice(len(arg), func(i int) ([]any, error) {
			s := arg[i].Seat
			return []any{arg[i].ShowID, s.SeatNumber, s.State, s.HolderID, s.HoldExpiresAt, s.Version}, nil
		}),
	)
}

type UpdateShowSeatParams struct {
	ShowID          uuid.UUID
	Seat            ShowSeat
	ExpectedVersion int64
}

const updateShowSeat = `UPDATE show_seats
SET state = $3, holder_id = $4, hold_expires_at = $5, version = $6
WHERE show_id = $1 AND seat_number = $2 AND version = $7`

// UpdateShowSeat returns the number of rows updated; zero means the version moved.
func (q *Queries) UpdateShowSeat(ctx context.Context, db DBTX, arg UpdateShowSeatParams) (int64, error) {
	s := arg.Seat
	tag, err := db.Exec(ctx, updateShowSeat,
		arg.ShowID, s.SeatNumber, s.State, s.HolderID, s.HoldExpiresAt, s.Version, arg.ExpectedVersion)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type ListShowsBetweenParams struct {
	From  pgtype.Timestamptz
	Until pgtype.Timestamptz
	Now   pgtype.Timestamptz
}

type ShowSummaryRow struct {
	ID             uuid.UUID
	MovieID        uuid.UUID
	MovieName      string
	TheaterName    string
	StartTime      pgtype.Timestamptz
	UnitPriceE4    int64
	AvailableSeats int64
}

// An expired hold counts as available, matching the lazy expiry of seats.
const listShowsBetween = `SELECT s.id, s.movie_id, m.name, t.name, s.start_time, s.unit_price_e4,
       COUNT(ss.seat_number) FILTER (
           WHERE ss.state = 'available' OR (ss.state = 'held' AND ss.hold_expires_at <= $3)
       ) AS available_seats
FROM shows s
JOIN movies m ON m.id = s.movie_id
JOIN theaters t ON t.id = s.theater_id
LEFT JOIN show_seats ss ON ss.show_id = s.id
WHERE s.start_time >= $1 AND s.start_time < $2
GROUP BY s.id, m.name, t.name
ORDER BY s.start_time, m.name`

func (q *Queries) ListShowsBetween(ctx context.Context, db DBTX, arg ListShowsBetweenParams) ([]ShowSummaryRow, error) {
	rows, err := db.Query(ctx, listShowsBetween, arg.From, arg.Until, arg.Now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (ShowSummaryRow, error) {
		var s ShowSummaryRow
		err := row.Scan(&s.ID, &s.MovieID, &s.MovieName, &s.TheaterName, &s.StartTime, &s.UnitPriceE4, &s.AvailableSeats)
		return s, err
	})
}

const getTheater = `SELECT name FROM theaters WHERE id = $1`

func (q *Queries) GetTheaterName(ctx context.Context, db DBTX, id uuid.UUID) (string, error) {
	var name string
	err := db.QueryRow(ctx, getTheater, id).Scan(&name)
	return name, err
}

const listTheaterSeats = `SELECT seat_number FROM theater_seats WHERE theater_id = $1 ORDER BY seat_number`

func (q *Queries) ListTheaterSeats(ctx context.Context, db DBTX, theaterID uuid.UUID) ([]int32, error) {
	rows, err := db.Query(ctx, listTheaterSeats, theaterID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int32])
}

const insertTheater = `INSERT INTO theaters (id, name) VALUES ($1, $2)`

func (q *Queries) InsertTheater(ctx context.Context, db DBTX, id uuid.UUID, name string) error {
	_, err := db.Exec(ctx, insertTheater, id, name)
	return err
}

func (q *Queries) CopyTheaterSeats(ctx context.Context, db DBTX, theaterID uuid.UUID, seats []int32) (int64, error) {
	return db.CopyFrom(ctx,
		pgx.Identifier{"theater_seats"},
		[]string{"theater_id", "seat_number"},
		pgx.CopyFromSlice(len(seats), func(i int) ([]any, error) {
			return []any{theaterID, seats[i]}, nil
		}),
	)
}
