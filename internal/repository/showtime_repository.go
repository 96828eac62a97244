// This file contains the showtime repository.  Besides the plain query
// surface it implements the serialization point for scheduling: creates and
// schedule-changing updates run in a transaction that locks the target room
// row and re-checks for overlapping showtimes, so two concurrent schedulers
// cannot both pass the application-level conflict check.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/cinebook/cinema-booking/internal/model"
)

// ShowtimeRepo manages persistence for showtimes.
type ShowtimeRepo struct {
	db *sql.DB
}

// NewShowtimeRepo constructs a ShowtimeRepo with the given DB handle.
func NewShowtimeRepo(db *sql.DB) *ShowtimeRepo {
	return &ShowtimeRepo{db: db}
}

// DB exposes the underlying sql.DB for callers that need to span multiple
// repositories in one transaction.
func (r *ShowtimeRepo) DB() *sql.DB {
	return r.db
}

const showtimeCols = `id, movie_id, room_id, start_time, end_time, is_active, created_at, updated_at`

func scanShowtime(row interface{ Scan(...any) error }, s *model.Showtime) error {
	return row.Scan(&s.ID, &s.MovieID, &s.RoomID, &s.StartTime, &s.EndTime, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
}

// overlapCount counts live showtimes in the room whose window intersects
// [start, end).  Half-open semantics: rows that merely touch an endpoint do
// not count.  excludeID may be empty.
func overlapCount(ctx context.Context, tx *sql.Tx, roomID, excludeID string, start, end time.Time) (int, error) {
	const q = `SELECT COUNT(*) FROM showtimes
	           WHERE room_id = ? AND id <> ? AND is_active = TRUE
	             AND start_time < ? AND end_time > ?`
	var n int
	err := tx.QueryRowContext(ctx, q, roomID, excludeID, end, start).Scan(&n)
	return n, err
}

// lockRoom takes a row lock on the room so concurrent schedulers for the
// same room serialize on it for the rest of the transaction.
func lockRoom(ctx context.Context, tx *sql.Tx, roomID string) error {
	var id string
	err := tx.QueryRowContext(ctx, `SELECT id FROM rooms WHERE id = ? FOR UPDATE`, roomID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRoomNotFound
	}
	return err
}

// Create inserts a new showtime.  The insert runs in a transaction that
// locks the room row and re-verifies that no live showtime overlaps the new
// window; a racing insert surfaces as ErrShowtimeConflict.
func (r *ShowtimeRepo) Create(ctx context.Context, s *model.Showtime) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := lockRoom(ctx, tx, s.RoomID); err != nil {
		return err
	}
	n, err := overlapCount(ctx, tx, s.RoomID, s.ID, s.StartTime, s.EndTime)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrShowtimeConflict
	}
	const q = `INSERT INTO showtimes (` + showtimeCols + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, q, s.ID, s.MovieID, s.RoomID, s.StartTime, s.EndTime, s.IsActive, s.CreatedAt, s.UpdatedAt); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// Update overwrites a showtime.  When verifySchedule is set the update runs
// the same room-lock plus overlap re-check as Create, excluding the showtime
// itself.  Metadata-only updates skip the re-check so a pre-existing overlap
// elsewhere never blocks them.
func (r *ShowtimeRepo) Update(ctx context.Context, s *model.Showtime, verifySchedule bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if verifySchedule {
		if err := lockRoom(ctx, tx, s.RoomID); err != nil {
			return err
		}
		n, err := overlapCount(ctx, tx, s.RoomID, s.ID, s.StartTime, s.EndTime)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrShowtimeConflict
		}
	}
	const q = `UPDATE showtimes SET movie_id = ?, room_id = ?, start_time = ?, end_time = ?, is_active = ?, updated_at = ? WHERE id = ?`
	res, err := tx.ExecContext(ctx, q, s.MovieID, s.RoomID, s.StartTime, s.EndTime, s.IsActive, s.UpdatedAt, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := tx.QueryRowContext(ctx, `SELECT 1 FROM showtimes WHERE id = ?`, s.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrShowtimeNotFound
			}
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// Delete removes a showtime row and its tickets.  Returns
// ErrShowtimeNotFound when absent.
func (r *ShowtimeRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if _, err := tx.ExecContext(ctx, `DELETE FROM tickets WHERE showtime_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM showtimes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrShowtimeNotFound
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// FindByID retrieves a showtime by ID.  Returns ErrShowtimeNotFound when
// absent.
func (r *ShowtimeRepo) FindByID(ctx context.Context, id string) (*model.Showtime, error) {
	const q = `SELECT ` + showtimeCols + ` FROM showtimes WHERE id = ?`
	var s model.Showtime
	if err := scanShowtime(r.db.QueryRowContext(ctx, q, id), &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShowtimeNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindAll returns every showtime ordered by start time ascending.
func (r *ShowtimeRepo) FindAll(ctx context.Context) ([]model.Showtime, error) {
	const q = `SELECT ` + showtimeCols + ` FROM showtimes ORDER BY start_time ASC`
	return r.list(ctx, q)
}

// FindActive returns live showtimes ordered by start time ascending.
func (r *ShowtimeRepo) FindActive(ctx context.Context) ([]model.Showtime, error) {
	const q = `SELECT ` + showtimeCols + ` FROM showtimes WHERE is_active = TRUE ORDER BY start_time ASC`
	return r.list(ctx, q)
}

// FindByMovieID returns showtimes for a movie regardless of active state,
// ordered by start time ascending.
func (r *ShowtimeRepo) FindByMovieID(ctx context.Context, movieID string) ([]model.Showtime, error) {
	const q = `SELECT ` + showtimeCols + ` FROM showtimes WHERE movie_id = ? ORDER BY start_time ASC`
	return r.list(ctx, q, movieID)
}

// FindByRoomID returns showtimes for a room regardless of active state,
// ordered by start time ascending.
func (r *ShowtimeRepo) FindByRoomID(ctx context.Context, roomID string) ([]model.Showtime, error) {
	const q = `SELECT ` + showtimeCols + ` FROM showtimes WHERE room_id = ? ORDER BY start_time ASC`
	return r.list(ctx, q, roomID)
}

// FindByDateRange returns showtimes whose start time falls within
// [start, end], regardless of active state, ordered by start time ascending.
func (r *ShowtimeRepo) FindByDateRange(ctx context.Context, start, end time.Time) ([]model.Showtime, error) {
	const q = `SELECT ` + showtimeCols + ` FROM showtimes WHERE start_time BETWEEN ? AND ? ORDER BY start_time ASC`
	return r.list(ctx, q, start, end)
}

// FindByRoomAndDateRange returns live showtimes in the room whose window
// intersects [start, end), ordered by start time ascending.  This is the
// candidate query for the conflict check: it must return every showtime that
// could overlap the window, including ones that started earlier and run into
// it.  Soft-deleted showtimes are filtered here, not by the caller.
func (r *ShowtimeRepo) FindByRoomAndDateRange(ctx context.Context, roomID string, start, end time.Time) ([]model.Showtime, error) {
	const q = `SELECT ` + showtimeCols + ` FROM showtimes
	           WHERE room_id = ? AND is_active = TRUE AND start_time < ? AND end_time > ?
	           ORDER BY start_time ASC`
	return r.list(ctx, q, roomID, end, start)
}

func (r *ShowtimeRepo) list(ctx context.Context, q string, args ...any) ([]model.Showtime, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Showtime
	for rows.Next() {
		var s model.Showtime
		if err := scanShowtime(rows, &s); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
