package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cinebook/cinema-booking/internal/model"
)

// TicketRepo manages persistence for tickets.  Tickets are append-only.
type TicketRepo struct {
	db *sql.DB
}

// NewTicketRepo constructs a TicketRepo with the given DB handle.
func NewTicketRepo(db *sql.DB) *TicketRepo {
	return &TicketRepo{db: db}
}

// Create inserts a ticket.  The insert runs in a transaction that locks the
// showtime row and re-counts sold tickets against the given room capacity,
// so two concurrent purchases cannot both take the last seat.  Returns
// ErrShowtimeNotFound when the showtime vanished and ErrCapacityExceeded
// when the re-count shows the showtime is sold out.
func (r *TicketRepo) Create(ctx context.Context, t *model.Ticket, capacity int) error {
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
	var id string
	err = tx.QueryRowContext(ctx, `SELECT id FROM showtimes WHERE id = ? FOR UPDATE`, t.ShowtimeID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrShowtimeNotFound
	}
	if err != nil {
		return err
	}
	var sold int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM tickets WHERE showtime_id = ?`, t.ShowtimeID).Scan(&sold); err != nil {
		return err
	}
	if sold >= capacity {
		return ErrCapacityExceeded
	}
	const q = `INSERT INTO tickets (id, showtime_id, purchaser_name, created_at) VALUES (?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, q, t.ID, t.ShowtimeID, t.PurchaserName, t.CreatedAt); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// CountByShowtimeID returns the number of tickets sold for a showtime.
func (r *TicketRepo) CountByShowtimeID(ctx context.Context, showtimeID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tickets WHERE showtime_id = ?`, showtimeID).Scan(&n)
	return n, err
}
