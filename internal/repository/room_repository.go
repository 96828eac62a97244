package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cinebook/cinema-booking/internal/model"
)

// RoomRepo manages persistence for rooms.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo constructs a RoomRepo with the given DB handle.
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

const roomCols = `id, name, capacity, is_active, created_at, updated_at`

func scanRoom(row interface{ Scan(...any) error }, rm *model.Room) error {
	return row.Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.IsActive, &rm.CreatedAt, &rm.UpdatedAt)
}

// Create inserts a new room.  A duplicate name yields ErrDuplicate.
func (r *RoomRepo) Create(ctx context.Context, rm *model.Room) error {
	const q = `INSERT INTO rooms (` + roomCols + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, rm.ID, rm.Name, rm.Capacity, rm.IsActive, rm.CreatedAt, rm.UpdatedAt)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

// FindByID retrieves a room by ID.  Returns ErrRoomNotFound when absent.
func (r *RoomRepo) FindByID(ctx context.Context, id string) (*model.Room, error) {
	const q = `SELECT ` + roomCols + ` FROM rooms WHERE id = ?`
	var rm model.Room
	if err := scanRoom(r.db.QueryRowContext(ctx, q, id), &rm); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &rm, nil
}

// FindByName retrieves a room by its exact name.  Returns ErrRoomNotFound
// when absent.
func (r *RoomRepo) FindByName(ctx context.Context, name string) (*model.Room, error) {
	const q = `SELECT ` + roomCols + ` FROM rooms WHERE name = ?`
	var rm model.Room
	if err := scanRoom(r.db.QueryRowContext(ctx, q, name), &rm); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &rm, nil
}

// FindAll returns every room ordered by name.
func (r *RoomRepo) FindAll(ctx context.Context) ([]model.Room, error) {
	const q = `SELECT ` + roomCols + ` FROM rooms ORDER BY name ASC`
	return r.list(ctx, q)
}

// FindActive returns rooms with is_active set, ordered by name.
func (r *RoomRepo) FindActive(ctx context.Context) ([]model.Room, error) {
	const q = `SELECT ` + roomCols + ` FROM rooms WHERE is_active = TRUE ORDER BY name ASC`
	return r.list(ctx, q)
}

func (r *RoomRepo) list(ctx context.Context, q string, args ...any) ([]model.Room, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Room
	for rows.Next() {
		var rm model.Room
		if err := scanRoom(rows, &rm); err != nil {
			return nil, err
		}
		result = append(result, rm)
	}
	return result, rows.Err()
}

// Update overwrites a room's mutable columns.  Returns ErrRoomNotFound when
// the row does not exist and ErrDuplicate when the new name is taken.
func (r *RoomRepo) Update(ctx context.Context, rm *model.Room) error {
	const q = `UPDATE rooms SET name = ?, capacity = ?, is_active = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, rm.Name, rm.Capacity, rm.IsActive, rm.UpdatedAt, rm.ID)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM rooms WHERE id = ?`, rm.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrRoomNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes a room row.  Returns ErrRoomNotFound when absent.
func (r *RoomRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRoomNotFound
	}
	return nil
}
