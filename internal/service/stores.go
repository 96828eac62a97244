// Package service implements the application use cases on top of abstract
// store contracts.  Services are request-scoped and stateless; each method
// takes the request context and performs single-attempt I/O with no retries.
package service

import (
	"context"
	"time"

	"github.com/cinebook/cinema-booking/internal/model"
)

// MovieStore is the movie persistence contract consumed by services.
type MovieStore interface {
	Create(ctx context.Context, m *model.Movie) error
	FindByID(ctx context.Context, id string) (*model.Movie, error)
	FindByTitle(ctx context.Context, title string) (*model.Movie, error)
	FindAll(ctx context.Context) ([]model.Movie, error)
	FindActive(ctx context.Context) ([]model.Movie, error)
	Update(ctx context.Context, m *model.Movie) error
	Delete(ctx context.Context, id string) error
}

// RoomStore is the room persistence contract consumed by services.
type RoomStore interface {
	Create(ctx context.Context, r *model.Room) error
	FindByID(ctx context.Context, id string) (*model.Room, error)
	FindByName(ctx context.Context, name string) (*model.Room, error)
	FindAll(ctx context.Context) ([]model.Room, error)
	FindActive(ctx context.Context) ([]model.Room, error)
	Update(ctx context.Context, r *model.Room) error
	Delete(ctx context.Context, id string) error
}

// ShowtimeStore is the showtime persistence contract consumed by services.
// List methods return showtimes ordered by start time ascending.
// FindByRoomAndDateRange is the conflict-check candidate query: it returns
// the live showtimes whose window intersects [start, end), which includes
// showtimes that started before start and run into the window.  It must
// exclude soft-deleted showtimes; the other finders return rows of any
// active state.
type ShowtimeStore interface {
	Create(ctx context.Context, s *model.Showtime) error
	Update(ctx context.Context, s *model.Showtime, verifySchedule bool) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.Showtime, error)
	FindAll(ctx context.Context) ([]model.Showtime, error)
	FindActive(ctx context.Context) ([]model.Showtime, error)
	FindByMovieID(ctx context.Context, movieID string) ([]model.Showtime, error)
	FindByRoomID(ctx context.Context, roomID string) ([]model.Showtime, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]model.Showtime, error)
	FindByRoomAndDateRange(ctx context.Context, roomID string, start, end time.Time) ([]model.Showtime, error)
}

// TicketStore is the ticket persistence contract consumed by services.
// Create re-validates the capacity bound transactionally.
type TicketStore interface {
	Create(ctx context.Context, t *model.Ticket, capacity int) error
	CountByShowtimeID(ctx context.Context, showtimeID string) (int, error)
}

// UserStore is the user persistence contract consumed by services.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}
