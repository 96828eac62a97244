// Package repository defines sentinel errors shared across repositories.
// Handlers and services use these to distinguish failure scenarios without
// inspecting SQL errors themselves.  ErrShowtimeConflict and
// ErrCapacityExceeded are also raised by the transactional re-checks that
// guard scheduling and ticket sales against concurrent writers.
package repository

import "errors"

// ErrMovieNotFound indicates that no movie row matched the query.
var ErrMovieNotFound = errors.New("movie not found")

// ErrRoomNotFound indicates that no room row matched the query.
var ErrRoomNotFound = errors.New("room not found")

// ErrShowtimeNotFound indicates that no showtime row matched the query.
var ErrShowtimeNotFound = errors.New("showtime not found")

// ErrUserNotFound indicates that no user row matched the query.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicate is returned when an insert or update violates a uniqueness
// constraint (movie title, room name, user email).  Services normally detect
// duplicates up front; this sentinel covers the race where two writers pass
// the pre-check at the same time.
var ErrDuplicate = errors.New("duplicate entry")

// ErrShowtimeConflict is returned when a showtime would overlap another
// showtime in the same room.
var ErrShowtimeConflict = errors.New("time conflict: another showtime exists in the same room during this time period")

// ErrCapacityExceeded is returned when a ticket sale would exceed the
// capacity of the room the showtime is scheduled in.
var ErrCapacityExceeded = errors.New("room capacity exceeded for this showtime")
