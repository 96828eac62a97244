package service

import "errors"

// Domain-rule sentinels.  Storage-level sentinels (not-found, duplicates,
// schedule conflict, capacity) live in the repository package; handlers map
// both sets to HTTP status codes.

// ErrShowtimeInPast is returned when a showtime would start at or before the
// validation instant.  Start times must be strictly in the future.
var ErrShowtimeInPast = errors.New("showtime cannot be in the past")

// ErrShowtimeStarted is returned when a ticket purchase targets a showtime
// that has already started (start time at or before now).
var ErrShowtimeStarted = errors.New("cannot purchase tickets for a past showtime")

// ErrDuplicateTitle is returned when a movie create or update would reuse an
// existing title.
var ErrDuplicateTitle = errors.New("a movie with this title already exists")

// ErrDuplicateName is returned when a room create or update would reuse an
// existing name.
var ErrDuplicateName = errors.New("a room with this name already exists")

// ErrDuplicateEmail is returned when a user create would reuse an existing
// email.
var ErrDuplicateEmail = errors.New("a user with this email already exists")
