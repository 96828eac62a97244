package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultDurationMinutes is used when an update changes the schedule without
// supplying a new duration.
const DefaultDurationMinutes = 120

// Showtime represents a scheduled screening of a movie in a room.  The end
// time is derived from the start time and the screening duration and stored
// redundantly so range queries stay cheap.  A showtime references its movie
// and room but owns neither.
//
// Invariant: EndTime is always exactly StartTime plus the duration supplied
// at creation, and is recomputed whenever an update touches the start time
// or the duration.
type Showtime struct {
	ID        string    // showtimes.id (UUID)
	MovieID   string    // showtimes.movie_id
	RoomID    string    // showtimes.room_id
	StartTime time.Time // showtimes.start_time (UTC)
	EndTime   time.Time // showtimes.end_time (UTC)
	IsActive  bool      // showtimes.is_active
	CreatedAt time.Time // showtimes.created_at
	UpdatedAt time.Time // showtimes.updated_at
}

// ShowtimeEnd computes the end of a screening window.
func ShowtimeEnd(start time.Time, durationMinutes int) time.Time {
	return start.Add(time.Duration(durationMinutes) * time.Minute)
}

// NewShowtime stamps identity and audit timestamps on a fresh showtime.
func NewShowtime(movieID, roomID string, start time.Time, durationMinutes int) *Showtime {
	now := time.Now().UTC()
	return &Showtime{
		ID:        uuid.NewString(),
		MovieID:   movieID,
		RoomID:    roomID,
		StartTime: start,
		EndTime:   ShowtimeEnd(start, durationMinutes),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ShowtimePatch carries the optional fields of a showtime update.  Nil means
// "keep the current value".
type ShowtimePatch struct {
	MovieID         *string
	RoomID          *string
	StartTime       *time.Time
	DurationMinutes *int
}

// Touches reports whether the patch changes the scheduling window, i.e. the
// room or the start time.  Metadata-only updates do not require a conflict
// re-check.
func (p ShowtimePatch) Touches() bool {
	return p.RoomID != nil || p.StartTime != nil
}

// Apply produces a new showtime with the patched fields set and everything
// else copied.  Identity and CreatedAt are preserved; UpdatedAt is refreshed.
// The end time is recomputed when the patch carries a start time or a
// duration; a schedule change without an explicit duration falls back to
// DefaultDurationMinutes.
func (s *Showtime) Apply(p ShowtimePatch) *Showtime {
	out := *s
	if p.MovieID != nil {
		out.MovieID = *p.MovieID
	}
	if p.RoomID != nil {
		out.RoomID = *p.RoomID
	}
	if p.StartTime != nil {
		out.StartTime = *p.StartTime
	}
	if p.StartTime != nil || p.DurationMinutes != nil {
		dur := DefaultDurationMinutes
		if p.DurationMinutes != nil {
			dur = *p.DurationMinutes
		}
		out.EndTime = ShowtimeEnd(out.StartTime, dur)
	}
	out.UpdatedAt = time.Now().UTC()
	return &out
}

// Overlaps reports whether two showtimes compete for the same room at the
// same time.  Windows are half-open: a showtime ending exactly when another
// starts does not overlap.  Showtimes in different rooms never overlap.
func (s *Showtime) Overlaps(other *Showtime) bool {
	if s.RoomID != other.RoomID {
		return false
	}
	return s.StartTime.Before(other.EndTime) && s.EndTime.After(other.StartTime)
}
