package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowtimeEnd(t *testing.T) {
	start := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, start.Add(90*time.Minute), ShowtimeEnd(start, 90))
	assert.Equal(t, start.Add(2*time.Hour), ShowtimeEnd(start, DefaultDurationMinutes))
}

func TestNewShowtime(t *testing.T) {
	start := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	st := NewShowtime("m1", "r1", start, 100)

	require.NotEmpty(t, st.ID)
	assert.Equal(t, "m1", st.MovieID)
	assert.Equal(t, "r1", st.RoomID)
	assert.Equal(t, start, st.StartTime)
	assert.Equal(t, start.Add(100*time.Minute), st.EndTime)
	assert.True(t, st.IsActive)
	assert.Equal(t, st.CreatedAt, st.UpdatedAt)
}

func TestShowtimeOverlaps(t *testing.T) {
	base := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	mk := func(room string, start time.Time, minutes int) *Showtime {
		return &Showtime{RoomID: room, StartTime: start, EndTime: ShowtimeEnd(start, minutes)}
	}

	a := mk("r1", base, 120)

	t.Run("partial overlap both directions", func(t *testing.T) {
		b := mk("r1", base.Add(time.Hour), 120)
		assert.True(t, a.Overlaps(b))
		assert.True(t, b.Overlaps(a))
	})

	t.Run("contained window", func(t *testing.T) {
		b := mk("r1", base.Add(30*time.Minute), 30)
		assert.True(t, a.Overlaps(b))
		assert.True(t, b.Overlaps(a))
	})

	t.Run("touching endpoints do not overlap", func(t *testing.T) {
		after := mk("r1", a.EndTime, 120)
		before := mk("r1", base.Add(-2*time.Hour), 120)
		assert.False(t, a.Overlaps(after))
		assert.False(t, after.Overlaps(a))
		assert.False(t, a.Overlaps(before))
		assert.False(t, before.Overlaps(a))
	})

	t.Run("different rooms never overlap", func(t *testing.T) {
		b := mk("r2", base, 120)
		assert.False(t, a.Overlaps(b))
		assert.False(t, b.Overlaps(a))
	})
}

func TestShowtimePatchTouches(t *testing.T) {
	movieID := "m2"
	roomID := "r2"
	start := time.Now()
	dur := 90

	assert.False(t, ShowtimePatch{}.Touches())
	assert.False(t, ShowtimePatch{MovieID: &movieID}.Touches())
	assert.False(t, ShowtimePatch{DurationMinutes: &dur}.Touches())
	assert.True(t, ShowtimePatch{RoomID: &roomID}.Touches())
	assert.True(t, ShowtimePatch{StartTime: &start}.Touches())
}

func TestShowtimeApply(t *testing.T) {
	start := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	st := NewShowtime("m1", "r1", start, 100)

	t.Run("metadata only keeps schedule", func(t *testing.T) {
		movieID := "m2"
		out := st.Apply(ShowtimePatch{MovieID: &movieID})
		assert.Equal(t, st.ID, out.ID)
		assert.Equal(t, "m2", out.MovieID)
		assert.Equal(t, st.StartTime, out.StartTime)
		assert.Equal(t, st.EndTime, out.EndTime)
		assert.Equal(t, st.CreatedAt, out.CreatedAt)
	})

	t.Run("new start without duration falls back to default", func(t *testing.T) {
		newStart := start.Add(24 * time.Hour)
		out := st.Apply(ShowtimePatch{StartTime: &newStart})
		assert.Equal(t, newStart, out.StartTime)
		assert.Equal(t, newStart.Add(DefaultDurationMinutes*time.Minute), out.EndTime)
	})

	t.Run("duration alone recomputes end from current start", func(t *testing.T) {
		dur := 45
		out := st.Apply(ShowtimePatch{DurationMinutes: &dur})
		assert.Equal(t, st.StartTime, out.StartTime)
		assert.Equal(t, st.StartTime.Add(45*time.Minute), out.EndTime)
	})
}
