package service

import (
	"context"
	"time"

	"github.com/cinebook/cinema-booking/internal/model"
	"github.com/cinebook/cinema-booking/internal/repository"
)

// ShowtimeService implements the showtime lifecycle: create, update, delete,
// get and list.  Creation and schedule-changing updates pass three gates in
// order: the movie and room must exist, the start time must be strictly in
// the future, and the proposed window must not overlap another showtime in
// the same room.
type ShowtimeService struct {
	showtimes ShowtimeStore
	movies    MovieStore
	rooms     RoomStore
	now       func() time.Time
}

// NewShowtimeService constructs a ShowtimeService.  now may be nil, in which
// case time.Now is used; tests inject a fixed clock.
func NewShowtimeService(showtimes ShowtimeStore, movies MovieStore, rooms RoomStore, now func() time.Time) *ShowtimeService {
	if now == nil {
		now = time.Now
	}
	return &ShowtimeService{showtimes: showtimes, movies: movies, rooms: rooms, now: now}
}

// CreateShowtimeInput is the validated payload for scheduling a showtime.
type CreateShowtimeInput struct {
	MovieID         string
	RoomID          string
	StartTime       time.Time
	DurationMinutes int
}

// checkConflicts fetches candidate showtimes in the room whose window
// intersects the proposed one and rejects if any of them overlaps it.  The
// candidate query excludes soft-deleted rows at the store; this resolver
// only applies the interval test.  excludeID skips the showtime being
// updated so it cannot conflict with itself.
func (s *ShowtimeService) checkConflicts(ctx context.Context, proposed *model.Showtime, excludeID string) error {
	candidates, err := s.showtimes.FindByRoomAndDateRange(ctx, proposed.RoomID, proposed.StartTime, proposed.EndTime)
	if err != nil {
		return err
	}
	for i := range candidates {
		if candidates[i].ID == excludeID {
			continue
		}
		if proposed.Overlaps(&candidates[i]) {
			return repository.ErrShowtimeConflict
		}
	}
	return nil
}

// Create schedules a new showtime.
func (s *ShowtimeService) Create(ctx context.Context, in CreateShowtimeInput) (*model.Showtime, error) {
	if _, err := s.movies.FindByID(ctx, in.MovieID); err != nil {
		return nil, err
	}
	if _, err := s.rooms.FindByID(ctx, in.RoomID); err != nil {
		return nil, err
	}
	if !in.StartTime.After(s.now()) {
		return nil, ErrShowtimeInPast
	}
	st := model.NewShowtime(in.MovieID, in.RoomID, in.StartTime, in.DurationMinutes)
	if err := s.checkConflicts(ctx, st, st.ID); err != nil {
		return nil, err
	}
	if err := s.showtimes.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// Update applies a partial update to a showtime.  Validations re-run only
// for the fields being changed: referenced movie/room existence when
// provided, and the past-check plus conflict check only when the start time
// or the room changes.  A metadata-only update (say, swapping the movie)
// is persisted without a conflict re-check.
func (s *ShowtimeService) Update(ctx context.Context, id string, patch model.ShowtimePatch) (*model.Showtime, error) {
	cur, err := s.showtimes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.MovieID != nil {
		if _, err := s.movies.FindByID(ctx, *patch.MovieID); err != nil {
			return nil, err
		}
	}
	if patch.RoomID != nil {
		if _, err := s.rooms.FindByID(ctx, *patch.RoomID); err != nil {
			return nil, err
		}
	}
	if patch.Touches() {
		start := cur.StartTime
		if patch.StartTime != nil {
			start = *patch.StartTime
		}
		dur := model.DefaultDurationMinutes
		if patch.DurationMinutes != nil {
			dur = *patch.DurationMinutes
		}
		roomID := cur.RoomID
		if patch.RoomID != nil {
			roomID = *patch.RoomID
		}
		if !start.After(s.now()) {
			return nil, ErrShowtimeInPast
		}
		window := &model.Showtime{
			RoomID:    roomID,
			StartTime: start,
			EndTime:   model.ShowtimeEnd(start, dur),
		}
		if err := s.checkConflicts(ctx, window, cur.ID); err != nil {
			return nil, err
		}
	}
	updated := cur.Apply(patch)
	if err := s.showtimes.Update(ctx, updated, patch.Touches()); err != nil {
		return nil, err
	}
	return updated, nil
}

// Get returns a showtime by id.
func (s *ShowtimeService) Get(ctx context.Context, id string) (*model.Showtime, error) {
	return s.showtimes.FindByID(ctx, id)
}

// Delete removes a showtime after verifying it exists.
func (s *ShowtimeService) Delete(ctx context.Context, id string) error {
	if _, err := s.showtimes.FindByID(ctx, id); err != nil {
		return err
	}
	return s.showtimes.Delete(ctx, id)
}

// ShowtimeQuery carries the list filters.  ActiveOnly is a pointer so the
// explicit post-filter is applied exactly when the caller specified (or
// defaulted) it.  Page and Limit below 1 fall back to 1 and 10.
type ShowtimeQuery struct {
	MovieID    string
	RoomID     string
	StartDate  *time.Time
	EndDate    *time.Time
	ActiveOnly *bool
	Page       int
	Limit      int
}

// ShowtimePage is one page of filtered showtimes plus the total count of
// the filtered set.
type ShowtimePage struct {
	Items []model.Showtime
	Total int
	Page  int
	Limit int
}

// List filters and paginates showtimes.  Filters pick one fetch path:
// movie+room (intersection by id), movie, room, date range, or the
// active-only/all listing.  The isActive post-filter then narrows whatever
// the fetch returned; it is redundant on the active-only path but not on
// the movie/room/date paths, which return rows of any active state.
// Pagination slices the full in-memory result.
func (s *ShowtimeService) List(ctx context.Context, q ShowtimeQuery) (*ShowtimePage, error) {
	var (
		items []model.Showtime
		err   error
	)
	switch {
	case q.MovieID != "" && q.RoomID != "":
		var byMovie, byRoom []model.Showtime
		if byMovie, err = s.showtimes.FindByMovieID(ctx, q.MovieID); err != nil {
			return nil, err
		}
		if byRoom, err = s.showtimes.FindByRoomID(ctx, q.RoomID); err != nil {
			return nil, err
		}
		inRoom := make(map[string]bool, len(byRoom))
		for i := range byRoom {
			inRoom[byRoom[i].ID] = true
		}
		for i := range byMovie {
			if inRoom[byMovie[i].ID] {
				items = append(items, byMovie[i])
			}
		}
	case q.MovieID != "":
		items, err = s.showtimes.FindByMovieID(ctx, q.MovieID)
	case q.RoomID != "":
		items, err = s.showtimes.FindByRoomID(ctx, q.RoomID)
	case q.StartDate != nil && q.EndDate != nil:
		items, err = s.showtimes.FindByDateRange(ctx, *q.StartDate, endOfDay(*q.EndDate))
	case q.ActiveOnly != nil && *q.ActiveOnly:
		items, err = s.showtimes.FindActive(ctx)
	default:
		items, err = s.showtimes.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	if q.ActiveOnly != nil {
		filtered := items[:0]
		for i := range items {
			if items[i].IsActive == *q.ActiveOnly {
				filtered = append(filtered, items[i])
			}
		}
		items = filtered
	}

	page, limit := q.Page, q.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	total := len(items)
	start := (page - 1) * limit
	// Guard against multiplication overflow on hostile page values.
	if start < 0 || start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return &ShowtimePage{Items: items[start:end], Total: total, Page: page, Limit: limit}, nil
}

// maxPageLimit caps the page size a caller can request.
const maxPageLimit = 100

// endOfDay pushes a date filter to the last representable instant of that
// day so the range is inclusive of the end date.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}
