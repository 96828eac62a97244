package service

import (
	"context"
	"sort"
	"time"

	"github.com/cinebook/cinema-booking/internal/model"
	"github.com/cinebook/cinema-booking/internal/repository"
)

// Map-backed store fakes.  They mirror the persistence contracts closely
// enough for the use-case tests: FindByRoomAndDateRange applies the same
// interval-intersection candidate predicate as the SQL query, including the
// active filter.

type mockMovieStore struct {
	movies map[string]model.Movie
}

func newMockMovieStore() *mockMovieStore {
	return &mockMovieStore{movies: make(map[string]model.Movie)}
}

func (m *mockMovieStore) Create(_ context.Context, mv *model.Movie) error {
	m.movies[mv.ID] = *mv
	return nil
}

func (m *mockMovieStore) FindByID(_ context.Context, id string) (*model.Movie, error) {
	mv, ok := m.movies[id]
	if !ok {
		return nil, repository.ErrMovieNotFound
	}
	return &mv, nil
}

func (m *mockMovieStore) FindByTitle(_ context.Context, title string) (*model.Movie, error) {
	for _, mv := range m.movies {
		if mv.Title == title {
			out := mv
			return &out, nil
		}
	}
	return nil, repository.ErrMovieNotFound
}

func (m *mockMovieStore) FindAll(_ context.Context) ([]model.Movie, error) {
	out := make([]model.Movie, 0, len(m.movies))
	for _, mv := range m.movies {
		out = append(out, mv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (m *mockMovieStore) FindActive(ctx context.Context) ([]model.Movie, error) {
	all, _ := m.FindAll(ctx)
	out := all[:0]
	for _, mv := range all {
		if mv.IsActive {
			out = append(out, mv)
		}
	}
	return out, nil
}

func (m *mockMovieStore) Update(_ context.Context, mv *model.Movie) error {
	if _, ok := m.movies[mv.ID]; !ok {
		return repository.ErrMovieNotFound
	}
	m.movies[mv.ID] = *mv
	return nil
}

func (m *mockMovieStore) Delete(_ context.Context, id string) error {
	if _, ok := m.movies[id]; !ok {
		return repository.ErrMovieNotFound
	}
	delete(m.movies, id)
	return nil
}

type mockRoomStore struct {
	rooms map[string]model.Room
}

func newMockRoomStore() *mockRoomStore {
	return &mockRoomStore{rooms: make(map[string]model.Room)}
}

func (m *mockRoomStore) Create(_ context.Context, r *model.Room) error {
	m.rooms[r.ID] = *r
	return nil
}

func (m *mockRoomStore) FindByID(_ context.Context, id string) (*model.Room, error) {
	r, ok := m.rooms[id]
	if !ok {
		return nil, repository.ErrRoomNotFound
	}
	return &r, nil
}

func (m *mockRoomStore) FindByName(_ context.Context, name string) (*model.Room, error) {
	for _, r := range m.rooms {
		if r.Name == name {
			out := r
			return &out, nil
		}
	}
	return nil, repository.ErrRoomNotFound
}

func (m *mockRoomStore) FindAll(_ context.Context) ([]model.Room, error) {
	out := make([]model.Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockRoomStore) FindActive(ctx context.Context) ([]model.Room, error) {
	all, _ := m.FindAll(ctx)
	out := all[:0]
	for _, r := range all {
		if r.IsActive {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRoomStore) Update(_ context.Context, r *model.Room) error {
	if _, ok := m.rooms[r.ID]; !ok {
		return repository.ErrRoomNotFound
	}
	m.rooms[r.ID] = *r
	return nil
}

func (m *mockRoomStore) Delete(_ context.Context, id string) error {
	if _, ok := m.rooms[id]; !ok {
		return repository.ErrRoomNotFound
	}
	delete(m.rooms, id)
	return nil
}

type mockShowtimeStore struct {
	showtimes map[string]model.Showtime

	// createCalls and scheduleVerified record store interactions so tests
	// can assert on the update contract.
	createCalls       int
	scheduleVerified  []bool
	rangeQueriesCalls int
}

func newMockShowtimeStore() *mockShowtimeStore {
	return &mockShowtimeStore{showtimes: make(map[string]model.Showtime)}
}

func (m *mockShowtimeStore) Create(_ context.Context, s *model.Showtime) error {
	m.createCalls++
	m.showtimes[s.ID] = *s
	return nil
}

func (m *mockShowtimeStore) Update(_ context.Context, s *model.Showtime, verifySchedule bool) error {
	if _, ok := m.showtimes[s.ID]; !ok {
		return repository.ErrShowtimeNotFound
	}
	m.scheduleVerified = append(m.scheduleVerified, verifySchedule)
	m.showtimes[s.ID] = *s
	return nil
}

func (m *mockShowtimeStore) Delete(_ context.Context, id string) error {
	if _, ok := m.showtimes[id]; !ok {
		return repository.ErrShowtimeNotFound
	}
	delete(m.showtimes, id)
	return nil
}

func (m *mockShowtimeStore) FindByID(_ context.Context, id string) (*model.Showtime, error) {
	s, ok := m.showtimes[id]
	if !ok {
		return nil, repository.ErrShowtimeNotFound
	}
	return &s, nil
}

func (m *mockShowtimeStore) all() []model.Showtime {
	out := make([]model.Showtime, 0, len(m.showtimes))
	for _, s := range m.showtimes {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}

func (m *mockShowtimeStore) FindAll(_ context.Context) ([]model.Showtime, error) {
	return m.all(), nil
}

func (m *mockShowtimeStore) FindActive(_ context.Context) ([]model.Showtime, error) {
	var out []model.Showtime
	for _, s := range m.all() {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockShowtimeStore) FindByMovieID(_ context.Context, movieID string) ([]model.Showtime, error) {
	var out []model.Showtime
	for _, s := range m.all() {
		if s.MovieID == movieID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockShowtimeStore) FindByRoomID(_ context.Context, roomID string) ([]model.Showtime, error) {
	var out []model.Showtime
	for _, s := range m.all() {
		if s.RoomID == roomID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockShowtimeStore) FindByDateRange(_ context.Context, start, end time.Time) ([]model.Showtime, error) {
	var out []model.Showtime
	for _, s := range m.all() {
		if !s.StartTime.Before(start) && !s.StartTime.After(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockShowtimeStore) FindByRoomAndDateRange(_ context.Context, roomID string, start, end time.Time) ([]model.Showtime, error) {
	m.rangeQueriesCalls++
	var out []model.Showtime
	for _, s := range m.all() {
		if s.RoomID == roomID && s.IsActive && s.StartTime.Before(end) && s.EndTime.After(start) {
			out = append(out, s)
		}
	}
	return out, nil
}

type mockTicketStore struct {
	tickets map[string]model.Ticket
}

func newMockTicketStore() *mockTicketStore {
	return &mockTicketStore{tickets: make(map[string]model.Ticket)}
}

func (m *mockTicketStore) Create(ctx context.Context, t *model.Ticket, capacity int) error {
	sold, _ := m.CountByShowtimeID(ctx, t.ShowtimeID)
	if sold >= capacity {
		return repository.ErrCapacityExceeded
	}
	m.tickets[t.ID] = *t
	return nil
}

func (m *mockTicketStore) CountByShowtimeID(_ context.Context, showtimeID string) (int, error) {
	n := 0
	for _, t := range m.tickets {
		if t.ShowtimeID == showtimeID {
			n++
		}
	}
	return n, nil
}

type mockUserStore struct {
	users map[string]model.User
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[string]model.User)}
}

func (m *mockUserStore) Create(_ context.Context, u *model.User) error {
	m.users[u.ID] = *u
	return nil
}

func (m *mockUserStore) FindByID(_ context.Context, id string) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

func (m *mockUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, repository.ErrUserNotFound
}
