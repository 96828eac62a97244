package service

import (
	"context"
	"errors"

	"github.com/cinebook/cinema-booking/internal/model"
	"github.com/cinebook/cinema-booking/internal/repository"
)

// RoomService implements room CRUD with name uniqueness.
type RoomService struct {
	rooms RoomStore
}

// NewRoomService constructs a RoomService.
func NewRoomService(rooms RoomStore) *RoomService {
	return &RoomService{rooms: rooms}
}

// Create adds a room, rejecting duplicate names.
func (s *RoomService) Create(ctx context.Context, name string, capacity int) (*model.Room, error) {
	if _, err := s.rooms.FindByName(ctx, name); err == nil {
		return nil, ErrDuplicateName
	} else if !errors.Is(err, repository.ErrRoomNotFound) {
		return nil, err
	}
	r := model.NewRoom(name, capacity)
	if err := s.rooms.Create(ctx, r); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return r, nil
}

// Get returns a room by id.
func (s *RoomService) Get(ctx context.Context, id string) (*model.Room, error) {
	return s.rooms.FindByID(ctx, id)
}

// Update applies a partial update.  A name change re-runs the uniqueness
// check against other rooms.
func (s *RoomService) Update(ctx context.Context, id string, patch model.RoomPatch) (*model.Room, error) {
	cur, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil && *patch.Name != cur.Name {
		other, err := s.rooms.FindByName(ctx, *patch.Name)
		if err == nil && other.ID != id {
			return nil, ErrDuplicateName
		}
		if err != nil && !errors.Is(err, repository.ErrRoomNotFound) {
			return nil, err
		}
	}
	updated := cur.Apply(patch)
	if err := s.rooms.Update(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a room after verifying it exists.
func (s *RoomService) Delete(ctx context.Context, id string) error {
	if _, err := s.rooms.FindByID(ctx, id); err != nil {
		return err
	}
	return s.rooms.Delete(ctx, id)
}

// RoomPage is one page of rooms plus the total count.
type RoomPage struct {
	Items []model.Room
	Total int
	Page  int
	Limit int
}

// List returns rooms, active-only by default, paginated in memory.
func (s *RoomService) List(ctx context.Context, activeOnly bool, page, limit int) (*RoomPage, error) {
	var (
		items []model.Room
		err   error
	)
	if activeOnly {
		items, err = s.rooms.FindActive(ctx)
	} else {
		items, err = s.rooms.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
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
	if start < 0 || start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return &RoomPage{Items: items[start:end], Total: total, Page: page, Limit: limit}, nil
}
