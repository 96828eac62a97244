package model

import (
	"time"

	"github.com/google/uuid"
)

// Room is a screening room.  Capacity bounds how many tickets can be sold
// for a single showtime scheduled in it.  Names are unique across active and
// inactive rooms.
type Room struct {
	ID        string    // rooms.id (UUID)
	Name      string    // rooms.name (unique)
	Capacity  int       // rooms.capacity (positive)
	IsActive  bool      // rooms.is_active
	CreatedAt time.Time // rooms.created_at
	UpdatedAt time.Time // rooms.updated_at
}

// NewRoom stamps identity and audit timestamps on a fresh room.
func NewRoom(name string, capacity int) *Room {
	now := time.Now().UTC()
	return &Room{
		ID:        uuid.NewString(),
		Name:      name,
		Capacity:  capacity,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RoomPatch carries the optional fields of a room update.
type RoomPatch struct {
	Name     *string
	Capacity *int
}

// Apply returns a new room with patched fields set, unaffected fields copied
// and UpdatedAt refreshed.
func (r *Room) Apply(p RoomPatch) *Room {
	out := *r
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Capacity != nil {
		out.Capacity = *p.Capacity
	}
	out.UpdatedAt = time.Now().UTC()
	return &out
}
