package service

import (
	"context"
	"time"

	"github.com/cinebook/cinema-booking/internal/model"
	"github.com/cinebook/cinema-booking/internal/repository"
)

// TicketService implements the purchase admission control.  A purchase is
// admitted when the showtime exists and has not started, its room exists,
// and the sold count is below the room capacity.  The store re-validates
// the capacity bound inside the insert transaction, so the count check here
// can stay a plain read.
type TicketService struct {
	tickets   TicketStore
	showtimes ShowtimeStore
	rooms     RoomStore
	now       func() time.Time
}

// NewTicketService constructs a TicketService.  now may be nil, in which
// case time.Now is used.
func NewTicketService(tickets TicketStore, showtimes ShowtimeStore, rooms RoomStore, now func() time.Time) *TicketService {
	if now == nil {
		now = time.Now
	}
	return &TicketService{tickets: tickets, showtimes: showtimes, rooms: rooms, now: now}
}

// Purchase sells one ticket for a showtime.  The start-time boundary is
// inclusive: a showtime starting exactly now is no longer purchasable.
func (s *TicketService) Purchase(ctx context.Context, showtimeID, purchaserName string) (*model.Ticket, error) {
	st, err := s.showtimes.FindByID(ctx, showtimeID)
	if err != nil {
		return nil, err
	}
	if !st.StartTime.After(s.now()) {
		return nil, ErrShowtimeStarted
	}
	room, err := s.rooms.FindByID(ctx, st.RoomID)
	if err != nil {
		return nil, err
	}
	sold, err := s.tickets.CountByShowtimeID(ctx, st.ID)
	if err != nil {
		return nil, err
	}
	if sold >= room.Capacity {
		return nil, repository.ErrCapacityExceeded
	}
	t := model.NewTicket(st.ID, purchaserName)
	if err := s.tickets.Create(ctx, t, room.Capacity); err != nil {
		return nil, err
	}
	return t, nil
}
