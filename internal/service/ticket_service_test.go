package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinebook/cinema-booking/internal/model"
	"github.com/cinebook/cinema-booking/internal/repository"
)

type ticketFixture struct {
	svc      *TicketService
	tickets  *mockTicketStore
	showtime *model.Showtime
	room     *model.Room
}

func newTicketFixture(t *testing.T, capacity int) *ticketFixture {
	t.Helper()
	ctx := context.Background()

	rooms := newMockRoomStore()
	room := model.NewRoom("Sala 1", capacity)
	require.NoError(t, rooms.Create(ctx, room))

	showtimes := newMockShowtimeStore()
	st := model.NewShowtime("m1", room.ID, testNow.Add(2*time.Hour), 120)
	require.NoError(t, showtimes.Create(ctx, st))

	tickets := newMockTicketStore()
	return &ticketFixture{
		svc:      NewTicketService(tickets, showtimes, rooms, fixedClock),
		tickets:  tickets,
		showtime: st,
		room:     room,
	}
}

func TestTicketPurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newTicketFixture(t, 2)
		tk, err := f.svc.Purchase(ctx, f.showtime.ID, "Ada Lovelace")
		require.NoError(t, err)
		assert.Equal(t, f.showtime.ID, tk.ShowtimeID)
		assert.Equal(t, "Ada Lovelace", tk.PurchaserName)
		assert.NotEmpty(t, tk.ID)

		sold, err := f.tickets.CountByShowtimeID(ctx, f.showtime.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, sold)
	})

	t.Run("unknown showtime", func(t *testing.T) {
		f := newTicketFixture(t, 2)
		_, err := f.svc.Purchase(ctx, "nope", "Ada Lovelace")
		assert.ErrorIs(t, err, repository.ErrShowtimeNotFound)
	})

	t.Run("sells exactly up to capacity", func(t *testing.T) {
		f := newTicketFixture(t, 3)
		for i := 0; i < 3; i++ {
			_, err := f.svc.Purchase(ctx, f.showtime.ID, fmt.Sprintf("Buyer %d", i))
			require.NoError(t, err)
		}
		_, err := f.svc.Purchase(ctx, f.showtime.ID, "One Too Many")
		assert.ErrorIs(t, err, repository.ErrCapacityExceeded)

		sold, err := f.tickets.CountByShowtimeID(ctx, f.showtime.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, sold)
	})

	t.Run("capacity one", func(t *testing.T) {
		f := newTicketFixture(t, 1)
		_, err := f.svc.Purchase(ctx, f.showtime.ID, "First")
		require.NoError(t, err)
		_, err = f.svc.Purchase(ctx, f.showtime.ID, "Second")
		assert.ErrorIs(t, err, repository.ErrCapacityExceeded)
	})

	t.Run("showtime starting exactly now is closed", func(t *testing.T) {
		f := newTicketFixture(t, 2)
		st := f.showtime
		nowShow := f.svc.showtimes.(*mockShowtimeStore).showtimes[st.ID]
		nowShow.StartTime = testNow
		f.svc.showtimes.(*mockShowtimeStore).showtimes[st.ID] = nowShow

		_, err := f.svc.Purchase(ctx, st.ID, "Late Buyer")
		assert.ErrorIs(t, err, ErrShowtimeStarted)
	})

	t.Run("started showtime is closed", func(t *testing.T) {
		f := newTicketFixture(t, 2)
		st := f.showtime
		past := f.svc.showtimes.(*mockShowtimeStore).showtimes[st.ID]
		past.StartTime = testNow.Add(-time.Hour)
		f.svc.showtimes.(*mockShowtimeStore).showtimes[st.ID] = past

		_, err := f.svc.Purchase(ctx, st.ID, "Very Late Buyer")
		assert.ErrorIs(t, err, ErrShowtimeStarted)
	})
}
