package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cinebook/cinema-booking/internal/model"
	"github.com/cinebook/cinema-booking/internal/queue"
	"github.com/cinebook/cinema-booking/internal/service"
)

// TicketHandler serves ticket purchases.  PublishPurchased, when set,
// announces each sale on the broker; delivery is best-effort.
type TicketHandler struct {
	Tickets          *service.TicketService
	Showtimes        *service.ShowtimeService
	PublishPurchased func(ctx context.Context, ev queue.TicketPurchasedEvent) error
}

func NewTicketHandler(tickets *service.TicketService, showtimes *service.ShowtimeService) *TicketHandler {
	return &TicketHandler{Tickets: tickets, Showtimes: showtimes}
}

type ticketResponse struct {
	ID            string    `json:"id"`
	ShowtimeID    string    `json:"showtime_id"`
	PurchaserName string    `json:"purchaser_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// Purchase handles POST /v1/showtimes/:id/tickets.
func (h *TicketHandler) Purchase(c echo.Context) error {
	var body struct {
		PurchaserName string `json:"purchaser_name"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	name := strings.TrimSpace(body.PurchaserName)
	if name == "" {
		return badRequest(c, "purchaser_name is required")
	}
	if len(name) > model.MaxPurchaserNameLen {
		return badRequest(c, "purchaser_name is too long")
	}

	t, err := h.Tickets.Purchase(c.Request().Context(), c.Param("id"), name)
	if err != nil {
		return respondErr(c, err)
	}

	if h.PublishPurchased != nil {
		ev := queue.TicketPurchasedEvent{
			TicketID:      t.ID,
			ShowtimeID:    t.ShowtimeID,
			PurchaserName: t.PurchaserName,
			PurchasedAt:   t.CreatedAt.Format(time.RFC3339),
		}
		if st, err := h.Showtimes.Get(c.Request().Context(), t.ShowtimeID); err == nil {
			ev.MovieID = st.MovieID
			ev.RoomID = st.RoomID
			ev.StartsAt = st.StartTime.Format(time.RFC3339)
		}
		_ = h.PublishPurchased(c.Request().Context(), ev)
	}

	return c.JSON(http.StatusCreated, ticketResponse{
		ID:            t.ID,
		ShowtimeID:    t.ShowtimeID,
		PurchaserName: t.PurchaserName,
		CreatedAt:     t.CreatedAt,
	})
}
