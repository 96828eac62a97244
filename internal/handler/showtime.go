package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cinebook/cinema-booking/internal/model"
	"github.com/cinebook/cinema-booking/internal/queue"
	"github.com/cinebook/cinema-booking/internal/service"
)

// ShowtimeHandler serves the /v1/showtimes routes.  PublishScheduled, when
// set, announces new showtimes on the broker; delivery is best-effort and
// never fails the request.
type ShowtimeHandler struct {
	Showtimes        *service.ShowtimeService
	PublishScheduled func(ctx context.Context, ev queue.ShowtimeScheduledEvent) error
}

func NewShowtimeHandler(showtimes *service.ShowtimeService) *ShowtimeHandler {
	return &ShowtimeHandler{Showtimes: showtimes}
}

// minDurationMinutes is the shortest screening the API accepts.
const minDurationMinutes = 30

type showtimeResponse struct {
	ID        string    `json:"id"`
	MovieID   string    `json:"movie_id"`
	RoomID    string    `json:"room_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toShowtimeResponse(s *model.Showtime) showtimeResponse {
	return showtimeResponse{
		ID:        s.ID,
		MovieID:   s.MovieID,
		RoomID:    s.RoomID,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// Create handles POST /v1/showtimes.  A missing duration falls back to the
// standard two-hour screening window.
func (h *ShowtimeHandler) Create(c echo.Context) error {
	var body struct {
		MovieID         string    `json:"movie_id"`
		RoomID          string    `json:"room_id"`
		StartTime       time.Time `json:"start_time"`
		DurationMinutes *int      `json:"duration_minutes"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.MovieID == "" {
		return badRequest(c, "movie_id is required")
	}
	if body.RoomID == "" {
		return badRequest(c, "room_id is required")
	}
	if body.StartTime.IsZero() {
		return badRequest(c, "start_time is required")
	}
	// Absent duration means the standard window; an explicit value, zero
	// included, must satisfy the minimum.
	duration := model.DefaultDurationMinutes
	if body.DurationMinutes != nil {
		duration = *body.DurationMinutes
	}
	if duration < minDurationMinutes {
		return badRequest(c, "duration_minutes must be at least 30")
	}
	st, err := h.Showtimes.Create(c.Request().Context(), service.CreateShowtimeInput{
		MovieID:         body.MovieID,
		RoomID:          body.RoomID,
		StartTime:       body.StartTime,
		DurationMinutes: duration,
	})
	if err != nil {
		return respondErr(c, err)
	}
	if h.PublishScheduled != nil {
		_ = h.PublishScheduled(c.Request().Context(), queue.ShowtimeScheduledEvent{
			ShowtimeID:  st.ID,
			MovieID:     st.MovieID,
			RoomID:      st.RoomID,
			StartsAt:    st.StartTime.Format(time.RFC3339),
			EndsAt:      st.EndTime.Format(time.RFC3339),
			ScheduledAt: st.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusCreated, toShowtimeResponse(st))
}

// Get handles GET /v1/showtimes/:id.
func (h *ShowtimeHandler) Get(c echo.Context) error {
	st, err := h.Showtimes.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, toShowtimeResponse(st))
}

// Update handles PATCH /v1/showtimes/:id.
func (h *ShowtimeHandler) Update(c echo.Context) error {
	var body struct {
		MovieID         *string    `json:"movie_id"`
		RoomID          *string    `json:"room_id"`
		StartTime       *time.Time `json:"start_time"`
		DurationMinutes *int       `json:"duration_minutes"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.MovieID != nil && *body.MovieID == "" {
		return badRequest(c, "movie_id cannot be empty")
	}
	if body.RoomID != nil && *body.RoomID == "" {
		return badRequest(c, "room_id cannot be empty")
	}
	if body.DurationMinutes != nil && *body.DurationMinutes < minDurationMinutes {
		return badRequest(c, "duration_minutes must be at least 30")
	}
	st, err := h.Showtimes.Update(c.Request().Context(), c.Param("id"), model.ShowtimePatch{
		MovieID:         body.MovieID,
		RoomID:          body.RoomID,
		StartTime:       body.StartTime,
		DurationMinutes: body.DurationMinutes,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, toShowtimeResponse(st))
}

// Delete handles DELETE /v1/showtimes/:id.
func (h *ShowtimeHandler) Delete(c echo.Context) error {
	if err := h.Showtimes.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/showtimes.  Filters: movie_id, room_id, start_date +
// end_date (inclusive of the end day), active (default true), page, limit.
func (h *ShowtimeHandler) List(c echo.Context) error {
	q := service.ShowtimeQuery{
		MovieID: c.QueryParam("movie_id"),
		RoomID:  c.QueryParam("room_id"),
	}
	q.Page, q.Limit = pageParams(c)

	startStr, endStr := c.QueryParam("start_date"), c.QueryParam("end_date")
	if (startStr == "") != (endStr == "") {
		return badRequest(c, "start_date and end_date must be provided together")
	}
	if startStr != "" {
		start, err := parseDate(startStr)
		if err != nil {
			return badRequest(c, "invalid start_date")
		}
		end, err := parseDate(endStr)
		if err != nil {
			return badRequest(c, "invalid end_date")
		}
		q.StartDate, q.EndDate = &start, &end
	}

	active := activeParam(c)
	q.ActiveOnly = &active

	res, err := h.Showtimes.List(c.Request().Context(), q)
	if err != nil {
		return respondErr(c, err)
	}
	items := make([]showtimeResponse, 0, len(res.Items))
	for i := range res.Items {
		items = append(items, toShowtimeResponse(&res.Items[i]))
	}
	return c.JSON(http.StatusOK, map[string]any{
		"items": items,
		"total": res.Total,
		"page":  res.Page,
		"limit": res.Limit,
	})
}
