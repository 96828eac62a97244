package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cinebook/cinema-booking/internal/model"
	"github.com/cinebook/cinema-booking/internal/service"
)

// RoomHandler serves the /v1/rooms routes.
type RoomHandler struct {
	Rooms *service.RoomService
}

func NewRoomHandler(rooms *service.RoomService) *RoomHandler {
	return &RoomHandler{Rooms: rooms}
}

type roomResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toRoomResponse(r *model.Room) roomResponse {
	return roomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Create handles POST /v1/rooms.
func (h *RoomHandler) Create(c echo.Context) error {
	var body struct {
		Name     string `json:"name"`
		Capacity int    `json:"capacity"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return badRequest(c, "name is required")
	}
	if body.Capacity < 1 {
		return badRequest(c, "capacity must be at least 1")
	}
	r, err := h.Rooms.Create(c.Request().Context(), name, body.Capacity)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, toRoomResponse(r))
}

// Get handles GET /v1/rooms/:id.
func (h *RoomHandler) Get(c echo.Context) error {
	r, err := h.Rooms.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, toRoomResponse(r))
}

// Update handles PATCH /v1/rooms/:id.
func (h *RoomHandler) Update(c echo.Context) error {
	var body struct {
		Name     *string `json:"name"`
		Capacity *int    `json:"capacity"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name != nil {
		n := strings.TrimSpace(*body.Name)
		if n == "" {
			return badRequest(c, "name cannot be empty")
		}
		body.Name = &n
	}
	if body.Capacity != nil && *body.Capacity < 1 {
		return badRequest(c, "capacity must be at least 1")
	}
	r, err := h.Rooms.Update(c.Request().Context(), c.Param("id"), model.RoomPatch{
		Name:     body.Name,
		Capacity: body.Capacity,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, toRoomResponse(r))
}

// Delete handles DELETE /v1/rooms/:id.
func (h *RoomHandler) Delete(c echo.Context) error {
	if err := h.Rooms.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/rooms.
func (h *RoomHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	res, err := h.Rooms.List(c.Request().Context(), activeParam(c), page, limit)
	if err != nil {
		return respondErr(c, err)
	}
	items := make([]roomResponse, 0, len(res.Items))
	for i := range res.Items {
		items = append(items, toRoomResponse(&res.Items[i]))
	}
	return c.JSON(http.StatusOK, map[string]any{
		"items": items,
		"total": res.Total,
		"page":  res.Page,
		"limit": res.Limit,
	})
}
