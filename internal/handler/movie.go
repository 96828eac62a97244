package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cinebook/cinema-booking/internal/model"
	"github.com/cinebook/cinema-booking/internal/service"
)

// MovieHandler serves the /v1/movies routes.
type MovieHandler struct {
	Movies *service.MovieService
}

func NewMovieHandler(movies *service.MovieService) *MovieHandler {
	return &MovieHandler{Movies: movies}
}

type movieResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Genre       string    `json:"genre"`
	Director    string    `json:"director"`
	ReleaseDate time.Time `json:"release_date"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toMovieResponse(m *model.Movie) movieResponse {
	return movieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Genre:       m.Genre,
		Director:    m.Director,
		ReleaseDate: m.ReleaseDate,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Create handles POST /v1/movies.
func (h *MovieHandler) Create(c echo.Context) error {
	var body struct {
		Title       string    `json:"title"`
		Genre       string    `json:"genre"`
		Director    string    `json:"director"`
		ReleaseDate time.Time `json:"release_date"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	title := strings.TrimSpace(body.Title)
	if title == "" {
		return badRequest(c, "title is required")
	}
	m, err := h.Movies.Create(c.Request().Context(), service.CreateMovieInput{
		Title:       title,
		Genre:       strings.TrimSpace(body.Genre),
		Director:    strings.TrimSpace(body.Director),
		ReleaseDate: body.ReleaseDate,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, toMovieResponse(m))
}

// Get handles GET /v1/movies/:id.
func (h *MovieHandler) Get(c echo.Context) error {
	m, err := h.Movies.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, toMovieResponse(m))
}

// Update handles PATCH /v1/movies/:id.  Absent fields keep their current
// values.
func (h *MovieHandler) Update(c echo.Context) error {
	var body struct {
		Title       *string    `json:"title"`
		Genre       *string    `json:"genre"`
		Director    *string    `json:"director"`
		ReleaseDate *time.Time `json:"release_date"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Title != nil {
		t := strings.TrimSpace(*body.Title)
		if t == "" {
			return badRequest(c, "title cannot be empty")
		}
		body.Title = &t
	}
	m, err := h.Movies.Update(c.Request().Context(), c.Param("id"), model.MoviePatch{
		Title:       body.Title,
		Genre:       body.Genre,
		Director:    body.Director,
		ReleaseDate: body.ReleaseDate,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, toMovieResponse(m))
}

// Delete handles DELETE /v1/movies/:id.
func (h *MovieHandler) Delete(c echo.Context) error {
	if err := h.Movies.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/movies.
func (h *MovieHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	res, err := h.Movies.List(c.Request().Context(), activeParam(c), page, limit)
	if err != nil {
		return respondErr(c, err)
	}
	items := make([]movieResponse, 0, len(res.Items))
	for i := range res.Items {
		items = append(items, toMovieResponse(&res.Items[i]))
	}
	return c.JSON(http.StatusOK, map[string]any{
		"items": items,
		"total": res.Total,
		"page":  res.Page,
		"limit": res.Limit,
	})
}
