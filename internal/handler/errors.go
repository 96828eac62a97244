// Package handler exposes the HTTP surface: JSON binding, validation and the
// mapping from domain errors to status codes.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/cinebook/cinema-booking/internal/repository"
	"github.com/cinebook/cinema-booking/internal/service"
)

// respondErr translates a domain error into the HTTP response.  Missing
// referenced entities map to 404, uniqueness and scheduling conflicts to
// 409, and rejected state transitions (past showtimes, sold-out rooms) to
// 400.  Anything unrecognized is a 500 with the detail kept server-side.
func respondErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrMovieNotFound),
		errors.Is(err, repository.ErrRoomNotFound),
		errors.Is(err, repository.ErrShowtimeNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, repository.ErrShowtimeConflict),
		errors.Is(err, repository.ErrDuplicate),
		errors.Is(err, service.ErrDuplicateTitle),
		errors.Is(err, service.ErrDuplicateName),
		errors.Is(err, service.ErrDuplicateEmail):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrShowtimeInPast),
		errors.Is(err, service.ErrShowtimeStarted),
		errors.Is(err, repository.ErrCapacityExceeded):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		logrus.WithError(err).Error("request failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
}
