package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// pageParams reads the page and limit query parameters.  Absent or malformed
// values come back as zero; the services clamp to their defaults.
func pageParams(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}

// activeParam reads the active filter; listings default to active-only.
func activeParam(c echo.Context) bool {
	return c.QueryParam("active") != "false"
}

// parseDate accepts a bare date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
