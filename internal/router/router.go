// Package router wires the HTTP surface: route registration plus the cache
// and rate-limit middleware placement.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/cinebook/cinema-booking/internal/config"
	"github.com/cinebook/cinema-booking/internal/handler"
	"github.com/cinebook/cinema-booking/internal/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Movies    *handler.MovieHandler
	Rooms     *handler.RoomHandler
	Showtimes *handler.ShowtimeHandler
	Tickets   *handler.TicketHandler
	Users     *handler.UserHandler
}

// Register mounts all routes on e.  Read endpoints go through the Redis
// response cache; successful writes purge it.  The token bucket guards the
// ticket purchase endpoint, which is the one route expected to see bursts.
// rdb may be nil, in which case caching and rate limiting become no-ops.
func Register(e *echo.Echo, h Handlers, cacheCfg config.CacheConfig, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	cached := middleware.NewRedisCache(cacheCfg, rdb)
	invalidate := middleware.NewCacheInvalidator(cacheCfg, rdb)
	limited := middleware.NewTokenBucket(rlCfg, rdb)

	v1 := e.Group("/v1")

	v1.POST("/movies", h.Movies.Create, invalidate)
	v1.GET("/movies", h.Movies.List, cached)
	v1.GET("/movies/:id", h.Movies.Get, cached)
	v1.PATCH("/movies/:id", h.Movies.Update, invalidate)
	v1.DELETE("/movies/:id", h.Movies.Delete, invalidate)

	v1.POST("/rooms", h.Rooms.Create, invalidate)
	v1.GET("/rooms", h.Rooms.List, cached)
	v1.GET("/rooms/:id", h.Rooms.Get, cached)
	v1.PATCH("/rooms/:id", h.Rooms.Update, invalidate)
	v1.DELETE("/rooms/:id", h.Rooms.Delete, invalidate)

	v1.POST("/showtimes", h.Showtimes.Create, invalidate)
	v1.GET("/showtimes", h.Showtimes.List, cached)
	v1.GET("/showtimes/:id", h.Showtimes.Get, cached)
	v1.PATCH("/showtimes/:id", h.Showtimes.Update, invalidate)
	v1.DELETE("/showtimes/:id", h.Showtimes.Delete, invalidate)

	v1.POST("/showtimes/:id/tickets", h.Tickets.Purchase, limited, invalidate)

	v1.POST("/users", h.Users.Create)
	v1.GET("/users/:id", h.Users.Get)
}
