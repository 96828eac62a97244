package main

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/cinebook/cinema-booking/internal/config"
	"github.com/cinebook/cinema-booking/internal/database"
	"github.com/cinebook/cinema-booking/internal/handler"
	"github.com/cinebook/cinema-booking/internal/queue"
	"github.com/cinebook/cinema-booking/internal/repository"
	"github.com/cinebook/cinema-booking/internal/router"
	"github.com/cinebook/cinema-booking/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		logrus.Warn("redis unavailable; caching and rate limiting disabled")
	}

	movieRepo := repository.NewMovieRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	showtimeRepo := repository.NewShowtimeRepo(db)
	ticketRepo := repository.NewTicketRepo(db)
	userRepo := repository.NewUserRepo(db)

	movieSvc := service.NewMovieService(movieRepo)
	roomSvc := service.NewRoomService(roomRepo)
	showtimeSvc := service.NewShowtimeService(showtimeRepo, movieRepo, roomRepo, nil)
	ticketSvc := service.NewTicketService(ticketRepo, showtimeRepo, roomRepo, nil)
	userSvc := service.NewUserService(userRepo, cfg.BcryptCost)

	showtimeHandler := handler.NewShowtimeHandler(showtimeSvc)
	showtimeHandler.PublishScheduled = queue.PublishShowtimeScheduled
	ticketHandler := handler.NewTicketHandler(ticketSvc, showtimeSvc)
	ticketHandler.PublishPurchased = queue.PublishTicketPurchased

	go queue.StartTicketConsumer()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	router.Register(e, router.Handlers{
		Movies:    handler.NewMovieHandler(movieSvc),
		Rooms:     handler.NewRoomHandler(roomSvc),
		Showtimes: showtimeHandler,
		Tickets:   ticketHandler,
		Users:     handler.NewUserHandler(userSvc),
	}, config.LoadCacheConfig(), config.LoadRateLimitConfig(), rdb)

	addr := ":" + cfg.Port
	logrus.Infof("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
