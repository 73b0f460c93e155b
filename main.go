package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/skyledger/reservation-service/config"
	"github.com/skyledger/reservation-service/internal/handler"
	"github.com/skyledger/reservation-service/internal/middleware"
	"github.com/skyledger/reservation-service/internal/notifier"
	"github.com/skyledger/reservation-service/internal/repository"
	"github.com/skyledger/reservation-service/internal/service"
	"github.com/skyledger/reservation-service/pkg/database"
	"github.com/skyledger/reservation-service/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ publisher: reservation lifecycle events for downstream
	// collaborators (ticketing, receipts). Optional.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RABBITMQ_URL not set, reservation events disabled")
	}

	// Repositories
	flightRepo := repository.NewFlightRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	seatRepo := repository.NewSeatRepository(db)
	fareRepo := repository.NewFareRepository(db)
	cancellationRepo := repository.NewCancellationRepository(db)

	// Services
	allocator := service.NewSeatAllocator(seatRepo)
	var events *notifier.Notifier
	if publisher != nil {
		events = notifier.New(publisher)
	}
	reservationSvc := service.NewReservationService(flightRepo, reservationRepo, fareRepo, cancellationRepo, allocator, events)
	flightSvc := service.NewFlightService(flightRepo, fareRepo, allocator)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "reservation-service"})
	})

	handler.NewFlightHandler(flightSvc).RegisterRoutes(e)
	handler.NewReservationHandler(reservationSvc).RegisterRoutes(e)

	log.Printf("Reservation Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
