package service

import (
	"context"
	"errors"
	"strings"

	"github.com/skyledger/reservation-service/internal/models"
	"github.com/skyledger/reservation-service/internal/repository"
	"gorm.io/gorm"
)

// FlightAvailability pairs a flight with the seat count and fare for the
// class a search asked about.
type FlightAvailability struct {
	Flight         models.Flight
	Class          models.CabinClass
	AvailableSeats int
	BaseFare       float64
}

// FlightStatus summarizes both cabins of one flight.
type FlightStatus struct {
	Flight            models.Flight
	EconomyAvailable  int
	BusinessAvailable int
	EconomyFare       float64
	BusinessFare      float64
}

type FlightService interface {
	CreateFlight(ctx context.Context, flight *models.Flight) error
	SearchFlights(ctx context.Context, source, destination string, class models.CabinClass) ([]FlightAvailability, error)
	GetFlightStatus(ctx context.Context, code string) (*FlightStatus, error)
	SetFare(ctx context.Context, code string, class models.CabinClass, amount float64) error
	DeactivateFlight(ctx context.Context, code string) error
}

type flightService struct {
	flightRepo repository.FlightRepository
	fareRepo   repository.FareRepository
	allocator  *SeatAllocator
}

func NewFlightService(flightRepo repository.FlightRepository, fareRepo repository.FareRepository, allocator *SeatAllocator) FlightService {
	return &flightService{flightRepo: flightRepo, fareRepo: fareRepo, allocator: allocator}
}

// CreateFlight inserts the flight and seeds its seat pool in one
// transaction, so a flight is never visible without its seats.
func (s *flightService) CreateFlight(ctx context.Context, flight *models.Flight) error {
	flight.IsActive = true
	flight.EconomyBooked = 0
	flight.BusinessBooked = 0
	if flight.Route == "" {
		flight.Route = flight.Source + " - " + flight.Destination
	}

	return s.flightRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.flightRepo.Create(ctx, tx, flight); err != nil {
			return err
		}
		return s.allocator.SeedPool(ctx, tx, flight)
	})
}

func (s *flightService) SearchFlights(ctx context.Context, source, destination string, class models.CabinClass) ([]FlightAvailability, error) {
	source = strings.TrimSpace(source)
	destination = strings.TrimSpace(destination)
	if source != "" && strings.EqualFold(source, destination) {
		return nil, ErrInvalidRoute
	}

	flights, err := s.flightRepo.SearchActive(ctx, source, destination)
	if err != nil {
		return nil, err
	}

	results := make([]FlightAvailability, 0, len(flights))
	for _, flight := range flights {
		available := flight.AvailableSeats(class)
		if available <= 0 {
			continue
		}
		fare, err := s.lookupFare(ctx, flight.Code, class)
		if err != nil {
			return nil, err
		}
		results = append(results, FlightAvailability{
			Flight:         flight,
			Class:          class,
			AvailableSeats: available,
			BaseFare:       fare,
		})
	}
	return results, nil
}

func (s *flightService) GetFlightStatus(ctx context.Context, code string) (*FlightStatus, error) {
	flight, err := s.flightRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}

	ecoFare, err := s.lookupFare(ctx, code, models.ClassEconomy)
	if err != nil {
		return nil, err
	}
	bizFare, err := s.lookupFare(ctx, code, models.ClassBusiness)
	if err != nil {
		return nil, err
	}

	return &FlightStatus{
		Flight:            *flight,
		EconomyAvailable:  flight.AvailableSeats(models.ClassEconomy),
		BusinessAvailable: flight.AvailableSeats(models.ClassBusiness),
		EconomyFare:       ecoFare,
		BusinessFare:      bizFare,
	}, nil
}

func (s *flightService) SetFare(ctx context.Context, code string, class models.CabinClass, amount float64) error {
	if _, err := s.flightRepo.FindByCode(ctx, code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFlightNotFound
		}
		return err
	}
	return s.fareRepo.Upsert(ctx, &models.Fare{
		FlightCode: code,
		Class:      class,
		BaseFare:   amount,
	})
}

// DeactivateFlight blocks new bookings. Existing reservations stay
// cancellable.
func (s *flightService) DeactivateFlight(ctx context.Context, code string) error {
	err := s.flightRepo.Deactivate(ctx, code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrFlightNotFound
	}
	return err
}

func (s *flightService) lookupFare(ctx context.Context, code string, class models.CabinClass) (float64, error) {
	fare, err := s.fareRepo.FindByFlightAndClass(ctx, code, class)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultFare(class), nil
	}
	if err != nil {
		return 0, err
	}
	return fare.BaseFare, nil
}
