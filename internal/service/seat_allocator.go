package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/skyledger/reservation-service/internal/models"
	"github.com/skyledger/reservation-service/internal/repository"
	"gorm.io/gorm"
)

// SeatAllocator hands out seats from a flight's pre-seeded pool. Because it
// only ever flips availability on existing rows, two reservations can never
// end up on the same seat. Callers must hold the flight row lock.
type SeatAllocator struct {
	seats repository.SeatRepository
}

func NewSeatAllocator(seats repository.SeatRepository) *SeatAllocator {
	return &SeatAllocator{seats: seats}
}

// Allocate picks a free seat for the flight and class, preferring one that
// matches the seat preference, and binds it to the PNR. It returns
// ErrNoSeatsAvailable when the free set is empty.
func (a *SeatAllocator) Allocate(ctx context.Context, tx *gorm.DB, flightCode string, class models.CabinClass, preference models.SeatPreference, pnr string) (*models.SeatAllocation, error) {
	seat, err := a.seats.FindFree(ctx, tx, flightCode, class, preference)
	if errors.Is(err, gorm.ErrRecordNotFound) && preference != models.PreferenceAny {
		// Preference could not be honored; fall back to any free seat.
		seat, err = a.seats.FindFree(ctx, tx, flightCode, class, models.PreferenceAny)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoSeatsAvailable
	}
	if err != nil {
		return nil, fmt.Errorf("find free seat: %w", err)
	}

	if err := a.seats.Assign(ctx, tx, seat.ID, pnr); err != nil {
		return nil, fmt.Errorf("assign seat %s: %w", seat.SeatNumber, err)
	}
	seat.IsAvailable = false
	seat.PNR = &pnr
	return seat, nil
}

// Free returns the seat held by the PNR to the pool. ErrUnknownSeat means the
// PNR holds no seat on the flight.
func (a *SeatAllocator) Free(ctx context.Context, tx *gorm.DB, flightCode, pnr string) error {
	released, err := a.seats.ReleaseByPNR(ctx, tx, flightCode, pnr)
	if err != nil {
		return fmt.Errorf("release seat for %s: %w", pnr, err)
	}
	if released == 0 {
		return ErrUnknownSeat
	}
	return nil
}

// FreeCount reports the size of the free set for the flight and class.
func (a *SeatAllocator) FreeCount(ctx context.Context, tx *gorm.DB, flightCode string, class models.CabinClass) (int64, error) {
	return a.seats.CountFree(ctx, tx, flightCode, class)
}

// SeedPool creates the seat rows for a new flight, one per physical seat.
// Seats are laid out in blocks of three: window, middle, aisle.
func (a *SeatAllocator) SeedPool(ctx context.Context, tx *gorm.DB, flight *models.Flight) error {
	seats := make([]models.SeatAllocation, 0, flight.EconomySeats+flight.BusinessSeats)
	for _, class := range []models.CabinClass{models.ClassEconomy, models.ClassBusiness} {
		prefix := class.SeatPrefix()
		for n := 1; n <= flight.TotalSeats(class); n++ {
			seats = append(seats, models.SeatAllocation{
				FlightCode:  flight.Code,
				SeatNumber:  fmt.Sprintf("%s%02d", prefix, n),
				Class:       class,
				IsWindow:    (n-1)%3 == 0,
				IsAisle:     (n-1)%3 == 2,
				IsAvailable: true,
			})
		}
	}
	return a.seats.CreateBulk(ctx, tx, seats)
}
