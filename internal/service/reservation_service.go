package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skyledger/reservation-service/internal/models"
	"github.com/skyledger/reservation-service/internal/notifier"
	"github.com/skyledger/reservation-service/internal/repository"
	"gorm.io/gorm"
)

const (
	// defaultTxTimeout bounds how long a booking or cancellation may wait on
	// the flight row lock before the caller gets ErrBusy.
	defaultTxTimeout = 5 * time.Second

	pnrMaxAttempts = 5
)

// CreateReservationInput carries everything the ledger needs to book a seat.
// The acting customer identity is an explicit parameter; the ledger holds no
// ambient session state.
type CreateReservationInput struct {
	FlightCode     string
	CustomerRef    string
	Class          models.CabinClass
	SeatPreference models.SeatPreference
	Concession     models.Concession
	TravelDate     time.Time
}

type ReservationService interface {
	CreateReservation(ctx context.Context, in CreateReservationInput) (*models.Reservation, error)
	CancelReservation(ctx context.Context, pnr string) (*models.CancellationRecord, error)
	GetReservation(ctx context.Context, pnr string) (*models.Reservation, error)
	ListReservations(ctx context.Context, flightCode string, status *models.ReservationStatus) ([]models.Reservation, error)
	ListCancellations(ctx context.Context, pnr string) ([]models.CancellationRecord, error)
}

type reservationService struct {
	flightRepo       repository.FlightRepository
	reservationRepo  repository.ReservationRepository
	fareRepo         repository.FareRepository
	cancellationRepo repository.CancellationRepository
	allocator        *SeatAllocator
	notifier         *notifier.Notifier
	txTimeout        time.Duration
	now              func() time.Time
}

func NewReservationService(
	flightRepo repository.FlightRepository,
	reservationRepo repository.ReservationRepository,
	fareRepo repository.FareRepository,
	cancellationRepo repository.CancellationRepository,
	allocator *SeatAllocator,
	n *notifier.Notifier,
) ReservationService {
	return &reservationService{
		flightRepo:       flightRepo,
		reservationRepo:  reservationRepo,
		fareRepo:         fareRepo,
		cancellationRepo: cancellationRepo,
		allocator:        allocator,
		notifier:         n,
		txTimeout:        defaultTxTimeout,
		now:              time.Now,
	}
}

// CreateReservation books one seat as a single atomic unit: seat allocation,
// booked-count increment and the reservation row commit or roll back
// together under the flight row lock.
func (s *reservationService) CreateReservation(ctx context.Context, in CreateReservationInput) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	var result *models.Reservation

	err := s.reservationRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the flight row — serializes all writers on this flight.
		flight, err := s.flightRepo.FindByCodeForUpdate(ctx, tx, in.FlightCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFlightNotFound
			}
			return err
		}
		if !flight.IsActive {
			return ErrFlightNotFound
		}

		// 2. Inventory check.
		if flight.AvailableSeats(in.Class) <= 0 {
			return ErrNoSeatsAvailable
		}

		// 3. Fare and discount.
		base, err := s.baseFare(ctx, in.FlightCode, in.Class)
		if err != nil {
			return err
		}
		discount := base * in.Concession.DiscountRate()
		final := base - discount

		// 4. Unique PNR.
		pnr, err := s.nextPNR(ctx, tx)
		if err != nil {
			return err
		}

		// 5. Seat allocation. The counter said a seat exists, so an empty
		// free set here is a pool/counter disagreement.
		seat, err := s.allocator.Allocate(ctx, tx, flight.Code, in.Class, in.SeatPreference, pnr)
		if errors.Is(err, ErrNoSeatsAvailable) {
			return fmt.Errorf("%w: booked count says %d available but seat pool is empty",
				ErrInconsistentState, flight.AvailableSeats(in.Class))
		}
		if err != nil {
			return err
		}

		// 6. Reservation row and booked counter.
		reservation := &models.Reservation{
			PNR:            pnr,
			FlightCode:     flight.Code,
			CustomerRef:    in.CustomerRef,
			Class:          in.Class,
			SeatNumber:     seat.SeatNumber,
			SeatPreference: in.SeatPreference,
			BaseFare:       base,
			DiscountAmount: discount,
			FinalFare:      final,
			Concession:     in.Concession,
			Status:         models.StatusConfirmed,
			TravelDate:     in.TravelDate,
		}
		if err := s.reservationRepo.Create(ctx, tx, reservation); err != nil {
			return err
		}
		if err := s.flightRepo.IncrementBooked(ctx, tx, flight.Code, in.Class, 1); err != nil {
			return err
		}

		result = reservation
		return nil
	})
	if err != nil {
		return nil, s.mapTxErr(err)
	}

	s.notifier.ReservationCreated(result)
	return result, nil
}

// CancelReservation reverses a booking exactly once: status flip, seat
// release, booked-count decrement and the audit record are one transaction.
// The refund figures it returns are final and never recomputed.
func (s *reservationService) CancelReservation(ctx context.Context, pnr string) (*models.CancellationRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	var record *models.CancellationRecord

	err := s.reservationRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Resolve the flight first so the row lock is taken before the
		// status check; a concurrent cancel commits before we read.
		reservation, err := s.reservationRepo.FindByPNRTx(ctx, tx, pnr)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		flight, err := s.flightRepo.FindByCodeForUpdate(ctx, tx, reservation.FlightCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: reservation %s references missing flight %s",
					ErrInconsistentState, pnr, reservation.FlightCode)
			}
			return err
		}

		reservation, err = s.reservationRepo.FindByPNRTx(ctx, tx, pnr)
		if err != nil {
			return err
		}
		if reservation.Status == models.StatusCancelled {
			return ErrAlreadyCancelled
		}

		charge := CancellationCharge(reservation.FinalFare, reservation.TravelDate, s.now())
		refund := reservation.FinalFare - charge

		if err := s.reservationRepo.UpdateStatus(ctx, tx, pnr, models.StatusCancelled); err != nil {
			return err
		}

		if err := s.allocator.Free(ctx, tx, reservation.FlightCode, pnr); err != nil {
			if errors.Is(err, ErrUnknownSeat) {
				return fmt.Errorf("%w: confirmed reservation %s holds no seat", ErrInconsistentState, pnr)
			}
			return err
		}

		if flight.BookedSeats(reservation.Class) <= 0 {
			return fmt.Errorf("%w: booked count for %s/%s already zero",
				ErrInconsistentState, flight.Code, reservation.Class)
		}
		if err := s.flightRepo.IncrementBooked(ctx, tx, flight.Code, reservation.Class, -1); err != nil {
			return err
		}

		record = &models.CancellationRecord{
			PNR:                pnr,
			FlightCode:         reservation.FlightCode,
			Class:              reservation.Class,
			BaseAmount:         reservation.FinalFare,
			CancellationCharge: charge,
			RefundAmount:       refund,
			Reason:             "Customer Request",
		}
		return s.cancellationRepo.Create(ctx, tx, record)
	})
	if err != nil {
		return nil, s.mapTxErr(err)
	}

	s.notifier.ReservationCancelled(record)
	return record, nil
}

func (s *reservationService) GetReservation(ctx context.Context, pnr string) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.FindByPNR(ctx, pnr)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReservationNotFound
	}
	return reservation, err
}

func (s *reservationService) ListReservations(ctx context.Context, flightCode string, status *models.ReservationStatus) ([]models.Reservation, error) {
	return s.reservationRepo.FindByFlight(ctx, flightCode, status)
}

func (s *reservationService) ListCancellations(ctx context.Context, pnr string) ([]models.CancellationRecord, error) {
	return s.cancellationRepo.List(ctx, pnr)
}

func (s *reservationService) baseFare(ctx context.Context, flightCode string, class models.CabinClass) (float64, error) {
	fare, err := s.fareRepo.FindByFlightAndClass(ctx, flightCode, class)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultFare(class), nil
	}
	if err != nil {
		return 0, err
	}
	return fare.BaseFare, nil
}

func (s *reservationService) nextPNR(ctx context.Context, tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < pnrMaxAttempts; attempt++ {
		pnr := NewPNR()
		exists, err := s.reservationRepo.PNRExists(ctx, tx, pnr)
		if err != nil {
			return "", err
		}
		if !exists {
			return pnr, nil
		}
	}
	return "", fmt.Errorf("pnr generation: %d collisions in a row", pnrMaxAttempts)
}

// mapTxErr turns lock/transaction wait timeouts into ErrBusy and passes
// domain errors through untouched.
func (s *reservationService) mapTxErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrBusy
	}
	return err
}
