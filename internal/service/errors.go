package service

import "errors"

var (
	ErrFlightNotFound      = errors.New("flight not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrNoSeatsAvailable    = errors.New("no seats available in the requested class")
	ErrAlreadyCancelled    = errors.New("reservation is already cancelled")
	ErrInvalidRoute        = errors.New("source and destination must differ")
	ErrUnknownSeat         = errors.New("seat is not currently allocated")
	ErrBusy                = errors.New("flight is busy, retry the operation")

	// ErrInconsistentState means the flight's booked counter and its seat
	// pool disagree. It is surfaced, never silently corrected.
	ErrInconsistentState = errors.New("seat inventory is inconsistent")
)
