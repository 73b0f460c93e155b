package models

import "time"

// SeatAllocation is one seat in a flight's pool. The pool is seeded when
// the flight is created, sized to the per-class totals, so a seat number
// can never be handed out twice: assignment flips is_available on an
// existing row rather than inventing an identifier.
type SeatAllocation struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	FlightCode  string     `gorm:"not null;uniqueIndex:idx_flight_seat,priority:1" json:"flight_code"`
	SeatNumber  string     `gorm:"not null;uniqueIndex:idx_flight_seat,priority:2" json:"seat_number"`
	Class       CabinClass `gorm:"type:varchar(20);not null;index:idx_seat_class" json:"class"`
	IsWindow    bool       `gorm:"not null;default:false" json:"is_window"`
	IsAisle     bool       `gorm:"not null;default:false" json:"is_aisle"`
	IsAvailable bool       `gorm:"not null;default:true" json:"is_available"`
	PNR         *string    `gorm:"column:pnr" json:"pnr,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
