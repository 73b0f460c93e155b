package models

import "time"

type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "Confirmed"
	StatusCancelled ReservationStatus = "Cancelled"
)

type SeatPreference string

const (
	PreferenceAny    SeatPreference = "Any"
	PreferenceWindow SeatPreference = "Window"
	PreferenceAisle  SeatPreference = "Aisle"
)

func (p SeatPreference) Valid() bool {
	return p == PreferenceAny || p == PreferenceWindow || p == PreferenceAisle
}

type Concession string

const (
	ConcessionNone    Concession = "None"
	ConcessionStudent Concession = "Student"
	ConcessionSenior  Concession = "Senior Citizen"
	ConcessionCancer  Concession = "Cancer Patient"
)

func (c Concession) Valid() bool {
	switch c {
	case ConcessionNone, ConcessionStudent, ConcessionSenior, ConcessionCancer:
		return true
	}
	return false
}

// DiscountRate returns the fraction of the base fare waived for the
// concession category. The rates are policy constants.
func (c Concession) DiscountRate() float64 {
	switch c {
	case ConcessionStudent:
		return 0.25
	case ConcessionSenior:
		return 0.13
	case ConcessionCancer:
		return 0.569
	default:
		return 0.0
	}
}

type Reservation struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	PNR            string            `gorm:"column:pnr;uniqueIndex;not null" json:"pnr"`
	FlightCode     string            `gorm:"not null;index" json:"flight_code"`
	CustomerRef    string            `gorm:"not null" json:"customer_ref"`
	Class          CabinClass        `gorm:"type:varchar(20);not null" json:"class"`
	SeatNumber     string            `gorm:"not null" json:"seat_number"`
	SeatPreference SeatPreference    `gorm:"type:varchar(10);not null;default:'Any'" json:"seat_preference"`
	BaseFare       float64           `gorm:"not null" json:"base_fare"`
	DiscountAmount float64           `gorm:"not null;default:0" json:"discount_amount"`
	FinalFare      float64           `gorm:"not null" json:"final_fare"`
	Concession     Concession        `gorm:"type:varchar(20);not null;default:'None'" json:"concession"`
	Status         ReservationStatus `gorm:"type:varchar(20);not null;default:'Confirmed'" json:"status"`
	TravelDate     time.Time         `json:"travel_date"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
