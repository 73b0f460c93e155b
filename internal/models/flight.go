package models

import "time"

type CabinClass string

const (
	ClassEconomy  CabinClass = "Economy"
	ClassBusiness CabinClass = "Business"
)

func (c CabinClass) Valid() bool {
	return c == ClassEconomy || c == ClassBusiness
}

// SeatPrefix is the letter seat numbers in this class start with (E01, B07...).
func (c CabinClass) SeatPrefix() string {
	if c == ClassBusiness {
		return "B"
	}
	return "E"
}

type Flight struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Code           string    `gorm:"uniqueIndex;not null" json:"code"`
	Name           string    `json:"name"`
	Route          string    `json:"route"`
	Source         string    `gorm:"not null" json:"source"`
	Destination    string    `gorm:"not null" json:"destination"`
	DepartureTime  string    `json:"departure_time"`
	ArrivalTime    string    `json:"arrival_time"`
	EconomySeats   int       `gorm:"not null" json:"economy_seats"`
	BusinessSeats  int       `gorm:"not null" json:"business_seats"`
	EconomyBooked  int       `gorm:"not null;default:0" json:"economy_booked"`
	BusinessBooked int       `gorm:"not null;default:0" json:"business_booked"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (f *Flight) TotalSeats(class CabinClass) int {
	if class == ClassBusiness {
		return f.BusinessSeats
	}
	return f.EconomySeats
}

func (f *Flight) BookedSeats(class CabinClass) int {
	if class == ClassBusiness {
		return f.BusinessBooked
	}
	return f.EconomyBooked
}

// AvailableSeats is total minus booked for the class. The ledger keeps
// booked within [0, total], so this never goes negative.
func (f *Flight) AvailableSeats(class CabinClass) int {
	return f.TotalSeats(class) - f.BookedSeats(class)
}
