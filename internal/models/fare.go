package models

import "time"

// Class defaults used when no fare row is configured for a flight.
const (
	DefaultEconomyFare  = 2500.0
	DefaultBusinessFare = 4500.0
)

// DefaultFare returns the class baseline fare.
func DefaultFare(class CabinClass) float64 {
	if class == ClassBusiness {
		return DefaultBusinessFare
	}
	return DefaultEconomyFare
}

type Fare struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	FlightCode string     `gorm:"not null;uniqueIndex:idx_fare_flight_class,priority:1" json:"flight_code"`
	Class      CabinClass `gorm:"type:varchar(20);not null;uniqueIndex:idx_fare_flight_class,priority:2" json:"class"`
	BaseFare   float64    `gorm:"not null" json:"base_fare"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
