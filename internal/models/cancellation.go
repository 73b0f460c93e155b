package models

import "time"

// CancellationRecord is an append-only audit entry written exactly once
// per cancellation. The amounts are history and are never recomputed.
type CancellationRecord struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	PNR                string     `gorm:"column:pnr;not null;index" json:"pnr"`
	FlightCode         string     `gorm:"not null" json:"flight_code"`
	Class              CabinClass `gorm:"type:varchar(20);not null" json:"class"`
	BaseAmount         float64    `gorm:"not null" json:"base_amount"`
	CancellationCharge float64    `gorm:"not null" json:"cancellation_charge"`
	RefundAmount       float64    `gorm:"not null" json:"refund_amount"`
	Reason             string     `json:"reason"`
	CreatedAt          time.Time  `json:"created_at"`
}
