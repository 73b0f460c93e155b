package service

import "time"

// fallbackChargeRate applies when a reservation carries no usable travel
// date: the 25% bracket, rather than guessing a date.
const fallbackChargeRate = 0.25

// CancellationCharge computes the charge withheld when a reservation is
// cancelled, as a fraction of the given base amount. The rate depends on how
// many whole calendar days remain until travel:
//
//	> 30 days  10%
//	> 15 days  25%
//	>  7 days  50%
//	>  2 days  75%
//	<= 2 days  90% (including travel dates already in the past)
func CancellationCharge(baseAmount float64, travelDate, now time.Time) float64 {
	if travelDate.IsZero() {
		return baseAmount * fallbackChargeRate
	}
	return baseAmount * chargeRate(daysUntil(travelDate, now))
}

func chargeRate(daysUntilTravel int) float64 {
	switch {
	case daysUntilTravel > 30:
		return 0.10
	case daysUntilTravel > 15:
		return 0.25
	case daysUntilTravel > 7:
		return 0.50
	case daysUntilTravel > 2:
		return 0.75
	default:
		return 0.90
	}
}

// daysUntil is the calendar-day difference between the two instants, ignoring
// time of day. Negative when the travel date has passed.
func daysUntil(travelDate, now time.Time) int {
	travel := time.Date(travelDate.Year(), travelDate.Month(), travelDate.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(travel.Sub(today).Hours() / 24)
}
