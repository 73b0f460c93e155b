package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var policyNow = time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

func travelIn(days int) time.Time {
	return policyNow.AddDate(0, 0, days)
}

func TestCancellationCharge_Brackets(t *testing.T) {
	cases := []struct {
		name       string
		daysOut    int
		wantCharge float64
	}{
		{"40 days out is 10%", 40, 250.00},
		{"31 days out is 10%", 31, 250.00},
		{"30 days out is 25%", 30, 625.00},
		{"16 days out is 25%", 16, 625.00},
		{"15 days out is 50%", 15, 1250.00},
		{"8 days out is 50%", 8, 1250.00},
		{"7 days out is 75%", 7, 1875.00},
		{"5 days out is 75%", 5, 1875.00},
		{"3 days out is 75%", 3, 1875.00},
		{"2 days out is 90%", 2, 2250.00},
		{"travel today is 90%", 0, 2250.00},
		{"travel date passed is 90%", -3, 2250.00},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			charge := CancellationCharge(2500.00, travelIn(tc.daysOut), policyNow)
			assert.InDelta(t, tc.wantCharge, charge, 0.001)
		})
	}
}

func TestCancellationCharge_Refund40DaysOut(t *testing.T) {
	base := 2500.00
	charge := CancellationCharge(base, travelIn(40), policyNow)

	assert.InDelta(t, 250.00, charge, 0.001)
	assert.InDelta(t, 2250.00, base-charge, 0.001)
}

func TestCancellationCharge_Refund5DaysOut(t *testing.T) {
	base := 2500.00
	charge := CancellationCharge(base, travelIn(5), policyNow)

	assert.InDelta(t, 1875.00, charge, 0.001)
	assert.InDelta(t, 625.00, base-charge, 0.001)
}

func TestCancellationCharge_MissingTravelDateFallsBackTo25Percent(t *testing.T) {
	charge := CancellationCharge(2000.00, time.Time{}, policyNow)
	assert.InDelta(t, 500.00, charge, 0.001)
}

func TestCancellationCharge_IgnoresTimeOfDay(t *testing.T) {
	// Travel just after midnight 31 days ahead still counts as 31 whole days.
	travel := time.Date(2026, 4, 1, 0, 5, 0, 0, time.UTC)
	charge := CancellationCharge(1000.00, travel, policyNow)
	assert.InDelta(t, 100.00, charge, 0.001)
}
