package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcession_DiscountRates(t *testing.T) {
	assert.Equal(t, 0.0, ConcessionNone.DiscountRate())
	assert.Equal(t, 0.25, ConcessionStudent.DiscountRate())
	assert.Equal(t, 0.13, ConcessionSenior.DiscountRate())
	assert.Equal(t, 0.569, ConcessionCancer.DiscountRate())
}

func TestConcession_StudentDiscountOn2500(t *testing.T) {
	base := 2500.00
	discount := base * ConcessionStudent.DiscountRate()

	assert.InDelta(t, 625.00, discount, 0.001)
	assert.InDelta(t, 1875.00, base-discount, 0.001)
}

func TestConcession_Valid(t *testing.T) {
	assert.True(t, ConcessionNone.Valid())
	assert.True(t, ConcessionSenior.Valid())
	assert.False(t, Concession("VIP").Valid())
}

func TestSeatPreference_Valid(t *testing.T) {
	assert.True(t, PreferenceAny.Valid())
	assert.True(t, PreferenceWindow.Valid())
	assert.True(t, PreferenceAisle.Valid())
	assert.False(t, SeatPreference("Middle").Valid())
}
