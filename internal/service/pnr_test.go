package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPNR_Format(t *testing.T) {
	pnr := NewPNR()

	assert.True(t, strings.HasPrefix(pnr, "PNR"))
	assert.Len(t, pnr, 13)
	assert.Equal(t, strings.ToUpper(pnr), pnr)
}

func TestNewPNR_NoCollisionsInPractice(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		pnr := NewPNR()
		_, dup := seen[pnr]
		assert.False(t, dup, "duplicate PNR %s", pnr)
		seen[pnr] = struct{}{}
	}
}
