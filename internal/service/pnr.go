package service

import (
	"strings"

	"github.com/google/uuid"
)

// NewPNR generates a PNR candidate: "PNR" plus ten uppercase characters from
// a fresh UUID. Candidates are checked against the reservations table (which
// also carries a unique index on pnr) and regenerated on collision, so PNRs
// are unique across every reservation ever created.
func NewPNR() string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "PNR" + strings.ToUpper(token[:10])
}
