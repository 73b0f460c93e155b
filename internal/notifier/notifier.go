package notifier

import (
	"log"
	"time"

	"github.com/skyledger/reservation-service/internal/models"
)

const (
	RoutingKeyCreated   = "reservation.created"
	RoutingKeyCancelled = "reservation.cancelled"
)

// Publisher is the broker-facing side, satisfied by rabbitmq.Publisher.
type Publisher interface {
	Publish(routingKey string, payload any) error
}

// Notifier emits reservation lifecycle events for out-of-scope collaborators
// (ticket rendering, receipts). A nil Notifier or nil publisher skips
// publishing; delivery failures are logged, never surfaced to the booking
// caller.
type Notifier struct {
	pub Publisher
}

func New(pub Publisher) *Notifier {
	return &Notifier{pub: pub}
}

type ReservationEvent struct {
	PNR            string    `json:"pnr"`
	FlightCode     string    `json:"flight_code"`
	CustomerRef    string    `json:"customer_ref"`
	Class          string    `json:"class"`
	SeatNumber     string    `json:"seat_number"`
	BaseFare       float64   `json:"base_fare"`
	DiscountAmount float64   `json:"discount_amount"`
	FinalFare      float64   `json:"final_fare"`
	TravelDate     time.Time `json:"travel_date"`
}

type CancellationEvent struct {
	PNR                string  `json:"pnr"`
	FlightCode         string  `json:"flight_code"`
	Class              string  `json:"class"`
	BaseAmount         float64 `json:"base_amount"`
	CancellationCharge float64 `json:"cancellation_charge"`
	RefundAmount       float64 `json:"refund_amount"`
	Reason             string  `json:"reason"`
}

func (n *Notifier) ReservationCreated(r *models.Reservation) {
	if n == nil || n.pub == nil {
		return
	}
	event := ReservationEvent{
		PNR:            r.PNR,
		FlightCode:     r.FlightCode,
		CustomerRef:    r.CustomerRef,
		Class:          string(r.Class),
		SeatNumber:     r.SeatNumber,
		BaseFare:       r.BaseFare,
		DiscountAmount: r.DiscountAmount,
		FinalFare:      r.FinalFare,
		TravelDate:     r.TravelDate,
	}
	if err := n.pub.Publish(RoutingKeyCreated, event); err != nil {
		log.Printf("[Notifier] failed to publish %s for %s: %v", RoutingKeyCreated, r.PNR, err)
	}
}

func (n *Notifier) ReservationCancelled(rec *models.CancellationRecord) {
	if n == nil || n.pub == nil {
		return
	}
	event := CancellationEvent{
		PNR:                rec.PNR,
		FlightCode:         rec.FlightCode,
		Class:              string(rec.Class),
		BaseAmount:         rec.BaseAmount,
		CancellationCharge: rec.CancellationCharge,
		RefundAmount:       rec.RefundAmount,
		Reason:             rec.Reason,
	}
	if err := n.pub.Publish(RoutingKeyCancelled, event); err != nil {
		log.Printf("[Notifier] failed to publish %s for %s: %v", RoutingKeyCancelled, rec.PNR, err)
	}
}
