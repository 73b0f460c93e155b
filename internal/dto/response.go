package dto

import (
	"time"

	"github.com/skyledger/reservation-service/internal/models"
	"github.com/skyledger/reservation-service/internal/service"
)

type ReservationResponse struct {
	PNR            string                   `json:"pnr"`
	FlightCode     string                   `json:"flight_code"`
	CustomerRef    string                   `json:"customer_ref"`
	Class          models.CabinClass        `json:"class"`
	SeatNumber     string                   `json:"seat_number"`
	SeatPreference models.SeatPreference    `json:"seat_preference"`
	BaseFare       float64                  `json:"base_fare"`
	DiscountAmount float64                  `json:"discount_amount"`
	FinalFare      float64                  `json:"final_fare"`
	Concession     models.Concession        `json:"concession"`
	Status         models.ReservationStatus `json:"status"`
	TravelDate     string                   `json:"travel_date"`
	CreatedAt      time.Time                `json:"created_at"`
}

type CancellationResponse struct {
	PNR                string            `json:"pnr"`
	FlightCode         string            `json:"flight_code"`
	Class              models.CabinClass `json:"class"`
	BaseAmount         float64           `json:"base_amount"`
	CancellationCharge float64           `json:"cancellation_charge"`
	RefundAmount       float64           `json:"refund_amount"`
	Reason             string            `json:"reason"`
	CancelledAt        time.Time         `json:"cancelled_at"`
}

type FlightResponse struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Route         string `json:"route"`
	Source        string `json:"source"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	EconomySeats  int    `json:"economy_seats"`
	BusinessSeats int    `json:"business_seats"`
	IsActive      bool   `json:"is_active"`
}

type FlightSearchResponse struct {
	Code           string            `json:"code"`
	Name           string            `json:"name"`
	Source         string            `json:"source"`
	Destination    string            `json:"destination"`
	DepartureTime  string            `json:"departure_time"`
	ArrivalTime    string            `json:"arrival_time"`
	Class          models.CabinClass `json:"class"`
	AvailableSeats int               `json:"available_seats"`
	BaseFare       float64           `json:"base_fare"`
}

type FlightStatusResponse struct {
	Code              string  `json:"code"`
	Name              string  `json:"name"`
	Source            string  `json:"source"`
	Destination       string  `json:"destination"`
	IsActive          bool    `json:"is_active"`
	EconomySeats      int     `json:"economy_seats"`
	EconomyBooked     int     `json:"economy_booked"`
	EconomyAvailable  int     `json:"economy_available"`
	EconomyFare       float64 `json:"economy_fare"`
	BusinessSeats     int     `json:"business_seats"`
	BusinessBooked    int     `json:"business_booked"`
	BusinessAvailable int     `json:"business_available"`
	BusinessFare      float64 `json:"business_fare"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToReservationResponse(r *models.Reservation) ReservationResponse {
	travelDate := ""
	if !r.TravelDate.IsZero() {
		travelDate = r.TravelDate.Format("2006-01-02")
	}
	return ReservationResponse{
		PNR:            r.PNR,
		FlightCode:     r.FlightCode,
		CustomerRef:    r.CustomerRef,
		Class:          r.Class,
		SeatNumber:     r.SeatNumber,
		SeatPreference: r.SeatPreference,
		BaseFare:       r.BaseFare,
		DiscountAmount: r.DiscountAmount,
		FinalFare:      r.FinalFare,
		Concession:     r.Concession,
		Status:         r.Status,
		TravelDate:     travelDate,
		CreatedAt:      r.CreatedAt,
	}
}

func ToCancellationResponse(rec *models.CancellationRecord) CancellationResponse {
	return CancellationResponse{
		PNR:                rec.PNR,
		FlightCode:         rec.FlightCode,
		Class:              rec.Class,
		BaseAmount:         rec.BaseAmount,
		CancellationCharge: rec.CancellationCharge,
		RefundAmount:       rec.RefundAmount,
		Reason:             rec.Reason,
		CancelledAt:        rec.CreatedAt,
	}
}

func ToFlightResponse(f *models.Flight) FlightResponse {
	return FlightResponse{
		Code:          f.Code,
		Name:          f.Name,
		Route:         f.Route,
		Source:        f.Source,
		Destination:   f.Destination,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		EconomySeats:  f.EconomySeats,
		BusinessSeats: f.BusinessSeats,
		IsActive:      f.IsActive,
	}
}

func ToFlightSearchResponse(fa service.FlightAvailability) FlightSearchResponse {
	return FlightSearchResponse{
		Code:           fa.Flight.Code,
		Name:           fa.Flight.Name,
		Source:         fa.Flight.Source,
		Destination:    fa.Flight.Destination,
		DepartureTime:  fa.Flight.DepartureTime,
		ArrivalTime:    fa.Flight.ArrivalTime,
		Class:          fa.Class,
		AvailableSeats: fa.AvailableSeats,
		BaseFare:       fa.BaseFare,
	}
}

func ToFlightStatusResponse(st *service.FlightStatus) FlightStatusResponse {
	return FlightStatusResponse{
		Code:              st.Flight.Code,
		Name:              st.Flight.Name,
		Source:            st.Flight.Source,
		Destination:       st.Flight.Destination,
		IsActive:          st.Flight.IsActive,
		EconomySeats:      st.Flight.EconomySeats,
		EconomyBooked:     st.Flight.EconomyBooked,
		EconomyAvailable:  st.EconomyAvailable,
		EconomyFare:       st.EconomyFare,
		BusinessSeats:     st.Flight.BusinessSeats,
		BusinessBooked:    st.Flight.BusinessBooked,
		BusinessAvailable: st.BusinessAvailable,
		BusinessFare:      st.BusinessFare,
	}
}
