package dto

type CreateFlightRequest struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Source        string `json:"source"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	EconomySeats  int    `json:"economy_seats"`
	BusinessSeats int    `json:"business_seats"`
}

type CreateReservationRequest struct {
	FlightCode     string `json:"flight_code"`
	CustomerRef    string `json:"customer_ref"`
	Class          string `json:"class"`
	SeatPreference string `json:"seat_preference"`
	Concession     string `json:"concession"`
	TravelDate     string `json:"travel_date"` // YYYY-MM-DD
}

type SetFareRequest struct {
	Class    string  `json:"class"`
	BaseFare float64 `json:"base_fare"`
}
