package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/skyledger/reservation-service/internal/dto"
	"github.com/skyledger/reservation-service/internal/models"
	"github.com/skyledger/reservation-service/internal/service"
)

type ReservationHandler struct {
	svc service.ReservationService
}

func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func (h *ReservationHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/reservations", h.CreateReservation)
	e.GET("/api/v1/reservations/:pnr", h.GetReservation)
	e.DELETE("/api/v1/reservations/:pnr", h.CancelReservation)
	e.GET("/api/v1/flights/:code/reservations", h.ListReservations)
	e.GET("/api/v1/cancellations", h.ListCancellations)
}

func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req dto.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.FlightCode == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "flight_code is required")
	}
	if req.CustomerRef == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "customer_ref is required")
	}

	class := models.CabinClass(req.Class)
	if req.Class == "" {
		class = models.ClassEconomy
	}
	if !class.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "class must be Economy or Business")
	}

	preference := models.SeatPreference(req.SeatPreference)
	if req.SeatPreference == "" {
		preference = models.PreferenceAny
	}
	if !preference.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "seat_preference must be Any, Window or Aisle")
	}

	concession := models.Concession(req.Concession)
	if req.Concession == "" {
		concession = models.ConcessionNone
	}
	if !concession.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown concession type")
	}

	var travelDate time.Time
	if req.TravelDate != "" {
		parsed, err := time.Parse("2006-01-02", req.TravelDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "travel_date must be YYYY-MM-DD")
		}
		travelDate = parsed
	}

	reservation, err := h.svc.CreateReservation(c.Request().Context(), service.CreateReservationInput{
		FlightCode:     req.FlightCode,
		CustomerRef:    req.CustomerRef,
		Class:          class,
		SeatPreference: preference,
		Concession:     concession,
		TravelDate:     travelDate,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *ReservationHandler) GetReservation(c echo.Context) error {
	pnr := c.Param("pnr")
	reservation, err := h.svc.GetReservation(c.Request().Context(), pnr)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *ReservationHandler) CancelReservation(c echo.Context) error {
	pnr := c.Param("pnr")
	record, err := h.svc.CancelReservation(c.Request().Context(), pnr)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToCancellationResponse(record))
}

func (h *ReservationHandler) ListReservations(c echo.Context) error {
	code := c.Param("code")

	var status *models.ReservationStatus
	if s := c.QueryParam("status"); s != "" {
		rs := models.ReservationStatus(s)
		if rs != models.StatusConfirmed && rs != models.StatusCancelled {
			return echo.NewHTTPError(http.StatusBadRequest, "status must be Confirmed or Cancelled")
		}
		status = &rs
	}

	reservations, err := h.svc.ListReservations(c.Request().Context(), code, status)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.ReservationResponse, len(reservations))
	for i, r := range reservations {
		resp[i] = dto.ToReservationResponse(&r)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) ListCancellations(c echo.Context) error {
	records, err := h.svc.ListCancellations(c.Request().Context(), c.QueryParam("pnr"))
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.CancellationResponse, len(records))
	for i, rec := range records {
		resp[i] = dto.ToCancellationResponse(&rec)
	}
	return c.JSON(http.StatusOK, resp)
}

// toHTTPError maps ledger errors onto HTTP codes.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, service.ErrFlightNotFound),
		errors.Is(err, service.ErrReservationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidRoute):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNoSeatsAvailable),
		errors.Is(err, service.ErrAlreadyCancelled),
		errors.Is(err, service.ErrInconsistentState):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrBusy):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
