package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/skyledger/reservation-service/internal/dto"
	"github.com/skyledger/reservation-service/internal/models"
	"github.com/skyledger/reservation-service/internal/service"
)

type FlightHandler struct {
	svc service.FlightService
}

func NewFlightHandler(svc service.FlightService) *FlightHandler {
	return &FlightHandler{svc: svc}
}

func (h *FlightHandler) RegisterRoutes(e *echo.Echo) {
	flights := e.Group("/api/v1/flights")
	flights.POST("", h.CreateFlight)
	flights.GET("", h.SearchFlights)
	flights.GET("/:code/status", h.GetFlightStatus)
	flights.PUT("/:code/fares", h.SetFare)
	flights.DELETE("/:code", h.DeactivateFlight)
}

func (h *FlightHandler) CreateFlight(c echo.Context) error {
	var req dto.CreateFlightRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "code is required")
	}
	if req.Source == "" || req.Destination == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "source and destination are required")
	}
	if req.Source == req.Destination {
		return echo.NewHTTPError(http.StatusBadRequest, service.ErrInvalidRoute.Error())
	}
	if req.EconomySeats < 0 || req.BusinessSeats < 0 || req.EconomySeats+req.BusinessSeats == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "flight needs at least one seat")
	}

	flight := &models.Flight{
		Code:          req.Code,
		Name:          req.Name,
		Source:        req.Source,
		Destination:   req.Destination,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		EconomySeats:  req.EconomySeats,
		BusinessSeats: req.BusinessSeats,
	}
	if err := h.svc.CreateFlight(c.Request().Context(), flight); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToFlightResponse(flight))
}

func (h *FlightHandler) SearchFlights(c echo.Context) error {
	class := models.CabinClass(c.QueryParam("class"))
	if c.QueryParam("class") == "" {
		class = models.ClassEconomy
	}
	if !class.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "class must be Economy or Business")
	}

	results, err := h.svc.SearchFlights(c.Request().Context(), c.QueryParam("source"), c.QueryParam("destination"), class)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.FlightSearchResponse, len(results))
	for i, fa := range results {
		resp[i] = dto.ToFlightSearchResponse(fa)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *FlightHandler) GetFlightStatus(c echo.Context) error {
	status, err := h.svc.GetFlightStatus(c.Request().Context(), c.Param("code"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToFlightStatusResponse(status))
}

func (h *FlightHandler) SetFare(c echo.Context) error {
	var req dto.SetFareRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	class := models.CabinClass(req.Class)
	if !class.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "class must be Economy or Business")
	}
	if req.BaseFare <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "base_fare must be positive")
	}

	if err := h.svc.SetFare(c.Request().Context(), c.Param("code"), class, req.BaseFare); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *FlightHandler) DeactivateFlight(c echo.Context) error {
	if err := h.svc.DeactivateFlight(c.Request().Context(), c.Param("code")); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deactivated"})
}
