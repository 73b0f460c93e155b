package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/skyledger/reservation-service/internal/dto"
	"github.com/skyledger/reservation-service/internal/models"
	"github.com/skyledger/reservation-service/internal/service"
	"github.com/stretchr/testify/assert"
)

// --- Mock FlightService ---

type mockFlightService struct {
	createFn     func(ctx context.Context, flight *models.Flight) error
	searchFn     func(ctx context.Context, source, destination string, class models.CabinClass) ([]service.FlightAvailability, error)
	statusFn     func(ctx context.Context, code string) (*service.FlightStatus, error)
	setFareFn    func(ctx context.Context, code string, class models.CabinClass, amount float64) error
	deactivateFn func(ctx context.Context, code string) error
}

func (m *mockFlightService) CreateFlight(ctx context.Context, flight *models.Flight) error {
	return m.createFn(ctx, flight)
}
func (m *mockFlightService) SearchFlights(ctx context.Context, source, destination string, class models.CabinClass) ([]service.FlightAvailability, error) {
	return m.searchFn(ctx, source, destination, class)
}
func (m *mockFlightService) GetFlightStatus(ctx context.Context, code string) (*service.FlightStatus, error) {
	return m.statusFn(ctx, code)
}
func (m *mockFlightService) SetFare(ctx context.Context, code string, class models.CabinClass, amount float64) error {
	return m.setFareFn(ctx, code, class, amount)
}
func (m *mockFlightService) DeactivateFlight(ctx context.Context, code string) error {
	return m.deactivateFn(ctx, code)
}

// --- Tests ---

func TestCreateFlight_Handler_Success(t *testing.T) {
	svc := &mockFlightService{
		createFn: func(ctx context.Context, flight *models.Flight) error {
			flight.ID = 1
			flight.IsActive = true
			return nil
		},
	}

	e := echo.New()
	body := `{"code":"AE101","name":"Maseru Express","source":"Maseru","destination":"Johannesburg","economy_seats":150,"business_seats":20}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/flights", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewFlightHandler(svc)
	err := h.CreateFlight(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.FlightResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "AE101", resp.Code)
	assert.Equal(t, 150, resp.EconomySeats)
	assert.True(t, resp.IsActive)
}

func TestCreateFlight_Handler_NoSeats(t *testing.T) {
	e := echo.New()
	body := `{"code":"AE101","source":"Maseru","destination":"Johannesburg","economy_seats":0,"business_seats":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/flights", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewFlightHandler(nil)
	err := h.CreateFlight(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateFlight_Handler_SameSourceAndDestination(t *testing.T) {
	e := echo.New()
	body := `{"code":"AE101","source":"Maseru","destination":"Maseru","economy_seats":100}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/flights", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewFlightHandler(nil)
	err := h.CreateFlight(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestSearchFlights_Handler_Success(t *testing.T) {
	svc := &mockFlightService{
		searchFn: func(ctx context.Context, source, destination string, class models.CabinClass) ([]service.FlightAvailability, error) {
			return []service.FlightAvailability{
				{
					Flight:         models.Flight{Code: "AE101", Source: source, Destination: destination},
					Class:          class,
					AvailableSeats: 138,
					BaseFare:       2500.00,
				},
			}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/flights?source=Maseru&destination=Johannesburg&class=Economy", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewFlightHandler(svc)
	err := h.SearchFlights(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.FlightSearchResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, 138, resp[0].AvailableSeats)
	assert.Equal(t, 2500.00, resp[0].BaseFare)
}

func TestSearchFlights_Handler_InvalidRoute(t *testing.T) {
	svc := &mockFlightService{
		searchFn: func(ctx context.Context, source, destination string, class models.CabinClass) ([]service.FlightAvailability, error) {
			return nil, service.ErrInvalidRoute
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/flights?source=Maseru&destination=Maseru", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewFlightHandler(svc)
	err := h.SearchFlights(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestGetFlightStatus_Handler_NotFound(t *testing.T) {
	svc := &mockFlightService{
		statusFn: func(ctx context.Context, code string) (*service.FlightStatus, error) {
			return nil, service.ErrFlightNotFound
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/flights/XX000/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("code")
	c.SetParamValues("XX000")

	h := NewFlightHandler(svc)
	err := h.GetFlightStatus(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestGetFlightStatus_Handler_Success(t *testing.T) {
	svc := &mockFlightService{
		statusFn: func(ctx context.Context, code string) (*service.FlightStatus, error) {
			return &service.FlightStatus{
				Flight: models.Flight{
					Code: code, EconomySeats: 150, EconomyBooked: 1,
					BusinessSeats: 20, IsActive: true,
				},
				EconomyAvailable:  149,
				BusinessAvailable: 20,
				EconomyFare:       2500.00,
				BusinessFare:      4500.00,
			}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/flights/AE101/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("code")
	c.SetParamValues("AE101")

	h := NewFlightHandler(svc)
	err := h.GetFlightStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.FlightStatusResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 149, resp.EconomyAvailable)
	assert.Equal(t, 4500.00, resp.BusinessFare)
}

func TestSetFare_Handler_Success(t *testing.T) {
	var capturedAmount float64
	svc := &mockFlightService{
		setFareFn: func(ctx context.Context, code string, class models.CabinClass, amount float64) error {
			capturedAmount = amount
			return nil
		},
	}

	e := echo.New()
	body := `{"class":"Economy","base_fare":2500}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/flights/AE101/fares", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("code")
	c.SetParamValues("AE101")

	h := NewFlightHandler(svc)
	err := h.SetFare(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2500.00, capturedAmount)
}

func TestSetFare_Handler_NegativeAmount(t *testing.T) {
	e := echo.New()
	body := `{"class":"Economy","base_fare":-10}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/flights/AE101/fares", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("code")
	c.SetParamValues("AE101")

	h := NewFlightHandler(nil)
	err := h.SetFare(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestDeactivateFlight_Handler_Success(t *testing.T) {
	svc := &mockFlightService{
		deactivateFn: func(ctx context.Context, code string) error {
			return nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/flights/AE101", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("code")
	c.SetParamValues("AE101")

	h := NewFlightHandler(svc)
	err := h.DeactivateFlight(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
