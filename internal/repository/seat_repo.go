package repository

import (
	"context"

	"github.com/skyledger/reservation-service/internal/models"
	"gorm.io/gorm"
)

type SeatRepository interface {
	CreateBulk(ctx context.Context, tx *gorm.DB, seats []models.SeatAllocation) error
	FindFree(ctx context.Context, tx *gorm.DB, flightCode string, class models.CabinClass, preference models.SeatPreference) (*models.SeatAllocation, error)
	CountFree(ctx context.Context, tx *gorm.DB, flightCode string, class models.CabinClass) (int64, error)
	Assign(ctx context.Context, tx *gorm.DB, seatID uint, pnr string) error
	ReleaseByPNR(ctx context.Context, tx *gorm.DB, flightCode, pnr string) (int64, error)
	FindByFlight(ctx context.Context, flightCode string) ([]models.SeatAllocation, error)
}

type seatRepository struct {
	db *gorm.DB
}

func NewSeatRepository(db *gorm.DB) SeatRepository {
	return &seatRepository{db: db}
}

func (r *seatRepository) CreateBulk(ctx context.Context, tx *gorm.DB, seats []models.SeatAllocation) error {
	if len(seats) == 0 {
		return nil
	}
	return tx.WithContext(ctx).CreateInBatches(seats, 200).Error
}

// FindFree returns one free seat for the flight and class. A Window or Aisle
// preference restricts the search to seats in that position; callers fall
// back to an unrestricted search themselves. Ordering by seat number keeps
// allocation deterministic.
func (r *seatRepository) FindFree(ctx context.Context, tx *gorm.DB, flightCode string, class models.CabinClass, preference models.SeatPreference) (*models.SeatAllocation, error) {
	var seat models.SeatAllocation
	q := tx.WithContext(ctx).
		Where("flight_code = ? AND class = ? AND is_available = ?", flightCode, class, true)
	switch preference {
	case models.PreferenceWindow:
		q = q.Where("is_window = ?", true)
	case models.PreferenceAisle:
		q = q.Where("is_aisle = ?", true)
	}
	if err := q.Order("seat_number ASC").First(&seat).Error; err != nil {
		return nil, err
	}
	return &seat, nil
}

func (r *seatRepository) CountFree(ctx context.Context, tx *gorm.DB, flightCode string, class models.CabinClass) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.SeatAllocation{}).
		Where("flight_code = ? AND class = ? AND is_available = ?", flightCode, class, true).
		Count(&count).Error
	return count, err
}

func (r *seatRepository) Assign(ctx context.Context, tx *gorm.DB, seatID uint, pnr string) error {
	return tx.WithContext(ctx).
		Model(&models.SeatAllocation{}).
		Where("id = ?", seatID).
		Updates(map[string]interface{}{"is_available": false, "pnr": pnr}).Error
}

// ReleaseByPNR frees the seat owned by the PNR and reports how many rows
// changed; zero means the PNR holds no seat on the flight.
func (r *seatRepository) ReleaseByPNR(ctx context.Context, tx *gorm.DB, flightCode, pnr string) (int64, error) {
	result := tx.WithContext(ctx).
		Model(&models.SeatAllocation{}).
		Where("flight_code = ? AND pnr = ? AND is_available = ?", flightCode, pnr, false).
		Updates(map[string]interface{}{"is_available": true, "pnr": nil})
	return result.RowsAffected, result.Error
}

func (r *seatRepository) FindByFlight(ctx context.Context, flightCode string) ([]models.SeatAllocation, error) {
	var seats []models.SeatAllocation
	err := r.db.WithContext(ctx).
		Where("flight_code = ?", flightCode).
		Order("seat_number ASC").
		Find(&seats).Error
	return seats, err
}
