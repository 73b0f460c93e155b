package repository

import (
	"context"
	"fmt"

	"github.com/skyledger/reservation-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FlightRepository interface {
	Create(ctx context.Context, tx *gorm.DB, flight *models.Flight) error
	FindByCode(ctx context.Context, code string) (*models.Flight, error)
	FindByCodeForUpdate(ctx context.Context, tx *gorm.DB, code string) (*models.Flight, error)
	SearchActive(ctx context.Context, source, destination string) ([]models.Flight, error)
	IncrementBooked(ctx context.Context, tx *gorm.DB, code string, class models.CabinClass, delta int) error
	Deactivate(ctx context.Context, code string) error
	GetDB() *gorm.DB
}

type flightRepository struct {
	db *gorm.DB
}

func NewFlightRepository(db *gorm.DB) FlightRepository {
	return &flightRepository{db: db}
}

func (r *flightRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *flightRepository) Create(ctx context.Context, tx *gorm.DB, flight *models.Flight) error {
	return tx.WithContext(ctx).Create(flight).Error
}

func (r *flightRepository) FindByCode(ctx context.Context, code string) (*models.Flight, error) {
	var flight models.Flight
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&flight).Error; err != nil {
		return nil, err
	}
	return &flight, nil
}

// FindByCodeForUpdate acquires a row-level lock on the flight within the given
// transaction. All booked-count, seat-pool and reservation mutations for a
// flight happen under this lock, which serializes writers per flight.
func (r *flightRepository) FindByCodeForUpdate(ctx context.Context, tx *gorm.DB, code string) (*models.Flight, error) {
	var flight models.Flight
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("code = ?", code).
		First(&flight).Error; err != nil {
		return nil, err
	}
	return &flight, nil
}

func (r *flightRepository) SearchActive(ctx context.Context, source, destination string) ([]models.Flight, error) {
	var flights []models.Flight
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if source != "" {
		q = q.Where("source = ?", source)
	}
	if destination != "" {
		q = q.Where("destination = ?", destination)
	}
	if err := q.Order("code ASC").Find(&flights).Error; err != nil {
		return nil, err
	}
	return flights, nil
}

func (r *flightRepository) IncrementBooked(ctx context.Context, tx *gorm.DB, code string, class models.CabinClass, delta int) error {
	column := "economy_booked"
	if class == models.ClassBusiness {
		column = "business_booked"
	}
	result := tx.WithContext(ctx).
		Model(&models.Flight{}).
		Where("code = ?", code).
		Update(column, gorm.Expr(column+" + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("flight %s: booked count update affected no rows", code)
	}
	return nil
}

func (r *flightRepository) Deactivate(ctx context.Context, code string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Flight{}).
		Where("code = ?", code).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
