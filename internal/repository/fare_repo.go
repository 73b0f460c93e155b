package repository

import (
	"context"

	"github.com/skyledger/reservation-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FareRepository interface {
	Upsert(ctx context.Context, fare *models.Fare) error
	FindByFlightAndClass(ctx context.Context, flightCode string, class models.CabinClass) (*models.Fare, error)
}

type fareRepository struct {
	db *gorm.DB
}

func NewFareRepository(db *gorm.DB) FareRepository {
	return &fareRepository{db: db}
}

// Upsert inserts the fare or updates the amount on conflict with the
// (flight, class) unique index.
func (r *fareRepository) Upsert(ctx context.Context, fare *models.Fare) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "flight_code"}, {Name: "class"}},
		DoUpdates: clause.AssignmentColumns([]string{"base_fare", "updated_at"}),
	}).Create(fare).Error
}

func (r *fareRepository) FindByFlightAndClass(ctx context.Context, flightCode string, class models.CabinClass) (*models.Fare, error) {
	var fare models.Fare
	if err := r.db.WithContext(ctx).
		Where("flight_code = ? AND class = ?", flightCode, class).
		First(&fare).Error; err != nil {
		return nil, err
	}
	return &fare, nil
}
