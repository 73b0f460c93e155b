package repository

import (
	"context"

	"github.com/skyledger/reservation-service/internal/models"
	"gorm.io/gorm"
)

type ReservationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error
	FindByPNR(ctx context.Context, pnr string) (*models.Reservation, error)
	FindByPNRTx(ctx context.Context, tx *gorm.DB, pnr string) (*models.Reservation, error)
	FindByFlight(ctx context.Context, flightCode string, status *models.ReservationStatus) ([]models.Reservation, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, pnr string, status models.ReservationStatus) error
	PNRExists(ctx context.Context, tx *gorm.DB, pnr string) (bool, error)
	GetDB() *gorm.DB
}

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *reservationRepository) Create(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error {
	return tx.WithContext(ctx).Create(reservation).Error
}

func (r *reservationRepository) FindByPNR(ctx context.Context, pnr string) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.WithContext(ctx).Where("pnr = ?", pnr).First(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// FindByPNRTx reads the reservation through the transaction. Callers holding
// the flight row lock use this to observe the status committed by any
// cancellation that held the lock before them.
func (r *reservationRepository) FindByPNRTx(ctx context.Context, tx *gorm.DB, pnr string) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := tx.WithContext(ctx).Where("pnr = ?", pnr).First(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) FindByFlight(ctx context.Context, flightCode string, status *models.ReservationStatus) ([]models.Reservation, error) {
	var reservations []models.Reservation
	q := r.db.WithContext(ctx).Where("flight_code = ?", flightCode)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Order("id ASC").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, pnr string, status models.ReservationStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("pnr = ?", pnr).
		Update("status", status).Error
}

func (r *reservationRepository) PNRExists(ctx context.Context, tx *gorm.DB, pnr string) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("pnr = ?", pnr).
		Count(&count).Error
	return count > 0, err
}
