package repository

import (
	"context"

	"github.com/skyledger/reservation-service/internal/models"
	"gorm.io/gorm"
)

type CancellationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, record *models.CancellationRecord) error
	List(ctx context.Context, pnr string) ([]models.CancellationRecord, error)
}

type cancellationRepository struct {
	db *gorm.DB
}

func NewCancellationRepository(db *gorm.DB) CancellationRepository {
	return &cancellationRepository{db: db}
}

func (r *cancellationRepository) Create(ctx context.Context, tx *gorm.DB, record *models.CancellationRecord) error {
	return tx.WithContext(ctx).Create(record).Error
}

func (r *cancellationRepository) List(ctx context.Context, pnr string) ([]models.CancellationRecord, error) {
	var records []models.CancellationRecord
	q := r.db.WithContext(ctx)
	if pnr != "" {
		q = q.Where("pnr = ?", pnr)
	}
	if err := q.Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
