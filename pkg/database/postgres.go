package database

import (
	"log"

	"github.com/skyledger/reservation-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Flight{},
		&models.SeatAllocation{},
		&models.Fare{},
		&models.Reservation{},
		&models.CancellationRecord{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Partial unique index: a PNR holds at most one seat per flight
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_seat_owner
		ON seat_allocations (flight_code, pnr)
		WHERE pnr IS NOT NULL
	`)

	return db
}
