//go:build integration

package integration

import (
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/skyledger/reservation-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5434"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "reservation_test_db"),
	)

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	dropTables()

	if err := testDB.AutoMigrate(
		&models.Flight{},
		&models.SeatAllocation{},
		&models.Fare{},
		&models.Reservation{},
		&models.CancellationRecord{},
	); err != nil {
		log.Fatalf("failed to auto-migrate test database: %v", err)
	}

	testDB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_seat_owner
		ON seat_allocations (flight_code, pnr)
		WHERE pnr IS NOT NULL
	`)

	code := m.Run()

	dropTables()

	os.Exit(code)
}

func dropTables() {
	testDB.Exec("DROP TABLE IF EXISTS cancellation_records")
	testDB.Exec("DROP TABLE IF EXISTS reservations")
	testDB.Exec("DROP TABLE IF EXISTS fares")
	testDB.Exec("DROP TABLE IF EXISTS seat_allocations")
	testDB.Exec("DROP TABLE IF EXISTS flights")
}

func cleanTables() {
	testDB.Exec("DELETE FROM cancellation_records")
	testDB.Exec("DELETE FROM reservations")
	testDB.Exec("DELETE FROM fares")
	testDB.Exec("DELETE FROM seat_allocations")
	testDB.Exec("DELETE FROM flights")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
