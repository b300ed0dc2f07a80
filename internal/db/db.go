package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/clippercuts/booking-api/internal/config"
	"github.com/clippercuts/booking-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Barber{},
		&models.BarberSchedule{},
		&models.Service{},
		&models.SpecialDate{},
		&models.Booking{},
		&models.Testimonial{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// One non-cancelled booking per (barber, date, time). Cancelled rows are
	// excluded so their slot can be rebooked immediately.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_slot
        ON bookings (barber_id, date, time)
        WHERE status <> 'cancelled'
    `)

	return db
}
