package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Registers the pure-Go "sqlite" driver used below.
	_ "modernc.org/sqlite"

	"hotelbooking/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate brings the schema up to date for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Hotel{},
		&domain.Room{},
		&domain.Booking{},
		&domain.Payment{},
		&domain.SupportTicket{},
	)
}
