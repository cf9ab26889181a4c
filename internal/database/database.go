package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"portfolio/site/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNoDSN is returned when Open is called without a connection string.
var ErrNoDSN = errors.New("database: empty DSN")

var DB *gorm.DB

// NewLogger returns the GORM logger shared by every connection.
func NewLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)
}

// Open connects to the Postgres backend holding the content table.
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, ErrNoDSN
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: NewLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

// Connect initializes the package-level connection.
func Connect(dsn string) error {
	db, err := Open(dsn)
	if err != nil {
		return err
	}
	DB = db
	log.Println("Database connection established.")
	return nil
}

// Migrate creates or aligns the content table. The service never writes rows;
// this only exists so local environments have a table to read from.
func Migrate(db *gorm.DB, table string) error {
	if table == "" {
		table = models.DefaultProjectTable
	}
	if err := db.Table(table).AutoMigrate(&models.Project{}); err != nil {
		return fmt.Errorf("migrate %s: %w", table, err)
	}
	log.Printf("Table %s migrated successfully.", table)
	return nil
}
