package repositories

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nileshdj/inkpost/internal/config"
	"github.com/nileshdj/inkpost/internal/models"
)

// maxOpenConns bounds the shared pool. Handlers waiting on a connection
// block rather than fail.
const maxOpenConns = 5

// Connect opens the Postgres pool, runs migrations, and bounds the pool
// size. TranslateError is on so unique violations surface as
// gorm.ErrDuplicatedKey regardless of driver.
func Connect(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Content{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info().Msg("connected to database")
	return db, nil
}
