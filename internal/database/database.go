package database

import (
	"fmt"
	"time"

	"appleaday/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	connectAttempts = 10
	connectDelay    = time.Second
)

// Connect opens the PostgreSQL database, retrying while the server comes up.
func Connect(dsn string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			logrus.Info("database connected")
			return db, nil
		}
		logrus.WithError(err).Warnf("database unavailable, retrying (%d/%d)", attempt, connectAttempts)
		time.Sleep(connectDelay)
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", connectAttempts, err)
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Energy{},
		&models.Recipe{},
		&models.Tag{},
		&models.Ingredient{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
