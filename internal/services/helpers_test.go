package services

import (
	"testing"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
	"github.com/iinterntechnologies-oss/crm-tool/internal/repository"
)

// newTestDB opens an in-memory SQLite database with foreign key
// enforcement on, so the cascade constraints behave like Postgres.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enabling foreign keys: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Lead{},
		&models.Client{},
		&models.Customer{},
		&models.Goal{},
		&models.Task{},
		&models.Note{},
		&models.Activity{},
	)
	if err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newTestActivityService(db *gorm.DB) *ActivityService {
	return NewActivityService(repository.NewActivityRepository(db), nil, newTestLogger())
}
