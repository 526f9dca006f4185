// Command sweep runs the offline integrity sweep: it removes task, note
// and activity rows whose parent no longer exists, then prints a
// per-class report. It is meant to be run while the API is quiesced.
package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/iinterntechnologies-oss/crm-tool/internal/config"
	"github.com/iinterntechnologies-oss/crm-tool/internal/integrity"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	db, err := gorm.Open(postgres.Open(cfg.GetDatabaseDSN()), &gorm.Config{})
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}

	sweeper := integrity.NewSweeper(db, logger)
	report, err := sweeper.Run(context.Background())

	// Print whatever committed, even on failure
	fmt.Printf("tasks deleted:      %d\n", report.TasksDeleted)
	fmt.Printf("notes deleted:      %d\n", report.NotesDeleted)
	fmt.Printf("activities deleted: %d\n", report.ActivitiesDeleted)
	fmt.Printf("total:              %d\n", report.Total())

	if err != nil {
		logger.WithError(err).Fatal("Integrity sweep failed")
	}
}
