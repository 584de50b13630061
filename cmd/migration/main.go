package main

import (
	"flag"
	"os"
	"path/filepath"
	"uesvalle-service/internal/app/config"
	"uesvalle-service/internal/app/drivers/database"
	"uesvalle-service/internal/app/drivers/logger"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	steps := flag.Int("steps", 0, "maximum migrations to apply, 0 applies all")
	flag.Parse()

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(driverConfig, internalConfig)

	migrateDirection := migrate.Up
	switch *direction {
	case "up":
	case "down":
		migrateDirection = migrate.Down
	default:
		log.Fatalf("Unknown migration direction %q", *direction)
	}

	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("Error getting working directory: %v", err)
	}

	db := database.NewPostgresDB(driverConfig)
	defer db.Close()

	migrations := &migrate.FileMigrationSource{
		Dir: filepath.Join(wd, "internal/migration"),
	}

	n, err := migrate.ExecMax(db, "postgres", migrations, migrateDirection, *steps)
	if err != nil {
		log.WithError(err).Fatal("Error executing migration")
	}

	log.WithFields(logrus.Fields{
		"direction": *direction,
		"applied":   n,
	}).Info("Migrations applied")
}
