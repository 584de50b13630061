package database

import (
	"database/sql"
	"log"
	"uesvalle-service/internal/app/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewGormDB wraps the lib/pq pool so GORM and the migration runner share connections.
func NewGormDB(sqlDB *sql.DB, internalConfig *config.InternalConfig) *gorm.DB {
	logLevel := gormlogger.Warn
	if internalConfig.App.Env == "development" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(logLevel),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		log.Fatalf("Failed to initialize gorm: %s", err.Error())
	}

	log.Println("Successfully initialized gorm")
	return db
}
