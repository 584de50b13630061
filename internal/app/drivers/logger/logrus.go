package logger

import (
	"os"
	"uesvalle-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the logger used by the migration command.
func NewLogrusLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()
	if level, err := logrus.ParseLevel(driverConfig.Logger.Level); err == nil {
		logger.SetLevel(level)
	}

	if internalConfig.App.Env != "production" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return logger
	}

	logger.SetFormatter(&logrus.JSONFormatter{})
	file, err := os.OpenFile("migration.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		logger.Info("Failed to log to file, using default stderr")
		return logger
	}
	logger.SetOutput(file)
	return logger
}
