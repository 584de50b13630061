package utils

import (
	"fmt"
	"time"
	"uesvalle-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}

func GenerateExportFileName(format string, at time.Time) string {
	return fmt.Sprintf(format, at.Format("2006-01-02"))
}

// GenerateExportObjectName sorts lexically in creation order.
func GenerateExportObjectName(at time.Time) string {
	return fmt.Sprintf("%sexportacion_%s.xlsx", constvars.ExportArchiveObjectPrefix, at.UTC().Format("20060102T150405Z"))
}
