package utils

import (
	"context"
	"time"
	"uesvalle-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// RequestIDFromContext returns the request id set by the request id middleware.
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

// SubjectFromContext returns the authenticated operator, empty outside the auth group.
func SubjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(constvars.CONTEXT_SUBJECT_KEY).(string)
	return subject
}

// LogOperation times fn and logs its outcome under the context's request id.
func LogOperation(ctx context.Context, logger *zap.Logger, operation string, fn func(ctx context.Context) error) error {
	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingOperationKey, operation),
	}
	logger.Debug("Operation started", fields...)

	start := time.Now()
	err := fn(ctx)
	fields = append(fields, zap.Duration(constvars.LoggingDurationKey, time.Since(start)))

	if err != nil {
		logger.Error("Operation failed", append(fields, zap.Bool(constvars.LoggingSuccessKey, false), zap.Error(err))...)
		return err
	}
	logger.Info("Operation completed", append(fields, zap.Bool(constvars.LoggingSuccessKey, true))...)
	return nil
}

func LogBusinessEvent(ctx context.Context, logger *zap.Logger, event string, fields ...zap.Field) {
	logger.Info("Business event occurred", eventFields(ctx, event, fields)...)
}

func LogSecurityEvent(ctx context.Context, logger *zap.Logger, event, severity string, fields ...zap.Field) {
	logger.Warn("Security event detected", eventFields(ctx, event, append(fields, zap.String(constvars.LoggingSeverityKey, severity)))...)
}

func eventFields(ctx context.Context, event string, fields []zap.Field) []zap.Field {
	all := make([]zap.Field, 0, len(fields)+3)
	all = append(all,
		zap.String(constvars.LoggingRequestIDKey, RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingEventKey, event),
	)
	if subject := SubjectFromContext(ctx); subject != "" {
		all = append(all, zap.String(constvars.LoggingSubjectKey, subject))
	}
	return append(all, fields...)
}
