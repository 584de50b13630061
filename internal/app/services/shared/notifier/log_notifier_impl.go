package notifier

import (
	"context"
	"uesvalle-service/internal/app/contracts"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/dto/responses"
	"uesvalle-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type logNotifier struct {
	Log *zap.Logger
}

// NewLogNotifier is used when no broker is configured.
func NewLogNotifier(logger *zap.Logger) contracts.Notifier {
	return &logNotifier{Log: logger}
}

func (n *logNotifier) Notify(ctx context.Context, notification *responses.Notification) error {
	utils.LogBusinessEvent(ctx, n.Log, "notification",
		zap.String(constvars.LoggingResourceKey, notification.Resource),
		zap.Any(constvars.LoggingNotificationKey, notification),
	)
	return nil
}
