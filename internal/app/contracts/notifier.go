package contracts

import (
	"context"
	"uesvalle-service/internal/pkg/dto/responses"
)

// Notifier delivers the success and error messages an operator sees after a mutation.
type Notifier interface {
	Notify(ctx context.Context, notification *responses.Notification) error
}
