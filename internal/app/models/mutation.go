package models

import "uesvalle-service/internal/pkg/dto/responses"

// Mutation is the outcome of a create, update or delete. It is returned
// alongside a backend rejection too, carrying the error notification.
type Mutation struct {
	ID           int64
	Values       map[string]interface{}
	Notification *responses.Notification
}
