package exceptions

import (
	"context"
	"errors"
	"fmt"
	"uesvalle-service/internal/pkg/constvars"

	"github.com/lib/pq"
)

// SQLSTATE classes the console reports back to the operator verbatim.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqNotNullViolation    = "23502"
	pqCheckViolation      = "23514"
)

// ErrPostgres classifies a backend error. Constraint rejections keep the
// backend message as the client message; anything else is a transport failure.
func ErrPostgres(err error, devMessage string) *CustomError {
	if errors.Is(err, context.DeadlineExceeded) {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, devMessage)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		statusCode := constvars.StatusBadGateway
		switch string(pqErr.Code) {
		case pqUniqueViolation, pqForeignKeyViolation:
			statusCode = constvars.StatusConflict
		case pqNotNullViolation, pqCheckViolation:
			statusCode = constvars.StatusBadRequest
		}
		return BuildNewCustomError(err, statusCode, pqErr.Message, fmt.Sprintf("%s (code %s)", devMessage, pqErr.Code))
	}

	return BuildNewCustomError(err, constvars.StatusBadGateway, err.Error(), devMessage)
}
