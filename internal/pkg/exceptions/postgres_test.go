package exceptions

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"uesvalle-service/internal/pkg/constvars"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestErrPostgres(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		statusCode    int
		clientMessage string
	}{
		{
			name:          "unique violation",
			err:           &pq.Error{Code: "23505", Message: `duplicate key value violates unique constraint "prestador_nit_key"`},
			statusCode:    constvars.StatusConflict,
			clientMessage: `duplicate key value violates unique constraint "prestador_nit_key"`,
		},
		{
			name:          "foreign key violation",
			err:           &pq.Error{Code: "23503", Message: `update or delete on table "prestador" violates foreign key constraint`},
			statusCode:    constvars.StatusConflict,
			clientMessage: `update or delete on table "prestador" violates foreign key constraint`,
		},
		{
			name:          "not null violation",
			err:           &pq.Error{Code: "23502", Message: `null value in column "nombre" violates not-null constraint`},
			statusCode:    constvars.StatusBadRequest,
			clientMessage: `null value in column "nombre" violates not-null constraint`,
		},
		{
			name:          "other sqlstate",
			err:           &pq.Error{Code: "42P01", Message: `relation "prestador" does not exist`},
			statusCode:    constvars.StatusBadGateway,
			clientMessage: `relation "prestador" does not exist`,
		},
		{
			name:          "deadline",
			err:           fmt.Errorf("query: %w", context.DeadlineExceeded),
			statusCode:    constvars.StatusGatewayTimeout,
			clientMessage: constvars.ErrClientServerLongRespond,
		},
		{
			name:          "transport",
			err:           errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"),
			statusCode:    constvars.StatusBadGateway,
			clientMessage: "dial tcp 10.0.0.5:5432: connect: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customErr := ErrPostgresDBUpdateData(tt.err, constvars.TableProvider)

			assert.Equal(t, tt.statusCode, customErr.StatusCode)
			assert.Equal(t, tt.clientMessage, customErr.ClientMessage)
			assert.ErrorIs(t, customErr, tt.err)
		})
	}
}

func TestStatusCodeOf(t *testing.T) {
	assert.Equal(t, constvars.StatusNotFound, StatusCodeOf(ErrRecordNotFound(nil, "Provider", constvars.TableProvider, 9)))
	assert.Equal(t, constvars.StatusInternalServerError, StatusCodeOf(errors.New("plain")))
	assert.Equal(t, constvars.StatusPreconditionRequired, StatusCodeOf(fmt.Errorf("wrapped: %w", ErrDeleteNotConfirmed("Provider", constvars.TableProvider))))
}
