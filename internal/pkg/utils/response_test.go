package utils

import (
	"errors"
	"net/http/httptest"
	"testing"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/dto/responses"
	"uesvalle-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildPaginationResponse(t *testing.T) {
	const baseURL = "http://localhost:8080/api/v1/providers"

	t.Run("First Page", func(t *testing.T) {
		pagination := BuildPaginationResponse(45, 0, 10, baseURL)

		assert.Equal(t, baseURL+"?page=1&page_size=10", pagination.NextURL)
		assert.Empty(t, pagination.PrevURL)
	})

	t.Run("Last Page", func(t *testing.T) {
		pagination := BuildPaginationResponse(45, 4, 10, baseURL)

		assert.Empty(t, pagination.NextURL)
		assert.Equal(t, baseURL+"?page=3&page_size=10", pagination.PrevURL)
	})

	t.Run("Exact Multiple", func(t *testing.T) {
		pagination := BuildPaginationResponse(20, 1, 10, baseURL)

		assert.Empty(t, pagination.NextURL, "page 1 already holds rows 10-19")
	})
}

func TestBuildErrorResponse(t *testing.T) {
	t.Run("Custom Error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rr, exceptions.ErrFieldValidation(map[string]string{"nombre": "nombre is required"}))

		assert.Equal(t, constvars.StatusBadRequest, rr.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, constvars.ErrClientValidationFailed, body["message"])
		assert.Equal(t, map[string]interface{}{"nombre": "nombre is required"}, body["field_errors"])
	})

	t.Run("Plain Error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rr, errors.New("boom"))

		assert.Equal(t, constvars.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ErrClientSomethingWrongWithApplication)
	})
}

func TestBuildFormResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	BuildFormResponse(rr, constvars.StatusConflict, &responses.FormDialog{
		FieldErrors: map[string]string{},
		Notification: &responses.Notification{
			Level: constvars.NotificationLevelError,
			Title: "Error updating provider",
		},
	})

	var body responses.ResponseDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Error updating provider", body.Message)
	require.NotNil(t, body.Notification)
	assert.Equal(t, constvars.NotificationLevelError, body.Notification.Level)
}
