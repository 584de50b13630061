package entities

import (
	"context"
	"testing"
	"time"
	"uesvalle-service/internal/app/models"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/dto/requests"
	"uesvalle-service/internal/pkg/exceptions"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLaboratoryDialog() (*Dialog[models.Laboratory], *MockEntityRepository[models.Laboratory], *MockRedisRepository, *MockNotifier) {
	repository := new(MockEntityRepository[models.Laboratory])
	redis := new(MockRedisRepository)
	notifier := new(MockNotifier)
	usecase := NewEntityUsecase[models.Laboratory](LaboratoryDefinition, repository, redis, notifier, time.Minute, zap.NewNop())
	return NewDialog(usecase), repository, redis, notifier
}

func TestDialog_OpenCreate(t *testing.T) {
	dialog, _, _, _ := newLaboratoryDialog()
	assert.Equal(t, DialogStateClosed, dialog.State())

	dialog.OpenCreate()

	view := dialog.View()
	assert.Equal(t, string(DialogStateOpen), view.State)
	assert.Equal(t, string(DialogModeCreate), view.Mode)
	assert.Nil(t, view.RecordID)
	assert.Len(t, view.Values, len(LaboratoryDefinition.Fields))
	assert.Contains(t, view.Values, "nombre")
}

func TestDialog_OpenEditPrefills(t *testing.T) {
	dialog, _, _, _ := newLaboratoryDialog()
	email := "central@lab.co"

	err := dialog.OpenEdit(4, &models.Laboratory{ID: 4, Nombre: "Laboratorio Central", Email: &email})

	require.NoError(t, err)
	view := dialog.View()
	assert.Equal(t, string(DialogModeEdit), view.Mode)
	require.NotNil(t, view.RecordID)
	assert.Equal(t, int64(4), *view.RecordID)
	assert.Equal(t, "Laboratorio Central", view.Values["nombre"])
	assert.Equal(t, email, view.Values["email"])
	assert.NotContains(t, view.Values, "id_laboratorio")
}

func TestDialog_CancelDoesNotTouchBackend(t *testing.T) {
	dialog, repository, redis, notifier := newLaboratoryDialog()
	dialog.OpenCreate()

	dialog.Cancel()

	assert.Equal(t, DialogStateClosed, dialog.State())
	assert.Nil(t, dialog.View().Values)
	repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	redis.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestDialog_SubmitRequiresOpen(t *testing.T) {
	dialog, repository, _, _ := newLaboratoryDialog()

	err := dialog.Submit(context.Background(), requests.EntityForm{"nombre": "Lab"})

	assert.ErrorIs(t, err, ErrDialogNotOpen)
	repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDialog_SubmitCreateClosesOnSuccess(t *testing.T) {
	ctx := context.Background()
	dialog, repository, redis, notifier := newLaboratoryDialog()
	repository.On("Create", ctx, mock.Anything).Return(int64(12), nil).Once()
	redis.On("Increment", ctx, "list-gen:laboratories").Return(int64(1), nil).Once()
	notifier.On("Notify", ctx, mock.Anything).Return(nil).Once()

	dialog.OpenCreate()
	err := dialog.Submit(ctx, requests.EntityForm{"nombre": "Laboratorio Central"})

	require.NoError(t, err)
	view := dialog.View()
	assert.Equal(t, string(DialogStateClosed), view.State)
	require.NotNil(t, view.RecordID)
	assert.Equal(t, int64(12), *view.RecordID)
	assert.Equal(t, constvars.NotificationLevelSuccess, view.Notification.Level)
}

func TestDialog_SubmitRequiredFieldStaysOpen(t *testing.T) {
	dialog, repository, _, _ := newLaboratoryDialog()
	dialog.OpenCreate()

	err := dialog.Submit(context.Background(), requests.EntityForm{"nombre": "   ", "telefono": "3001234567"})

	require.Error(t, err)
	view := dialog.View()
	assert.Equal(t, string(DialogStateOpen), view.State)
	assert.Contains(t, view.FieldErrors, "nombre")
	assert.Equal(t, "3001234567", view.Values["telefono"])
	repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDialog_SubmitEditBackendRejection(t *testing.T) {
	ctx := context.Background()
	dialog, repository, redis, notifier := newLaboratoryDialog()
	pqErr := &pq.Error{Code: "23505", Message: `duplicate key value violates unique constraint "laboratorio_email_key"`}
	repository.On("Update", ctx, int64(4), mock.Anything).Return(int64(0), exceptions.ErrPostgresDBUpdateData(pqErr, "laboratorio")).Once()
	notifier.On("Notify", ctx, mock.Anything).Return(nil).Once()

	require.NoError(t, dialog.OpenEdit(4, &models.Laboratory{ID: 4, Nombre: "Laboratorio Central"}))
	err := dialog.Submit(ctx, requests.EntityForm{"nombre": "Laboratorio Central", "email": "dup@lab.co"})

	require.Error(t, err)
	view := dialog.View()
	assert.Equal(t, string(DialogStateOpen), view.State)
	assert.Equal(t, string(DialogModeEdit), view.Mode)
	assert.Equal(t, "dup@lab.co", view.Values["email"])
	require.NotNil(t, view.Notification)
	assert.Equal(t, constvars.NotificationLevelError, view.Notification.Level)
	assert.Equal(t, pqErr.Message, view.Notification.Description)
	redis.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything)
}
