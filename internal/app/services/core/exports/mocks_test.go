package exports

import (
	"context"
	"time"
	"uesvalle-service/internal/app/models"
	"uesvalle-service/internal/pkg/dto/requests"
	"uesvalle-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type MockExportRepository struct {
	mock.Mock
}

func (m *MockExportRepository) CallMerge(ctx context.Context) (*models.MergedTable, error) {
	args := m.Called(ctx)
	table, _ := args.Get(0).(*models.MergedTable)
	return table, args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) PutObject(ctx context.Context, bucketName, objectName, contentType string, content []byte) error {
	args := m.Called(ctx, bucketName, objectName, contentType, content)
	return args.Error(0)
}

func (m *MockStorage) LatestObject(ctx context.Context, bucketName, prefix string) (*models.StoredObject, error) {
	args := m.Called(ctx, bucketName, prefix)
	object, _ := args.Get(0).(*models.StoredObject)
	return object, args.Error(1)
}

func (m *MockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type MockExportUsecase struct {
	mock.Mock
}

func (m *MockExportUsecase) ListMerged(ctx context.Context, query *requests.ListQuery) (*responses.MergedData, int64, error) {
	args := m.Called(ctx, query)
	data, _ := args.Get(0).(*responses.MergedData)
	return data, args.Get(1).(int64), args.Error(2)
}

func (m *MockExportUsecase) BuildSpreadsheet(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	content, _ := args.Get(0).([]byte)
	return content, args.Error(1)
}

func (m *MockExportUsecase) BuildCSV(ctx context.Context, preview bool) ([]byte, error) {
	args := m.Called(ctx, preview)
	content, _ := args.Get(0).([]byte)
	return content, args.Error(1)
}

func (m *MockExportUsecase) ArchiveSpreadsheet(ctx context.Context) (*models.StoredObject, error) {
	args := m.Called(ctx)
	object, _ := args.Get(0).(*models.StoredObject)
	return object, args.Error(1)
}

func (m *MockExportUsecase) GetLatestArchive(ctx context.Context) (*responses.ExportArchive, error) {
	args := m.Called(ctx)
	archive, _ := args.Get(0).(*responses.ExportArchive)
	return archive, args.Error(1)
}
