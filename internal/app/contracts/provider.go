package contracts

import (
	"context"
	"uesvalle-service/internal/app/models"
)

type ProviderDetailUsecase interface {
	GetDetail(ctx context.Context, providerID int64) (*models.ProviderDetail, error)
}

type ProviderDetailRepository interface {
	FindProvider(ctx context.Context, providerID int64) (*models.Provider, error)
	FindRepresentatives(ctx context.Context, providerID int64) ([]models.Representative, error)
	FindSampleRequests(ctx context.Context, providerID int64) ([]models.ProviderSampleRequestRow, error)
	FindReports(ctx context.Context, providerID int64) ([]models.Report, error)
}
