package contracts

import (
	"context"
	"uesvalle-service/internal/app/models"
	"uesvalle-service/internal/pkg/dto/responses"
)

type DashboardUsecase interface {
	GetDashboard(ctx context.Context) (*responses.Dashboard, error)
	GetReportsByStatus(ctx context.Context, status string) (*responses.ReportsByStatus, error)
}

type DashboardRepository interface {
	CountRows(ctx context.Context, table string) (int64, error)
	FindProviderLocations(ctx context.Context) ([]models.ProviderLocation, error)
	FindReportsWithProvider(ctx context.Context) ([]models.Report, error)
}
