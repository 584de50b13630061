package dashboard

import (
	"context"
	"sync"
	"uesvalle-service/internal/app/contracts"
	"uesvalle-service/internal/app/models"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/exceptions"
	"uesvalle-service/internal/pkg/queries"
	"uesvalle-service/internal/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type dashboardPostgresRepository struct {
	DB  *gorm.DB
	Log *zap.Logger
}

var (
	dashboardPostgresRepositoryInstance contracts.DashboardRepository
	onceDashboardPostgresRepository     sync.Once
)

func NewDashboardPostgresRepository(db *gorm.DB, logger *zap.Logger) contracts.DashboardRepository {
	onceDashboardPostgresRepository.Do(func() {
		dashboardPostgresRepositoryInstance = &dashboardPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return dashboardPostgresRepositoryInstance
}

// CountRows is an exact count; the table name comes from constvars only.
func (r *dashboardPostgresRepository) CountRows(ctx context.Context, table string) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Table(table).Count(&total).Error; err != nil {
		r.Log.Error("dashboardPostgresRepository.CountRows error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingTableKey, table),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBCountData(err, table)
	}
	return total, nil
}

func (r *dashboardPostgresRepository) FindProviderLocations(ctx context.Context) ([]models.ProviderLocation, error) {
	locations := make([]models.ProviderLocation, 0)
	if err := r.DB.WithContext(ctx).Raw(queries.GetProviderLocations).Scan(&locations).Error; err != nil {
		r.Log.Error("dashboardPostgresRepository.FindProviderLocations error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err, constvars.TableProvider)
	}
	return locations, nil
}

func (r *dashboardPostgresRepository) FindReportsWithProvider(ctx context.Context) ([]models.Report, error) {
	reports := make([]models.Report, 0)
	if err := r.DB.WithContext(ctx).Raw(queries.GetReportsWithProvider).Scan(&reports).Error; err != nil {
		r.Log.Error("dashboardPostgresRepository.FindReportsWithProvider error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err, constvars.TableReport)
	}
	return reports, nil
}
