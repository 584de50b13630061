package providers

import (
	"context"
	"uesvalle-service/internal/app/contracts"
	"uesvalle-service/internal/app/models"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/exceptions"
	"uesvalle-service/internal/pkg/queries"
	"uesvalle-service/internal/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type providerDetailPostgresRepository struct {
	DB                 *gorm.DB
	Log                *zap.Logger
	ProviderRepository contracts.EntityRepository[models.Provider]
}

// NewProviderDetailPostgresRepository reads the provider itself through the
// generic provider repository so the location join stays in one place.
func NewProviderDetailPostgresRepository(db *gorm.DB, logger *zap.Logger, providerRepository contracts.EntityRepository[models.Provider]) contracts.ProviderDetailRepository {
	return &providerDetailPostgresRepository{
		DB:                 db,
		Log:                logger,
		ProviderRepository: providerRepository,
	}
}

func (r *providerDetailPostgresRepository) FindProvider(ctx context.Context, providerID int64) (*models.Provider, error) {
	return r.ProviderRepository.FindByID(ctx, providerID)
}

func (r *providerDetailPostgresRepository) FindRepresentatives(ctx context.Context, providerID int64) ([]models.Representative, error) {
	representatives := make([]models.Representative, 0)
	err := r.DB.WithContext(ctx).Raw(queries.GetRepresentativesByProviderID, providerID).Scan(&representatives).Error
	if err != nil {
		r.logError(ctx, "providerDetailPostgresRepository.FindRepresentatives error", providerID, err)
		return nil, exceptions.ErrPostgresDBFindData(err, constvars.TableRepresentative)
	}
	return representatives, nil
}

func (r *providerDetailPostgresRepository) FindSampleRequests(ctx context.Context, providerID int64) ([]models.ProviderSampleRequestRow, error) {
	sampleRequests := make([]models.ProviderSampleRequestRow, 0)
	err := r.DB.WithContext(ctx).Raw(queries.GetSampleRequestsByProviderID, providerID).Scan(&sampleRequests).Error
	if err != nil {
		r.logError(ctx, "providerDetailPostgresRepository.FindSampleRequests error", providerID, err)
		return nil, exceptions.ErrPostgresDBFindData(err, constvars.TableSampleRequest)
	}
	return sampleRequests, nil
}

func (r *providerDetailPostgresRepository) FindReports(ctx context.Context, providerID int64) ([]models.Report, error) {
	reports := make([]models.Report, 0)
	err := r.DB.WithContext(ctx).Raw(queries.GetReportsByProviderID, providerID).Scan(&reports).Error
	if err != nil {
		r.logError(ctx, "providerDetailPostgresRepository.FindReports error", providerID, err)
		return nil, exceptions.ErrPostgresDBFindData(err, constvars.TableReport)
	}
	return reports, nil
}

func (r *providerDetailPostgresRepository) logError(ctx context.Context, msg string, providerID int64, err error) {
	r.Log.Error(msg,
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.Int64(constvars.LoggingRecordIDKey, providerID),
		zap.Error(err),
	)
}
