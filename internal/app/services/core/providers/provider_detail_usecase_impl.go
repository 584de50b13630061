package providers

import (
	"context"
	"uesvalle-service/internal/app/contracts"
	"uesvalle-service/internal/app/models"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/exceptions"
	"uesvalle-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type providerDetailUsecase struct {
	ProviderDetailRepository contracts.ProviderDetailRepository
	Log                      *zap.Logger
}

func NewProviderDetailUsecase(providerDetailRepository contracts.ProviderDetailRepository, logger *zap.Logger) contracts.ProviderDetailUsecase {
	return &providerDetailUsecase{
		ProviderDetailRepository: providerDetailRepository,
		Log:                      logger,
	}
}

// GetDetail loads the provider first; its related lists are fetched in parallel.
func (uc *providerDetailUsecase) GetDetail(ctx context.Context, providerID int64) (*models.ProviderDetail, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("providerDetailUsecase.GetDetail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, providerID),
	)

	provider, err := uc.ProviderDetailRepository.FindProvider(ctx, providerID)
	if err != nil {
		uc.Log.Error("providerDetailUsecase.GetDetail error calling ProviderDetailRepository.FindProvider",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if provider == nil {
		return nil, exceptions.ErrRecordNotFound(nil, "Provider", constvars.TableProvider, providerID)
	}

	detail := &models.ProviderDetail{Provider: *provider}
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		representatives, err := uc.ProviderDetailRepository.FindRepresentatives(groupCtx, providerID)
		detail.Representatives = representatives
		return err
	})
	group.Go(func() error {
		sampleRequests, err := uc.ProviderDetailRepository.FindSampleRequests(groupCtx, providerID)
		detail.SampleRequests = sampleRequests
		return err
	})
	group.Go(func() error {
		reports, err := uc.ProviderDetailRepository.FindReports(groupCtx, providerID)
		detail.Reports = reports
		return err
	})
	if err := group.Wait(); err != nil {
		uc.Log.Error("providerDetailUsecase.GetDetail error loading related records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("providerDetailUsecase.GetDetail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(detail.SampleRequests)),
	)
	return detail, nil
}
