package dashboard

import (
	"context"
	"strings"
	"sync"
	"uesvalle-service/internal/app/contracts"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/dto/responses"
	"uesvalle-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type dashboardUsecase struct {
	DashboardRepository contracts.DashboardRepository
	Log                 *zap.Logger
}

var (
	dashboardUsecaseInstance contracts.DashboardUsecase
	onceDashboardUsecase     sync.Once
)

func NewDashboardUsecase(dashboardRepository contracts.DashboardRepository, logger *zap.Logger) contracts.DashboardUsecase {
	onceDashboardUsecase.Do(func() {
		dashboardUsecaseInstance = newDashboardUsecase(dashboardRepository, logger)
	})
	return dashboardUsecaseInstance
}

func newDashboardUsecase(dashboardRepository contracts.DashboardRepository, logger *zap.Logger) *dashboardUsecase {
	return &dashboardUsecase{
		DashboardRepository: dashboardRepository,
		Log:                 logger,
	}
}

// GetDashboard runs the six counts and the location query concurrently.
// The first failure cancels the rest and is returned as is.
func (uc *dashboardUsecase) GetDashboard(ctx context.Context) (*responses.Dashboard, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("dashboardUsecase.GetDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var counts responses.DashboardCounts
	targets := map[string]*int64{
		constvars.TableProvider:      &counts.Providers,
		constvars.TableSampleRequest: &counts.SampleRequests,
		constvars.TableReport:        &counts.Reports,
		constvars.TableLaboratory:    &counts.Laboratories,
		constvars.TableTechnician:    &counts.Technicians,
		constvars.TableRequester:     &counts.Requesters,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for table, target := range targets {
		table, target := table, target
		group.Go(func() error {
			total, err := uc.DashboardRepository.CountRows(groupCtx, table)
			if err != nil {
				return err
			}
			*target = total
			return nil
		})
	}

	dashboard := &responses.Dashboard{}
	group.Go(func() error {
		locations, err := uc.DashboardRepository.FindProviderLocations(groupCtx)
		if err != nil {
			return err
		}
		dashboard.Departments = GroupByLocation(locations, byDepartment, 0)
		dashboard.Municipalities = GroupByLocation(locations, byMunicipality, constvars.DashboardTopMunicipalities)
		return nil
	})

	if err := group.Wait(); err != nil {
		uc.Log.Error("dashboardUsecase.GetDashboard error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	dashboard.Counts = counts

	uc.Log.Info("dashboardUsecase.GetDashboard succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTotalKey, counts.Providers),
	)
	return dashboard, nil
}

// GetReportsByStatus matches the filter against the bucket label, so
// "Sin estado" selects reports without a status. An unknown status yields
// no groups.
func (uc *dashboardUsecase) GetReportsByStatus(ctx context.Context, status string) (*responses.ReportsByStatus, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("dashboardUsecase.GetReportsByStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatusKey, status),
	)

	reports, err := uc.DashboardRepository.FindReportsWithProvider(ctx)
	if err != nil {
		uc.Log.Error("dashboardUsecase.GetReportsByStatus error calling DashboardRepository.FindReportsWithProvider",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := GroupByStatus(reports, strings.TrimSpace(status))

	uc.Log.Info("dashboardUsecase.GetReportsByStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTotalKey, result.Total),
		zap.Int(constvars.LoggingResponseCountKey, len(result.Groups)),
	)
	return result, nil
}
