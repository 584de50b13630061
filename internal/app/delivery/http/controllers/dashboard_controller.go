package controllers

import (
	"net/http"
	"uesvalle-service/internal/app/config"
	"uesvalle-service/internal/app/contracts"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	InternalConfig   *config.InternalConfig
	DashboardUsecase contracts.DashboardUsecase
}

func NewDashboardController(logger *zap.Logger, internalConfig *config.InternalConfig, dashboardUsecase contracts.DashboardUsecase) *DashboardController {
	return &DashboardController{
		Log:              logger,
		InternalConfig:   internalConfig,
		DashboardUsecase: dashboardUsecase,
	}
}

func (ctrl *DashboardController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	dashboard, err := ctrl.DashboardUsecase.GetDashboard(ctx)
	if err != nil {
		writeError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSuccessMessage, dashboard)
}

func (ctrl *DashboardController) GetReportsByStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	status := r.URL.Query().Get(constvars.URLQueryParamStatus)
	result, err := ctrl.DashboardUsecase.GetReportsByStatus(ctx, status)
	if err != nil {
		writeError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportsByStatusSuccessMessage, result)
}
