package controllers

import (
	"net/http"
	"uesvalle-service/internal/app/config"
	"uesvalle-service/internal/app/contracts"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ProviderDetailController struct {
	Log                   *zap.Logger
	InternalConfig        *config.InternalConfig
	ProviderDetailUsecase contracts.ProviderDetailUsecase
}

func NewProviderDetailController(logger *zap.Logger, internalConfig *config.InternalConfig, providerDetailUsecase contracts.ProviderDetailUsecase) *ProviderDetailController {
	return &ProviderDetailController{
		Log:                   logger,
		InternalConfig:        internalConfig,
		ProviderDetailUsecase: providerDetailUsecase,
	}
}

func (ctrl *ProviderDetailController) GetDetail(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	detail, err := ctrl.ProviderDetailUsecase.GetDetail(ctx, id)
	if err != nil {
		writeError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProviderDetailSuccessMessage, detail)
}
