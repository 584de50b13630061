package controllers

import (
	"net/http"
	"time"
	"uesvalle-service/internal/app/config"
	"uesvalle-service/internal/app/contracts"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ExportController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	ExportUsecase  contracts.ExportUsecase
}

func NewExportController(logger *zap.Logger, internalConfig *config.InternalConfig, exportUsecase contracts.ExportUsecase) *ExportController {
	return &ExportController{
		Log:            logger,
		InternalConfig: internalConfig,
		ExportUsecase:  exportUsecase,
	}
}

func (ctrl *ExportController) ListMerged(w http.ResponseWriter, r *http.Request) {
	query, err := utils.BuildListQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	data, total, err := ctrl.ExportUsecase.ListMerged(ctx, query)
	if err != nil {
		writeError(ctrl.Log, w, ctx, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, query.Page, query.PageSize, paginationBaseURL(ctrl.InternalConfig, r))
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetMergeSuccessMessage, pagination, data)
}

func (ctrl *ExportController) DownloadSpreadsheet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	content, err := ctrl.ExportUsecase.BuildSpreadsheet(ctx)
	if err != nil {
		writeError(ctrl.Log, w, ctx, err)
		return
	}

	fileName := utils.GenerateExportFileName(constvars.ExportXLSXFileNameFormat, time.Now())
	utils.BuildFileResponse(w, constvars.MIMEApplicationXLSX, fileName, content)
}

// DownloadCSV serves the whole merge result, or its first rows when preview=true.
func (ctrl *ExportController) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	preview := utils.ParseBoolQueryParam(r, constvars.URLQueryParamPreview)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	content, err := ctrl.ExportUsecase.BuildCSV(ctx, preview)
	if err != nil {
		writeError(ctrl.Log, w, ctx, err)
		return
	}

	fileName := utils.GenerateExportFileName(constvars.ExportCSVFileNameFormat, time.Now())
	utils.BuildFileResponse(w, constvars.MIMETextCSVCharsetUTF8, fileName, content)
}

func (ctrl *ExportController) CreateArchive(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	object, err := ctrl.ExportUsecase.ArchiveSpreadsheet(ctx)
	if err != nil {
		writeError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateArchiveSuccessMessage, object)
}

func (ctrl *ExportController) GetLatestArchive(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	archive, err := ctrl.ExportUsecase.GetLatestArchive(ctx)
	if err != nil {
		writeError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLatestArchiveSuccessMessage, archive)
}
