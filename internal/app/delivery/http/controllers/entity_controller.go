package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"uesvalle-service/internal/app/config"
	"uesvalle-service/internal/app/contracts"
	"uesvalle-service/internal/app/services/core/entities"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/exceptions"
	"uesvalle-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// EntityController serves the list/edit surface of one entity.
type EntityController[T any] struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	EntityUsecase  contracts.EntityUsecase[T]
}

func NewEntityController[T any](logger *zap.Logger, internalConfig *config.InternalConfig, entityUsecase contracts.EntityUsecase[T]) *EntityController[T] {
	return &EntityController[T]{
		Log:            logger,
		InternalConfig: internalConfig,
		EntityUsecase:  entityUsecase,
	}
}

func (ctrl *EntityController[T]) label() string {
	return strings.ToLower(ctrl.EntityUsecase.Definition().Label)
}

func (ctrl *EntityController[T]) List(w http.ResponseWriter, r *http.Request) {
	query, err := utils.BuildListQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	rows, total, err := ctrl.EntityUsecase.List(ctx, query)
	if err != nil {
		writeError(ctrl.Log, w, ctx, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, query.Page, query.PageSize, paginationBaseURL(ctrl.InternalConfig, r))
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, fmt.Sprintf(constvars.ListEntitySuccessMessage, ctrl.label()), pagination, rows)
}

func (ctrl *EntityController[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	record, err := ctrl.EntityUsecase.Get(ctx, id)
	if err != nil {
		writeError(ctrl.Log, w, ctx, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetEntitySuccessMessage, ctrl.label()), record)
}

// NewForm returns an empty create dialog.
func (ctrl *EntityController[T]) NewForm(w http.ResponseWriter, r *http.Request) {
	dialog := entities.NewDialog(ctrl.EntityUsecase)
	dialog.OpenCreate()
	utils.BuildFormResponse(w, constvars.StatusOK, dialog.View())
}

// EditForm returns an edit dialog prefilled with the stored record.
func (ctrl *EntityController[T]) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	dialog, err := ctrl.openEditDialog(ctx, id)
	if err != nil {
		writeError(ctrl.Log, w, ctx, err)
		return
	}
	utils.BuildFormResponse(w, constvars.StatusOK, dialog.View())
}

func (ctrl *EntityController[T]) Create(w http.ResponseWriter, r *http.Request) {
	form, err := utils.BuildEntityForm(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	dialog := entities.NewDialog(ctrl.EntityUsecase)
	dialog.OpenCreate()
	if err := dialog.Submit(ctx, form); err != nil {
		ctrl.Log.Info("EntityController.Create submit failed",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingResourceKey, ctrl.EntityUsecase.Definition().Resource),
			zap.Error(err),
		)
		utils.BuildFormResponse(w, exceptions.StatusCodeOf(asResponseError(ctx, err)), dialog.View())
		return
	}

	utils.BuildFormResponse(w, constvars.StatusCreated, dialog.View())
}

// Update opens the edit dialog on the stored row and submits the new values into it.
func (ctrl *EntityController[T]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	form, err := utils.BuildEntityForm(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	dialog, err := ctrl.openEditDialog(ctx, id)
	if err != nil {
		writeError(ctrl.Log, w, ctx, err)
		return
	}

	if err := dialog.Submit(ctx, form); err != nil {
		ctrl.Log.Info("EntityController.Update submit failed",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingResourceKey, ctrl.EntityUsecase.Definition().Resource),
			zap.Int64(constvars.LoggingRecordIDKey, id),
			zap.Error(err),
		)
		utils.BuildFormResponse(w, exceptions.StatusCodeOf(asResponseError(ctx, err)), dialog.View())
		return
	}

	utils.BuildFormResponse(w, constvars.StatusOK, dialog.View())
}

func (ctrl *EntityController[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseURLParamID(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	confirmed := utils.ParseBoolQueryParam(r, constvars.URLQueryParamConfirm)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	mutation, err := ctrl.EntityUsecase.Delete(ctx, id, confirmed)
	if err != nil {
		if mutation == nil || mutation.Notification == nil {
			writeError(ctrl.Log, w, ctx, err)
			return
		}
		utils.BuildNotificationResponse(w, exceptions.StatusCodeOf(asResponseError(ctx, err)), mutation.Notification, nil)
		return
	}

	utils.BuildNotificationResponse(w, constvars.StatusOK, mutation.Notification, map[string]int64{
		ctrl.EntityUsecase.Definition().PrimaryKey: mutation.ID,
	})
}

func (ctrl *EntityController[T]) openEditDialog(ctx context.Context, id int64) (*entities.Dialog[T], error) {
	record, err := ctrl.EntityUsecase.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	dialog := entities.NewDialog(ctrl.EntityUsecase)
	if err := dialog.OpenEdit(id, record); err != nil {
		return nil, err
	}
	return dialog, nil
}
