package exceptions

import (
	"fmt"
	"uesvalle-service/internal/pkg/constvars"
)

var (
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrQueryParamValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatAllValidationErrors(err), constvars.ErrDevQueryParamValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrRequestBodyTooLarge = func(err error, limit int64) *CustomError {
		return BuildNewCustomError(err, constvars.StatusRequestEntityTooLarge, constvars.ErrClientRequestBodyTooLarge, fmt.Sprintf(constvars.ErrDevRequestBodyTooLarge, limit))
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSomethingWrongWithApp)
	}
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrTooManyRequests = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrClientTooManyRequests)
	}

	// Entities
	ErrFieldValidation = func(fieldErrors map[string]string) *CustomError {
		customErr := BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientValidationFailed, constvars.ErrDevValidationFailed)
		customErr.FieldErrors = fieldErrors
		return customErr
	}
	ErrRecordNotFound = func(err error, label, table string, id int64) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, fmt.Sprintf(constvars.ErrClientRecordNotFound, label), fmt.Sprintf(constvars.ErrDevRecordNotFound, table, id))
	}
	ErrDeleteNotConfirmed = func(label, table string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusPreconditionRequired, fmt.Sprintf(constvars.ErrClientDeleteNotConfirmed, label), fmt.Sprintf(constvars.ErrDevDeleteNotConfirmed, table))
	}

	// Postgres DB
	ErrPostgresDBFindData = func(err error, table string) *CustomError {
		return ErrPostgres(err, fmt.Sprintf(constvars.ErrDevPostgresFindData, table))
	}
	ErrPostgresDBCountData = func(err error, table string) *CustomError {
		return ErrPostgres(err, fmt.Sprintf(constvars.ErrDevPostgresCountData, table))
	}
	ErrPostgresDBInsertData = func(err error, table string) *CustomError {
		return ErrPostgres(err, fmt.Sprintf(constvars.ErrDevPostgresInsertData, table))
	}
	ErrPostgresDBUpdateData = func(err error, table string) *CustomError {
		return ErrPostgres(err, fmt.Sprintf(constvars.ErrDevPostgresUpdateData, table))
	}
	ErrPostgresDBDeleteData = func(err error, table string) *CustomError {
		return ErrPostgres(err, fmt.Sprintf(constvars.ErrDevPostgresDeleteData, table))
	}
	ErrPostgresDBCallProcedure = func(err error, procedure string) *CustomError {
		return ErrPostgres(err, fmt.Sprintf(constvars.ErrDevPostgresCallProcedure, procedure))
	}
	ErrPostgresDBScanRow = func(err error) *CustomError {
		return ErrPostgres(err, constvars.ErrDevPostgresScanRow)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisIncrement = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisIncr)
	}
	ErrRedisSetNX = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetNX)
	}

	// Minio
	ErrMinioPutObject = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, constvars.ErrDevMinioPutObject)
	}
	ErrMinioListObjects = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, constvars.ErrDevMinioListObjects)
	}
	ErrMinioPresignedURL = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, constvars.ErrDevMinioPresignedURL)
	}
	ErrExportArchiveNotFound = func(prefix string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientExportArchiveNotFound, fmt.Sprintf(constvars.ErrDevExportArchiveNotFound, prefix))
	}
	ErrExportArchiveDisabled = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusServiceUnavailable, constvars.ErrClientExportArchiveDisabled, constvars.ErrDevExportArchiveDisabled)
	}

	// RabbitMQ
	ErrRabbitMQPublish = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, constvars.ErrDevRabbitMQPublish)
	}

	// Export
	ErrBuildSpreadsheet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevBuildSpreadsheet)
	}
	ErrBuildCSV = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevBuildCSV)
	}
)
