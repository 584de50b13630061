package utils

import (
	"errors"
	"fmt"
	"net/http"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/dto/responses"
	"uesvalle-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// BuildPaginationResponse builds pagination metadata for zero-based pages.
func BuildPaginationResponse(total int64, page, pageSize int, baseURL string) *responses.Pagination {
	pagination := &responses.Pagination{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}

	if int64((page+1)*pageSize) < total {
		pagination.NextURL = fmt.Sprintf(constvars.AppPaginationUrlFormat, baseURL, page+1, pageSize)
	}
	if page > 0 {
		pagination.PrevURL = fmt.Sprintf(constvars.AppPaginationUrlFormat, baseURL, page-1, pageSize)
	}

	return pagination
}

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	writeJSON(w, code, responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func BuildSuccessResponseWithPagination(w http.ResponseWriter, code int, message string, pagination *responses.Pagination, data interface{}) {
	writeJSON(w, code, responses.ResponseDTO{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	})
}

// BuildFormResponse writes the dialog view produced by a mutation.
func BuildFormResponse(w http.ResponseWriter, code int, form *responses.FormDialog) {
	response := responses.ResponseDTO{
		Success: code < constvars.StatusBadRequest,
		Form:    form,
	}
	if form != nil && form.Notification != nil {
		response.Message = form.Notification.Title
		response.Notification = form.Notification
	} else if form != nil && len(form.FieldErrors) > 0 {
		response.Message = constvars.ErrClientValidationFailed
	}
	writeJSON(w, code, response)
}

// BuildNotificationResponse writes a mutation outcome that has no form, such as a delete.
func BuildNotificationResponse(w http.ResponseWriter, code int, notification *responses.Notification, data interface{}) {
	response := responses.ResponseDTO{
		Success:      code < constvars.StatusBadRequest,
		Data:         data,
		Notification: notification,
	}
	if notification != nil {
		response.Message = notification.Title
	}
	writeJSON(w, code, response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.Int(constvars.LoggingStatusCodeKey, code),
			zap.Any("location", map[string]interface{}{
				"file":          customErr.Location.File,
				"line":          customErr.Location.Line,
				"function_name": customErr.Location.FunctionName,
			}),
		)
	} else {
		log.Error(err.Error())
	}

	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}
	if customErr != nil {
		response.FieldErrors = customErr.FieldErrors
	}
	writeJSON(w, code, response)
}

// BuildFileResponse streams an attachment with the given content type.
func BuildFileResponse(w http.ResponseWriter, contentType, fileName string, content []byte) {
	w.Header().Set(constvars.HeaderContentType, contentType)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf(constvars.ContentDispositionFormat, fileName))
	w.WriteHeader(constvars.StatusOK)
	w.Write(content)
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
