package exceptions

import (
	"errors"
	"fmt"
	"runtime"
	"uesvalle-service/internal/pkg/constvars"
)

type CustomError struct {
	StatusCode    int               `json:"status_code"`
	Success       bool              `json:"success"`
	ClientMessage string            `json:"message"`
	FieldErrors   map[string]string `json:"field_errors,omitempty"`
	DevMessage    string            `json:"-"`
	Location      Location          `json:"-"`
	cause         error
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.cause
}

func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	if err == nil {
		return wrap(nil, statusCode, clientMessage, devMessage, 3)
	}
	return wrap(err, statusCode, clientMessage, fmt.Sprintf("%s: %s", devMessage, err.Error()), 3)
}

func WrapWithoutError(statusCode int, clientMessage, devMessage string) *CustomError {
	return wrap(nil, statusCode, clientMessage, devMessage, 3)
}

func WrapWithError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	return wrap(err, statusCode, clientMessage, fmt.Sprintf("%s: %s", devMessage, err.Error()), 3)
}

// AsCustomError unwraps err into a *CustomError, falling back to a generic 500.
func AsCustomError(err error) *CustomError {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr
	}
	return wrap(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, err.Error(), 3)
}

// StatusCodeOf reports the HTTP status carried by err, or 500.
func StatusCodeOf(err error) int {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode
	}
	return constvars.StatusInternalServerError
}

func wrap(err error, statusCode int, clientMessage, devMessage string, skip int) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(skip),
		cause:         err,
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
