package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
	"uesvalle-service/internal/app/config"
	"uesvalle-service/internal/pkg/exceptions"
	"uesvalle-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// requestContext bounds a handler's work by the configured request timeout.
// It derives from the request context so the request id travels along.
func requestContext(r *http.Request, internalConfig *config.InternalConfig) (context.Context, context.CancelFunc) {
	timeout := time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(r.Context(), timeout)
}

// asResponseError maps an expired handler deadline to 504 and leaves other errors untouched.
func asResponseError(ctx context.Context, err error) error {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	return err
}

func writeError(log *zap.Logger, w http.ResponseWriter, ctx context.Context, err error) {
	utils.BuildErrorResponse(log, w, asResponseError(ctx, err))
}

func paginationBaseURL(internalConfig *config.InternalConfig, r *http.Request) string {
	return fmt.Sprintf("%s%s", internalConfig.App.BaseUrl, r.URL.Path)
}
