package middlewares

import (
	"context"
	"net/http"
	"time"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const maxClientRequestIDLength = 128

// responseRecorder keeps the status and body size for the access log.
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	bytes      int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *responseRecorder) Write(body []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(body)
	rec.bytes += n
	return n, err
}

// Logging writes one access log line per request once the handler returns.
func (m *Middlewares) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rec, r)

		isClientRequestID, _ := r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
		fields := []zap.Field{
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
			zap.Bool("is_client_request_id", isClientRequestID),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
			zap.Int(constvars.LoggingStatusCodeKey, rec.statusCode),
			zap.Int(constvars.LoggingResponseBytesKey, rec.bytes),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		}

		switch {
		case rec.statusCode >= constvars.StatusInternalServerError:
			m.Log.Error("API request completed", fields...)
		case rec.statusCode >= constvars.StatusBadRequest:
			m.Log.Warn("API request completed", fields...)
		default:
			m.Log.Info("API request completed", fields...)
		}
	})
}

// RequestID reuses the caller's X-Request-ID when it is usable, otherwise
// generates one, and echoes it back.
func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		isClientRequestID := isUsableRequestID(requestID)
		if !isClientRequestID {
			requestID = utils.GenerateRequestID()
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY, isClientRequestID)

		w.Header().Set(constvars.HeaderXRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// isUsableRequestID accepts short printable ASCII ids so they are safe to log and echo.
func isUsableRequestID(requestID string) bool {
	if requestID == "" || len(requestID) > maxClientRequestIDLength {
		return false
	}
	for i := 0; i < len(requestID); i++ {
		if requestID[i] < 0x21 || requestID[i] > 0x7e {
			return false
		}
	}
	return true
}
