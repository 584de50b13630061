package middlewares

import (
	"context"
	"net/http"
	"strings"
	"uesvalle-service/internal/pkg/constvars"
	"uesvalle-service/internal/pkg/exceptions"
	"uesvalle-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate only checks that the caller holds a valid console session
// token. The token subject is kept in the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
		subject, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.LogSecurityEvent(r.Context(), m.Log, "invalid_session_token", "medium",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SUBJECT_KEY, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
