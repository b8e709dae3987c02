package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/exceptions"
	"salon-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer token into a cached session and stores it
// in the request context. An expired session that still holds a refresh
// cookie is allowed through; the upstream client re-authenticates it on the
// first 401.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(fmt.Errorf("no %s header", constvars.HeaderAuthorization)))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(fmt.Errorf("authorization header is not a bearer token")))
			return
		}

		sessionID, err := utils.ParseSessionJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		sessionData, err := m.AuthUsecase.FindSession(r.Context(), sessionID)
		if err != nil {
			m.Log.Info("session lookup rejected",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, sessionData)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
