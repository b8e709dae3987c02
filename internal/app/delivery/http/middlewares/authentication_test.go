package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"salon-service/internal/app/config"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/dto/requests"
	"salon-service/internal/pkg/dto/responses"
	"salon-service/internal/pkg/exceptions"
	"salon-service/internal/pkg/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubAuthUsecase struct {
	session *models.Session
}

func (s *stubAuthUsecase) Register(ctx context.Context, request *requests.RegisterUser) error {
	return nil
}

func (s *stubAuthUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	return nil, nil
}

func (s *stubAuthUsecase) Logout(ctx context.Context, sessionID string) error { return nil }

func (s *stubAuthUsecase) Session(ctx context.Context, sessionData *models.Session) (*responses.User, error) {
	return nil, nil
}

func (s *stubAuthUsecase) FindSession(ctx context.Context, sessionID string) (*models.Session, error) {
	if s.session != nil && s.session.SessionID == sessionID {
		return s.session, nil
	}
	return nil, exceptions.ErrSessionInvalid(nil)
}

func (s *stubAuthUsecase) SaveSession(ctx context.Context, sessionData *models.Session) error {
	return nil
}

func TestAuthenticate(t *testing.T) {
	secret := "test-secret"
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: secret, ExpTimeInHour: 1},
	}
	session := &models.Session{
		SessionID: "sess-1",
		UserID:    "user-1",
		UserRole:  constvars.RoleAdmin,
	}
	middlewares := &Middlewares{
		Log:            zap.NewNop(),
		AuthUsecase:    &stubAuthUsecase{session: session},
		InternalConfig: internalConfig,
	}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
		assert.True(t, ok, "session data should be set in context")
		assert.Equal(t, "user-1", sessionData.UserID)

		sessionID, ok := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
		assert.True(t, ok, "session id should be set in context")
		assert.Equal(t, "sess-1", sessionID)

		w.WriteHeader(http.StatusOK)
	})

	t.Run("Valid bearer token", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-1", secret, 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/bookings/dashboard", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/bookings/dashboard", nil)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Header without bearer scheme", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/bookings/dashboard", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Basic abc")

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Garbage token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/bookings/dashboard", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Unknown session", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-other", secret, 1)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/bookings/dashboard", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := &Middlewares{Log: zap.NewNop()}

	t.Run("Generates an id when the client sends none", func(t *testing.T) {
		var seen string
		handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Passes the client id through", func(t *testing.T) {
		var seen string
		handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		}))

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-1")

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-id-1", seen)
		assert.Equal(t, "client-id-1", rr.Header().Get(constvars.HeaderXRequestID))
	})
}
