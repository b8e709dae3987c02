package salonapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func newTestClient(baseUrl string) *Client {
	return &Client{
		BaseUrl:           baseUrl,
		RefreshCookieName: "refresh_token",
		HTTPClient:        &http.Client{Timeout: 5 * time.Second},
		Limiter:           rate.NewLimiter(rate.Inf, 1),
		Log:               zap.NewNop(),
	}
}

func TestDoRawRefreshRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("Retries once with the rotated token after a 401", func(t *testing.T) {
		bookingCalls := 0
		refreshCalls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/bookings":
				bookingCalls++
				if r.Header.Get(constvars.HeaderAuthorization) != "Bearer fresh" {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				w.Write([]byte(`[]`))
			case "/auth/refresh":
				refreshCalls++
				cookie, err := r.Cookie("refresh_token")
				assert.NoError(t, err)
				assert.Equal(t, "old-cookie", cookie.Value)
				http.SetCookie(w, &http.Cookie{Name: "refresh_token", Value: "rotated-cookie"})
				w.Write([]byte("fresh"))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		hookFired := false
		client.SetSessionRefreshHook(func(ctx context.Context, sessionData *models.Session) {
			hookFired = true
		})
		sessionData := &models.Session{
			SessionID:     "sess-1",
			UpstreamToken: "stale",
			RefreshCookie: "old-cookie",
			ExpiresAt:     time.Now().Add(time.Hour),
		}

		raw, err := client.DoRaw(ctx, sessionData, constvars.MethodGet, "/bookings", nil, nil)
		assert.NoError(t, err)
		assert.Equal(t, `[]`, string(raw))
		assert.Equal(t, 2, bookingCalls, "original request plus exactly one replay")
		assert.Equal(t, 1, refreshCalls)
		assert.Equal(t, "fresh", sessionData.UpstreamToken)
		assert.Equal(t, "rotated-cookie", sessionData.RefreshCookie)
		assert.True(t, hookFired, "rotated session must be handed to the persistence hook")
	})

	t.Run("Refused refresh invalidates the session", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		hookFired := false
		client.SetSessionRefreshHook(func(ctx context.Context, sessionData *models.Session) {
			hookFired = true
		})
		sessionData := &models.Session{
			SessionID:     "sess-1",
			UpstreamToken: "stale",
			RefreshCookie: "old-cookie",
			ExpiresAt:     time.Now().Add(time.Hour),
		}

		_, err := client.DoRaw(ctx, sessionData, constvars.MethodGet, "/bookings", nil, nil)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		assert.Empty(t, sessionData.RefreshCookie, "dead refresh cookie must be dropped")
		assert.True(t, sessionData.ExpiresAt.Before(time.Now()), "session must be expired")
		assert.True(t, hookFired, "invalidated session must be persisted")
	})

	t.Run("Still unauthorized after refresh surfaces the upstream status", func(t *testing.T) {
		bookingCalls := 0
		refreshCalls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/bookings":
				bookingCalls++
				w.WriteHeader(http.StatusUnauthorized)
			case "/auth/refresh":
				refreshCalls++
				w.Write([]byte("fresh"))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		sessionData := &models.Session{
			SessionID:     "sess-1",
			UpstreamToken: "stale",
			RefreshCookie: "old-cookie",
			ExpiresAt:     time.Now().Add(time.Hour),
		}

		_, err := client.DoRaw(ctx, sessionData, constvars.MethodGet, "/bookings", nil, nil)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		assert.Equal(t, 1, refreshCalls, "only one refresh attempt per request")
		assert.Equal(t, 2, bookingCalls, "no second replay after a failed retry")
	})

	t.Run("No refresh without a refresh cookie", func(t *testing.T) {
		refreshCalls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/auth/refresh" {
				refreshCalls++
			}
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		sessionData := &models.Session{SessionID: "sess-1", UpstreamToken: "stale"}

		_, err := client.DoRaw(ctx, sessionData, constvars.MethodGet, "/bookings", nil, nil)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		assert.Zero(t, refreshCalls)
	})
}
