package salonapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"salon-service/internal/app/config"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/exceptions"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	clientInstance *Client
	onceClient     sync.Once
)

// SessionRefreshHook is invoked after a transparent token refresh so the
// rotated upstream token can be persisted alongside the session.
type SessionRefreshHook func(ctx context.Context, sessionData *models.Session)

// Client is the single HTTP gateway to the salon API. Every domain client
// goes through Do, which attaches the session bearer token, throttles
// outbound calls and retries exactly once after a 401 by replaying the
// refresh cookie.
type Client struct {
	BaseUrl           string
	RefreshCookieName string
	HTTPClient        *http.Client
	Limiter           *rate.Limiter
	Log               *zap.Logger

	mu        sync.RWMutex
	onRefresh SessionRefreshHook
}

func NewClient(cfg *config.InternalConfig, logger *zap.Logger) *Client {
	onceClient.Do(func() {
		clientInstance = &Client{
			BaseUrl:           strings.TrimRight(cfg.SalonAPI.BaseUrl, "/"),
			RefreshCookieName: cfg.SalonAPI.RefreshCookieName,
			HTTPClient: &http.Client{
				Timeout: time.Duration(cfg.SalonAPI.TimeoutInSeconds) * time.Second,
			},
			Limiter: rate.NewLimiter(rate.Limit(cfg.SalonAPI.RequestsPerSecond), cfg.SalonAPI.RequestBurst),
			Log:     logger,
		}
	})
	return clientInstance
}

// SetSessionRefreshHook registers the persistence callback. The auth usecase
// sets this once during wiring.
func (c *Client) SetSessionRefreshHook(hook SessionRefreshHook) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onRefresh = hook
}

// Do sends a JSON request to the salon API and decodes the JSON response
// into out (which may be nil for empty responses). sessionData may be nil
// for unauthenticated endpoints.
func (c *Client) Do(ctx context.Context, sessionData *models.Session, method, path string, query url.Values, body interface{}, out interface{}) error {
	raw, err := c.DoRaw(ctx, sessionData, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.Log.Error("salonapi.Do error decoding response",
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return exceptions.ErrDecodeUpstreamResponse(err, path)
	}
	return nil
}

// DoRaw behaves like Do but hands back the raw response body. Used by the
// analytics client whose payload shape varies per endpoint, and by the auth
// client whose login endpoint answers with a bare token string.
func (c *Client) DoRaw(ctx context.Context, sessionData *models.Session, method, path string, query url.Values, body interface{}) ([]byte, error) {
	raw, statusCode, err := c.send(ctx, sessionData, method, path, query, body)
	if err != nil {
		return nil, err
	}

	if statusCode == constvars.StatusUnauthorized && sessionData != nil && sessionData.RefreshCookie != "" {
		if refreshErr := c.refreshSession(ctx, sessionData); refreshErr != nil {
			return nil, refreshErr
		}
		raw, statusCode, err = c.send(ctx, sessionData, method, path, query, body)
		if err != nil {
			return nil, err
		}
	}

	if statusCode < constvars.StatusOK || statusCode >= constvars.StatusMultipleChoices {
		return nil, exceptions.ErrUpstreamStatus(method, path, statusCode, extractUpstreamMessage(raw))
	}
	return raw, nil
}

func (c *Client) send(ctx context.Context, sessionData *models.Session, method, path string, query url.Values, body interface{}) ([]byte, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, 0, exceptions.ErrUpstreamRateLimiter(err)
	}

	fullUrl := c.BaseUrl + path
	if len(query) > 0 {
		fullUrl += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, 0, exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullUrl, reader)
	if err != nil {
		c.Log.Error("salonapi.send error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUpstreamUrlKey, fullUrl),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrCreateHTTPRequest(err)
	}
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if sessionData != nil && sessionData.UpstreamToken != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+sessionData.UpstreamToken)
	}

	c.Log.Info("salonapi.send sending request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingUpstreamUrlKey, fullUrl),
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("salonapi.send error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUpstreamUrlKey, fullUrl),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, exceptions.ErrDecodeUpstreamResponse(err, path)
	}

	c.Log.Info("salonapi.send response received",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUpstreamUrlKey, fullUrl),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Int(constvars.LoggingResponseLengthKey, len(raw)),
	)
	return raw, resp.StatusCode, nil
}

// PostForToken sends an unauthenticated POST and hands back the token from
// the response body together with the refresh cookie, if the upstream set
// one. The login endpoint answers with the token as plain text.
func (c *Client) PostForToken(ctx context.Context, path string, body interface{}) (string, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := c.Limiter.Wait(ctx); err != nil {
		return "", "", exceptions.ErrUpstreamRateLimiter(err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", "", exceptions.ErrCannotMarshalJSON(err)
	}

	fullUrl := c.BaseUrl + path
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, fullUrl, bytes.NewReader(payload))
	if err != nil {
		return "", "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	c.Log.Info("salonapi.PostForToken sending request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUpstreamUrlKey, fullUrl),
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", "", exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", exceptions.ErrDecodeUpstreamResponse(err, path)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= constvars.StatusMultipleChoices {
		return "", "", exceptions.ErrUpstreamStatus(constvars.MethodPost, path, resp.StatusCode, extractUpstreamMessage(raw))
	}

	token := extractToken(raw)
	if token == "" {
		return "", "", exceptions.ErrDecodeUpstreamResponse(fmt.Errorf("response carried no token"), path)
	}
	return token, refreshCookieFromResponse(resp, c.RefreshCookieName), nil
}

// refreshSession replays the refresh cookie against the auth refresh
// endpoint and rotates the upstream token in place. The registered hook
// persists the rotated session.
func (c *Client) refreshSession(ctx context.Context, sessionData *models.Session) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("salonapi.refreshSession refreshing upstream token",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionData.SessionID),
	)

	fullUrl := c.BaseUrl + "/auth/refresh"
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, fullUrl, nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderCookie, fmt.Sprintf("%s=%s", c.RefreshCookieName, sessionData.RefreshCookie))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return exceptions.ErrDecodeUpstreamResponse(err, "/auth/refresh")
	}

	if resp.StatusCode != constvars.StatusOK {
		c.Log.Warn("salonapi.refreshSession upstream refused refresh; session is dead",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionData.SessionID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		// Invalidate the stored session so the next lookup rejects it
		// instead of retrying a dead refresh cookie.
		sessionData.RefreshCookie = ""
		sessionData.ExpiresAt = time.Now().Add(-time.Minute)
		c.mu.RLock()
		hook := c.onRefresh
		c.mu.RUnlock()
		if hook != nil {
			hook(ctx, sessionData)
		}
		return exceptions.ErrSessionExpired(fmt.Errorf("upstream refresh returned status %d", resp.StatusCode))
	}

	token := extractToken(raw)
	if token == "" {
		return exceptions.ErrDecodeUpstreamResponse(fmt.Errorf("refresh response carried no token"), "/auth/refresh")
	}
	sessionData.UpstreamToken = token

	if cookie := refreshCookieFromResponse(resp, c.RefreshCookieName); cookie != "" {
		sessionData.RefreshCookie = cookie
	}

	c.mu.RLock()
	hook := c.onRefresh
	c.mu.RUnlock()
	if hook != nil {
		hook(ctx, sessionData)
	}
	return nil
}

// extractToken accepts both a bare token body and a {"token": "..."} wrapper.
func extractToken(raw []byte) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "{") {
		var wrapper struct {
			Token       string `json:"token"`
			AccessToken string `json:"access_token"`
		}
		if err := json.Unmarshal(raw, &wrapper); err != nil {
			return ""
		}
		if wrapper.Token != "" {
			return wrapper.Token
		}
		return wrapper.AccessToken
	}
	return strings.Trim(trimmed, `"`)
}

func refreshCookieFromResponse(resp *http.Response, name string) string {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

// extractUpstreamMessage digs a human-readable message out of an upstream
// error body, tolerating the three shapes the salon API is known to emit.
func extractUpstreamMessage(raw []byte) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "{") {
		var wrapper struct {
			Detail  string `json:"detail"`
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(raw, &wrapper); err == nil {
			switch {
			case wrapper.Detail != "":
				return wrapper.Detail
			case wrapper.Message != "":
				return wrapper.Message
			case wrapper.Error != "":
				return wrapper.Error
			}
		}
	}
	return trimmed
}
