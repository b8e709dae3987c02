package models

import "time"

// Session is the redis-backed authentication state for one logged-in user.
// UpstreamToken is the bearer token issued by the salon backend;
// RefreshCookie is forwarded to the backend's cookie-based refresh endpoint.
type Session struct {
	SessionID     string    `json:"sessionId"`
	UserID        string    `json:"userId"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	UserRole      string    `json:"userRole"`
	StatusUser    string    `json:"statusUser"`
	PhotoURL      string    `json:"photoUrl,omitempty"`
	HasPhoto      bool      `json:"hasPhoto"`
	UpstreamToken string    `json:"upstreamToken"`
	RefreshCookie string    `json:"refreshCookie,omitempty"`
	ExpiresAt     time.Time `json:"expiresAt"`
}
