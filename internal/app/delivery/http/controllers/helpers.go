package controllers

import (
	"fmt"
	"net/http"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/exceptions"
)

func sessionFromRequest(r *http.Request) (*models.Session, error) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || sessionData == nil {
		return nil, exceptions.ErrMissingSessionData(fmt.Errorf("no session data in request context"))
	}
	return sessionData, nil
}

func sessionIDFromRequest(r *http.Request) (string, error) {
	sessionID, ok := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	if !ok || sessionID == "" {
		return "", exceptions.ErrMissingSessionData(fmt.Errorf("no session id in request context"))
	}
	return sessionID, nil
}
