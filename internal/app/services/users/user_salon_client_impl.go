package users

import (
	"context"
	"fmt"
	"net/url"
	"salon-service/internal/app/contracts"
	"salon-service/internal/app/models"
	"salon-service/internal/app/services/shared/salonapi"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/salondto"
	"sync"

	"go.uber.org/zap"
)

var (
	userSalonClientInstance contracts.SalonUserClient
	onceUserSalonClient     sync.Once
)

type userSalonClient struct {
	Client *salonapi.Client
	Log    *zap.Logger
}

func NewUserSalonClient(client *salonapi.Client, logger *zap.Logger) contracts.SalonUserClient {
	onceUserSalonClient.Do(func() {
		userSalonClientInstance = &userSalonClient{
			Client: client,
			Log:    logger,
		}
	})
	return userSalonClientInstance
}

func (c *userSalonClient) FindAll(ctx context.Context, sessionData *models.Session) ([]salondto.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("userSalonClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var rawUsers []salondto.User
	err := c.Client.Do(ctx, sessionData, constvars.MethodGet, "/users", nil, nil, &rawUsers)
	if err != nil {
		return nil, err
	}
	return rawUsers, nil
}

func (c *userSalonClient) FindEmployees(ctx context.Context, sessionData *models.Session) ([]salondto.User, error) {
	var rawUsers []salondto.User
	err := c.Client.Do(ctx, sessionData, constvars.MethodGet, "/users/employees", nil, nil, &rawUsers)
	if err != nil {
		return nil, err
	}
	return rawUsers, nil
}

func (c *userSalonClient) FindClients(ctx context.Context, sessionData *models.Session) ([]salondto.User, error) {
	var rawUsers []salondto.User
	err := c.Client.Do(ctx, sessionData, constvars.MethodGet, "/users/clients", nil, nil, &rawUsers)
	if err != nil {
		return nil, err
	}
	return rawUsers, nil
}

func (c *userSalonClient) UpdateStatus(ctx context.Context, sessionData *models.Session, userID, status string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("userSalonClient.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String("status", status),
	)

	path := fmt.Sprintf("/users/status/%s/%s", url.PathEscape(userID), url.PathEscape(status))
	return c.Client.Do(ctx, sessionData, constvars.MethodPut, path, nil, nil, nil)
}

func (c *userSalonClient) Delete(ctx context.Context, sessionData *models.Session, userID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("userSalonClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	return c.Client.Do(ctx, sessionData, constvars.MethodDelete, fmt.Sprintf("/users/%s", url.PathEscape(userID)), nil, nil, nil)
}
