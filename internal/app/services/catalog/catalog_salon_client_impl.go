package catalog

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
	catalogSalonClientInstance contracts.SalonCatalogClient
	onceCatalogSalonClient     sync.Once
)

type catalogSalonClient struct {
	Client *salonapi.Client
	Log    *zap.Logger
}

func NewCatalogSalonClient(client *salonapi.Client, logger *zap.Logger) contracts.SalonCatalogClient {
	onceCatalogSalonClient.Do(func() {
		catalogSalonClientInstance = &catalogSalonClient{
			Client: client,
			Log:    logger,
		}
	})
	return catalogSalonClientInstance
}

// FindAll is the only catalog read and it backs a public page, so it works
// with or without a session.
func (c *catalogSalonClient) FindAll(ctx context.Context, sessionData *models.Session) ([]salondto.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("catalogSalonClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var rawServices []salondto.Service
	err := c.Client.Do(ctx, sessionData, constvars.MethodGet, "/service", nil, nil, &rawServices)
	if err != nil {
		return nil, err
	}
	return rawServices, nil
}

func (c *catalogSalonClient) Create(ctx context.Context, sessionData *models.Session, request *salondto.UpsertService) (*salondto.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("catalogSalonClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	created := new(salondto.Service)
	err := c.Client.Do(ctx, sessionData, constvars.MethodPost, "/service", nil, request, created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *catalogSalonClient) Update(ctx context.Context, sessionData *models.Session, serviceID string, request *salondto.UpsertService) (*salondto.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("catalogSalonClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("service_id", serviceID),
	)

	updated := new(salondto.Service)
	err := c.Client.Do(ctx, sessionData, constvars.MethodPut, fmt.Sprintf("/service/%s", url.PathEscape(serviceID)), nil, request, updated)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *catalogSalonClient) Delete(ctx context.Context, sessionData *models.Session, serviceID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("catalogSalonClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("service_id", serviceID),
	)

	return c.Client.Do(ctx, sessionData, constvars.MethodDelete, fmt.Sprintf("/service/%s", url.PathEscape(serviceID)), nil, nil, nil)
}
