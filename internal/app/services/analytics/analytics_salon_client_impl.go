package analytics

import (
	"context"
	"encoding/json"
	"salon-service/internal/app/contracts"
	"salon-service/internal/app/models"
	"salon-service/internal/app/services/shared/salonapi"
	"salon-service/internal/pkg/constvars"
	"sync"

	"go.uber.org/zap"
)

var (
	analyticsSalonClientInstance contracts.SalonAnalyticsClient
	onceAnalyticsSalonClient     sync.Once
)

type analyticsSalonClient struct {
	Client *salonapi.Client
	Log    *zap.Logger
}

func NewAnalyticsSalonClient(client *salonapi.Client, logger *zap.Logger) contracts.SalonAnalyticsClient {
	onceAnalyticsSalonClient.Do(func() {
		analyticsSalonClientInstance = &analyticsSalonClient{
			Client: client,
			Log:    logger,
		}
	})
	return analyticsSalonClientInstance
}

// Fetch returns the raw payload; the shape varies per metric endpoint and is
// classified by the usecase.
func (c *analyticsSalonClient) Fetch(ctx context.Context, sessionData *models.Session, path string) (json.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("analyticsSalonClient.Fetch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, path),
	)

	raw, err := c.Client.DoRaw(ctx, sessionData, constvars.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}
