package contracts

import (
	"context"
	"encoding/json"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/dto/responses"
)

type AnalyticsUsecase interface {
	Overview(ctx context.Context, sessionData *models.Session, days int) (*responses.Analytics, error)
}

type SalonAnalyticsClient interface {
	Fetch(ctx context.Context, sessionData *models.Session, path string) (json.RawMessage, error)
}
