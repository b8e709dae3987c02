package contracts

import (
	"context"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/dto/requests"
	"salon-service/internal/pkg/dto/responses"
	"salon-service/internal/pkg/salondto"
)

type CatalogUsecase interface {
	FindAll(ctx context.Context, sessionData *models.Session) ([]responses.Service, error)
	CreateService(ctx context.Context, sessionData *models.Session, request *requests.UpsertService) (*responses.Service, error)
	UpdateService(ctx context.Context, sessionData *models.Session, serviceID string, request *requests.UpsertService) (*responses.Service, error)
	DeleteService(ctx context.Context, sessionData *models.Session, serviceID string) error
}

type SalonCatalogClient interface {
	FindAll(ctx context.Context, sessionData *models.Session) ([]salondto.Service, error)
	Create(ctx context.Context, sessionData *models.Session, request *salondto.UpsertService) (*salondto.Service, error)
	Update(ctx context.Context, sessionData *models.Session, serviceID string, request *salondto.UpsertService) (*salondto.Service, error)
	Delete(ctx context.Context, sessionData *models.Session, serviceID string) error
}
