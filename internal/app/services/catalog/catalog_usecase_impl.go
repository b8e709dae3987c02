package catalog

import (
	"context"
	"fmt"
	"salon-service/internal/app/config"
	"salon-service/internal/app/contracts"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/dto/requests"
	"salon-service/internal/pkg/dto/responses"
	"salon-service/internal/pkg/exceptions"
	"salon-service/internal/pkg/salondto"
	"salon-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

var (
	catalogUsecaseInstance contracts.CatalogUsecase
	onceCatalogUsecase     sync.Once
)

type catalogUsecase struct {
	SalonCatalogClient contracts.SalonCatalogClient
	PhotoUsecase       contracts.PhotoUsecase
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewCatalogUsecase(
	salonCatalogClient contracts.SalonCatalogClient,
	photoUsecase contracts.PhotoUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.CatalogUsecase {
	onceCatalogUsecase.Do(func() {
		catalogUsecaseInstance = &catalogUsecase{
			SalonCatalogClient: salonCatalogClient,
			PhotoUsecase:       photoUsecase,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
	})
	return catalogUsecaseInstance
}

func (uc *catalogUsecase) FindAll(ctx context.Context, sessionData *models.Session) ([]responses.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rawServices, err := uc.SalonCatalogClient.FindAll(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	built := make([]responses.Service, 0, len(rawServices))
	for _, service := range rawServices {
		built = append(built, uc.buildServiceResponse(ctx, service))
	}
	return built, nil
}

func (uc *catalogUsecase) CreateService(ctx context.Context, sessionData *models.Session, request *requests.UpsertService) (*responses.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.CreateService called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if sessionData.UserRole != constvars.RoleAdmin {
		return nil, exceptions.ErrRoleNotAllowed(fmt.Errorf("role %s creating a service", sessionData.UserRole))
	}

	created, err := uc.SalonCatalogClient.Create(ctx, sessionData, upsertPayload(request))
	if err != nil {
		return nil, err
	}
	response := uc.buildServiceResponse(ctx, *created)
	return &response, nil
}

func (uc *catalogUsecase) UpdateService(ctx context.Context, sessionData *models.Session, serviceID string, request *requests.UpsertService) (*responses.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.UpdateService called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("service_id", serviceID),
	)

	if sessionData.UserRole != constvars.RoleAdmin {
		return nil, exceptions.ErrRoleNotAllowed(fmt.Errorf("role %s updating a service", sessionData.UserRole))
	}

	updated, err := uc.SalonCatalogClient.Update(ctx, sessionData, serviceID, upsertPayload(request))
	if err != nil {
		return nil, err
	}
	response := uc.buildServiceResponse(ctx, *updated)
	return &response, nil
}

func (uc *catalogUsecase) DeleteService(ctx context.Context, sessionData *models.Session, serviceID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.DeleteService called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("service_id", serviceID),
	)

	if sessionData.UserRole != constvars.RoleAdmin {
		return exceptions.ErrRoleNotAllowed(fmt.Errorf("role %s deleting a service", sessionData.UserRole))
	}
	return uc.SalonCatalogClient.Delete(ctx, sessionData, serviceID)
}

func upsertPayload(request *requests.UpsertService) *salondto.UpsertService {
	return &salondto.UpsertService{
		Name:        request.Name,
		Description: request.Description,
		Duration:    request.Duration,
		Price:       request.Price,
		Color:       request.Color,
	}
}

// buildServiceResponse enriches the upstream record with the locally stored
// showcase image, when one exists.
func (uc *catalogUsecase) buildServiceResponse(ctx context.Context, service salondto.Service) responses.Service {
	response := responses.Service{
		ID:          service.ID,
		Name:        service.Name,
		Description: service.Description,
		Duration:    service.Duration,
		Price:       service.Price,
		Color:       service.Color,
	}
	imageOwner := "service-" + service.ID
	if info, err := uc.PhotoUsecase.PhotoInfo(ctx, imageOwner); err == nil && info != nil {
		response.ImageURL = utils.BuildPhotoURL(uc.InternalConfig.App.EndpointPrefix, imageOwner, info.ETag)
		response.HasImage = true
	}
	return response
}
