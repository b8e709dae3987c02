package users

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
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

type userUsecase struct {
	SalonUserClient contracts.SalonUserClient
	PhotoUsecase    contracts.PhotoUsecase
	QueueService    contracts.QueueService
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

const EventUserStatusUpdated = "user.status_updated"

func NewUserUsecase(
	salonUserClient contracts.SalonUserClient,
	photoUsecase contracts.PhotoUsecase,
	queueService contracts.QueueService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			SalonUserClient: salonUserClient,
			PhotoUsecase:    photoUsecase,
			QueueService:    queueService,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return userUsecaseInstance
}

// FindAll serves the user directory: fetches the full list upstream, then
// filters and pages locally. Admin only.
func (uc *userUsecase) FindAll(ctx context.Context, sessionData *models.Session, request *requests.UserListQuery) ([]responses.User, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, request.Query),
	)

	if sessionData.UserRole != constvars.RoleAdmin {
		return nil, 0, exceptions.ErrRoleNotAllowed(fmt.Errorf("role %s listing users", sessionData.UserRole))
	}

	rawUsers, err := uc.SalonUserClient.FindAll(ctx, sessionData)
	if err != nil {
		return nil, 0, err
	}

	filtered := FilterUsers(rawUsers, request)
	page := Paginate(filtered, request.Page, request.PageSize)
	return uc.buildUserResponses(ctx, page), len(filtered), nil
}

func (uc *userUsecase) FindEmployees(ctx context.Context, sessionData *models.Session) ([]responses.User, error) {
	rawUsers, err := uc.SalonUserClient.FindEmployees(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	return uc.buildUserResponses(ctx, rawUsers), nil
}

func (uc *userUsecase) FindClients(ctx context.Context, sessionData *models.Session) ([]responses.User, error) {
	if sessionData.UserRole == constvars.RoleClient {
		return nil, exceptions.ErrRoleNotAllowed(fmt.Errorf("role %s listing clients", sessionData.UserRole))
	}
	rawUsers, err := uc.SalonUserClient.FindClients(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	return uc.buildUserResponses(ctx, rawUsers), nil
}

// UpdateUserStatus approves (ATIVO) or disapproves (PENDENTE) a user. The
// upstream acknowledgment is required before anything is reported as
// changed, so a failure leaves nothing to roll back.
func (uc *userUsecase) UpdateUserStatus(ctx context.Context, sessionData *models.Session, userID, status string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateUserStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String("status", status),
	)

	if sessionData.UserRole != constvars.RoleAdmin {
		return exceptions.ErrRoleNotAllowed(fmt.Errorf("role %s updating user status", sessionData.UserRole))
	}
	if status != constvars.UserStatusActive && status != constvars.UserStatusPending {
		return exceptions.ErrURLParamValidation(fmt.Errorf("status %q is not ATIVO or PENDENTE", status), constvars.URLParamStatus)
	}

	if err := uc.SalonUserClient.UpdateStatus(ctx, sessionData, userID, status); err != nil {
		return err
	}

	if err := uc.QueueService.Publish(ctx, EventUserStatusUpdated, map[string]string{
		"userId": userID,
		"status": status,
	}); err != nil {
		uc.Log.Error("userUsecase.UpdateUserStatus event publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
	}
	return nil
}

func (uc *userUsecase) DeleteUser(ctx context.Context, sessionData *models.Session, userID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.DeleteUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if sessionData.UserRole != constvars.RoleAdmin {
		return exceptions.ErrRoleNotAllowed(fmt.Errorf("role %s deleting a user", sessionData.UserRole))
	}
	return uc.SalonUserClient.Delete(ctx, sessionData, userID)
}

func (uc *userUsecase) buildUserResponses(ctx context.Context, rawUsers []salondto.User) []responses.User {
	built := make([]responses.User, 0, len(rawUsers))
	for _, user := range rawUsers {
		response := responses.User{
			UserID:     user.UserID,
			Name:       user.Name,
			Email:      user.Email,
			UserRole:   user.UserRole,
			StatusUser: user.StatusUser,
			Phone:      user.Phone,
		}
		if info, err := uc.PhotoUsecase.PhotoInfo(ctx, user.UserID); err == nil && info != nil {
			response.PhotoURL = utils.BuildPhotoURL(uc.InternalConfig.App.EndpointPrefix, user.UserID, info.ETag)
			response.HasPhoto = true
		}
		built = append(built, response)
	}
	return built
}
