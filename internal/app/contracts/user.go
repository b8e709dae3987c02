package contracts

import (
	"context"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/dto/requests"
	"salon-service/internal/pkg/dto/responses"
	"salon-service/internal/pkg/salondto"
)

type UserUsecase interface {
	FindAll(ctx context.Context, sessionData *models.Session, request *requests.UserListQuery) ([]responses.User, int, error)
	FindEmployees(ctx context.Context, sessionData *models.Session) ([]responses.User, error)
	FindClients(ctx context.Context, sessionData *models.Session) ([]responses.User, error)
	UpdateUserStatus(ctx context.Context, sessionData *models.Session, userID, status string) error
	DeleteUser(ctx context.Context, sessionData *models.Session, userID string) error
}

type SalonUserClient interface {
	FindAll(ctx context.Context, sessionData *models.Session) ([]salondto.User, error)
	FindEmployees(ctx context.Context, sessionData *models.Session) ([]salondto.User, error)
	FindClients(ctx context.Context, sessionData *models.Session) ([]salondto.User, error)
	UpdateStatus(ctx context.Context, sessionData *models.Session, userID, status string) error
	Delete(ctx context.Context, sessionData *models.Session, userID string) error
}
