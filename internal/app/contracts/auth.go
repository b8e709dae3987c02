package contracts

import (
	"context"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/dto/requests"
	"salon-service/internal/pkg/dto/responses"
	"salon-service/internal/pkg/salondto"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) error
	Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	Logout(ctx context.Context, sessionID string) error
	Session(ctx context.Context, sessionData *models.Session) (*responses.User, error)
	FindSession(ctx context.Context, sessionID string) (*models.Session, error)
	SaveSession(ctx context.Context, sessionData *models.Session) error
}

type SalonAuthClient interface {
	Register(ctx context.Context, request *salondto.RegisterUser) error
	Login(ctx context.Context, request *salondto.LoginUser) (string, string, error)
	Me(ctx context.Context, sessionData *models.Session) (*salondto.User, error)
}
