package auth

import (
	"context"
	"salon-service/internal/app/contracts"
	"salon-service/internal/app/models"
	"salon-service/internal/app/services/shared/salonapi"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/exceptions"
	"salon-service/internal/pkg/salondto"
	"sync"

	"go.uber.org/zap"
)

var (
	authSalonClientInstance contracts.SalonAuthClient
	onceAuthSalonClient     sync.Once
)

type authSalonClient struct {
	Client *salonapi.Client
	Log    *zap.Logger
}

func NewAuthSalonClient(client *salonapi.Client, logger *zap.Logger) contracts.SalonAuthClient {
	onceAuthSalonClient.Do(func() {
		authSalonClientInstance = &authSalonClient{
			Client: client,
			Log:    logger,
		}
	})
	return authSalonClientInstance
}

func (c *authSalonClient) Register(ctx context.Context, request *salondto.RegisterUser) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authSalonClient.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return c.Client.Do(ctx, nil, constvars.MethodPost, "/auth/register", nil, request, nil)
}

// Login exchanges credentials for the upstream bearer token and the refresh
// cookie. A 401 from the login endpoint means bad credentials, not an
// expired session.
func (c *authSalonClient) Login(ctx context.Context, request *salondto.LoginUser) (string, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authSalonClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	token, refreshCookie, err := c.Client.PostForToken(ctx, "/auth/login", request)
	if err != nil {
		if customErr, ok := err.(*exceptions.CustomError); ok && customErr.StatusCode == constvars.StatusUnauthorized {
			return "", "", exceptions.ErrInvalidCredentials(err)
		}
		return "", "", err
	}
	return token, refreshCookie, nil
}

func (c *authSalonClient) Me(ctx context.Context, sessionData *models.Session) (*salondto.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authSalonClient.Me called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user := new(salondto.User)
	err := c.Client.Do(ctx, sessionData, constvars.MethodGet, "/users/me", nil, nil, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}
