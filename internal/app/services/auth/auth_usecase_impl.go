package auth

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
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

type authUsecase struct {
	SalonAuthClient contracts.SalonAuthClient
	RedisRepository contracts.RedisRepository
	PhotoUsecase    contracts.PhotoUsecase
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewAuthUsecase(
	salonAuthClient contracts.SalonAuthClient,
	redisRepository contracts.RedisRepository,
	photoUsecase contracts.PhotoUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			SalonAuthClient: salonAuthClient,
			RedisRepository: redisRepository,
			PhotoUsecase:    photoUsecase,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return uc.SalonAuthClient.Register(ctx, &salondto.RegisterUser{
		Name:     request.Name,
		Email:    request.Email,
		Password: request.Password,
		Phone:    request.Phone,
	})
}

// Login exchanges credentials upstream, hydrates the profile via /users/me,
// stores the session in redis and issues this service's own session JWT.
func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	upstreamToken, refreshCookie, err := uc.SalonAuthClient.Login(ctx, &salondto.LoginUser{
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		return nil, err
	}

	sessionData := &models.Session{
		SessionID:     utils.GenerateSessionID(),
		UpstreamToken: upstreamToken,
		RefreshCookie: refreshCookie,
	}

	user, err := uc.SalonAuthClient.Me(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	fallback := time.Duration(uc.InternalConfig.SalonAPI.SessionFallbackHours) * time.Hour
	sessionData.UserID = user.UserID
	sessionData.Name = user.Name
	sessionData.Email = user.Email
	sessionData.UserRole = user.UserRole
	sessionData.StatusUser = user.StatusUser
	sessionData.ExpiresAt = utils.UpstreamTokenExpiry(upstreamToken, fallback)
	uc.attachPhoto(ctx, sessionData)

	if err := uc.SaveSession(ctx, sessionData); err != nil {
		return nil, err
	}

	sessionToken, err := utils.GenerateSessionJWT(sessionData.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.Login session created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionData.SessionID),
		zap.String(constvars.LoggingUserIDKey, sessionData.UserID),
	)

	return &responses.LoginUser{
		Token: sessionToken,
		User:  buildUserResponse(sessionData),
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	if err := uc.RedisRepository.Delete(ctx, constvars.RedisSessionKeyPrefix+sessionID); err != nil {
		return err
	}
	// The cached dashboard view dies with the session.
	return uc.RedisRepository.Delete(ctx, constvars.RedisDashboardKeyPrefix+sessionID)
}

// Session rehydrates the client on page load: it confirms the session is
// still alive and returns the profile, re-checking photo presence.
func (uc *authUsecase) Session(ctx context.Context, sessionData *models.Session) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Session called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionData.SessionID),
	)

	uc.attachPhoto(ctx, sessionData)
	if err := uc.SaveSession(ctx, sessionData); err != nil {
		return nil, err
	}
	user := buildUserResponse(sessionData)
	return &user, nil
}

func (uc *authUsecase) FindSession(ctx context.Context, sessionID string) (*models.Session, error) {
	raw, err := uc.RedisRepository.Get(ctx, constvars.RedisSessionKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, exceptions.ErrSessionInvalid(fmt.Errorf("session %s not found", sessionID))
	}

	sessionData := new(models.Session)
	if err := json.Unmarshal([]byte(raw), sessionData); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	if !sessionData.ExpiresAt.IsZero() && time.Now().After(sessionData.ExpiresAt) {
		if sessionData.RefreshCookie == "" {
			_ = uc.RedisRepository.Delete(ctx, constvars.RedisSessionKeyPrefix+sessionID)
			return nil, exceptions.ErrSessionExpired(fmt.Errorf("session %s expired", sessionID))
		}
		// An expired upstream token with a refresh cookie is still usable;
		// the transport refreshes on the first 401.
	}
	return sessionData, nil
}

func (uc *authUsecase) SaveSession(ctx context.Context, sessionData *models.Session) error {
	ttl := time.Until(sessionData.ExpiresAt)
	if sessionData.RefreshCookie != "" || ttl <= 0 {
		// Refreshable sessions outlive the first token; pin the redis TTL to
		// the service's own session length instead.
		ttl = time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	}
	return uc.RedisRepository.Set(ctx, constvars.RedisSessionKeyPrefix+sessionData.SessionID, sessionData, ttl)
}

func (uc *authUsecase) attachPhoto(ctx context.Context, sessionData *models.Session) {
	if sessionData.UserID == "" {
		return
	}
	info, err := uc.PhotoUsecase.PhotoInfo(ctx, sessionData.UserID)
	if err != nil || info == nil {
		sessionData.PhotoURL = ""
		sessionData.HasPhoto = false
		return
	}
	sessionData.PhotoURL = utils.BuildPhotoURL(uc.InternalConfig.App.EndpointPrefix, sessionData.UserID, info.ETag)
	sessionData.HasPhoto = true
}

func buildUserResponse(sessionData *models.Session) responses.User {
	return responses.User{
		UserID:     sessionData.UserID,
		Name:       sessionData.Name,
		Email:      sessionData.Email,
		UserRole:   sessionData.UserRole,
		StatusUser: sessionData.StatusUser,
		PhotoURL:   sessionData.PhotoURL,
		HasPhoto:   sessionData.HasPhoto,
	}
}
