package bookings

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

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	bookingSalonClientInstance contracts.SalonBookingClient
	onceBookingSalonClient     sync.Once
)

type bookingSalonClient struct {
	Client *salonapi.Client
	Log    *zap.Logger
}

func NewBookingSalonClient(client *salonapi.Client, logger *zap.Logger) contracts.SalonBookingClient {
	onceBookingSalonClient.Do(func() {
		bookingSalonClientInstance = &bookingSalonClient{
			Client: client,
			Log:    logger,
		}
	})
	return bookingSalonClientInstance
}

func (c *bookingSalonClient) FindAll(ctx context.Context, sessionData *models.Session) ([]salondto.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("bookingSalonClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var rawBookings []salondto.Booking
	err := c.Client.Do(ctx, sessionData, constvars.MethodGet, "/bookings", nil, nil, &rawBookings)
	if err != nil {
		return nil, err
	}
	return rawBookings, nil
}

func (c *bookingSalonClient) FindByUser(ctx context.Context, sessionData *models.Session, userID string) ([]salondto.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("bookingSalonClient.FindByUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	var rawBookings []salondto.Booking
	err := c.Client.Do(ctx, sessionData, constvars.MethodGet, fmt.Sprintf("/bookings/user/%s", url.PathEscape(userID)), nil, nil, &rawBookings)
	if err != nil {
		return nil, err
	}
	return rawBookings, nil
}

func (c *bookingSalonClient) UpdateStatus(ctx context.Context, sessionData *models.Session, bookingID, status string) (*salondto.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("bookingSalonClient.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
		zap.String("status", status),
	)

	query := url.Values{}
	query.Set(constvars.QueryParamStatus, status)

	// The status endpoint answers 2xx with an optional updated record; an
	// empty body is a valid acknowledgment.
	raw, err := c.Client.DoRaw(ctx, sessionData, constvars.MethodPut, fmt.Sprintf("/bookings/%s/status", url.PathEscape(bookingID)), query, nil)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	updated := new(salondto.Booking)
	if unmarshalErr := json.Unmarshal(raw, updated); unmarshalErr != nil {
		// A 2xx with an undecodable body is still an acknowledgment.
		return nil, nil
	}
	return updated, nil
}

func (c *bookingSalonClient) Create(ctx context.Context, sessionData *models.Session, request *salondto.CreateBooking) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("bookingSalonClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
	)

	return c.Client.Do(ctx, sessionData, constvars.MethodPost, "/bookings", nil, request, nil)
}

func (c *bookingSalonClient) CreateGuest(ctx context.Context, request *salondto.CreateGuestBooking) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("bookingSalonClient.CreateGuest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return c.Client.Do(ctx, nil, constvars.MethodPost, "/bookings/guest", nil, request, nil)
}
