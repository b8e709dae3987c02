package bookings

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
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	EventBookingCreated       = "booking.created"
	EventGuestBookingCreated  = "booking.guest_created"
	EventBookingStatusUpdated = "booking.status_updated"
	EventFilteredViewChanged  = "booking.filtered_view_changed"
)

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

type bookingUsecase struct {
	SalonBookingClient contracts.SalonBookingClient
	RedisRepository    contracts.RedisRepository
	QueueService       contracts.QueueService
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewBookingUsecase(
	salonBookingClient contracts.SalonBookingClient,
	redisRepository contracts.RedisRepository,
	queueService contracts.QueueService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			SalonBookingClient: salonBookingClient,
			RedisRepository:    redisRepository,
			QueueService:       queueService,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
	})
	return bookingUsecaseInstance
}

func (uc *bookingUsecase) Dashboard(ctx context.Context, sessionData *models.Session, request *requests.DashboardQuery) (*responses.Dashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.Dashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionData.SessionID),
		zap.String("month", request.Month),
		zap.Bool("refresh", request.Refresh),
	)

	state, err := uc.loadState(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	needFetch := request.Refresh
	if state == nil {
		month := request.Month
		if month == "" {
			month = time.Now().Format(constvars.MonthQueryLayout)
		}
		state = NewDashboardState(month)
		needFetch = true
	}

	// Month navigation only moves the cursor; filters, selection and the
	// fetched list are untouched.
	if request.Month != "" {
		state.Month = request.Month
	}
	uc.applyFilterQuery(state, request)

	if needFetch {
		state, err = uc.refetchBookings(ctx, sessionData, state)
		if err != nil {
			return nil, err
		}
	}

	uc.syncFilteredView(ctx, sessionData, state)
	if err := uc.saveState(ctx, sessionData, state); err != nil {
		return nil, err
	}
	return BuildDashboardResponse(state, time.Now())
}

func (uc *bookingUsecase) UpdateSelection(ctx context.Context, sessionData *models.Session, request *requests.UpdateSelection) (*responses.Dashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.UpdateSelection called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionData.SessionID),
		zap.String("day", request.Day),
		zap.Bool("all", request.All),
	)

	state, err := uc.loadOrFetchState(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	if request.All || request.Day == "" {
		state.SelectAll()
	} else if err := state.SelectDay(request.Day); err != nil {
		return nil, err
	}

	uc.syncFilteredView(ctx, sessionData, state)
	if err := uc.saveState(ctx, sessionData, state); err != nil {
		return nil, err
	}
	return BuildDashboardResponse(state, time.Now())
}

func (uc *bookingUsecase) UpdateBookingStatus(ctx context.Context, sessionData *models.Session, bookingID, status string) (*responses.Dashboard, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.UpdateBookingStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionData.SessionID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
		zap.String("status", status),
	)

	if status != constvars.BookingStatusConfirmed && status != constvars.BookingStatusCancelled {
		return nil, exceptions.ErrInvalidBookingStatus(fmt.Errorf("status %q is not an allowed transition", status))
	}

	// Local state changes only after the upstream acknowledgment, so a
	// failed call never needs a rollback.
	updated, err := uc.SalonBookingClient.UpdateStatus(ctx, sessionData, bookingID, status)
	if err != nil {
		return nil, err
	}

	state, err := uc.loadOrFetchState(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	patch := models.BookingPatch{Status: &status}
	if updated != nil {
		normalized := NormalizeOne(*updated)
		patch.Status = &normalized.Status
	}
	if !state.ApplyPatch(bookingID, patch) {
		uc.Log.Warn("bookingUsecase.UpdateBookingStatus booking missing from cached state",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
		)
	}

	uc.syncFilteredView(ctx, sessionData, state)
	if err := uc.saveState(ctx, sessionData, state); err != nil {
		return nil, err
	}

	if err := uc.QueueService.Publish(ctx, EventBookingStatusUpdated, map[string]string{
		"bookingId": bookingID,
		"status":    status,
		"userId":    sessionData.UserID,
	}); err != nil {
		uc.Log.Error("bookingUsecase.UpdateBookingStatus event publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
	}

	return BuildDashboardResponse(state, time.Now())
}

func (uc *bookingUsecase) CreateBooking(ctx context.Context, sessionData *models.Session, request *requests.CreateBooking) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionData.SessionID),
	)

	err := uc.SalonBookingClient.Create(ctx, sessionData, &salondto.CreateBooking{
		EmployeeID: request.EmployeeID,
		ServiceID:  request.ServiceID,
		StartTime:  request.StartTime,
		UserID:     request.UserID,
	})
	if err != nil {
		return err
	}

	if err := uc.QueueService.Publish(ctx, EventBookingCreated, request); err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking event publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return nil
}

func (uc *bookingUsecase) CreateGuestBooking(ctx context.Context, request *requests.CreateGuestBooking) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CreateGuestBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := uc.SalonBookingClient.CreateGuest(ctx, &salondto.CreateGuestBooking{
		EmployeeID:   request.EmployeeID,
		ServiceID:    request.ServiceID,
		StartTime:    request.StartTime,
		NameUser:     request.NameUser,
		PhoneUser:    request.PhoneUser,
		ConsentTerms: request.ConsentTerms,
	})
	if err != nil {
		return err
	}

	if err := uc.QueueService.Publish(ctx, EventGuestBookingCreated, map[string]string{
		"employeeId": request.EmployeeID,
		"serviceId":  request.ServiceID,
		"startTime":  request.StartTime,
	}); err != nil {
		uc.Log.Error("bookingUsecase.CreateGuestBooking event publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return nil
}

// refetchBookings pulls the role-scoped booking list from the salon API
// under a claimed generation token. If a newer refresh claimed the state
// while this one was in flight, the stale result is discarded.
func (uc *bookingUsecase) refetchBookings(ctx context.Context, sessionData *models.Session, state *DashboardState) (*DashboardState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	state.Generation++
	generation := state.Generation
	if err := uc.saveState(ctx, sessionData, state); err != nil {
		return nil, err
	}

	var rawBookings []salondto.Booking
	var err error
	if sessionData.UserRole == constvars.RoleClient {
		rawBookings, err = uc.SalonBookingClient.FindByUser(ctx, sessionData, sessionData.UserID)
	} else {
		rawBookings, err = uc.SalonBookingClient.FindAll(ctx, sessionData)
	}
	if err != nil {
		return nil, err
	}

	latest, loadErr := uc.loadState(ctx, sessionData)
	if loadErr != nil {
		return nil, loadErr
	}
	if latest != nil && latest.Generation != generation {
		uc.Log.Warn(constvars.ErrDevStaleDashboardGeneration,
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingGenerationKey, generation),
			zap.Int64("latest_generation", latest.Generation),
		)
		return latest, nil
	}
	if latest != nil {
		state = latest
	}

	state.SetBookings(Normalize(rawBookings))
	uc.Log.Info("bookingUsecase.refetchBookings fetched bookings",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingBookingCountKey, len(state.Bookings)),
		zap.Int64(constvars.LoggingGenerationKey, generation),
	)
	return state, nil
}

// syncFilteredView runs the filter engine over the current state, seeded
// with the id sequence persisted from the previous request. When the ordered
// id sequence of the filtered view moved, a view-changed event is published;
// an unchanged view is suppressed.
func (uc *bookingUsecase) syncFilteredView(ctx context.Context, sessionData *models.Session, state *DashboardState) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	engine := NewFilterEngine(func(filtered []models.Booking) {
		if err := uc.QueueService.Publish(ctx, EventFilteredViewChanged, map[string]interface{}{
			"sessionId": sessionData.SessionID,
			"count":     len(filtered),
		}); err != nil {
			uc.Log.Error("bookingUsecase.syncFilteredView event publish failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionData.SessionID),
				zap.Error(err),
			)
		}
	})
	engine.Seed(state.FilteredIDs)
	engine.Update(state.Bookings, state.Filter)
	state.FilteredIDs = engine.IDOrder()
}

func (uc *bookingUsecase) applyFilterQuery(state *DashboardState, request *requests.DashboardQuery) {
	if request.Employee != "" {
		state.Filter.Employee = request.Employee
	}
	if request.Service != "" {
		state.Filter.Service = request.Service
	}
	if request.Status != "" {
		state.Filter.Status = request.Status
	}
}

func (uc *bookingUsecase) loadOrFetchState(ctx context.Context, sessionData *models.Session) (*DashboardState, error) {
	state, err := uc.loadState(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if state != nil {
		return state, nil
	}
	state = NewDashboardState(time.Now().Format(constvars.MonthQueryLayout))
	return uc.refetchBookings(ctx, sessionData, state)
}

func (uc *bookingUsecase) loadState(ctx context.Context, sessionData *models.Session) (*DashboardState, error) {
	raw, err := uc.RedisRepository.Get(ctx, constvars.RedisDashboardKeyPrefix+sessionData.SessionID)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	state := new(DashboardState)
	if err := json.Unmarshal([]byte(raw), state); err != nil {
		return nil, exceptions.ErrDashboardStateCorrupt(err)
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}
	return state, nil
}

func (uc *bookingUsecase) saveState(ctx context.Context, sessionData *models.Session, state *DashboardState) error {
	ttl := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	return uc.RedisRepository.Set(ctx, constvars.RedisDashboardKeyPrefix+sessionData.SessionID, state, ttl)
}
