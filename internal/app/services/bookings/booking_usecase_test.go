package bookings

import (
	"context"
	"salon-service/internal/app/config"
	"salon-service/internal/app/contracts"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/salondto"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	store map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{store: map[string]string{}}
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.store, key)
	return nil
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = string(payload)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.store[key], nil
}

type fakeQueueService struct {
	events []string
}

func (f *fakeQueueService) Publish(ctx context.Context, event string, payload interface{}) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeQueueService) count(event string) int {
	n := 0
	for _, e := range f.events {
		if e == event {
			n++
		}
	}
	return n
}

type fakeBookingClient struct {
	bookings  []salondto.Booking
	updated   *salondto.Booking
	onFindAll func()
}

func (f *fakeBookingClient) FindAll(ctx context.Context, sessionData *models.Session) ([]salondto.Booking, error) {
	if f.onFindAll != nil {
		f.onFindAll()
	}
	return f.bookings, nil
}

func (f *fakeBookingClient) FindByUser(ctx context.Context, sessionData *models.Session, userID string) ([]salondto.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingClient) UpdateStatus(ctx context.Context, sessionData *models.Session, bookingID, status string) (*salondto.Booking, error) {
	return f.updated, nil
}

func (f *fakeBookingClient) Create(ctx context.Context, sessionData *models.Session, request *salondto.CreateBooking) error {
	return nil
}

func (f *fakeBookingClient) CreateGuest(ctx context.Context, request *salondto.CreateGuestBooking) error {
	return nil
}

func newTestBookingUsecase(client contracts.SalonBookingClient, redisRepo contracts.RedisRepository, queue contracts.QueueService) *bookingUsecase {
	return &bookingUsecase{
		SalonBookingClient: client,
		RedisRepository:    redisRepo,
		QueueService:       queue,
		InternalConfig:     &config.InternalConfig{JWT: config.JWT{ExpTimeInHour: 8}},
		Log:                zap.NewNop(),
	}
}

func adminSession() *models.Session {
	return &models.Session{
		SessionID: "sess-1",
		UserID:    "user-1",
		UserRole:  constvars.RoleAdmin,
	}
}

func TestRefetchBookingsGeneration(t *testing.T) {
	ctx := context.Background()
	rawBookings := []salondto.Booking{
		{ID: "b1", ServiceName: "Corte", EmployeeName: "Maria", CustomerName: "Ana", StartTime: "2025-09-11T10:00:00", EndTime: "2025-09-11T10:30:00", Status: "PENDENTE"},
		{ID: "b2", ServiceName: "Lavagem", EmployeeName: "Joana", CustomerName: "Rui", StartTime: "2025-09-11T09:00:00", EndTime: "2025-09-11T09:30:00", Status: "CONFIRMED"},
	}

	t.Run("Fetch result applies when the generation is current", func(t *testing.T) {
		uc := newTestBookingUsecase(&fakeBookingClient{bookings: rawBookings}, newFakeRedisRepository(), &fakeQueueService{})

		state, err := uc.refetchBookings(ctx, adminSession(), NewDashboardState("2025-09"))
		assert.NoError(t, err)
		assert.Equal(t, int64(1), state.Generation)
		assert.Len(t, state.Bookings, 2)
		assert.Equal(t, "b2", state.Bookings[0].ID, "fetched list should be ordered by start minutes")
	})

	t.Run("Superseded fetch result is discarded", func(t *testing.T) {
		redisRepo := newFakeRedisRepository()
		client := &fakeBookingClient{bookings: rawBookings}
		// A concurrent refresh bumps the persisted generation while this
		// fetch is in flight.
		client.onFindAll = func() {
			newer := NewDashboardState("2025-10")
			newer.Generation = 3
			payload, err := json.Marshal(newer)
			assert.NoError(t, err)
			redisRepo.store[constvars.RedisDashboardKeyPrefix+"sess-1"] = string(payload)
		}
		uc := newTestBookingUsecase(client, redisRepo, &fakeQueueService{})

		state, err := uc.refetchBookings(ctx, adminSession(), NewDashboardState("2025-09"))
		assert.NoError(t, err)
		assert.Equal(t, int64(3), state.Generation, "latest state wins")
		assert.Equal(t, "2025-10", state.Month)
		assert.Empty(t, state.Bookings, "stale fetch result must not be applied")
	})
}

func TestSyncFilteredView(t *testing.T) {
	ctx := context.Background()
	sessionData := adminSession()
	bookings := Normalize([]salondto.Booking{
		{ID: "b1", ServiceName: "Corte", EmployeeName: "Maria", CustomerName: "Ana", StartTime: "2025-09-11T10:00:00", EndTime: "2025-09-11T10:30:00", Status: "PENDENTE"},
		{ID: "b2", ServiceName: "Lavagem", EmployeeName: "Joana", CustomerName: "Rui", StartTime: "2025-09-11T09:00:00", EndTime: "2025-09-11T09:30:00", Status: "CONFIRMED"},
	})

	t.Run("Notifies once and suppresses the unchanged view", func(t *testing.T) {
		queue := &fakeQueueService{}
		uc := newTestBookingUsecase(&fakeBookingClient{}, newFakeRedisRepository(), queue)
		state := NewDashboardState("2025-09")
		state.SetBookings(bookings)

		uc.syncFilteredView(ctx, sessionData, state)
		assert.Equal(t, 1, queue.count(EventFilteredViewChanged))
		assert.Len(t, state.FilteredIDs, 2)

		uc.syncFilteredView(ctx, sessionData, state)
		assert.Equal(t, 1, queue.count(EventFilteredViewChanged), "unchanged view must not re-notify")
	})

	t.Run("Filter change moves the id sequence and notifies", func(t *testing.T) {
		queue := &fakeQueueService{}
		uc := newTestBookingUsecase(&fakeBookingClient{}, newFakeRedisRepository(), queue)
		state := NewDashboardState("2025-09")
		state.SetBookings(bookings)

		uc.syncFilteredView(ctx, sessionData, state)
		state.Filter.Status = "PENDENTE"
		uc.syncFilteredView(ctx, sessionData, state)

		assert.Equal(t, 2, queue.count(EventFilteredViewChanged))
		assert.Equal(t, []string{"b1"}, state.FilteredIDs)
	})

	t.Run("Suppression state survives the redis round trip", func(t *testing.T) {
		queue := &fakeQueueService{}
		redisRepo := newFakeRedisRepository()
		uc := newTestBookingUsecase(&fakeBookingClient{}, redisRepo, queue)
		state := NewDashboardState("2025-09")
		state.SetBookings(bookings)

		uc.syncFilteredView(ctx, sessionData, state)
		assert.NoError(t, uc.saveState(ctx, sessionData, state))

		reloaded, err := uc.loadState(ctx, sessionData)
		assert.NoError(t, err)
		uc.syncFilteredView(ctx, sessionData, reloaded)
		assert.Equal(t, 1, queue.count(EventFilteredViewChanged), "reloaded state must not re-notify an unchanged view")
	})
}

func TestUpdateBookingStatusPatchesAndNotifies(t *testing.T) {
	ctx := context.Background()
	sessionData := adminSession()
	queue := &fakeQueueService{}
	redisRepo := newFakeRedisRepository()
	client := &fakeBookingClient{
		updated: &salondto.Booking{ID: "b1", ServiceName: "Corte", EmployeeName: "Maria", CustomerName: "Ana", StartTime: "2025-09-11T10:00:00", EndTime: "2025-09-11T10:30:00", Status: "CONFIRMED"},
	}
	uc := newTestBookingUsecase(client, redisRepo, queue)

	state := NewDashboardState("2025-09")
	state.SetBookings(Normalize([]salondto.Booking{
		{ID: "b1", ServiceName: "Corte", EmployeeName: "Maria", CustomerName: "Ana", StartTime: "2025-09-11T10:00:00", EndTime: "2025-09-11T10:30:00", Status: "PENDENTE"},
	}))
	state.Filter.Status = "PENDENTE"
	state.FilteredIDs = []string{"b1"}
	assert.NoError(t, uc.saveState(ctx, sessionData, state))

	result, err := uc.UpdateBookingStatus(ctx, sessionData, "b1", constvars.BookingStatusConfirmed)
	assert.NoError(t, err)
	assert.Equal(t, constvars.BookingStatusConfirmed, result.Selection.Bookings[0].Status)
	assert.Equal(t, 1, queue.count(EventBookingStatusUpdated))
	assert.Equal(t, 1, queue.count(EventFilteredViewChanged), "patch moved the booking out of the filtered view")

	t.Run("Rejects statuses outside the allowed transitions", func(t *testing.T) {
		_, err := uc.UpdateBookingStatus(ctx, sessionData, "b1", "FINISHED")
		assert.Error(t, err)
	})
}
