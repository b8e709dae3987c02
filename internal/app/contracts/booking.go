package contracts

import (
	"context"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/dto/requests"
	"salon-service/internal/pkg/dto/responses"
	"salon-service/internal/pkg/salondto"
)

type BookingUsecase interface {
	Dashboard(ctx context.Context, sessionData *models.Session, request *requests.DashboardQuery) (*responses.Dashboard, error)
	UpdateSelection(ctx context.Context, sessionData *models.Session, request *requests.UpdateSelection) (*responses.Dashboard, error)
	UpdateBookingStatus(ctx context.Context, sessionData *models.Session, bookingID, status string) (*responses.Dashboard, error)
	CreateBooking(ctx context.Context, sessionData *models.Session, request *requests.CreateBooking) error
	CreateGuestBooking(ctx context.Context, request *requests.CreateGuestBooking) error
}

type SalonBookingClient interface {
	FindAll(ctx context.Context, sessionData *models.Session) ([]salondto.Booking, error)
	FindByUser(ctx context.Context, sessionData *models.Session, userID string) ([]salondto.Booking, error)
	UpdateStatus(ctx context.Context, sessionData *models.Session, bookingID, status string) (*salondto.Booking, error)
	Create(ctx context.Context, sessionData *models.Session, request *salondto.CreateBooking) error
	CreateGuest(ctx context.Context, request *salondto.CreateGuestBooking) error
}
