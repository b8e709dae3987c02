package routers

import (
	"salon-service/internal/app/delivery/http/controllers"
	"salon-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.Post("/guest", bookingController.CreateGuestBooking)

	router.With(middlewares.Authenticate).Get("/dashboard", bookingController.Dashboard)
	router.With(middlewares.Authenticate).Post("/dashboard/selection", bookingController.UpdateSelection)
	router.With(middlewares.Authenticate).Put("/{bookingID}/status", bookingController.UpdateBookingStatus)
	router.With(middlewares.Authenticate).Post("/", bookingController.CreateBooking)
}
