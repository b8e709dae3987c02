package routers

import (
	"salon-service/internal/app/delivery/http/controllers"
	"salon-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAnalyticsRoutes(router chi.Router, middlewares *middlewares.Middlewares, analyticsController *controllers.AnalyticsController) {
	router.With(middlewares.Authenticate).Get("/", analyticsController.Overview)
}
