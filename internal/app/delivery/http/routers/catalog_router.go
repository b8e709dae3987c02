package routers

import (
	"salon-service/internal/app/delivery/http/controllers"
	"salon-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCatalogRoutes(router chi.Router, middlewares *middlewares.Middlewares, catalogController *controllers.CatalogController) {
	router.Get("/", catalogController.FindAll)

	router.With(middlewares.Authenticate).Post("/", catalogController.CreateService)
	router.With(middlewares.Authenticate).Put("/{serviceID}", catalogController.UpdateService)
	router.With(middlewares.Authenticate).Delete("/{serviceID}", catalogController.DeleteService)
}
