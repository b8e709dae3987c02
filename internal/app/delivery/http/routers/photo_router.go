package routers

import (
	"salon-service/internal/app/delivery/http/controllers"
	"salon-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPhotoRoutes(router chi.Router, middlewares *middlewares.Middlewares, photoController *controllers.PhotoController) {
	// Photos render in <img> tags; no Authorization header is available there.
	router.Get("/{ownerID}", photoController.FetchPhoto)

	router.With(middlewares.Authenticate).Put("/{ownerID}", photoController.UploadPhoto)
}
