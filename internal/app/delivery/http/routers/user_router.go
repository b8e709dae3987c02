package routers

import (
	"salon-service/internal/app/delivery/http/controllers"
	"salon-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController, authController *controllers.AuthController) {
	// The employee list feeds the public booking page's picker.
	router.Get("/employees", userController.FindEmployees)

	router.With(middlewares.Authenticate).Get("/", userController.FindAll)
	router.With(middlewares.Authenticate).Get("/me", authController.Session)
	router.With(middlewares.Authenticate).Get("/clients", userController.FindClients)
	router.With(middlewares.Authenticate).Put("/{userID}/status/{status}", userController.UpdateUserStatus)
	router.With(middlewares.Authenticate).Delete("/{userID}", userController.DeleteUser)
}
