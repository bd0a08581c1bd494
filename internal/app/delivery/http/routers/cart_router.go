package routers

import (
	"healthsync-service/internal/app/delivery/http/controllers"
	"healthsync-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCartRoutes(router chi.Router, middlewares *middlewares.Middlewares, cartController *controllers.CartController) {
	router.With(middlewares.Authenticate).Get("/", cartController.Get)
	router.With(middlewares.Authenticate).Post("/items", cartController.AddItem)
	router.With(middlewares.Authenticate).Delete("/items/{itemID}", cartController.RemoveItem)
	router.With(middlewares.Authenticate).Delete("/", cartController.Clear)
	router.With(middlewares.Authenticate).Post("/checkout", cartController.Checkout)
}
