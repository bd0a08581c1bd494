package routers

import (
	"healthsync-service/internal/app/delivery/http/controllers"
	"healthsync-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachOrderRoutes(router chi.Router, middlewares *middlewares.Middlewares, orderController *controllers.OrderController) {
	router.With(middlewares.Authenticate).Get("/", orderController.FindAll)
	router.With(middlewares.Authenticate).Get("/{orderID}", orderController.FindByID)
	router.With(middlewares.Authenticate).Put("/{orderID}/cancel", orderController.Cancel)
}
