package routers

import (
	"healthsync-service/internal/app/delivery/http/controllers"
	"healthsync-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachLabResultRoutes(router chi.Router, middlewares *middlewares.Middlewares, labResultController *controllers.LabResultController) {
	router.With(middlewares.Authenticate).Get("/", labResultController.FindAll)
	router.With(middlewares.Authenticate).Get("/{labResultID}", labResultController.FindByID)
	router.With(middlewares.Authenticate).Put("/{labResultID}", labResultController.Update)
}
