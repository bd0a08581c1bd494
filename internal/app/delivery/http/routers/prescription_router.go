package routers

import (
	"healthsync-service/internal/app/delivery/http/controllers"
	"healthsync-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, prescriptionController *controllers.PrescriptionController) {
	router.With(middlewares.Authenticate).Get("/", prescriptionController.FindAll)
	router.With(middlewares.Authenticate).Post("/", prescriptionController.Create)
	router.With(middlewares.Authenticate).Get("/{prescriptionID}", prescriptionController.FindByID)
}
