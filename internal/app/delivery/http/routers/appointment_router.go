package routers

import (
	"healthsync-service/internal/app/delivery/http/controllers"
	"healthsync-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(middlewares.Authenticate).Get("/", appointmentController.FindAll)
	router.With(middlewares.Authenticate).Post("/", appointmentController.Create)
	router.With(middlewares.Authenticate).Get("/{appointmentID}", appointmentController.FindByID)
	router.With(middlewares.Authenticate).Put("/{appointmentID}/confirm", appointmentController.Confirm)
	router.With(middlewares.Authenticate).Put("/{appointmentID}/complete", appointmentController.Complete)
	router.With(middlewares.Authenticate).Put("/{appointmentID}/cancel", appointmentController.Cancel)
}
