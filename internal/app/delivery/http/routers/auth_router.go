package routers

import (
	"healthsync-service/internal/app/delivery/http/controllers"
	"healthsync-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.With(middlewares.AuthRateLimiter.Limit).Post("/register", authController.Register)
	router.With(middlewares.AuthRateLimiter.Limit).Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
	router.With(middlewares.AuthRateLimiter.Limit).Post("/forgot-password", authController.ForgotPassword)
	router.With(middlewares.AuthRateLimiter.Limit).Post("/reset-password", authController.ResetPassword)
}
