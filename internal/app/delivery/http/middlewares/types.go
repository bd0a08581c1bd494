package middlewares

import (
	"healthsync-service/internal/app/config"
	"healthsync-service/internal/app/contracts"
	"time"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	SessionService  contracts.SessionService
	InternalConfig  *config.InternalConfig
	AuthRateLimiter *RateLimiter
}

func NewMiddlewares(logger *zap.Logger, sessionService contracts.SessionService, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionService: sessionService,
		InternalConfig: internalConfig,
		// Credential endpoints get a stricter per-IP budget than the
		// global limiter, with a cooldown block once exhausted.
		AuthRateLimiter: NewRateLimiter(5, time.Second, 5*time.Minute),
	}
}
