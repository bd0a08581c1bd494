package contracts

import (
	"context"
	"healthsync-service/internal/app/models"
)

type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session, expHours int) error
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	GetSessionData(ctx context.Context, sessionID string) (sessionData string, err error)
	DestroySession(ctx context.Context, sessionID string) error
}
