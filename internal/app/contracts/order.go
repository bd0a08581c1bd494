package contracts

import (
	"context"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/dto/responses"
)

type OrderUsecase interface {
	FindAll(ctx context.Context, sessionData string) ([]responses.Order, error)
	FindByID(ctx context.Context, sessionData string, orderID string) (*responses.Order, error)
	CancelOrder(ctx context.Context, sessionData string, orderID string) (*responses.Order, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) error
	FindByUserID(ctx context.Context, userID string) ([]models.Order, error)
	FindByID(ctx context.Context, orderID string) (*models.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) error
}
