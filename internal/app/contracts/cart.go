package contracts

import (
	"context"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/dto/requests"
	"healthsync-service/internal/pkg/dto/responses"
)

type CartUsecase interface {
	GetCart(ctx context.Context, sessionData string) (*responses.Cart, error)
	AddItem(ctx context.Context, sessionData string, request *requests.AddCartItem) (*responses.Cart, error)
	RemoveItem(ctx context.Context, sessionData string, itemID string) (*responses.Cart, error)
	ClearCart(ctx context.Context, sessionData string) error
	Checkout(ctx context.Context, sessionData string, request *requests.Checkout) (*responses.Checkout, error)
}

type CartRepository interface {
	Insert(ctx context.Context, item *models.CartItem) error
	FindByUserID(ctx context.Context, userID string) ([]models.CartItem, error)
	DeleteByIDAndUserID(ctx context.Context, itemID, userID string) error
	// DeleteAllByUserID removes every line item of the user in one bulk
	// write, the only operation with a batch atomicity guarantee.
	DeleteAllByUserID(ctx context.Context, userID string) error
}
