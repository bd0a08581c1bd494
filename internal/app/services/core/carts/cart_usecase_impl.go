package carts

import (
	"context"
	"healthsync-service/internal/app/contracts"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/dto/requests"
	"healthsync-service/internal/pkg/dto/responses"
	"healthsync-service/internal/pkg/exceptions"
	"healthsync-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type cartUsecase struct {
	CartRepository  contracts.CartRepository
	OrderRepository contracts.OrderRepository
	SessionService  contracts.SessionService
	Log             *zap.Logger
}

var (
	cartUsecaseInstance contracts.CartUsecase
	onceCartUsecase     sync.Once
)

func NewCartUsecase(
	cartRepository contracts.CartRepository,
	orderRepository contracts.OrderRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.CartUsecase {
	onceCartUsecase.Do(func() {
		cartUsecaseInstance = &cartUsecase{
			CartRepository:  cartRepository,
			OrderRepository: orderRepository,
			SessionService:  sessionService,
			Log:             logger,
		}
	})
	return cartUsecaseInstance
}

func (uc *cartUsecase) GetCart(ctx context.Context, sessionData string) (*responses.Cart, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("cartUsecase.GetCart called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	items, err := uc.CartRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("cartUsecase.GetCart error finding cart items",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	return buildCartResponse(items), nil
}

func (uc *cartUsecase) AddItem(ctx context.Context, sessionData string, request *requests.AddCartItem) (*responses.Cart, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("cartUsecase.AddItem called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	// Adding the same product twice makes two line items on purpose.
	item := &models.CartItem{
		ID:                   utils.GenerateDocumentID(),
		UserID:               session.UserID,
		Type:                 request.Type,
		ProductID:            request.ProductID,
		Name:                 request.Name,
		Price:                request.Price,
		RequiresPrescription: request.RequiresPrescription,
	}
	if err := uc.CartRepository.Insert(ctx, item); err != nil {
		uc.Log.Error("cartUsecase.AddItem error inserting cart item",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("cartUsecase.AddItem succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCartItemIDKey, item.ID),
	)
	return uc.GetCart(ctx, sessionData)
}

func (uc *cartUsecase) RemoveItem(ctx context.Context, sessionData string, itemID string) (*responses.Cart, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("cartUsecase.RemoveItem called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCartItemIDKey, itemID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	if err := uc.CartRepository.DeleteByIDAndUserID(ctx, itemID, session.UserID); err != nil {
		uc.Log.Error("cartUsecase.RemoveItem error deleting cart item",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCartItemIDKey, itemID),
			zap.Error(err),
		)
		return nil, err
	}

	return uc.GetCart(ctx, sessionData)
}

func (uc *cartUsecase) ClearCart(ctx context.Context, sessionData string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("cartUsecase.ClearCart called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	if err := uc.CartRepository.DeleteAllByUserID(ctx, session.UserID); err != nil {
		uc.Log.Error("cartUsecase.ClearCart error clearing cart",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *cartUsecase) Checkout(ctx context.Context, sessionData string, request *requests.Checkout) (*responses.Checkout, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("cartUsecase.Checkout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	items, err := uc.CartRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("cartUsecase.Checkout error finding cart items",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.Error(err),
		)
		return nil, err
	}
	if len(items) == 0 {
		return nil, exceptions.ErrCartEmpty(nil)
	}

	// Prescription verification accepts any non-empty reference; the
	// pharmacy validates it offline when fulfilling the order.
	if models.CartRequiresPrescription(items) && request.PrescriptionID == "" {
		return nil, exceptions.ErrPrescriptionRequired(nil)
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			ProductID:            item.ProductID,
			Type:                 item.Type,
			Name:                 item.Name,
			Price:                item.Price,
			RequiresPrescription: item.RequiresPrescription,
		})
	}

	order := &models.Order{
		ID:              utils.GenerateDocumentID(),
		UserID:          session.UserID,
		OrderDate:       time.Now(),
		Items:           orderItems,
		Status:          models.OrderProcessing,
		TotalAmount:     models.CartTotal(items),
		DeliveryAddress: request.DeliveryAddress,
		PrescriptionID:  request.PrescriptionID,
	}

	if err := uc.OrderRepository.Insert(ctx, order); err != nil {
		uc.Log.Error("cartUsecase.Checkout error inserting order",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	// The order insert and the cart clear are two independent writes. A
	// failure here leaves the order placed with the cart intact, and the
	// caller is told so.
	if err := uc.CartRepository.DeleteAllByUserID(ctx, session.UserID); err != nil {
		uc.Log.Error("cartUsecase.Checkout order placed but cart clear failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, order.ID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCartClearAfterOrder(err, order.ID)
	}

	uc.Log.Info("cartUsecase.Checkout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, order.ID),
	)
	return &responses.Checkout{
		OrderID:        order.ID,
		TotalAmount:    order.TotalAmount,
		Status:         string(order.Status),
		PrescriptionID: order.PrescriptionID,
	}, nil
}

func buildCartResponse(items []models.CartItem) *responses.Cart {
	responseItems := make([]responses.CartItem, 0, len(items))
	for _, item := range items {
		responseItems = append(responseItems, responses.CartItem{
			ID:                   item.ID,
			Type:                 item.Type,
			ProductID:            item.ProductID,
			Name:                 item.Name,
			Price:                item.Price,
			RequiresPrescription: item.RequiresPrescription,
		})
	}
	return &responses.Cart{
		Items:     responseItems,
		ItemCount: len(responseItems),
		Total:     models.CartTotal(items),
	}
}
