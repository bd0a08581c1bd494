package orders

import (
	"context"
	"healthsync-service/internal/app/contracts"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/dto/responses"
	"healthsync-service/internal/pkg/exceptions"
	"sort"
	"sync"

	"go.uber.org/zap"
)

type orderUsecase struct {
	OrderRepository contracts.OrderRepository
	SessionService  contracts.SessionService
	Log             *zap.Logger
}

var (
	orderUsecaseInstance contracts.OrderUsecase
	onceOrderUsecase     sync.Once
)

func NewOrderUsecase(
	orderRepository contracts.OrderRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.OrderUsecase {
	onceOrderUsecase.Do(func() {
		orderUsecaseInstance = &orderUsecase{
			OrderRepository: orderRepository,
			SessionService:  sessionService,
			Log:             logger,
		}
	})
	return orderUsecaseInstance
}

func (uc *orderUsecase) FindAll(ctx context.Context, sessionData string) ([]responses.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("orderUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	orders, err := uc.OrderRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		uc.Log.Error("orderUsecase.FindAll error finding orders",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	// Newest first.
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})

	result := make([]responses.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, buildOrderResponse(&order))
	}

	uc.Log.Info("orderUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(result)),
	)
	return result, nil
}

func (uc *orderUsecase) FindByID(ctx context.Context, sessionData string, orderID string) (*responses.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("orderUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	order, err := uc.findOwned(ctx, session.UserID, orderID)
	if err != nil {
		return nil, err
	}

	response := buildOrderResponse(order)
	return &response, nil
}

func (uc *orderUsecase) CancelOrder(ctx context.Context, sessionData string, orderID string) (*responses.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("orderUsecase.CancelOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	order, err := uc.findOwned(ctx, session.UserID, orderID)
	if err != nil {
		return nil, err
	}

	// Only orders still waiting to ship can be cancelled.
	if order.Status != models.OrderProcessing {
		return nil, exceptions.ErrOrderNotCancellable(string(order.Status))
	}

	if err := uc.OrderRepository.UpdateStatus(ctx, orderID, models.OrderCancelled); err != nil {
		uc.Log.Error("orderUsecase.CancelOrder error updating status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Error(err),
		)
		return nil, err
	}
	order.Status = models.OrderCancelled

	uc.Log.Info("orderUsecase.CancelOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)
	response := buildOrderResponse(order)
	return &response, nil
}

func (uc *orderUsecase) findOwned(ctx context.Context, userID, orderID string) (*models.Order, error) {
	order, err := uc.OrderRepository.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, exceptions.ErrOrderNotFound(nil)
	}
	if order.UserID != userID {
		return nil, exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevInvalidInput)
	}
	return order, nil
}

func buildOrderResponse(order *models.Order) responses.Order {
	items := make([]responses.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, responses.OrderItem{
			ProductID:            item.ProductID,
			Type:                 item.Type,
			Name:                 item.Name,
			Price:                item.Price,
			RequiresPrescription: item.RequiresPrescription,
		})
	}
	return responses.Order{
		ID:              order.ID,
		UserID:          order.UserID,
		OrderDate:       order.OrderDate,
		Items:           items,
		Status:          string(order.Status),
		TotalAmount:     order.TotalAmount,
		DeliveryAddress: order.DeliveryAddress,
		PrescriptionID:  order.PrescriptionID,
	}
}
