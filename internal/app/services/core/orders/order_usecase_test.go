package orders

import (
	"context"
	"errors"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSessionService struct{}

func (f *fakeSessionService) CreateSession(ctx context.Context, session *models.Session, expHours int) error {
	return nil
}

func (f *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	return &models.Session{SessionID: "s1", UserID: sessionData, UserType: constvars.UserTypePatient}, nil
}

func (f *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return sessionID, nil
}

func (f *fakeSessionService) DestroySession(ctx context.Context, sessionID string) error {
	return nil
}

type fakeOrderRepository struct {
	orders map[string]*models.Order
}

func (f *fakeOrderRepository) Insert(ctx context.Context, order *models.Order) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepository) FindByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	result := make([]models.Order, 0)
	for _, o := range f.orders {
		if o.UserID == userID {
			result = append(result, *o)
		}
	}
	return result, nil
}

func (f *fakeOrderRepository) FindByID(ctx context.Context, orderID string) (*models.Order, error) {
	return f.orders[orderID], nil
}

func (f *fakeOrderRepository) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	if order, ok := f.orders[orderID]; ok {
		order.Status = status
	}
	return nil
}

func newOrderFixture(orders ...*models.Order) (*orderUsecase, *fakeOrderRepository) {
	repo := &fakeOrderRepository{orders: make(map[string]*models.Order)}
	for _, o := range orders {
		repo.orders[o.ID] = o
	}
	return &orderUsecase{
		OrderRepository: repo,
		SessionService:  &fakeSessionService{},
		Log:             zap.NewNop(),
	}, repo
}

func statusCodeOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	return customErr.StatusCode
}

func TestOrderUsecase_FindAll(t *testing.T) {
	now := time.Now()
	uc, _ := newOrderFixture(
		&models.Order{ID: "o1", UserID: "user-1", OrderDate: now.Add(-2 * time.Hour), Status: models.OrderProcessing},
		&models.Order{ID: "o2", UserID: "user-1", OrderDate: now.Add(-1 * time.Hour), Status: models.OrderShipped},
		&models.Order{ID: "o3", UserID: "user-2", OrderDate: now, Status: models.OrderProcessing},
	)

	result, err := uc.FindAll(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "o2", result[0].ID, "newest order first")
	assert.Equal(t, "o1", result[1].ID)
}

func TestOrderUsecase_CancelOrder(t *testing.T) {
	t.Run("processing order is cancellable", func(t *testing.T) {
		uc, repo := newOrderFixture(
			&models.Order{ID: "o1", UserID: "user-1", Status: models.OrderProcessing},
		)
		result, err := uc.CancelOrder(context.Background(), "user-1", "o1")
		require.NoError(t, err)
		assert.Equal(t, string(models.OrderCancelled), result.Status)
		assert.Equal(t, models.OrderCancelled, repo.orders["o1"].Status)
	})

	t.Run("shipped order is not cancellable", func(t *testing.T) {
		uc, _ := newOrderFixture(
			&models.Order{ID: "o1", UserID: "user-1", Status: models.OrderShipped},
		)
		_, err := uc.CancelOrder(context.Background(), "user-1", "o1")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusUnprocessableEntity, statusCodeOf(t, err))
	})

	t.Run("another user's order is off limits", func(t *testing.T) {
		uc, _ := newOrderFixture(
			&models.Order{ID: "o1", UserID: "user-1", Status: models.OrderProcessing},
		)
		_, err := uc.CancelOrder(context.Background(), "user-2", "o1")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, statusCodeOf(t, err))
	})

	t.Run("unknown order", func(t *testing.T) {
		uc, _ := newOrderFixture()
		_, err := uc.CancelOrder(context.Background(), "user-1", "missing")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusCodeOf(t, err))
	})
}
