package carts

import (
	"context"
	"errors"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/dto/requests"
	"healthsync-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func clientMessageOf(t *testing.T, err error) string {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	return customErr.ClientMessage
}

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

type fakeCartRepository struct {
	items       map[string]*models.CartItem
	failDelete  bool
	deleteCalls int
}

func (f *fakeCartRepository) Insert(ctx context.Context, item *models.CartItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeCartRepository) FindByUserID(ctx context.Context, userID string) ([]models.CartItem, error) {
	result := make([]models.CartItem, 0)
	for _, item := range f.items {
		if item.UserID == userID {
			result = append(result, *item)
		}
	}
	return result, nil
}

func (f *fakeCartRepository) DeleteByIDAndUserID(ctx context.Context, itemID, userID string) error {
	item, ok := f.items[itemID]
	if !ok || item.UserID != userID {
		return exceptions.ErrCartItemNotFound(nil)
	}
	delete(f.items, itemID)
	return nil
}

func (f *fakeCartRepository) DeleteAllByUserID(ctx context.Context, userID string) error {
	f.deleteCalls++
	if f.failDelete {
		return exceptions.ErrMongoDBDeleteDocument(nil)
	}
	for id, item := range f.items {
		if item.UserID == userID {
			delete(f.items, id)
		}
	}
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

type cartFixture struct {
	uc     *cartUsecase
	carts  *fakeCartRepository
	orders *fakeOrderRepository
}

func newCartFixture() *cartFixture {
	carts := &fakeCartRepository{items: make(map[string]*models.CartItem)}
	orders := &fakeOrderRepository{orders: make(map[string]*models.Order)}
	return &cartFixture{
		uc: &cartUsecase{
			CartRepository:  carts,
			OrderRepository: orders,
			SessionService:  &fakeSessionService{},
			Log:             zap.NewNop(),
		},
		carts:  carts,
		orders: orders,
	}
}

func TestCartUsecase_Totals(t *testing.T) {
	f := newCartFixture()
	ctx := context.Background()

	cart, err := f.uc.AddItem(ctx, "user-1", &requests.AddCartItem{
		Type: constvars.CartItemTypeMedicine, ProductID: "m1", Name: "Paracetamol", Price: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, cart.Total)

	cart, err = f.uc.AddItem(ctx, "user-1", &requests.AddCartItem{
		Type: constvars.CartItemTypeLabTest, ProductID: "t1", Name: "Blood Panel", Price: 250,
	})
	require.NoError(t, err)
	assert.Equal(t, 350.0, cart.Total)
	assert.Equal(t, 2, cart.ItemCount)

	cart, err = f.uc.RemoveItem(ctx, "user-1", cart.Items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.ItemCount)

	require.NoError(t, f.uc.ClearCart(ctx, "user-1"))
	cart, err = f.uc.GetCart(ctx, "user-1")
	require.NoError(t, err)
	assert.Zero(t, cart.Total)
	assert.Empty(t, cart.Items)
}

func TestCartUsecase_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart cannot be checked out", func(t *testing.T) {
		f := newCartFixture()
		_, err := f.uc.Checkout(ctx, "user-1", &requests.Checkout{})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientCartEmpty, clientMessageOf(t, err))
	})

	t.Run("prescription items block checkout without a prescription id", func(t *testing.T) {
		f := newCartFixture()
		_, err := f.uc.AddItem(ctx, "user-1", &requests.AddCartItem{
			Type: constvars.CartItemTypeMedicine, ProductID: "m1", Name: "Amoxicillin", Price: 80, RequiresPrescription: true,
		})
		require.NoError(t, err)

		_, err = f.uc.Checkout(ctx, "user-1", &requests.Checkout{})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientPrescriptionRequired, clientMessageOf(t, err))
		assert.Empty(t, f.orders.orders)
	})

	t.Run("any non-empty prescription id passes verification", func(t *testing.T) {
		f := newCartFixture()
		_, err := f.uc.AddItem(ctx, "user-1", &requests.AddCartItem{
			Type: constvars.CartItemTypeMedicine, ProductID: "m1", Name: "Amoxicillin", Price: 80, RequiresPrescription: true,
		})
		require.NoError(t, err)
		_, err = f.uc.AddItem(ctx, "user-1", &requests.AddCartItem{
			Type: constvars.CartItemTypeLabTest, ProductID: "t1", Name: "Blood Panel", Price: 250,
		})
		require.NoError(t, err)

		result, err := f.uc.Checkout(ctx, "user-1", &requests.Checkout{PrescriptionID: "rx-42"})
		require.NoError(t, err)
		assert.Equal(t, 330.0, result.TotalAmount)
		assert.Equal(t, string(models.OrderProcessing), result.Status)
		assert.Equal(t, "rx-42", result.PrescriptionID)

		order := f.orders.orders[result.OrderID]
		require.NotNil(t, order)
		assert.Len(t, order.Items, 2)

		cart, err := f.uc.GetCart(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
	})

	t.Run("failed cart clear keeps the order and surfaces the error", func(t *testing.T) {
		f := newCartFixture()
		_, err := f.uc.AddItem(ctx, "user-1", &requests.AddCartItem{
			Type: constvars.CartItemTypeMedicine, ProductID: "m1", Name: "Paracetamol", Price: 100,
		})
		require.NoError(t, err)
		f.carts.failDelete = true

		_, err = f.uc.Checkout(ctx, "user-1", &requests.Checkout{})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientCartNotClearedInOrder, clientMessageOf(t, err))
		assert.Len(t, f.orders.orders, 1)
		assert.Len(t, f.carts.items, 1)
	})
}
