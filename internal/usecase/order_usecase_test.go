package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderUsecaseForTest(decrement bool) (*usecase.OrderUsecase, *TxManagerMock, *OrderRepoMock, *ProductRepoMock) {
	orders := &OrderRepoMock{}
	products := &ProductRepoMock{}
	tm := &TxManagerMock{Repos: &TxReposMock{orders: orders, products: products}}
	uc := usecase.NewOrderUsecase(tm, orders, decrement)
	return uc, tm, orders, products
}

func TestPlaceOrder_ComputesTotalFromCurrentPrice(t *testing.T) {
	uc, tm, orders, products := newOrderUsecaseForTest(false)
	ctx := context.Background()

	// 単価50.00の商品
	products.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Name: "tomatoes", Price: model.Money(5000), Qty: 10}, nil)

	tm.On("WithinTx", mock.Anything).Return(nil)

	orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.ProductID == 1 &&
			o.CustomerID == 2 &&
			o.Quantity == 3 &&
			o.TotalPrice == model.Money(15000) &&
			o.Status == model.OrderStatusPending
	})).Return(model.Order{
		ID: 10, ProductID: 1, CustomerID: 2, Quantity: 3,
		TotalPrice: model.Money(15000), Status: model.OrderStatusPending,
	}, nil)

	out, err := uc.PlaceOrder(ctx, nil, usecase.PlaceOrderInput{ProductID: 1, CustomerID: 2, Quantity: 3})

	assert.NoError(t, err)
	assert.Equal(t, "150.00", out.TotalPrice.String())
	assert.Equal(t, model.OrderStatusPending, out.Status)

	// 既定では在庫は触らない
	products.AssertNotCalled(t, "DecreaseQtyIfEnough", mock.Anything, mock.Anything, mock.Anything)
	orders.AssertExpectations(t)
}

func TestPlaceOrder_ProductNotFound(t *testing.T) {
	uc, tm, orders, products := newOrderUsecaseForTest(false)

	products.On("FindByID", mock.Anything, int64(99)).
		Return(model.Product{}, repo.ErrNotFound)
	tm.On("WithinTx", mock.Anything).Return(nil)

	_, err := uc.PlaceOrder(context.Background(), nil, usecase.PlaceOrderInput{ProductID: 99, CustomerID: 2, Quantity: 1})

	ue, ok := usecase.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, usecase.KindProductNotFound, ue.Kind)

	// 行は作られない
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaceOrder_ValidationBeforeStore(t *testing.T) {
	uc, tm, _, _ := newOrderUsecaseForTest(false)

	cases := []usecase.PlaceOrderInput{
		{ProductID: 0, CustomerID: 2, Quantity: 1},
		{ProductID: 1, CustomerID: 0, Quantity: 1},
		{ProductID: 1, CustomerID: 2, Quantity: 0},
		{ProductID: 1, CustomerID: 2, Quantity: -3},
	}
	for _, in := range cases {
		_, err := uc.PlaceOrder(context.Background(), nil, in)
		ue, ok := usecase.AsError(err)
		assert.True(t, ok)
		assert.Equal(t, usecase.KindValidation, ue.Kind)
	}

	// storeには一切触れない
	tm.AssertNotCalled(t, "WithinTx", mock.Anything)
}

func TestPlaceOrder_ActorMustMatchCustomer(t *testing.T) {
	uc, tm, _, _ := newOrderUsecaseForTest(false)

	actor := int64(99)
	_, err := uc.PlaceOrder(context.Background(), &actor, usecase.PlaceOrderInput{ProductID: 1, CustomerID: 2, Quantity: 1})

	ue, ok := usecase.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, usecase.KindForbidden, ue.Kind)
	tm.AssertNotCalled(t, "WithinTx", mock.Anything)
}

func TestPlaceOrder_DecrementEnabled_OutOfStock(t *testing.T) {
	uc, tm, orders, products := newOrderUsecaseForTest(true)

	products.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Price: model.Money(5000), Qty: 2}, nil)
	products.On("DecreaseQtyIfEnough", mock.Anything, int64(1), int64(5)).
		Return(false, nil)
	tm.On("WithinTx", mock.Anything).Return(nil)

	_, err := uc.PlaceOrder(context.Background(), nil, usecase.PlaceOrderInput{ProductID: 1, CustomerID: 2, Quantity: 5})

	ue, ok := usecase.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, usecase.KindValidation, ue.Kind)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaceOrder_DecrementEnabled_Success(t *testing.T) {
	uc, tm, orders, products := newOrderUsecaseForTest(true)

	products.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Price: model.Money(4999), Qty: 10}, nil)
	products.On("DecreaseQtyIfEnough", mock.Anything, int64(1), int64(2)).
		Return(true, nil)
	tm.On("WithinTx", mock.Anything).Return(nil)

	orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.TotalPrice == model.Money(9998)
	})).Return(model.Order{ID: 11, TotalPrice: model.Money(9998), Status: model.OrderStatusPending}, nil)

	out, err := uc.PlaceOrder(context.Background(), nil, usecase.PlaceOrderInput{ProductID: 1, CustomerID: 2, Quantity: 2})

	assert.NoError(t, err)
	assert.Equal(t, "99.98", out.TotalPrice.String())
	products.AssertExpectations(t)
}

func TestListForVendor_InvalidID(t *testing.T) {
	uc, _, orders, _ := newOrderUsecaseForTest(false)

	_, err := uc.ListForVendor(context.Background(), 0)
	ue, ok := usecase.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, usecase.KindValidation, ue.Kind)
	orders.AssertNotCalled(t, "ListByVendorID", mock.Anything, mock.Anything)
}

func TestListForVendor_Passthrough(t *testing.T) {
	uc, _, orders, _ := newOrderUsecaseForTest(false)

	vendorID := int64(7)
	rows := []repo.OrderDetail{
		{ID: 3, Quantity: 1, TotalPrice: model.Money(5000), Status: model.OrderStatusPending},
		// 顧客が消えていても行は返る（表示フィールドは空）
		{ID: 2, Quantity: 2, TotalPrice: model.Money(10000), Status: model.OrderStatusApproved,
			CustomerID: nil, CustomerName: "", CustomerSurname: ""},
	}
	orders.On("ListByVendorID", mock.Anything, vendorID).Return(rows, nil)

	out, err := uc.ListForVendor(context.Background(), vendorID)
	assert.NoError(t, err)
	assert.Equal(t, rows, out)
}
