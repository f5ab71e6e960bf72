package usecase_test

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMockはWithinTxの中で渡すreposを固定してunitテストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders   repo.OrderRepository
	products repo.ProductRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository     { return r.orders }
func (r *TxReposMock) Products() repo.ProductRepository { return r.products }

// =====================
// Repository mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, o model.Order) (model.Order, error) {
	args := m.Called(ctx, o)
	out, _ := args.Get(0).(model.Order)
	return out, args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, id int64) (model.Order, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(model.Order)
	return out, args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *OrderRepoMock) ListAll(ctx context.Context) ([]repo.OrderDetail, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]repo.OrderDetail)
	return rows, args.Error(1)
}

func (m *OrderRepoMock) ListByCustomerID(ctx context.Context, customerID int64) ([]repo.OrderDetail, error) {
	args := m.Called(ctx, customerID)
	rows, _ := args.Get(0).([]repo.OrderDetail)
	return rows, args.Error(1)
}

func (m *OrderRepoMock) ListByVendorID(ctx context.Context, vendorID int64) ([]repo.OrderDetail, error) {
	args := m.Called(ctx, vendorID)
	rows, _ := args.Get(0).([]repo.OrderDetail)
	return rows, args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) ListWithOwner(ctx context.Context) ([]repo.ProductWithOwner, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]repo.ProductWithOwner)
	return rows, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) DecreaseQtyIfEnough(ctx context.Context, id int64, qty int64) (bool, error) {
	args := m.Called(ctx, id, qty)
	return args.Bool(0), args.Error(1)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	args := m.Called(ctx, role)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}
