package usecase

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 注文の作成と一覧。
// 作成は「現在価格の読み取り」と「挿入」を同一トランザクションで行い、
// クライアントが古い価格で合計を固定できないようにする。
type OrderUsecase struct {
	tx     repo.TransactionManager
	orders repo.OrderRepository

	// trueなら作成時に在庫を減らす。既定はfalse（減らさない＝元の挙動）。
	decrementStock bool
}

func NewOrderUsecase(tx repo.TransactionManager, orders repo.OrderRepository, decrementStock bool) *OrderUsecase {
	return &OrderUsecase{tx: tx, orders: orders, decrementStock: decrementStock}
}

type PlaceOrderInput struct {
	ProductID  int64 `json:"productId"`
	CustomerID int64 `json:"customerId"`
	Quantity   int64 `json:"quantity"`
}

// 注文を1件作る。
// actorIDは認証済みユーザー（トークン提示時のみ非nil）。提示があればcustomerIdと一致必須。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, actorID *int64, in PlaceOrderInput) (model.Order, error) {
	// store到達前の入力チェック
	if in.ProductID <= 0 || in.CustomerID <= 0 || in.Quantity == 0 {
		return model.Order{}, NewError(KindValidation, "missing required fields")
	}
	if in.Quantity < 0 {
		return model.Order{}, NewError(KindValidation, "quantity must be a positive integer")
	}
	if actorID != nil && *actorID != in.CustomerID {
		return model.Order{}, NewError(KindForbidden, "customer mismatch")
	}

	var out model.Order

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// この操作の中で読んだ価格だけを使う
		p, err := r.Products().FindByID(ctx, in.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewError(KindProductNotFound, "product not found")
		}
		if err != nil {
			return NewError(KindStorage, "db error")
		}

		if u.decrementStock {
			ok, err := r.Products().DecreaseQtyIfEnough(ctx, in.ProductID, in.Quantity)
			if err != nil {
				return NewError(KindStorage, "db error")
			}
			if !ok {
				return NewError(KindValidation, "out of stock")
			}
		}

		created, err := r.Orders().Create(ctx, model.Order{
			ProductID:  in.ProductID,
			CustomerID: in.CustomerID,
			Quantity:   in.Quantity,
			TotalPrice: p.Price.MulQty(in.Quantity),
			Status:     model.OrderStatusPending,
		})
		if err != nil {
			return NewError(KindStorage, "db error")
		}

		out = created
		return nil
	})

	if err != nil {
		return model.Order{}, err
	}
	return out, nil
}

func (u *OrderUsecase) ListAll(ctx context.Context) ([]repo.OrderDetail, error) {
	rows, err := u.orders.ListAll(ctx)
	if err != nil {
		return []repo.OrderDetail{}, NewError(KindStorage, "db error")
	}
	return rows, nil
}

func (u *OrderUsecase) ListForCustomer(ctx context.Context, customerID int64) ([]repo.OrderDetail, error) {
	if customerID <= 0 {
		return []repo.OrderDetail{}, NewError(KindValidation, "invalid customer id")
	}
	rows, err := u.orders.ListByCustomerID(ctx, customerID)
	if err != nil {
		return []repo.OrderDetail{}, NewError(KindStorage, "db error")
	}
	return rows, nil
}

func (u *OrderUsecase) ListForVendor(ctx context.Context, vendorID int64) ([]repo.OrderDetail, error) {
	if vendorID <= 0 {
		return []repo.OrderDetail{}, NewError(KindValidation, "invalid vendor id")
	}
	rows, err := u.orders.ListByVendorID(ctx, vendorID)
	if err != nil {
		return []repo.OrderDetail{}, NewError(KindStorage, "db error")
	}
	return rows, nil
}
