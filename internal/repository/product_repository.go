package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品一覧の1行。出品者の表示名を解決済みで返す。
// owner_name = COALESCE(vendor_name, 出品ユーザーのname, 'N/A')
type ProductWithOwner struct {
	model.Product
	OwnerName  string `json:"owner_name"`
	OwnerPhone string `json:"owner_phone"`
}

type ProductRepository interface {
	// id降順（新しい順）
	ListWithOwner(ctx context.Context) ([]ProductWithOwner, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
	// 削除した行を返す
	Delete(ctx context.Context, id int64) (model.Product, error)

	// 在庫が足りるときだけ減らす（DECREMENT_STOCK有効時のみ使う）
	DecreaseQtyIfEnough(ctx context.Context, id int64, qty int64) (bool, error)
}
