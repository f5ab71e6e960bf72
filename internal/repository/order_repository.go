package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

// 注文の一覧用の結合済み行。
// 商品・顧客はLEFT JOINで解決するため、消えた参照はnil/空文字で返る。
type OrderDetail struct {
	ID              int64             `json:"id"`
	Quantity        int64             `json:"quantity"`
	TotalPrice      model.Money       `json:"total_price"`
	Status          model.OrderStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	ProductID       *int64            `json:"product_id"`
	ProductName     string            `json:"product_name"`
	ProductPrice    *model.Money      `json:"product_price"`
	ProductPhoto    string            `json:"product_photo"`
	CustomerID      *int64            `json:"customer_id"`
	CustomerName    string            `json:"customer_name"`
	CustomerSurname string            `json:"customer_surname"`
	VendorID        *int64            `json:"vendor_id"`
}

type OrderRepository interface {
	Create(ctx context.Context, o model.Order) (model.Order, error)
	FindByID(ctx context.Context, id int64) (model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error

	// created_at降順（新しい順）
	ListAll(ctx context.Context) ([]OrderDetail, error)
	ListByCustomerID(ctx context.Context, customerID int64) ([]OrderDetail, error)
	// 商品の出品者がvendorIDのものだけ
	ListByVendorID(ctx context.Context, vendorID int64) ([]OrderDetail, error)
}
