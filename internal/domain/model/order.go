package model

import "time"

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "Pending"
	OrderStatusApproved OrderStatus = "Approved"
)

// 受け付けるステータスか。未知のラベルはここで弾く。
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusApproved:
		return OrderStatus(s), true
	}
	return "", false
}

// 遷移表。前進のみ。同じ値への再適用は冪等に成功。
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case OrderStatusPending:
		return next == OrderStatusApproved
	}
	return false
}

// 注文台帳の1行。
// TotalPriceは作成時点の単価×数量のスナップショットで、以後再計算しない。
// Statusだけが作成後に変わる。
type Order struct {
	ID         int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID  int64       `gorm:"not null;index" json:"product_id"`
	CustomerID int64       `gorm:"not null;index" json:"customer_id"`
	Quantity   int64       `gorm:"not null" json:"quantity"`
	TotalPrice Money       `gorm:"not null" json:"total_price"`
	Status     OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt  time.Time   `gorm:"not null;autoCreateTime;index" json:"created_at"`
}
