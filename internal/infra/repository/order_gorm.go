package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, o model.Order) (model.Order, error) {
	if err := r.db.WithContext(ctx).Create(&o).Error; err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, id int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 注文＋表示用フィールドのSELECT。
// 商品・顧客はLEFT JOIN（削除済みでも注文は表示する）。
const orderDetailSelect = `o.id, o.quantity, o.total_price, o.status, o.created_at,
p.id AS product_id, COALESCE(p.name, '') AS product_name, p.price AS product_price,
COALESCE(p.photo, '') AS product_photo,
u.id AS customer_id, COALESCE(u.name, '') AS customer_name, COALESCE(u.surname, '') AS customer_surname,
p.user_id AS vendor_id`

func (r *OrderGormRepository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("orders AS o").
		Select(orderDetailSelect).
		Joins("LEFT JOIN products p ON o.product_id = p.id").
		Joins("LEFT JOIN users u ON o.customer_id = u.id").
		Order("o.created_at DESC")
}

func (r *OrderGormRepository) ListAll(ctx context.Context) ([]repo.OrderDetail, error) {
	rows := []repo.OrderDetail{}
	if err := r.detailQuery(ctx).Scan(&rows).Error; err != nil {
		return []repo.OrderDetail{}, err
	}
	return rows, nil
}

func (r *OrderGormRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]repo.OrderDetail, error) {
	rows := []repo.OrderDetail{}
	err := r.detailQuery(ctx).
		Where("o.customer_id = ?", customerID).
		Scan(&rows).Error
	if err != nil {
		return []repo.OrderDetail{}, err
	}
	return rows, nil
}

// 商品の出品者で絞る。商品はINNER JOIN（出品者が特定できる注文だけ）、顧客はLEFT JOIN。
func (r *OrderGormRepository) ListByVendorID(ctx context.Context, vendorID int64) ([]repo.OrderDetail, error) {
	rows := []repo.OrderDetail{}
	err := r.db.WithContext(ctx).
		Table("orders AS o").
		Select(orderDetailSelect).
		Joins("JOIN products p ON o.product_id = p.id").
		Joins("LEFT JOIN users u ON o.customer_id = u.id").
		Where("p.user_id = ?", vendorID).
		Order("o.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return []repo.OrderDetail{}, err
	}
	return rows, nil
}
