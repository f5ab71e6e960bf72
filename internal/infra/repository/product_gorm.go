package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 新しい順（id降順）で全商品を返す。
// 出品者名はvendor_name優先、無ければ出品ユーザーのname、どちらも無ければ'N/A'。
func (r *ProductGormRepository) ListWithOwner(ctx context.Context) ([]repo.ProductWithOwner, error) {
	rows := []repo.ProductWithOwner{}
	err := r.db.WithContext(ctx).
		Table("products AS p").
		Select("p.*, COALESCE(NULLIF(p.vendor_name, ''), u.name, 'N/A') AS owner_name, p.phone_number AS owner_phone").
		Joins("LEFT JOIN users u ON p.user_id = u.id").
		Order("p.id DESC").
		Scan(&rows).Error
	if err != nil {
		return []repo.ProductWithOwner{}, err
	}
	return rows, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 削除した行を返す。過去の注文は消えた商品を参照したままでよい（読み取りはLEFT JOIN）。
func (r *ProductGormRepository) Delete(ctx context.Context, id int64) (model.Product, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return model.Product{}, err
	}

	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return model.Product{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

// 在庫が足りるときだけ1文で減算する。足りなければfalse。
func (r *ProductGormRepository) DecreaseQtyIfEnough(ctx context.Context, id int64, qty int64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND qty >= ?", id, qty).
		Update("qty", gorm.Expr("qty - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
