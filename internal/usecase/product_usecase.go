package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductUsecase struct {
	products repo.ProductRepository
}

// DI
func NewProductUsecase(products repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{products: products}
}

// multipartフォーム由来なのでprice/qtyは文字列のまま受ける
type CreateProductInput struct {
	Name        string
	Price       string
	Qty         string
	Location    string
	Category    string
	PhoneNumber string
	VendorName  string
	UserID      *int64
	Photo       string // 保存済みファイル名（中身は解釈しない）
}

func (u *ProductUsecase) Create(ctx context.Context, in CreateProductInput) (model.Product, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Price) == "" ||
		strings.TrimSpace(in.Qty) == "" ||
		strings.TrimSpace(in.Location) == "" ||
		strings.TrimSpace(in.Category) == "" ||
		strings.TrimSpace(in.PhoneNumber) == "" ||
		strings.TrimSpace(in.VendorName) == "" {
		return model.Product{}, NewError(KindValidation, "all fields are required")
	}

	price, err := model.ParseMoney(in.Price)
	if err != nil || price <= 0 {
		return model.Product{}, NewError(KindValidation, "price must be a positive number")
	}

	qty, err := strconv.ParseInt(strings.TrimSpace(in.Qty), 10, 64)
	if err != nil || qty < 0 {
		return model.Product{}, NewError(KindValidation, "qty must be a non-negative integer")
	}

	created, err := u.products.Create(ctx, model.Product{
		Name:        strings.TrimSpace(in.Name),
		Price:       price,
		Qty:         qty,
		Photo:       in.Photo,
		Location:    strings.TrimSpace(in.Location),
		Category:    strings.TrimSpace(in.Category),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		VendorName:  strings.TrimSpace(in.VendorName),
		UserID:      in.UserID,
	})
	if err != nil {
		return model.Product{}, NewError(KindStorage, "db error")
	}
	return created, nil
}

// 新しい順。出品者表示名は解決済み。
func (u *ProductUsecase) List(ctx context.Context) ([]repo.ProductWithOwner, error) {
	rows, err := u.products.ListWithOwner(ctx)
	if err != nil {
		return []repo.ProductWithOwner{}, NewError(KindStorage, "db error")
	}
	return rows, nil
}

// 削除した行を返す。参照している過去の注文はそのまま残る。
func (u *ProductUsecase) Delete(ctx context.Context, id int64) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewError(KindValidation, "invalid id")
	}

	p, err := u.products.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewError(KindProductNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewError(KindStorage, "db error")
	}
	return p, nil
}
