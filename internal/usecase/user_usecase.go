package usecase

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// ベンダー一覧・顧客一覧（注文フォームやダッシュボード用）
type UserUsecase struct {
	users repo.UserRepository
}

func NewUserUsecase(users repo.UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

type VendorDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CustomerDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
}

func (u *UserUsecase) ListVendors(ctx context.Context) ([]VendorDTO, error) {
	users, err := u.users.ListByRole(ctx, model.RoleVendor)
	if err != nil {
		return []VendorDTO{}, NewError(KindStorage, "db error")
	}

	out := make([]VendorDTO, 0, len(users))
	for _, v := range users {
		out = append(out, VendorDTO{ID: v.ID, Name: v.Name})
	}
	return out, nil
}

func (u *UserUsecase) ListCustomers(ctx context.Context) ([]CustomerDTO, error) {
	users, err := u.users.ListByRole(ctx, model.RoleCustomer)
	if err != nil {
		return []CustomerDTO{}, NewError(KindStorage, "db error")
	}

	out := make([]CustomerDTO, 0, len(users))
	for _, c := range users {
		out = append(out, CustomerDTO{ID: c.ID, Name: c.Name, Surname: c.Surname, Email: c.Email})
	}
	return out, nil
}
