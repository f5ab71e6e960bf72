package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

// emailが既に使用済み（unique違反をinfra層で変換する）
var ErrDuplicateEmail = errors.New("duplicate email")

// ユーザーの保存・取得を約束
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	// ロール別一覧（ベンダー一覧・顧客一覧用）
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
}
