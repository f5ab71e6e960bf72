package usecase

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 注文ステータスの遷移。
// 受け付けるのは定義済みの集合だけで、遷移表は前進のみ。
type OrderStatusUsecase struct {
	tx repo.TransactionManager
}

func NewOrderStatusUsecase(tx repo.TransactionManager) *OrderStatusUsecase {
	return &OrderStatusUsecase{tx: tx}
}

// ステータスを更新して更新後の行を返す。
// 同じ値への再適用は何もせず成功（冪等）。
func (u *OrderStatusUsecase) SetStatus(ctx context.Context, orderID int64, status string) (model.Order, error) {
	if orderID <= 0 {
		return model.Order{}, NewError(KindValidation, "invalid id")
	}

	label := strings.TrimSpace(status)
	if label == "" {
		return model.Order{}, NewError(KindValidation, "status is required")
	}
	next, ok := model.ParseOrderStatus(label)
	if !ok {
		return model.Order{}, NewError(KindInvalidStatus, "invalid status")
	}

	var out model.Order

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewError(KindOrderNotFound, "order not found")
		}
		if err != nil {
			return NewError(KindStorage, "db error")
		}

		// 変化なしは冪等に成功
		if o.Status == next {
			out = o
			return nil
		}

		if !o.Status.CanTransitionTo(next) {
			return NewError(KindInvalidStatus, "invalid status transition")
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, next); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewError(KindOrderNotFound, "order not found")
			}
			return NewError(KindStorage, "db error")
		}

		o.Status = next
		out = o
		return nil
	})

	if err != nil {
		return model.Order{}, err
	}
	return out, nil
}
