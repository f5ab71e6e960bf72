package model_test

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	st, ok := model.ParseOrderStatus("Pending")
	assert.True(t, ok)
	assert.Equal(t, model.OrderStatusPending, st)

	st, ok = model.ParseOrderStatus("Approved")
	assert.True(t, ok)
	assert.Equal(t, model.OrderStatusApproved, st)

	// UIにだけ出てくるラベルはサーバー側では受けない
	for _, s := range []string{"Delivered", "Cancelled", "pending", "", "Shipped"} {
		_, ok := model.ParseOrderStatus(s)
		assert.False(t, ok, s)
	}
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	// 前進
	assert.True(t, model.OrderStatusPending.CanTransitionTo(model.OrderStatusApproved))

	// 同じ値は冪等
	assert.True(t, model.OrderStatusPending.CanTransitionTo(model.OrderStatusPending))
	assert.True(t, model.OrderStatusApproved.CanTransitionTo(model.OrderStatusApproved))

	// 後退は不可
	assert.False(t, model.OrderStatusApproved.CanTransitionTo(model.OrderStatusPending))
}
