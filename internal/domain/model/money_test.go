package model_test

import (
	"encoding/json"
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in   string
		want model.Money
	}{
		{"50", 5000},
		{"50.00", 5000},
		{"49.99", 4999},
		{"0.5", 50},
		{"10.005", 1001},  // half-up
		{"10.004", 1000},
		{" 150.00 ", 15000},
	}
	for _, tc := range cases {
		got, err := model.ParseMoney(tc.in)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseMoney_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2x", ".", "12,50"} {
		_, err := model.ParseMoney(in)
		assert.Error(t, err, in)
	}
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "150.00", model.Money(15000).String())
	assert.Equal(t, "0.05", model.Money(5).String())
	assert.Equal(t, "-3.50", model.Money(-350).String())
}

func TestMoney_MulQty(t *testing.T) {
	// 50.00 × 3 = 150.00
	assert.Equal(t, model.Money(15000), model.Money(5000).MulQty(3))
}

func TestMoney_JSON(t *testing.T) {
	b, err := json.Marshal(model.Money(15000))
	assert.NoError(t, err)
	assert.Equal(t, `"150.00"`, string(b))

	var m model.Money
	assert.NoError(t, json.Unmarshal([]byte(`"49.99"`), &m))
	assert.Equal(t, model.Money(4999), m)

	// 数値も受ける
	assert.NoError(t, json.Unmarshal([]byte(`50`), &m))
	assert.Equal(t, model.Money(5000), m)
}
