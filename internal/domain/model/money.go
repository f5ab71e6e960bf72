package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Moneyは通貨額をセント単位のint64で持つ。
// JSONでは"150.00"のような小数2桁の文字列になる。
type Money int64

var ErrInvalidMoney = errors.New("invalid money value")

// "49.99"のような10進文字列をパースする。小数3桁目以降は四捨五入。
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidMoney
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
		fracPart = s[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return 0, ErrInvalidMoney
	}
	if intPart == "" {
		intPart = "0"
	}

	whole, err := strconv.ParseUint(intPart, 10, 63)
	if err != nil {
		return 0, ErrInvalidMoney
	}

	// 小数部は3桁に揃えてから四捨五入でセントに丸める
	var cents uint64
	if fracPart != "" {
		for _, r := range fracPart {
			if r < '0' || r > '9' {
				return 0, ErrInvalidMoney
			}
		}
		padded := fracPart
		if len(padded) > 3 {
			padded = padded[:3]
		}
		for len(padded) < 3 {
			padded += "0"
		}
		f, err := strconv.ParseUint(padded, 10, 63)
		if err != nil {
			return 0, ErrInvalidMoney
		}
		cents = (f + 5) / 10
	}

	v := int64(whole*100 + cents)
	if neg {
		v = -v
	}
	return Money(v), nil
}

// 単価×数量。合計のスナップショットを作るときに使う。
func (m Money) MulQty(qty int64) Money {
	return Money(int64(m) * qty)
}

func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// 文字列("150.00")と数値(150)の両方を受ける
func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := ParseMoney(s)
		if err != nil {
			return err
		}
		*m = v
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return ErrInvalidMoney
	}
	*m = Money(int64(math.Round(f * 100)))
	return nil
}
