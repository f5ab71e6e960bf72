package usecase

import (
	"errors"
	"fmt"
)

// 失敗の種別。handlerがHTTPステータスに写す。
type ErrorKind string

const (
	KindValidation      ErrorKind = "validation"       // 入力不備（store到達前に弾く）
	KindProductNotFound ErrorKind = "product_not_found"
	KindOrderNotFound   ErrorKind = "order_not_found"
	KindInvalidStatus   ErrorKind = "invalid_status"
	KindUnauthorized    ErrorKind = "unauthorized"
	KindForbidden       ErrorKind = "forbidden"
	KindStorage         ErrorKind = "storage" // DB不達・未分類の制約違反
)

// usecaseが返すエラー。Messageはそのままクライアントに出せる安全な文言。
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewError(kind ErrorKind, message string) error {
	return &Error{Kind: kind, Message: message}
}

func AsError(err error) (*Error, bool) {
	var ue *Error
	ok := errors.As(err, &ue)
	return ue, ok
}
