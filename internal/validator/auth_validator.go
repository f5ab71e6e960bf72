package validator

import (
	"net/mail"
	"strings"

	"app/internal/domain/model"
	"app/internal/usecase"
)

type authValidator struct{}

// Usecaseはinterfaceを依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

// 会員登録の入力を検証。storeに触る前に全部ここで弾く。
func (v *authValidator) ValidateRegister(name, surname, role, email, password string) error {
	if strings.TrimSpace(name) == "" ||
		strings.TrimSpace(surname) == "" ||
		strings.TrimSpace(role) == "" ||
		strings.TrimSpace(email) == "" ||
		password == "" {
		return usecase.NewError(usecase.KindValidation, "all fields are required")
	}

	if !model.Role(role).Valid() {
		return usecase.NewError(usecase.KindValidation, "invalid role")
	}

	if !isEmailLike(email) {
		return usecase.NewError(usecase.KindValidation, "invalid email")
	}

	if len(password) < 8 {
		return usecase.NewError(usecase.KindValidation, "password too short")
	}

	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return usecase.NewError(usecase.KindValidation, "email and password are required")
	}
	return nil
}

func isEmailLike(s string) bool {
	_, err := mail.ParseAddress(strings.TrimSpace(s))
	return err == nil
}
