package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// 入力検証はValidatorに寄せる（実装はinternal/validator）
type AuthValidator interface {
	ValidateRegister(name, surname, role, email, password string) error
	ValidateLogin(email, password string) error
}

// アクセストークンを発行する約束。実装はmain側（JWT HS256）。
type AccessTokenIssuer interface {
	Issue(userID int64, role model.Role, now time.Time) (token string, expiresAt time.Time, err error)
}

type UserDTO struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Surname   string     `json:"surname"`
	Role      model.Role `json:"role"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	User UserDTO `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// セッションは持たない。userを返してクライアントが覚える。
// access_tokenは任意（JWT_SECRET設定時のみ）で、注文作成時の本人確認に使える。
type LoginResponse struct {
	User        UserDTO `json:"user"`
	AccessToken string  `json:"access_token,omitempty"`
	ExpiresIn   int     `json:"expires_in,omitempty"`
}

type AuthUsecase struct {
	users     repo.UserRepository
	validator AuthValidator
	issuer    AccessTokenIssuer // nil可（トークン発行なし運用）
}

func NewAuthUsecase(users repo.UserRepository, validator AuthValidator, issuer AccessTokenIssuer) *AuthUsecase {
	return &AuthUsecase{users: users, validator: validator, issuer: issuer}
}

func (u *AuthUsecase) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	role := capitalizeRole(req.Role)

	if err := u.validator.ValidateRegister(req.Name, req.Surname, role, req.Email, req.Password); err != nil {
		return nil, err
	}

	// パスワードは必ずハッシュ化して保存
	pwHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return nil, NewError(KindStorage, "internal error")
	}

	user := &model.User{
		Name:     strings.TrimSpace(req.Name),
		Surname:  strings.TrimSpace(req.Surname),
		Role:     model.Role(role),
		Email:    strings.TrimSpace(req.Email),
		Password: string(pwHash),
	}

	if err := u.users.Create(ctx, user); err != nil {
		// unique違反はValidationの一種として返す
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, NewError(KindValidation, "email already exists")
		}
		return nil, NewError(KindStorage, "db error")
	}

	return &RegisterResponse{User: toUserDTO(user)}, nil
}

func (u *AuthUsecase) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if err := u.validator.ValidateLogin(req.Email, req.Password); err != nil {
		return nil, err
	}

	user, err := u.users.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return nil, NewError(KindStorage, "db error")
	}
	if user == nil {
		return nil, NewError(KindUnauthorized, "invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, NewError(KindUnauthorized, "invalid email or password")
	}

	res := &LoginResponse{User: toUserDTO(user)}

	if u.issuer != nil {
		now := time.Now()
		token, expiresAt, err := u.issuer.Issue(user.ID, user.Role, now)
		if err != nil {
			return nil, NewError(KindStorage, "internal error")
		}
		res.AccessToken = token
		res.ExpiresIn = int(expiresAt.Sub(now).Seconds())
	}

	return res, nil
}

// "vendor"→"Vendor" のように先頭だけ大文字にする
func capitalizeRole(role string) string {
	role = strings.TrimSpace(role)
	if role == "" {
		return role
	}
	return strings.ToUpper(role[:1]) + strings.ToLower(role[1:])
}

func toUserDTO(u *model.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Surname:   u.Surname,
		Role:      u.Role,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
