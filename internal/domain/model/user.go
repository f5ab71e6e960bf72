package model

import "time"

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleVendor   Role = "Vendor"
	RoleCustomer Role = "Customer"
)

// 定義済みロールか
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleVendor, RoleCustomer:
		return true
	}
	return false
}

type User struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	Surname string `gorm:"type:varchar(255);not null" json:"surname"`
	Role    Role   `gorm:"type:varchar(20);not null;index" json:"role"`
	Email   string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`

	// bcryptハッシュ。平文は保存しない。
	Password string `gorm:"type:varchar(255);not null" json:"-"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
