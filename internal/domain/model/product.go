package model

import "time"

// 出品された商品。
// UserIDは出品者（登録ユーザー）への参照でnull可。
// 未登録の出品者はVendorName（自由入力）だけを持つ。
type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Price       Money     `gorm:"not null" json:"price"`
	Qty         int64     `gorm:"not null" json:"qty"`
	Photo       string    `gorm:"type:varchar(255)" json:"photo"`
	Location    string    `gorm:"type:varchar(255);not null" json:"location"`
	Category    string    `gorm:"type:varchar(100);not null" json:"category"`
	PhoneNumber string    `gorm:"type:varchar(30);not null" json:"phone_number"`
	VendorName  string    `gorm:"type:varchar(255)" json:"vendor_name"`
	UserID      *int64    `gorm:"index" json:"user_id"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
