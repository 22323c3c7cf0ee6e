package models

import "time"

type User struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"userId"`
	Username        string    `gorm:"uniqueIndex;not null" json:"username"`
	Email           string    `gorm:"uniqueIndex;not null" json:"email"`
	FullName        string    `json:"fullName"`
	Phone           string    `json:"phone"`
	ShippingAddress string    `json:"shippingAddress"` // default address used when checkout omits one
	Cart            *Cart     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Orders          []Order   `gorm:"foreignKey:BuyerID" json:"-"`
	Products        []Product `gorm:"foreignKey:SellerID" json:"-"`
	CreatedAt       time.Time `json:"createdAt"`
}
