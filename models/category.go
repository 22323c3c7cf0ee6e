package models

type Category struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"categoryId"`
	CategoryName string    `gorm:"uniqueIndex;not null" json:"categoryName"`
	IsActive     bool      `gorm:"not null;default:true" json:"isActive"`
	Products     []Product `gorm:"foreignKey:CategoryID" json:"-"`
}
