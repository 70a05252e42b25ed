package models

import "gorm.io/gorm"

type Order struct {
	gorm.Model
	UserID      int         `json:"userId"`
	FullName    string      `json:"fullName"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	Description string      `json:"description"`
	Total       float64     `json:"total"`
	Status      string      `json:"status"`
	OrderItems  []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	// Owning account's email, filled by the admin listing join. Not a column.
	AccountEmail string `json:"accountEmail,omitempty" gorm:"->;-:migration"`
}

type OrderItem struct {
	gorm.Model
	OrderID     int     `json:"orderId"`
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}
