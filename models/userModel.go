package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email           string `json:"email" gorm:"uniqueIndex;size:191"`
	Password        string `json:"-"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Role            string `json:"role"`
	Phone           string `json:"phone"`
	DateOfBirth     string `json:"dateOfBirth"`
	Country         string `json:"country"`
	ShippingAddress string `json:"shippingAddress"`
	BillingAddress  string `json:"billingAddress"`
	AcceptTerms     bool   `json:"acceptTerms"`
	SubscribeToNews bool   `json:"subscribeToNews"`
}

type SignupData struct {
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Phone           string `json:"phone"`
	DateOfBirth     string `json:"dateOfBirth"`
	Country         string `json:"country"`
	ShippingAddress string `json:"shippingAddress"`
	BillingAddress  string `json:"billingAddress"`
	AcceptTerms     bool   `json:"acceptTerms"`
	SubscribeToNews bool   `json:"subscribeToNews"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
