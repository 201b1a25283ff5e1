package models

import "time"

const OrderStatusConfirmed = "Confirmed"

// Customer is the contact and delivery part of an order.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Order is an immutable checkout record.
type Order struct {
	OrderID   string     `json:"orderId"`
	Customer  Customer   `json:"customer"`
	Items     []CartLine `json:"items"`
	Subtotal  float64    `json:"subtotal"`
	Tax       float64    `json:"tax"`
	Shipping  float64    `json:"shipping"`
	Total     float64    `json:"total"`
	OrderDate time.Time  `json:"orderDate"`
	Status    string     `json:"status"`
}
