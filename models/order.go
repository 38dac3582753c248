package models

import "time"

type PizzaSize string

const (
	SizeSmall      PizzaSize = "SMALL"
	SizeMedium     PizzaSize = "MEDIUM"
	SizeLarge      PizzaSize = "LARGE"
	SizeExtraLarge PizzaSize = "EXTRA-LARGE"
)

func (s PizzaSize) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge:
		return true
	}
	return false
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusInTransit OrderStatus = "IN-TRANSIT"
	StatusDelivered OrderStatus = "DELIVERED"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInTransit, StatusDelivered:
		return true
	}
	return false
}

type Order struct {
	ID          int         `json:"id"`
	Quantity    int         `json:"quantity"`
	PizzaSize   PizzaSize   `json:"pizza_size"`
	OrderStatus OrderStatus `json:"order_status"`
	UserID      int         `json:"user_id"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
