package models

type SignUpRequest struct {
	Username string `json:"username" form:"username" binding:"required,min=3,max=25"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	IsStaff  bool   `json:"is_staff" form:"is_staff"`
	IsActive *bool  `json:"is_active" form:"is_active"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// OrderRequest carries both create and update payloads. OrderStatus and
// UserID are accepted for compatibility but ignored: status is forced to
// PENDING on create and the owner is always derived from the token.
type OrderRequest struct {
	Quantity    int         `json:"quantity" form:"quantity" binding:"required,gt=0"`
	PizzaSize   PizzaSize   `json:"pizza_size" form:"pizza_size" binding:"omitempty,oneof=SMALL MEDIUM LARGE EXTRA-LARGE"`
	OrderStatus OrderStatus `json:"order_status" form:"order_status" binding:"omitempty,oneof=PENDING IN-TRANSIT DELIVERED"`
	UserID      int         `json:"user_id" form:"user_id"`
}

type OrderStatusRequest struct {
	OrderStatus OrderStatus `json:"order_status" form:"order_status" binding:"omitempty,oneof=PENDING IN-TRANSIT DELIVERED"`
}
