package models

type CreateUserRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Email   string `json:"email" binding:"required,email"`
}

// Update requests are partial: empty string / nil means "leave unchanged".
type UpdateUserRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email" binding:"omitempty,email"`
}

type CreateProductRequest struct {
	ProductName string   `json:"product_name" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
}

type UpdateProductRequest struct {
	ProductName string   `json:"product_name"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
}

type CreateOrderRequest struct {
	UserID    int       `json:"user_id" binding:"required"`
	OrderDate OrderDate `json:"order_date" binding:"required"`
}
