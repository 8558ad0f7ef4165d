package models

type Order struct {
	ID        int       `json:"id"`
	OrderDate OrderDate `json:"order_date"`
	UserID    int       `json:"user_id"`
}
