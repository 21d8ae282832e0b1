package entity

import "time"

// CartItem es una línea del carrito: intención de compra no confirmada.
// Única por (user_email, product_id); se elimina al removerla, al vaciar el
// carrito o al ser consumida por una orden.
type CartItem struct {
	ID        string
	UserEmail string
	ProductID string
	Quantity  int // siempre > 0
	CreatedAt time.Time
	UpdatedAt time.Time
}
