package repository

import "github.com/phongcao0114/ecommerce-app/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus líneas.
// Los OrderItem nacen y mueren con su Order (árbol, sin back-pointers).
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	List() ([]*entity.Order, error)
	ListByUserID(userID string) ([]*entity.Order, error)
	ListByStatus(status string) ([]*entity.Order, error)
	ListItemsByOrderID(orderID string) ([]*entity.OrderItem, error)
	UpdateStatus(orderID, status string) error
	Delete(orderID string) error
}
