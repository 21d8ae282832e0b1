package repository

import "github.com/phongcao0114/ecommerce-app/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error

	// DecrementStock descuenta qty del stock de forma atómica y condicional:
	// UPDATE ... SET stock = stock - qty WHERE id = ... AND stock >= qty.
	// Devuelve domain.ErrInsufficientStock si ninguna fila fue afectada.
	DecrementStock(productID string, qty int) error
}
