package repository

import "github.com/phongcao0114/ecommerce-app/internal/domain/entity"

// CartItemRepository define el puerto de persistencia para CartItem.
// Las líneas son únicas por (user_email, product_id).
type CartItemRepository interface {
	Create(item *entity.CartItem) error
	Update(item *entity.CartItem) error
	GetByUserEmailAndProduct(userEmail, productID string) (*entity.CartItem, error)
	ListByUserEmail(userEmail string) ([]*entity.CartItem, error)
	DeleteByUserEmailAndProduct(userEmail, productID string) error
	DeleteAllByUserEmail(userEmail string) error
	DeleteByIDs(ids []string) error
}
