package order

import (
	"context"

	"github.com/phongcao0114/ecommerce-app/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para la colocación de
// órdenes: cabecera, líneas, descuento de stock y limpieza del carrito se
// confirman o revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		cartRepo repository.CartItemRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
