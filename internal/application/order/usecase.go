package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/phongcao0114/ecommerce-app/internal/application/dto"
	"github.com/phongcao0114/ecommerce-app/internal/domain"
	"github.com/phongcao0114/ecommerce-app/internal/domain/entity"
	"github.com/phongcao0114/ecommerce-app/internal/domain/repository"
)

// OrderUseCase coloca órdenes a partir del carrito y gestiona sus estados.
// PlaceOrder es la operación central: transforma líneas de carrito en una
// orden persistida dentro de una sola transacción.
type OrderUseCase struct {
	txRunner  TxRunner
	userRepo  repository.UserRepository
	cartRepo  repository.CartItemRepository
	orderRepo repository.OrderRepository
	prodRepo  repository.ProductRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner TxRunner,
	userRepo repository.UserRepository,
	cartRepo repository.CartItemRepository,
	orderRepo repository.OrderRepository,
	prodRepo repository.ProductRepository,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:  txRunner,
		userRepo:  userRepo,
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		prodRepo:  prodRepo,
	}
}

// PlaceOrder convierte las líneas de carrito seleccionadas en una orden
// persistida: cabecera PENDING, un OrderItem por línea con el precio
// vigente, descuento atómico de stock y borrado de las líneas consumidas.
// Todo dentro de una transacción: cualquier error revierte el conjunto.
//
// ShippingFee y TotalAmount se persisten tal cual llegan del cliente
// (fidelidad con el flujo original; decisión registrada en DESIGN.md).
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, userEmail string, in dto.PlaceOrderRequest) (*dto.PlaceOrderResponse, error) {
	user, err := uc.userRepo.GetByEmail(userEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if len(in.ProductIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Filtra las líneas del carrito a las seleccionadas, en el orden en que
	// fueron cargadas.
	selected := make(map[string]bool, len(in.ProductIDs))
	for _, id := range in.ProductIDs {
		selected[id] = true
	}
	allItems, err := uc.cartRepo.ListByUserEmail(userEmail)
	if err != nil {
		return nil, err
	}
	var cartItems []*entity.CartItem
	for _, item := range allItems {
		if selected[item.ProductID] {
			cartItems = append(cartItems, item)
		}
	}
	if len(cartItems) == 0 {
		// la selección no corresponde a ninguna línea actual del carrito
		return nil, domain.ErrConflict
	}

	newOrder := &entity.Order{
		ID:                 uuid.New().String(),
		UserID:             user.ID,
		Date:               time.Now(),
		Status:             entity.OrderStatusPending,
		PaymentMethod:      in.PaymentMethod,
		ShippingAddress:    in.ShippingAddress,
		ShippingCity:       in.ShippingCity,
		ShippingPostalCode: in.ShippingPostalCode,
		ShippingCountry:    in.ShippingCountry,
		PhoneNumber:        in.PhoneNumber,
		ShippingFee:        in.ShippingFee,
		TotalAmount:        in.TotalAmount,
	}

	err = uc.txRunner.Run(ctx, func(
		cartRepo repository.CartItemRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error {
		if err := orderRepo.Create(newOrder); err != nil {
			return err
		}
		consumed := make([]string, 0, len(cartItems))
		for _, item := range cartItems {
			product, err := productRepo.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			// Descuento condicional: stock = stock - qty solo si alcanza.
			// Cierra la carrera entre órdenes concurrentes sobre el mismo
			// producto sin un read-then-write separado.
			if err := productRepo.DecrementStock(product.ID, item.Quantity); err != nil {
				if errors.Is(err, domain.ErrInsufficientStock) {
					return fmt.Errorf("%w: producto %s", domain.ErrInsufficientStock, product.Name)
				}
				return err
			}
			orderItem := &entity.OrderItem{
				ID:        uuid.New().String(),
				OrderID:   newOrder.ID,
				ProductID: product.ID,
				Quantity:  item.Quantity,
				Price:     product.Price, // snapshot del precio vigente
			}
			if err := orderRepo.CreateItem(orderItem); err != nil {
				return err
			}
			consumed = append(consumed, item.ID)
		}
		return cartRepo.DeleteByIDs(consumed)
	})
	if err != nil {
		return nil, err
	}

	return &dto.PlaceOrderResponse{
		OrderID: newOrder.ID,
		Message: "orden colocada exitosamente",
	}, nil
}

// CancelOrder marca la orden como CANCELLED sin validar el estado previo.
func (uc *OrderUseCase) CancelOrder(orderID string) error {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.UpdateStatus(orderID, entity.OrderStatusCancelled)
}

// UpdateStatus sobrescribe el estado de la orden (uso administrativo).
// El valor no se valida contra una máquina de estados.
func (uc *OrderUseCase) UpdateStatus(orderID, status string) error {
	if status == "" {
		return domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.UpdateStatus(orderID, status)
}

// MarkDelivered marca la orden como DELIVERED. Solo el dueño de la orden
// puede hacerlo; cualquier otro usuario recibe ErrForbidden.
func (uc *OrderUseCase) MarkDelivered(orderID, userEmail string) error {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	owner, err := uc.userRepo.GetByID(order.UserID)
	if err != nil {
		return err
	}
	if owner == nil || owner.Email != userEmail {
		return domain.ErrForbidden
	}
	return uc.orderRepo.UpdateStatus(orderID, entity.OrderStatusDelivered)
}

// DeleteOrder elimina la orden y sus líneas en una sola transacción.
func (uc *OrderUseCase) DeleteOrder(ctx context.Context, orderID string) error {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.CartItemRepository,
		_ repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error {
		return orderRepo.Delete(orderID)
	})
}
