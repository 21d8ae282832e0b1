package order

import (
	"github.com/phongcao0114/ecommerce-app/internal/application/dto"
	"github.com/phongcao0114/ecommerce-app/internal/domain"
	"github.com/phongcao0114/ecommerce-app/internal/domain/entity"
)

// Lado de lectura: proyecciones planas de órdenes con sus líneas embebidas.
// Nombre e imagen del producto se leen del catálogo vivo; el precio es el
// snapshot capturado al colocar la orden.

// GetAllOrders devuelve todas las órdenes proyectadas.
func (uc *OrderUseCase) GetAllOrders() ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}
	return uc.project(orders)
}

// GetOrdersByUserID devuelve las órdenes de un usuario por ID.
func (uc *OrderUseCase) GetOrdersByUserID(userID string) ([]dto.OrderResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	orders, err := uc.orderRepo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}
	return uc.project(orders)
}

// GetOrdersForUser devuelve las órdenes del usuario autenticado.
func (uc *OrderUseCase) GetOrdersForUser(userEmail string) ([]dto.OrderResponse, error) {
	user, err := uc.userRepo.GetByEmail(userEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	orders, err := uc.orderRepo.ListByUserID(user.ID)
	if err != nil {
		return nil, err
	}
	return uc.project(orders)
}

// GetOrdersByStatus devuelve las órdenes con el estado indicado.
func (uc *OrderUseCase) GetOrdersByStatus(status string) ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.ListByStatus(status)
	if err != nil {
		return nil, err
	}
	return uc.project(orders)
}

// IsOrderOwner indica si la orden pertenece al email dado.
// Devuelve false (no error) si la orden no existe.
func (uc *OrderUseCase) IsOrderOwner(orderID, email string) (bool, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return false, err
	}
	if order == nil {
		return false, nil
	}
	owner, err := uc.userRepo.GetByID(order.UserID)
	if err != nil {
		return false, err
	}
	return owner != nil && owner.Email == email, nil
}

func (uc *OrderUseCase) project(orders []*entity.Order) ([]dto.OrderResponse, error) {
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		projected, err := uc.projectOne(o)
		if err != nil {
			return nil, err
		}
		out = append(out, *projected)
	}
	return out, nil
}

func (uc *OrderUseCase) projectOne(o *entity.Order) (*dto.OrderResponse, error) {
	owner, err := uc.userRepo.GetByID(o.UserID)
	if err != nil {
		return nil, err
	}
	ownerEmail := ""
	if owner != nil {
		ownerEmail = owner.Email
	}
	items, err := uc.orderRepo.ListItemsByOrderID(o.ID)
	if err != nil {
		return nil, err
	}
	itemDTOs := make([]dto.OrderItemResponse, 0, len(items))
	for _, item := range items {
		itemDTO := dto.OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		product, err := uc.prodRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			itemDTO.ProductName = product.Name
			itemDTO.ProductImage = product.ImageURL
		}
		itemDTOs = append(itemDTOs, itemDTO)
	}
	return &dto.OrderResponse{
		ID:                 o.ID,
		UserEmail:          ownerEmail,
		Date:               o.Date,
		Status:             o.Status,
		PaymentMethod:      o.PaymentMethod,
		Items:              itemDTOs,
		ShippingAddress:    o.ShippingAddress,
		ShippingCity:       o.ShippingCity,
		ShippingPostalCode: o.ShippingPostalCode,
		ShippingCountry:    o.ShippingCountry,
		PhoneNumber:        o.PhoneNumber,
		ShippingFee:        o.ShippingFee,
		TotalAmount:        o.TotalAmount,
	}, nil
}
