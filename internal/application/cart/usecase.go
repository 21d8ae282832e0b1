package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/phongcao0114/ecommerce-app/internal/application/dto"
	"github.com/phongcao0114/ecommerce-app/internal/domain"
	"github.com/phongcao0114/ecommerce-app/internal/domain/entity"
	"github.com/phongcao0114/ecommerce-app/internal/domain/repository"
)

// CartUseCase operaciones sobre el carrito del usuario autenticado.
// El principal (userEmail) llega siempre como parámetro explícito desde el
// handler; el carrito no toca stock, solo valida cantidad contra el stock
// almacenado al momento de la escritura (la orden lo revalida al colocarse).
type CartUseCase struct {
	cartRepo    repository.CartItemRepository
	productRepo repository.ProductRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(cartRepo repository.CartItemRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{cartRepo: cartRepo, productRepo: productRepo}
}

// AddItem agrega un producto al carrito. Si ya existe la línea, acumula la
// cantidad. La cantidad acumulada no puede exceder el stock actual.
func (uc *CartUseCase) AddItem(userEmail string, in dto.AddCartItemRequest) error {
	if in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	existing, err := uc.cartRepo.GetByUserEmailAndProduct(userEmail, in.ProductID)
	if err != nil {
		return err
	}
	newQty := in.Quantity
	if existing != nil {
		newQty += existing.Quantity
	}
	if newQty > product.Stock {
		return domain.ErrInsufficientStock
	}
	now := time.Now()
	if existing != nil {
		existing.Quantity = newQty
		existing.UpdatedAt = now
		return uc.cartRepo.Update(existing)
	}
	item := &entity.CartItem{
		ID:        uuid.New().String(),
		UserEmail: userEmail,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return uc.cartRepo.Create(item)
}

// ListItems devuelve las líneas del carrito proyectadas con los datos del
// producto al momento de la lectura (nombre, imagen, precio vigente).
func (uc *CartUseCase) ListItems(userEmail string) ([]dto.CartItemResponse, error) {
	items, err := uc.cartRepo.ListByUserEmail(userEmail)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CartItemResponse, 0, len(items))
	for _, item := range items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			// producto eliminado del catálogo con la línea aún en carrito
			continue
		}
		out = append(out, dto.CartItemResponse{
			ID:           item.ID,
			ProductID:    product.ID,
			ProductName:  product.Name,
			ProductImage: product.ImageURL,
			ProductPrice: product.Price,
			Quantity:     item.Quantity,
		})
	}
	return out, nil
}

// UpdateItem sobrescribe la cantidad de una línea existente, revalidando
// contra el stock actual.
func (uc *CartUseCase) UpdateItem(userEmail, productID string, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidInput
	}
	item, err := uc.cartRepo.GetByUserEmailAndProduct(userEmail, productID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if quantity > product.Stock {
		return domain.ErrInsufficientStock
	}
	item.Quantity = quantity
	item.UpdatedAt = time.Now()
	return uc.cartRepo.Update(item)
}

// RemoveItem elimina la línea del producto indicado. El producto debe
// existir; el borrado de la línea es idempotente.
func (uc *CartUseCase) RemoveItem(userEmail, productID string) error {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.cartRepo.DeleteByUserEmailAndProduct(userEmail, productID)
}

// ClearCart elimina todas las líneas del usuario.
func (uc *CartUseCase) ClearCart(userEmail string) error {
	return uc.cartRepo.DeleteAllByUserEmail(userEmail)
}

// DeleteItemsByIDs borrado masivo por ID de línea. No-op con lista vacía.
func (uc *CartUseCase) DeleteItemsByIDs(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return uc.cartRepo.DeleteByIDs(ids)
}
