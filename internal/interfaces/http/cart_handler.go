package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/phongcao0114/ecommerce-app/internal/application/cart"
	"github.com/phongcao0114/ecommerce-app/internal/application/dto"
)

// CartHandler maneja las peticiones HTTP del carrito. Todas las rutas
// requieren autenticación; el principal sale del token (GetEmail).
type CartHandler struct {
	uc *cart.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *cart.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// AddItem godoc
// @Summary      Agregar producto al carrito
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "Producto y cantidad"
// @Success      201
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.AddItem(GetEmail(c), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// ListItems godoc
// @Summary      Listar el carrito del usuario
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CartItemResponse
// @Router       /api/cart [get]
func (h *CartHandler) ListItems(c *fiber.Ctx) error {
	out, err := h.uc.ListItems(GetEmail(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteItems godoc
// @Summary      Borrar líneas del carrito por ID
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.DeleteCartItemsRequest  true  "IDs de línea a borrar"
// @Success      204
// @Router       /api/cart/items [delete]
func (h *CartHandler) DeleteItems(c *fiber.Ctx) error {
	var in dto.DeleteCartItemsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.DeleteItemsByIDs(in.CartItemIDs); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateItem godoc
// @Summary      Actualizar cantidad de una línea
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.UpdateCartItemRequest  true  "Nueva cantidad"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/{productId} [put]
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateItem(GetEmail(c), c.Params("productId"), in.Quantity); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RemoveItem godoc
// @Summary      Quitar un producto del carrito
// @Tags         cart
// @Security     Bearer
// @Param        productId  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/{productId} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	if err := h.uc.RemoveItem(GetEmail(c), c.Params("productId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ClearCart godoc
// @Summary      Vaciar el carrito
// @Tags         cart
// @Security     Bearer
// @Success      204
// @Router       /api/cart [delete]
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	if err := h.uc.ClearCart(GetEmail(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
