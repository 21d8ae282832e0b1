package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/phongcao0114/ecommerce-app/internal/application/dto"
	"github.com/phongcao0114/ecommerce-app/internal/application/order"
)

// OrderHandler maneja las peticiones HTTP de órdenes. Las rutas de
// usuario operan sobre el principal del token; las administrativas van
// detrás de RequireRole(ADMIN) en el router.
type OrderHandler struct {
	uc *order.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *order.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// PlaceOrder godoc
// @Summary      Colocar una orden a partir del carrito
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlaceOrderRequest  true  "Líneas seleccionadas y datos de envío"
// @Success      201   {object}  dto.PlaceOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) PlaceOrder(c *fiber.Ctx) error {
	var in dto.PlaceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.PlaceOrder(c.UserContext(), GetEmail(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetMyOrders godoc
// @Summary      Listar las órdenes del usuario autenticado
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) GetMyOrders(c *fiber.Ctx) error {
	out, err := h.uc.GetOrdersForUser(GetEmail(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CancelOrder godoc
// @Summary      Cancelar una orden
// @Tags         orders
// @Security     Bearer
// @Param        id  path  string  true  "ID de la orden"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/cancel [put]
func (h *OrderHandler) CancelOrder(c *fiber.Ctx) error {
	if err := h.uc.CancelOrder(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkDelivered godoc
// @Summary      Marcar una orden propia como entregada
// @Tags         orders
// @Security     Bearer
// @Param        id  path  string  true  "ID de la orden"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/delivered [put]
func (h *OrderHandler) MarkDelivered(c *fiber.Ctx) error {
	if err := h.uc.MarkDelivered(c.Params("id"), GetEmail(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetAllOrders godoc
// @Summary      Listar todas las órdenes (admin)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/admin/orders [get]
func (h *OrderHandler) GetAllOrders(c *fiber.Ctx) error {
	out, err := h.uc.GetAllOrders()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetOrdersByStatus godoc
// @Summary      Listar órdenes por estado (admin)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        status  path  string  true  "Estado de la orden"
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/admin/orders/status/{status} [get]
func (h *OrderHandler) GetOrdersByStatus(c *fiber.Ctx) error {
	out, err := h.uc.GetOrdersByStatus(c.Params("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetOrdersByUserID godoc
// @Summary      Listar órdenes de un usuario (admin)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        userId  path  string  true  "ID del usuario"
// @Success      200  {array}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/orders/user/{userId} [get]
func (h *OrderHandler) GetOrdersByUserID(c *fiber.Ctx) error {
	out, err := h.uc.GetOrdersByUserID(c.Params("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Actualizar el estado de una orden (admin)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "Nuevo estado"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateStatus(c.Params("id"), in.Status); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteOrder godoc
// @Summary      Eliminar una orden (admin)
// @Tags         orders
// @Security     Bearer
// @Param        id  path  string  true  "ID de la orden"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	if err := h.uc.DeleteOrder(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
