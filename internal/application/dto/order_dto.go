package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceOrderRequest datos para colocar una orden a partir del carrito.
// ShippingFee y TotalAmount vienen del cliente y se persisten tal cual
// (fidelidad con el flujo original; ver DESIGN.md).
type PlaceOrderRequest struct {
	ProductIDs         []string        `json:"product_ids"`
	PaymentMethod      string          `json:"payment_method"`
	ShippingAddress    string          `json:"shipping_address"`
	ShippingCity       string          `json:"shipping_city"`
	ShippingPostalCode string          `json:"shipping_postal_code"`
	ShippingCountry    string          `json:"shipping_country"`
	PhoneNumber        string          `json:"phone_number"`
	ShippingFee        decimal.Decimal `json:"shipping_fee"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
}

// PlaceOrderResponse acuse de orden colocada.
type PlaceOrderResponse struct {
	OrderID string `json:"order_id"`
	Message string `json:"message"`
}

// UpdateOrderStatusRequest cambio administrativo de estado.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse línea de una orden proyectada.
type OrderItemResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductImage string          `json:"product_image,omitempty"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"` // precio unitario snapshot
}

// OrderResponse proyección plana de una orden con sus líneas embebidas.
type OrderResponse struct {
	ID                 string              `json:"id"`
	UserEmail          string              `json:"user_email"`
	Date               time.Time           `json:"date"`
	Status             string              `json:"status"`
	PaymentMethod      string              `json:"payment_method"`
	Items              []OrderItemResponse `json:"items"`
	ShippingAddress    string              `json:"shipping_address"`
	ShippingCity       string              `json:"shipping_city"`
	ShippingPostalCode string              `json:"shipping_postal_code"`
	ShippingCountry    string              `json:"shipping_country"`
	PhoneNumber        string              `json:"phone_number"`
	ShippingFee        decimal.Decimal     `json:"shipping_fee"`
	TotalAmount        decimal.Decimal     `json:"total_amount"`
}
