package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden. El estado es texto libre para actualizaciones
// administrativas; estos son los que tienen significado en el dominio.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusCancelled = "CANCELLED"
	OrderStatusDelivered = "DELIVERED"
)

// Order es la cabecera de una orden de compra. Se crea atómicamente junto
// con sus OrderItem al colocar la orden; después solo cambia su estado.
type Order struct {
	ID                 string
	UserID             string
	Date               time.Time
	Status             string
	PaymentMethod      string // COD, CreditCard, InternetBanking, ...
	ShippingAddress    string
	ShippingCity       string
	ShippingPostalCode string
	ShippingCountry    string
	PhoneNumber        string
	ShippingFee        decimal.Decimal
	TotalAmount        decimal.Decimal
}

// OrderItem es un snapshot inmutable de producto, cantidad y precio unitario
// capturado al momento de colocar la orden. El precio no se vuelve a leer
// del producto vivo.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	Price     decimal.Decimal // precio unitario al momento de la orden
}
