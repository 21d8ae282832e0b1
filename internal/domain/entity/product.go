package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo con precio y stock.
// Stock nunca queda negativo: se descuenta solo al colocar una orden con un
// UPDATE condicional (ver postgres.ProductRepo.DecrementStock), nunca al
// agregar al carrito.
type Product struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	ImageURL    string
	Price       decimal.Decimal // precio de venta
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
