package dto

import "github.com/shopspring/decimal"

// AddCartItemRequest agrega (o acumula) una línea del carrito.
type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest sobrescribe la cantidad de una línea existente.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// DeleteCartItemsRequest borrado masivo de líneas por ID.
type DeleteCartItemsRequest struct {
	CartItemIDs []string `json:"cart_item_ids"`
}

// CartItemResponse proyección de una línea del carrito con datos del
// producto al momento de la lectura.
type CartItemResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductImage string          `json:"product_image,omitempty"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int             `json:"quantity"`
}
