package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/phongcao0114/ecommerce-app/internal/domain"
	"github.com/phongcao0114/ecommerce-app/internal/domain/entity"
	"github.com/phongcao0114/ecommerce-app/internal/domain/repository"
)

var _ repository.CartItemRepository = (*CartItemRepo)(nil)

// CartItemRepo implementación de CartItemRepository sobre PostgreSQL (usable con pool o tx).
type CartItemRepo struct {
	q Querier
}

// NewCartItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCartItemRepository(q Querier) *CartItemRepo {
	return &CartItemRepo{q: q}
}

const cartItemColumns = `id, user_email, product_id, quantity, created_at, updated_at`

// Create persiste una nueva línea de carrito.
func (r *CartItemRepo) Create(item *entity.CartItem) error {
	query := `
		INSERT INTO cart_items (id, user_email, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.UserEmail, item.ProductID, item.Quantity, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			// el usuario referenciado ya no existe
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert cart item: %w", err)
	}
	return nil
}

// Update sobrescribe la cantidad de una línea.
func (r *CartItemRepo) Update(item *entity.CartItem) error {
	query := `UPDATE cart_items SET quantity = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, item.ID, item.Quantity, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	return nil
}

// GetByUserEmailAndProduct obtiene la línea única por (usuario, producto).
func (r *CartItemRepo) GetByUserEmailAndProduct(userEmail, productID string) (*entity.CartItem, error) {
	query := `SELECT ` + cartItemColumns + ` FROM cart_items WHERE user_email = $1 AND product_id = $2`
	var item entity.CartItem
	err := r.q.QueryRow(context.Background(), query, userEmail, productID).Scan(
		&item.ID, &item.UserEmail, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart item: %w", err)
	}
	return &item, nil
}

// ListByUserEmail devuelve todas las líneas del usuario, más antiguas primero.
func (r *CartItemRepo) ListByUserEmail(userEmail string) ([]*entity.CartItem, error) {
	query := `SELECT ` + cartItemColumns + ` FROM cart_items WHERE user_email = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, userEmail)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()
	var list []*entity.CartItem
	for rows.Next() {
		var item entity.CartItem
		if err := rows.Scan(&item.ID, &item.UserEmail, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// DeleteByUserEmailAndProduct elimina la línea si existe (idempotente).
func (r *CartItemRepo) DeleteByUserEmailAndProduct(userEmail, productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM cart_items WHERE user_email = $1 AND product_id = $2`, userEmail, productID)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// DeleteAllByUserEmail vacía el carrito del usuario.
func (r *CartItemRepo) DeleteAllByUserEmail(userEmail string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cart_items WHERE user_email = $1`, userEmail)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// DeleteByIDs borrado masivo de líneas por ID.
func (r *CartItemRepo) DeleteByIDs(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.q.Exec(context.Background(), `DELETE FROM cart_items WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("delete cart items by ids: %w", err)
	}
	return nil
}
