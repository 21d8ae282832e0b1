package order_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phongcao0114/ecommerce-app/internal/application/dto"
	"github.com/phongcao0114/ecommerce-app/internal/application/order"
	"github.com/phongcao0114/ecommerce-app/internal/domain"
	"github.com/phongcao0114/ecommerce-app/internal/domain/entity"
	"github.com/phongcao0114/ecommerce-app/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Store en memoria compartido por los fakes. El fakeTxRunner toma un snapshot
// antes de ejecutar fn y lo restaura si fn falla, emulando el rollback.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	users    map[string]*entity.User
	products map[string]*entity.Product
	cart     []*entity.CartItem
	orders   map[string]*entity.Order
	items    []*entity.OrderItem
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[string]*entity.User{},
		products: map[string]*entity.Product{},
		orders:   map[string]*entity.Order{},
	}
}

func (s *memStore) snapshot() *memStore {
	c := newMemStore()
	for id, u := range s.users {
		cp := *u
		c.users[id] = &cp
	}
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for _, it := range s.cart {
		cp := *it
		c.cart = append(c.cart, &cp)
	}
	for id, o := range s.orders {
		cp := *o
		c.orders[id] = &cp
	}
	for _, it := range s.items {
		cp := *it
		c.items = append(c.items, &cp)
	}
	return c
}

func (s *memStore) restore(snap *memStore) {
	s.users = snap.users
	s.products = snap.products
	s.cart = snap.cart
	s.orders = snap.orders
	s.items = snap.items
}

// ── fakes sobre el store ──────────────────────────────────────────────────────

type fakeUserRepo struct{ s *memStore }

func (f *fakeUserRepo) Create(u *entity.User) error { f.s.users[u.ID] = u; return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return f.s.users[id], nil
}
func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) Update(u *entity.User) error { f.s.users[u.ID] = u; return nil }

type fakeProductRepo struct{ s *memStore }

func (f *fakeProductRepo) Create(p *entity.Product) error { f.s.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.s.products[id], nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.s.products[p.ID] = p; return nil }
func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Delete(id string) error { delete(f.s.products, id); return nil }
func (f *fakeProductRepo) DecrementStock(productID string, qty int) error {
	p := f.s.products[productID]
	if p == nil || p.Stock < qty {
		return domain.ErrInsufficientStock
	}
	p.Stock -= qty
	return nil
}

type fakeCartRepo struct{ s *memStore }

func (f *fakeCartRepo) Create(item *entity.CartItem) error {
	f.s.cart = append(f.s.cart, item)
	return nil
}
func (f *fakeCartRepo) Update(item *entity.CartItem) error {
	for i, it := range f.s.cart {
		if it.ID == item.ID {
			f.s.cart[i] = item
			return nil
		}
	}
	return domain.ErrNotFound
}
func (f *fakeCartRepo) GetByUserEmailAndProduct(userEmail, productID string) (*entity.CartItem, error) {
	for _, it := range f.s.cart {
		if it.UserEmail == userEmail && it.ProductID == productID {
			return it, nil
		}
	}
	return nil, nil
}
func (f *fakeCartRepo) ListByUserEmail(userEmail string) ([]*entity.CartItem, error) {
	var out []*entity.CartItem
	for _, it := range f.s.cart {
		if it.UserEmail == userEmail {
			out = append(out, it)
		}
	}
	return out, nil
}
func (f *fakeCartRepo) DeleteByUserEmailAndProduct(userEmail, productID string) error {
	out := f.s.cart[:0]
	for _, it := range f.s.cart {
		if !(it.UserEmail == userEmail && it.ProductID == productID) {
			out = append(out, it)
		}
	}
	f.s.cart = out
	return nil
}
func (f *fakeCartRepo) DeleteAllByUserEmail(userEmail string) error {
	out := f.s.cart[:0]
	for _, it := range f.s.cart {
		if it.UserEmail != userEmail {
			out = append(out, it)
		}
	}
	f.s.cart = out
	return nil
}
func (f *fakeCartRepo) DeleteByIDs(ids []string) error {
	drop := map[string]bool{}
	for _, id := range ids {
		drop[id] = true
	}
	out := f.s.cart[:0]
	for _, it := range f.s.cart {
		if !drop[it.ID] {
			out = append(out, it)
		}
	}
	f.s.cart = out
	return nil
}

type fakeOrderRepo struct{ s *memStore }

func (f *fakeOrderRepo) Create(o *entity.Order) error { f.s.orders[o.ID] = o; return nil }
func (f *fakeOrderRepo) CreateItem(item *entity.OrderItem) error {
	f.s.items = append(f.s.items, item)
	return nil
}
func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	return f.s.orders[id], nil
}
func (f *fakeOrderRepo) List() ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(f.s.orders))
	for _, o := range f.s.orders {
		out = append(out, o)
	}
	return out, nil
}
func (f *fakeOrderRepo) ListByUserID(userID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}
func (f *fakeOrderRepo) ListByStatus(status string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.s.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}
func (f *fakeOrderRepo) ListItemsByOrderID(orderID string) ([]*entity.OrderItem, error) {
	var out []*entity.OrderItem
	for _, it := range f.s.items {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out, nil
}
func (f *fakeOrderRepo) UpdateStatus(orderID, status string) error {
	o := f.s.orders[orderID]
	if o == nil {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}
func (f *fakeOrderRepo) Delete(orderID string) error {
	delete(f.s.orders, orderID)
	out := f.s.items[:0]
	for _, it := range f.s.items {
		if it.OrderID != orderID {
			out = append(out, it)
		}
	}
	f.s.items = out
	return nil
}

type fakeTxRunner struct{ s *memStore }

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	cartRepo repository.CartItemRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	snap := f.s.snapshot()
	err := fn(&fakeCartRepo{f.s}, &fakeProductRepo{f.s}, &fakeOrderRepo{f.s})
	if err != nil {
		f.s.restore(snap)
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUserID    = "u-1"
	testUserEmail = "cliente@example.com"
)

func buildOrderUC(t *testing.T) (*order.OrderUseCase, *memStore) {
	t.Helper()
	s := newMemStore()
	s.users[testUserID] = &entity.User{ID: testUserID, Email: testUserEmail, Role: entity.RoleUser}
	uc := order.NewOrderUseCase(
		&fakeTxRunner{s},
		&fakeUserRepo{s},
		&fakeCartRepo{s},
		&fakeOrderRepo{s},
		&fakeProductRepo{s},
	)
	return uc, s
}

func seedProduct(s *memStore, id string, price float64, stock int) {
	s.products[id] = &entity.Product{
		ID:    id,
		Name:  "Producto " + id,
		Price: decimal.NewFromFloat(price),
		Stock: stock,
	}
}

func seedCartLine(s *memStore, lineID, productID string, qty int) {
	s.cart = append(s.cart, &entity.CartItem{
		ID:        lineID,
		UserEmail: testUserEmail,
		ProductID: productID,
		Quantity:  qty,
	})
}

func placeReq(productIDs ...string) dto.PlaceOrderRequest {
	return dto.PlaceOrderRequest{
		ProductIDs:      productIDs,
		PaymentMethod:   "CARD",
		ShippingAddress: "Calle 1 #2-3",
		ShippingCity:    "Bogotá",
		ShippingCountry: "CO",
		PhoneNumber:     "3001234567",
		ShippingFee:     decimal.NewFromFloat(5),
		TotalAmount:     decimal.NewFromFloat(45),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// PlaceOrder
// ──────────────────────────────────────────────────────────────────────────────

func TestPlaceOrder_FlujoCompleto(t *testing.T) {
	uc, s := buildOrderUC(t)
	seedProduct(s, "p1", 10.00, 5)
	seedProduct(s, "p2", 20.00, 5)
	seedCartLine(s, "l1", "p1", 2)
	seedCartLine(s, "l2", "p2", 1)

	out, err := uc.PlaceOrder(context.Background(), testUserEmail, placeReq("p1", "p2"))
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.OrderID)
	assert.Equal(t, "orden colocada exitosamente", out.Message)

	// cabecera PENDING con los datos de envío
	o := s.orders[out.OrderID]
	require.NotNil(t, o, "la orden debe quedar persistida")
	assert.Equal(t, entity.OrderStatusPending, o.Status)
	assert.Equal(t, testUserID, o.UserID)
	assert.Equal(t, "CARD", o.PaymentMethod)

	// una línea por producto, con snapshot del precio vigente
	require.Len(t, s.items, 2)
	prices := map[string]decimal.Decimal{}
	for _, it := range s.items {
		prices[it.ProductID] = it.Price
	}
	assert.True(t, prices["p1"].Equal(decimal.NewFromFloat(10.00)))
	assert.True(t, prices["p2"].Equal(decimal.NewFromFloat(20.00)))

	// stock descontado y carrito consumido
	assert.Equal(t, 3, s.products["p1"].Stock)
	assert.Equal(t, 4, s.products["p2"].Stock)
	assert.Empty(t, s.cart, "las líneas consumidas deben borrarse del carrito")
}

func TestPlaceOrder_ConsumeSoloLasLineasSeleccionadas(t *testing.T) {
	uc, s := buildOrderUC(t)
	seedProduct(s, "p1", 10.00, 5)
	seedProduct(s, "p2", 20.00, 5)
	seedCartLine(s, "l1", "p1", 1)
	seedCartLine(s, "l2", "p2", 1)

	_, err := uc.PlaceOrder(context.Background(), testUserEmail, placeReq("p1"))
	require.NoError(t, err)

	require.Len(t, s.cart, 1, "la línea no seleccionada se queda en el carrito")
	assert.Equal(t, "p2", s.cart[0].ProductID)
	assert.Equal(t, 5, s.products["p2"].Stock, "el stock del producto no seleccionado no cambia")
}

func TestPlaceOrder_SinSeleccion(t *testing.T) {
	uc, _ := buildOrderUC(t)

	_, err := uc.PlaceOrder(context.Background(), testUserEmail, placeReq())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPlaceOrder_SeleccionSinLineasEnCarrito(t *testing.T) {
	uc, s := buildOrderUC(t)
	seedProduct(s, "p1", 10.00, 5)
	// carrito vacío: la selección no corresponde a ninguna línea

	_, err := uc.PlaceOrder(context.Background(), testUserEmail, placeReq("p1"))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestPlaceOrder_UsuarioInexistente(t *testing.T) {
	uc, _ := buildOrderUC(t)

	_, err := uc.PlaceOrder(context.Background(), "fantasma@example.com", placeReq("p1"))
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestPlaceOrder_StockInsuficienteRevierteTodo(t *testing.T) {
	uc, s := buildOrderUC(t)
	seedProduct(s, "p1", 10.00, 5)
	seedProduct(s, "p2", 20.00, 1)
	seedCartLine(s, "l1", "p1", 2)
	seedCartLine(s, "l2", "p2", 3) // excede el stock de p2

	_, err := uc.PlaceOrder(context.Background(), testUserEmail, placeReq("p1", "p2"))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// rollback completo: nada queda a medias
	assert.Empty(t, s.orders, "no debe quedar cabecera de orden")
	assert.Empty(t, s.items, "no deben quedar líneas de orden")
	assert.Len(t, s.cart, 2, "el carrito queda intacto")
	assert.Equal(t, 5, s.products["p1"].Stock, "el descuento parcial de stock se revierte")
	assert.Equal(t, 1, s.products["p2"].Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones de estado
// ──────────────────────────────────────────────────────────────────────────────

func seedOrder(s *memStore, id, userID, status string) {
	s.orders[id] = &entity.Order{ID: id, UserID: userID, Status: status}
}

func TestCancelOrder_MarcaCancelada(t *testing.T) {
	uc, s := buildOrderUC(t)
	seedOrder(s, "o1", testUserID, entity.OrderStatusPending)

	require.NoError(t, uc.CancelOrder("o1"))
	assert.Equal(t, entity.OrderStatusCancelled, s.orders["o1"].Status)
}

func TestCancelOrder_OrdenInexistente(t *testing.T) {
	uc, _ := buildOrderUC(t)
	assert.ErrorIs(t, uc.CancelOrder("no-existe"), domain.ErrNotFound)
}

func TestUpdateStatus_SobrescribeEstado(t *testing.T) {
	uc, s := buildOrderUC(t)
	seedOrder(s, "o1", testUserID, entity.OrderStatusPending)

	require.NoError(t, uc.UpdateStatus("o1", "SHIPPED"))
	assert.Equal(t, "SHIPPED", s.orders["o1"].Status)
}

func TestUpdateStatus_EstadoVacio(t *testing.T) {
	uc, s := buildOrderUC(t)
	seedOrder(s, "o1", testUserID, entity.OrderStatusPending)

	assert.ErrorIs(t, uc.UpdateStatus("o1", ""), domain.ErrInvalidInput)
}

func TestUpdateStatus_OrdenInexistente(t *testing.T) {
	uc, _ := buildOrderUC(t)
	assert.ErrorIs(t, uc.UpdateStatus("no-existe", "SHIPPED"), domain.ErrNotFound)
}

func TestMarkDelivered_SoloElDuenoPuede(t *testing.T) {
	uc, s := buildOrderUC(t)
	seedOrder(s, "o1", testUserID, entity.OrderStatusPending)

	err := uc.MarkDelivered("o1", "otro@example.com")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, entity.OrderStatusPending, s.orders["o1"].Status, "el estado no cambia")

	require.NoError(t, uc.MarkDelivered("o1", testUserEmail))
	assert.Equal(t, entity.OrderStatusDelivered, s.orders["o1"].Status)
}

func TestDeleteOrder_EliminaCabeceraYLineas(t *testing.T) {
	uc, s := buildOrderUC(t)
	seedOrder(s, "o1", testUserID, entity.OrderStatusPending)
	s.items = append(s.items, &entity.OrderItem{ID: "i1", OrderID: "o1", ProductID: "p1", Quantity: 1})

	require.NoError(t, uc.DeleteOrder(context.Background(), "o1"))
	assert.Empty(t, s.orders)
	assert.Empty(t, s.items)
}

func TestDeleteOrder_OrdenInexistente(t *testing.T) {
	uc, _ := buildOrderUC(t)
	assert.ErrorIs(t, uc.DeleteOrder(context.Background(), "no-existe"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetOrdersForUser_ProyectaConEmailDelDueno(t *testing.T) {
	uc, s := buildOrderUC(t)
	seedProduct(s, "p1", 10.00, 5)
	seedOrder(s, "o1", testUserID, entity.OrderStatusPending)
	s.items = append(s.items, &entity.OrderItem{
		ID: "i1", OrderID: "o1", ProductID: "p1", Quantity: 2, Price: decimal.NewFromFloat(10.00),
	})

	out, err := uc.GetOrdersForUser(testUserEmail)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, testUserEmail, out[0].UserEmail)
	require.Len(t, out[0].Items, 1)
	assert.Equal(t, "Producto p1", out[0].Items[0].ProductName, "nombre del catálogo vivo")
	assert.True(t, out[0].Items[0].Price.Equal(decimal.NewFromFloat(10.00)), "precio snapshot")
}

func TestGetOrdersByUserID_UsuarioInexistente(t *testing.T) {
	uc, _ := buildOrderUC(t)
	_, err := uc.GetOrdersByUserID("no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestIsOrderOwner(t *testing.T) {
	uc, s := buildOrderUC(t)
	seedOrder(s, "o1", testUserID, entity.OrderStatusPending)

	ok, err := uc.IsOrderOwner("o1", testUserEmail)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.IsOrderOwner("o1", "otro@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	// orden inexistente: false sin error
	ok, err = uc.IsOrderOwner("no-existe", testUserEmail)
	require.NoError(t, err)
	assert.False(t, ok)
}
