package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/phongcao0114/ecommerce-app/internal/application/auth"
	"github.com/phongcao0114/ecommerce-app/internal/application/cart"
	"github.com/phongcao0114/ecommerce-app/internal/application/order"
	"github.com/phongcao0114/ecommerce-app/internal/application/usecase"
	"github.com/phongcao0114/ecommerce-app/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	CartUC     *cart.CartUseCase
	OrderUC    *order.OrderUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	// Catálogo: lecturas públicas
	productHandler := NewProductHandler(deps.ProductUC)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.GetByID)
	api.Get("/categories", categoryHandler.List)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Carrito (protegido, opera sobre el principal del token)
	cartGroup := protected.Group("/cart")
	cartHandler := NewCartHandler(deps.CartUC)
	cartGroup.Post("/", cartHandler.AddItem)
	cartGroup.Get("/", cartHandler.ListItems)
	cartGroup.Delete("/", cartHandler.ClearCart)
	// antes de /:productId para que "items" no se capture como parámetro
	cartGroup.Delete("/items", cartHandler.DeleteItems)
	cartGroup.Put("/:productId", cartHandler.UpdateItem)
	cartGroup.Delete("/:productId", cartHandler.RemoveItem)

	// Órdenes (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.PlaceOrder)
	orders.Get("/", orderHandler.GetMyOrders)
	orders.Put("/:id/cancel", orderHandler.CancelOrder)
	orders.Put("/:id/delivered", orderHandler.MarkDelivered)

	// Administración (protegido + rol ADMIN)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	admin.Post("/products", productHandler.Create)
	admin.Put("/products/:id", productHandler.Update)
	admin.Delete("/products/:id", productHandler.Delete)
	admin.Post("/categories", categoryHandler.Create)
	admin.Get("/orders", orderHandler.GetAllOrders)
	admin.Get("/orders/status/:status", orderHandler.GetOrdersByStatus)
	admin.Get("/orders/user/:userId", orderHandler.GetOrdersByUserID)
	admin.Put("/orders/:id/status", orderHandler.UpdateStatus)
	admin.Delete("/orders/:id", orderHandler.DeleteOrder)
}
