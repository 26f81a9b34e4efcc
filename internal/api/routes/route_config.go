package routes

import (
	"Pickup-Order-System/domain"
	"Pickup-Order-System/internal/api/handlers"
	"Pickup-Order-System/internal/api/presenters"
	"Pickup-Order-System/internal/middleware"
	"Pickup-Order-System/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	CategoryHandler     handlers.CategoryHandler
	ProductHandler      handlers.ProductHandler
	OrderHandler        handlers.OrderHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Catalog()
	c.Orders()
	c.Notifications()
	c.GuestRoute()
	c.NotFound()
}

func (c *Config) auth() fiber.Handler {
	return c.Middleware.AuthMiddleware(c.JWTService)
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.auth(), c.UserHandler.Me)
		user.Patch("/profile", c.auth(), c.UserHandler.UpdateProfile)
		user.Patch("/password", c.auth(), c.UserHandler.UpdatePassword)
		user.Post("/admin", c.auth(), c.Middleware.AdminOnly(), c.UserHandler.CreateAdmin)
	}
}

func (c *Config) Catalog() {
	categories := c.App.Group("/api/v1/categories")
	categories.Get("", c.CategoryHandler.GetCategories)
	categories.Get("/:id", c.CategoryHandler.GetCategory)
	categories.Post("", c.auth(), c.Middleware.AdminOnly(), c.CategoryHandler.CreateCategory)
	categories.Put("/:id", c.auth(), c.Middleware.AdminOnly(), c.CategoryHandler.UpdateCategory)
	categories.Delete("/:id", c.auth(), c.Middleware.AdminOnly(), c.CategoryHandler.DeleteCategory)

	products := c.App.Group("/api/v1/products")
	products.Get("", c.ProductHandler.GetProducts)
	products.Get("/:id", c.ProductHandler.GetProduct)
	products.Post("", c.auth(), c.Middleware.AdminOnly(), c.ProductHandler.CreateProduct)
	products.Put("/:id", c.auth(), c.Middleware.AdminOnly(), c.ProductHandler.UpdateProduct)
	products.Delete("/:id", c.auth(), c.Middleware.AdminOnly(), c.ProductHandler.DeleteProduct)
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/v1/orders", c.auth())
	orders.Post("", c.OrderHandler.CreateOrder)
	orders.Get("/mine", c.OrderHandler.GetMyOrders)

	// admin
	orders.Get("/admin", c.Middleware.AdminOnly(), c.OrderHandler.GetAllOrders)
	orders.Get("/admin/stats", c.Middleware.AdminOnly(), c.OrderHandler.GetOrderStats)
	orders.Patch("/:id/status", c.Middleware.AdminOnly(), c.OrderHandler.UpdateOrderStatus)

	orders.Get("/:id", c.OrderHandler.GetOrder)
	orders.Patch("/:id/cancel", c.OrderHandler.CancelOrder)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.auth())
	notifications.Get("", c.NotificationHandler.GetMyNotifications)
	notifications.Get("/unread-count", c.NotificationHandler.GetUnreadCount)
	notifications.Patch("/read-all", c.NotificationHandler.MarkAllAsRead)
	notifications.Patch("/:id/read", c.NotificationHandler.MarkAsRead)
	notifications.Delete("/:id", c.NotificationHandler.DeleteNotification)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) NotFound() {
	c.App.Use(func(c *fiber.Ctx) error {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageRouteNotFound, fiber.ErrNotFound)
	})
}
