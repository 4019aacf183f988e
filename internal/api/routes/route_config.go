package routes

import (
	"Grab-N-Go-Backend/domain"
	"Grab-N-Go-Backend/internal/api/handlers"
	"Grab-N-Go-Backend/internal/middleware"
	"Grab-N-Go-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	CanteenHandler handlers.CanteenHandler
	TiffinHandler  handlers.TiffinHandler
	MenuHandler    handlers.MenuHandler
	OrderHandler   handlers.OrderHandler
	PaymentHandler handlers.PaymentHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Canteens()
	c.Tiffins()
	c.Menus()
	c.Orders()
	c.Payments()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

// Canteen and tiffin reads are public; everything that writes or exposes
// owner data carries the auth middleware per route.
func (c *Config) Canteens() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	ownerOnly := c.Middleware.OnlyRoles(domain.RoleOwner)
	studentOnly := c.Middleware.OnlyRoles(domain.RoleStudent)

	canteens := c.App.Group("/api/v1/canteens")
	{
		canteens.Post("", auth, ownerOnly, c.CanteenHandler.CreateCanteen)
		canteens.Get("", c.CanteenHandler.GetAllCanteens)
		canteens.Get("/mine", auth, ownerOnly, c.CanteenHandler.GetMyCanteens)
		canteens.Get("/requests", auth, ownerOnly, c.CanteenHandler.GetRequestsForOwner)
		canteens.Get("/:canteenId", c.CanteenHandler.GetCanteenByID)
		canteens.Patch("/:canteenId", auth, ownerOnly, c.CanteenHandler.UpdateCanteen)
		canteens.Delete("/:canteenId", auth, ownerOnly, c.CanteenHandler.DeleteCanteen)

		canteens.Post("/:canteenId/requests", auth, studentOnly, c.CanteenHandler.SubmitRequest)
		canteens.Patch("/:canteenId/requests/:userId", auth, ownerOnly, c.CanteenHandler.UpdateRequestStatus)
	}
}

func (c *Config) Tiffins() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	ownerOnly := c.Middleware.OnlyRoles(domain.RoleOwner)
	studentOnly := c.Middleware.OnlyRoles(domain.RoleStudent)

	tiffins := c.App.Group("/api/v1/tiffins")
	{
		tiffins.Post("", auth, ownerOnly, c.TiffinHandler.CreateTiffin)
		tiffins.Get("", c.TiffinHandler.GetAllTiffins)
		tiffins.Get("/mine", auth, ownerOnly, c.TiffinHandler.GetMyTiffins)
		tiffins.Get("/:tiffinId", c.TiffinHandler.GetTiffinByID)
		tiffins.Patch("/:tiffinId", auth, ownerOnly, c.TiffinHandler.UpdateTiffin)
		tiffins.Delete("/:tiffinId", auth, ownerOnly, c.TiffinHandler.DeleteTiffin)

		tiffins.Post("/:tiffinId/requests", auth, studentOnly, c.TiffinHandler.RequestMess)
		tiffins.Get("/:tiffinId/requests", auth, ownerOnly, c.TiffinHandler.GetRequests)
		tiffins.Patch("/:tiffinId/requests/:userId", auth, ownerOnly, c.TiffinHandler.UpdateRequestStatus)
		tiffins.Get("/:tiffinId/subscribers", auth, ownerOnly, c.TiffinHandler.GetSubscribers)
		tiffins.Post("/:tiffinId/daily-status", auth, studentOnly, c.TiffinHandler.MarkDailyStatus)
	}
}

func (c *Config) Menus() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	ownerOnly := c.Middleware.OnlyRoles(domain.RoleOwner)

	menus := c.App.Group("/api/v1/canteen-menus")
	{
		menus.Get("/:canteenId", c.MenuHandler.GetMenu)
		menus.Post("/:canteenId/items", auth, ownerOnly, c.MenuHandler.AddItem)
		menus.Patch("/:canteenId/items/:itemId", auth, ownerOnly, c.MenuHandler.UpdateItem)
		menus.Delete("/:canteenId/items/:itemId", auth, ownerOnly, c.MenuHandler.DeleteItem)
	}
}

func (c *Config) Orders() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	ownerOnly := c.Middleware.OnlyRoles(domain.RoleOwner)
	studentOnly := c.Middleware.OnlyRoles(domain.RoleStudent)

	orders := c.App.Group("/api/v1/orders", auth)
	{
		orders.Post("", studentOnly, c.OrderHandler.CreateOrder)
		orders.Get("", c.OrderHandler.GetUserOrders)
		orders.Get("/canteen/:canteenId", ownerOnly, c.OrderHandler.GetCanteenOrders)
		orders.Patch("/:orderId/status", ownerOnly, c.OrderHandler.UpdateOrderStatus)
	}
}

func (c *Config) Payments() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	payments := c.App.Group("/api/v1/payments", auth)
	{
		payments.Post("/checkout", c.PaymentHandler.Checkout)
		payments.Get("/order/:orderId", c.PaymentHandler.GetPaymentByOrder)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.PaymentHandler.HandleNotification)
}
