package config

import (
	"Grab-N-Go-Backend/internal/api/handlers"
	"Grab-N-Go-Backend/internal/api/routes"
	"Grab-N-Go-Backend/internal/middleware"
	"Grab-N-Go-Backend/internal/utils"
	"Grab-N-Go-Backend/internal/utils/storage"
	"Grab-N-Go-Backend/pkg/canteen"
	"Grab-N-Go-Backend/pkg/jwt"
	"Grab-N-Go-Backend/pkg/menu"
	"Grab-N-Go-Backend/pkg/order"
	"Grab-N-Go-Backend/pkg/payment"
	"Grab-N-Go-Backend/pkg/tiffin"
	"Grab-N-Go-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	canteenRepository := canteen.NewCanteenRepository(db)
	tiffinRepository := tiffin.NewTiffinRepository(db)
	menuRepository := menu.NewMenuRepository(db)
	orderRepository := order.NewOrderRepository(db)
	paymentRepository := payment.NewPaymentRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	canteenService := canteen.NewCanteenService(canteenRepository, userRepository, s3)
	tiffinService := tiffin.NewTiffinService(tiffinRepository, userRepository)
	menuService := menu.NewMenuService(menuRepository, canteenRepository, s3)
	orderService := order.NewOrderService(orderRepository, canteenRepository)
	paymentService := payment.NewPaymentService(paymentRepository, orderRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	canteenHandler := handlers.NewCanteenHandler(canteenService, validator)
	tiffinHandler := handlers.NewTiffinHandler(tiffinService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	paymentHandler := handlers.NewPaymentHandler(paymentService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		CanteenHandler: canteenHandler,
		TiffinHandler:  tiffinHandler,
		MenuHandler:    menuHandler,
		OrderHandler:   orderHandler,
		PaymentHandler: paymentHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
