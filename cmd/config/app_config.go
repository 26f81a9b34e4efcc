package config

import (
	"Pickup-Order-System/internal/api/handlers"
	"Pickup-Order-System/internal/api/routes"
	"Pickup-Order-System/internal/middleware"
	"Pickup-Order-System/internal/utils"
	"Pickup-Order-System/internal/utils/mailing"
	"Pickup-Order-System/internal/utils/storage"
	"Pickup-Order-System/pkg/category"
	"Pickup-Order-System/pkg/jwt"
	"Pickup-Order-System/pkg/notification"
	"Pickup-Order-System/pkg/order"
	"Pickup-Order-System/pkg/product"
	"Pickup-Order-System/pkg/user"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		BodyLimit:         8 * 1024 * 1024,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	logFile := utils.GetConfig("LOG_FILE")
	err := os.MkdirAll(filepath.Dir(logFile), os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		logFile,
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format:     "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.Location().String(),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        utils.GetConfigInt("RATE_LIMIT_MAX"),
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer()

	// Repository
	userRepository := user.NewUserRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	productRepository := product.NewProductRepository(db)
	orderRepository := order.NewOrderRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	categoryService := category.NewCategoryService(categoryRepository, s3)
	productService := product.NewProductService(productRepository, categoryRepository, s3)
	orderService := order.NewOrderService(
		orderRepository,
		productRepository,
		userRepository,
		mailer,
		utils.GetConfig("SHOP_NOTIFY_EMAIL"),
	)
	notificationService := notification.NewNotificationService(notificationRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		CategoryHandler:     categoryHandler,
		ProductHandler:      productHandler,
		OrderHandler:        orderHandler,
		NotificationHandler: notificationHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
