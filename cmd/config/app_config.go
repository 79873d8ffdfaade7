package config

import (
	"context"
	"os"
	"time"

	"expiry-tracker/internal/api/handlers"
	"expiry-tracker/internal/api/routes"
	"expiry-tracker/internal/middleware"
	"expiry-tracker/internal/utils"
	"expiry-tracker/internal/utils/storage"
	"expiry-tracker/pkg/dish"
	"expiry-tracker/pkg/imaging"
	"expiry-tracker/pkg/product"
	"expiry-tracker/pkg/scan"
	"expiry-tracker/pkg/user"

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
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// local image storage
	images := storage.NewLocalImageStore(utils.GetConfig("IMAGE_DIR"))
	if err := images.EnsureDir(); err != nil {
		log.Fatalf("error creating image directory: %v", err)
	}

	// Repository
	productRepository := product.NewProductRepository(db)
	userRepository := user.NewUserRepository(db)

	ctx := context.Background()
	if err := productRepository.EnsureSchema(ctx); err != nil {
		log.Fatalf("error migrating product table: %v", err)
	}
	if err := userRepository.EnsureSchema(ctx, true); err != nil {
		log.Fatalf("error migrating users table: %v", err)
	}

	// Service
	aiServerURL := utils.GetConfig("AI_SERVER_URL")
	normalizer := imaging.NewNormalizer(imaging.DefaultTarget)
	detectionClient := scan.NewDetectionClient(aiServerURL)
	dishClient := dish.NewDishClient(aiServerURL, validator)

	productService := product.NewProductService(productRepository, images)
	userService := user.NewUserService(userRepository)
	scanService := scan.NewScanService(detectionClient, normalizer)
	dishService := dish.NewDishService(dishClient, productRepository)

	// Handler
	productHandler := handlers.NewProductHandler(productService, validator)
	userHandler := handlers.NewUserHandler(userService, validator)
	scanHandler := handlers.NewScanHandler(scanService)
	dishHandler := handlers.NewDishHandler(dishService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		ProductHandler: productHandler,
		UserHandler:    userHandler,
		ScanHandler:    scanHandler,
		DishHandler:    dishHandler,
		Middleware:     middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
