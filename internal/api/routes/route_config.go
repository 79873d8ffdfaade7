package routes

import (
	"expiry-tracker/internal/api/handlers"
	"expiry-tracker/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	ProductHandler handlers.ProductHandler
	UserHandler    handlers.UserHandler
	ScanHandler    handlers.ScanHandler
	DishHandler    handlers.DishHandler
	Middleware     middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Products()
	c.Users()
	c.Scan()
	c.Dishes()
	c.GuestRoute()
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products")
	{
		products.Post("/", c.ProductHandler.RegisterProducts)
		products.Get("/", c.ProductHandler.GetProducts)
		products.Delete("/:id", c.ProductHandler.DeleteProduct)
		products.Get("/:id/image", c.ProductHandler.GetProductImage)
	}
}

func (c *Config) Users() {
	users := c.App.Group("/api/v1/users")
	{
		users.Get("/", c.UserHandler.GetUsers)
		users.Post("/", c.UserHandler.RegisterUser)
		users.Delete("/:name", c.UserHandler.DeleteUser)
	}
}

func (c *Config) Scan() {
	scan := c.App.Group("/api/v1/scan")
	{
		scan.Post("/", c.ScanHandler.ScanImage)
		scan.Post("/normalize", c.ScanHandler.NormalizeImage)
	}
}

func (c *Config) Dishes() {
	dishes := c.App.Group("/api/v1/dishes")
	{
		dishes.Post("/propose", c.DishHandler.ProposeDishes)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
