package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/pocketangadi/storefront/internal/cart"
	"github.com/pocketangadi/storefront/internal/catalog"
	"github.com/pocketangadi/storefront/internal/config"
	"github.com/pocketangadi/storefront/internal/handlers"
	"github.com/pocketangadi/storefront/internal/orders"
	"github.com/pocketangadi/storefront/internal/repository"
	"github.com/pocketangadi/storefront/internal/website"
)

func main() {
	app := &cli.App{
		Name:  "storefront",
		Usage: "PocketAngadi storefront engine",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the storefront API",
				Action: serve,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("storefront exited")
	}
}

func serve(*cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	store, cleanup, err := buildProductStore(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	cat, err := catalog.NewService(store, log)
	if err != nil {
		return err
	}
	defer cat.Close()

	cartLedger := cart.NewLedger(log)
	websites := website.NewRegistry(log)
	orderLedger := orders.NewLedger(cat, log)

	cartHandler := handlers.NewCartHandler(cartLedger, cat, websites)
	orderHandler := handlers.NewOrderHandler(orderLedger, cartLedger, websites, cfg.ShippingRate, cfg.TaxRate)
	productHandler := handlers.NewProductHandler(cat)
	websiteHandler := handlers.NewWebsiteHandler(websites)

	app := setupFiberApp(log)
	setupRoutes(app, cartHandler, orderHandler, productHandler, websiteHandler)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("storefront shutting down")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("shutdown error")
		}
	}()

	log.WithField("port", cfg.Port).Info("storefront listening")
	return app.Listen(":" + cfg.Port)
}

func buildProductStore(cfg config.Config, log *logrus.Logger) (catalog.ProductStore, func(), error) {
	switch cfg.StorageBackend {
	case "postgres":
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, err
		}
		store := repository.NewPostgresStore(db)
		if err := store.EnsureSchema(context.Background()); err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Info("using postgres product store")
		return store, func() { db.Close() }, nil
	default:
		log.WithField("dir", cfg.DataDir).Info("using file product store")
		return repository.NewFileStore(cfg.DataDir), func() {}, nil
	}
}

func setupFiberApp(log *logrus.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "PocketAngadi Storefront v1.0",
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${method} ${path} - ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-Request-ID",
	}))

	return app
}

func setupRoutes(app *fiber.App, cartH *handlers.CartHandler, orderH *handlers.OrderHandler, productH *handlers.ProductHandler, websiteH *handlers.WebsiteHandler) {
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"service": "storefront", "status": "healthy"})
	})

	api.Post("/context/resolve", cartH.ResolveContext)

	api.Post("/cart/items", cartH.AddItem)
	api.Get("/cart", cartH.ViewCart)
	api.Patch("/cart/items/:product_id", cartH.UpdateItem)
	api.Delete("/cart/items/:product_id", cartH.RemoveItem)
	api.Delete("/cart", cartH.ClearCart)

	api.Post("/checkout", orderH.Checkout)
	api.Get("/orders", orderH.ListOrders)
	api.Get("/orders/:id", orderH.GetOrder)
	api.Patch("/orders/:id/status", orderH.UpdateStatus)

	api.Get("/products", productH.ListProducts)
	api.Get("/products/:id", productH.GetProduct)
	api.Post("/products", productH.CreateProduct)
	api.Put("/products/:id", productH.UpdateProduct)
	api.Delete("/products/:id", productH.DeleteProduct)
	api.Get("/categories", productH.ListCategories)

	api.Post("/websites", websiteH.CreateWebsite)
	api.Get("/websites", websiteH.ListWebsites)
	api.Get("/websites/current", websiteH.CurrentWebsite)
	api.Put("/websites/:id/content", websiteH.UpdateContent)
	api.Post("/websites/:id/activate", websiteH.ActivateWebsite)
	api.Delete("/websites/:id", websiteH.DeleteWebsite)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Route not found",
		})
	})
}
