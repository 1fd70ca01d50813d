package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/bsg-server/internal/config"
	"github.com/example/bsg-server/internal/handlers"
	"github.com/example/bsg-server/internal/middleware"
	"github.com/example/bsg-server/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	paystack := services.NewPaystackService(cfg.PaystackSecretKey)
	resend := services.NewResendService(cfg.ResendAPIKey, cfg.ResendFrom, cfg.ContactEmailTo)

	productHandler := handlers.NewProductHandler(db)
	checkoutHandler := handlers.NewCheckoutHandler(db, paystack)
	paymentHandler := handlers.NewPaymentHandler(paystack)
	contactHandler := handlers.NewContactHandler(db, resend)
	newsletterHandler := handlers.NewNewsletterHandler(db)
	authHandler := handlers.NewAuthHandler(db, cfg)
	adminProductHandler := handlers.NewAdminProductHandler(db)
	adminOrderHandler := handlers.NewAdminOrderHandler(db)
	adminHandler := handlers.NewAdminHandler(db)
	uploadHandler := handlers.NewUploadHandler(cfg.UploadDir)

	// Public storefront API
	products := app.Group("/products")
	products.Get("/", productHandler.ListProducts)
	products.Get("/featured", productHandler.ListFeatured)
	products.Get("/:id", productHandler.GetProduct)

	app.Post("/checkout", checkoutHandler.CreateOrder)
	app.Get("/payments/verify/:reference", paymentHandler.VerifyPayment)
	app.Post("/contact", contactHandler.SubmitContact)
	app.Post("/newsletter", newsletterHandler.Subscribe)

	// Admin auth
	auth := app.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.RequireAdmin(cfg), authHandler.Me)

	// Admin API, bearer-token protected
	admin := app.Group("/admin", middleware.RequireAdmin(cfg))

	adminProducts := admin.Group("/products")
	adminProducts.Get("/", adminProductHandler.ListProducts)
	adminProducts.Post("/", adminProductHandler.CreateProduct)
	adminProducts.Put("/:id", adminProductHandler.UpdateProduct)
	adminProducts.Delete("/:id", adminProductHandler.DeleteProduct)

	adminOrders := admin.Group("/orders")
	adminOrders.Get("/", adminOrderHandler.ListOrders)
	adminOrders.Get("/:id", adminOrderHandler.GetOrder)
	adminOrders.Patch("/:id", adminOrderHandler.UpdateStatus)

	adminContacts := admin.Group("/contacts")
	adminContacts.Get("/", adminHandler.ListContacts)
	adminContacts.Patch("/:id/read", adminHandler.MarkContactRead)

	admin.Get("/newsletter", adminHandler.ListNewsletter)
	admin.Post("/upload", uploadHandler.UploadImage)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
}
