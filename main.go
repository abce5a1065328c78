package main

import (
	"encoding/json"
	"log"

	"csc-payments/app/config"
	"csc-payments/app/database"
	"csc-payments/app/gateways"
	"csc-payments/app/routes/admin"
	"csc-payments/app/routes/auth"
	"csc-payments/app/routes/dashboard"
	"csc-payments/app/routes/payments"
	"csc-payments/app/services"
	"csc-payments/app/verifier"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// customErrorHandler handles HTTP errors with custom templates
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Check if this is an API request
	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title": "Page Not Found - CSC Payments",
		})
	case 401:
		return c.Redirect("/auth/login")
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - CSC Payments",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	cfg := config.Load()

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// External collaborators
	aiClient := verifier.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	paystack := gateways.NewPaystack(cfg.PaystackSecretKey, cfg.AppURL)
	flutterwave := gateways.NewFlutterwave(cfg.FlutterwaveSecretKey, cfg.AppURL)

	checkoutService := services.NewCheckoutService(config.GetDB(), aiClient)
	balanceService := services.NewBalanceService(config.GetDB(), aiClient)
	collectionService := services.NewCollectionService(config.GetDB())
	manualService := services.NewManualRecordService(config.GetDB())

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
		BodyLimit:         10 * 1024 * 1024, // receipt images arrive as data URIs
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	// Metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})

	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app, checkoutService, balanceService, aiClient)
	admin.SetupAdminRoutes(app, collectionService, manualService)
	payments.SetupPaymentsRoutes(app, paystack, flutterwave)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	// Start server
	log.Println("Server starting on :" + cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
