package payments

import (
	"csc-payments/app/gateways"
	"csc-payments/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentsRoutes wires the gateway bridge endpoints. Initialize
// requires a student session; verify endpoints are hit by the gateway
// redirect and authenticate via server-side re-query instead.
func SetupPaymentsRoutes(app *fiber.App, paystack *gateways.Paystack, flutterwave *gateways.Flutterwave) {
	app.Post("/api/paystack/initialize", auth.StudentAuthMiddleware, func(c *fiber.Ctx) error {
		return PaystackInitializeAPI(c, paystack)
	})
	app.Get("/api/paystack/verify", func(c *fiber.Ctx) error {
		return PaystackVerifyAPI(c, paystack)
	})

	app.Post("/api/flutterwave/initialize", auth.StudentAuthMiddleware, func(c *fiber.Ctx) error {
		return FlutterwaveInitializeAPI(c, flutterwave)
	})
	app.Get("/api/flutterwave/verify", func(c *fiber.Ctx) error {
		return FlutterwaveVerifyAPI(c, flutterwave)
	})
}
