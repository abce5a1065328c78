package dashboard

import (
	"csc-payments/app/routes/auth"
	"csc-payments/app/services"
	"csc-payments/app/verifier"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes wires the student-facing pages and APIs.
func SetupDashboardRoutes(app *fiber.App, checkout *services.CheckoutService, balance *services.BalanceService, ai *verifier.Client) {
	dash := app.Group("/dashboard")
	dash.Use(auth.StudentAuthMiddleware)
	dash.Get("/", ShowDashboardPage)
	dash.Get("/pay-balance", ShowBalancePage)

	api := app.Group("/api")
	api.Get("/textbooks", auth.StudentAuthMiddleware, GetTextbooksAPI)
	api.Get("/transactions/me", auth.StudentAuthMiddleware, MyTransactionsAPI)
	api.Post("/checkout", auth.StudentAuthMiddleware, func(c *fiber.Ctx) error {
		return CheckoutAPI(c, checkout)
	})
	api.Post("/balance/submit", auth.StudentAuthMiddleware, func(c *fiber.Ctx) error {
		return BalanceSubmitAPI(c, balance)
	})
	api.Get("/demotivational-quote", func(c *fiber.Ctx) error {
		return QuoteAPI(c, ai)
	})
}
