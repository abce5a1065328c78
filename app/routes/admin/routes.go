package admin

import (
	"csc-payments/app/routes/auth"
	"csc-payments/app/services"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes wires the admin pages and APIs.
func SetupAdminRoutes(app *fiber.App, collection *services.CollectionService, manual *services.ManualRecordService) {
	app.Get("/admin", ShowAdminLoginPage)

	adminPages := app.Group("/admin")
	adminPages.Get("/dashboard", auth.AdminAuthMiddleware, ShowAdminDashboardPage)
	adminPages.Get("/manual-records", auth.AdminAuthMiddleware, ShowManualRecordsPage)

	api := app.Group("/api/admin")
	api.Use(auth.AdminAuthMiddleware)

	api.Get("/transactions", GetTransactionsAPI)
	api.Get("/transactions/export", ExportTransactionsAPI)
	api.Delete("/transactions/:id", func(c *fiber.Ctx) error {
		return DeleteTransactionAPI(c, collection)
	})
	api.Post("/transactions/:id/collect", func(c *fiber.Ctx) error {
		return CollectTransactionAPI(c, collection)
	})

	api.Get("/manual-records", GetManualRecordsAPI)
	api.Post("/manual-records", func(c *fiber.Ctx) error {
		return CreateManualRecordAPI(c, manual)
	})

	api.Post("/textbooks", CreateTextbookAPI)
	api.Put("/textbooks/:id", UpdateTextbookAPI)
	api.Delete("/textbooks/:id", DeleteTextbookAPI)

	api.Get("/students", GetStudentsAPI)
}
