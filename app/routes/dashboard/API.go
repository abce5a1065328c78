package dashboard

import (
	"csc-payments/app/config"
	"csc-payments/app/database"
	"csc-payments/app/models"
	"csc-payments/app/routes/auth"
	"csc-payments/app/services"
	"csc-payments/app/verifier"

	"github.com/gofiber/fiber/v2"
)

func ShowDashboardPage(c *fiber.Ctx) error {
	student := auth.CurrentStudent(c)

	textbooks, err := database.GetAllTextbooks(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load textbooks")
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":     "Dashboard - CSC Payments",
		"Student":   student,
		"Textbooks": textbooks,
	})
}

func ShowBalancePage(c *fiber.Ctx) error {
	return c.Render("dashboard/balance", fiber.Map{
		"Title":   "Pay Balance - CSC Payments",
		"Student": auth.CurrentStudent(c),
	})
}

func GetTextbooksAPI(c *fiber.Ctx) error {
	textbooks, err := database.GetAllTextbooks(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch textbooks"})
	}
	if textbooks == nil {
		textbooks = []models.Textbook{}
	}
	return c.JSON(fiber.Map{"success": true, "data": textbooks})
}

func MyTransactionsAPI(c *fiber.Ctx) error {
	student := auth.CurrentStudent(c)
	transactions := services.GetStudentTransactions(config.GetDB(), student.RegNumber)
	return c.JSON(fiber.Map{"success": true, "data": transactions})
}

// CheckoutAPI runs the receipt verification flow for a cart of textbooks.
// A rejection is a normal response, not an HTTP error.
func CheckoutAPI(c *fiber.Ctx, svc *services.CheckoutService) error {
	type CheckoutRequest struct {
		Cart           []models.Textbook `json:"cart"`
		ReceiptDataURI string            `json:"receipt_data_uri"`
	}

	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	student := auth.CurrentStudent(c)
	result := svc.VerifyAndRecord(c.Context(), *student, req.Cart, req.ReceiptDataURI)
	return c.JSON(result)
}

// BalanceSubmitAPI runs the fixed-amount balance verification flow.
func BalanceSubmitAPI(c *fiber.Ctx, svc *services.BalanceService) error {
	type BalanceRequest struct {
		ReceiptDataURI string `json:"receipt_data_uri"`
	}

	var req BalanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.ReceiptDataURI == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Missing receipt image"})
	}

	student := auth.CurrentStudent(c)
	result := svc.Submit(c.Context(), *student, req.ReceiptDataURI)
	return c.JSON(result)
}

// QuoteAPI returns a generated one-liner for the dashboard timer widget.
func QuoteAPI(c *fiber.Ctx, ai *verifier.Client) error {
	quote, err := ai.GenerateQuote(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate quote"})
	}
	return c.JSON(fiber.Map{"quote": quote})
}
