package admin

import (
	"errors"
	"strings"
	"time"

	"csc-payments/app/config"
	"csc-payments/app/database"
	"csc-payments/app/models"
	"csc-payments/app/services"

	"github.com/gofiber/fiber/v2"
)

func ShowAdminLoginPage(c *fiber.Ctx) error {
	return c.Render("admin/login", fiber.Map{
		"Title": "Admin Login - CSC Payments",
	}, "")
}

func ShowAdminDashboardPage(c *fiber.Ctx) error {
	textbooks, err := database.GetAllTextbooks(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load textbooks")
	}

	return c.Render("admin/dashboard", fiber.Map{
		"Title":        "Admin Dashboard - CSC Payments",
		"Textbooks":    textbooks,
		"Transactions": services.GetTransactions(config.GetDB()),
	})
}

func ShowManualRecordsPage(c *fiber.Ctx) error {
	return c.Render("admin/manual_records", fiber.Map{
		"Title": "Manual Records - CSC Payments",
	})
}

func GetTransactionsAPI(c *fiber.Ctx) error {
	transactions := services.GetTransactions(config.GetDB())
	return c.JSON(fiber.Map{"success": true, "data": transactions})
}

// ExportTransactionsAPI streams the CSV download of every transaction.
func ExportTransactionsAPI(c *fiber.Ctx) error {
	transactions := services.GetTransactions(config.GetDB())

	data, err := services.BuildTransactionsCSV(transactions)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build CSV"})
	}

	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", `attachment; filename="payment_records.csv"`)
	return c.Send(data)
}

func DeleteTransactionAPI(c *fiber.Ctx, collection *services.CollectionService) error {
	id := c.Params("id")

	if err := collection.Delete(id); err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Transaction not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete transaction"})
	}
	return c.JSON(fiber.Map{"success": true})
}

func CollectTransactionAPI(c *fiber.Ctx, collection *services.CollectionService) error {
	type CollectRequest struct {
		CollectedBy string `json:"collected_by" form:"collectedBy"`
	}

	var req CollectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	req.CollectedBy = strings.TrimSpace(req.CollectedBy)
	if req.CollectedBy == "" {
		req.CollectedBy = "Admin"
	}

	if err := collection.MarkCollected(c.Params("id"), req.CollectedBy); err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Transaction not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update collection status"})
	}
	return c.JSON(fiber.Map{"success": true})
}

func GetManualRecordsAPI(c *fiber.Ctx) error {
	records, err := database.ListManualRecords(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch manual records"})
	}
	if records == nil {
		records = []models.ManualRecord{}
	}
	return c.JSON(fiber.Map{"success": true, "data": records})
}

// CreateManualRecordAPI inserts an admin-entered payment. The registration
// number must resolve to an existing student.
func CreateManualRecordAPI(c *fiber.Ctx, manual *services.ManualRecordService) error {
	type ManualRecordRequest struct {
		RegNumber string  `json:"reg_number" form:"regNumber"`
		ItemName  string  `json:"item_name" form:"itemName"`
		Amount    float64 `json:"amount" form:"amount"`
		Date      string  `json:"date" form:"date"` // optional, YYYY-MM-DD
	}

	var req ManualRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	var date *time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
		}
		date = &parsed
	}

	err := manual.Create(req.RegNumber, req.ItemName, req.Amount, date)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrStudentNotFound):
			return c.Status(400).JSON(fiber.Map{"error": "Student not found for the provided registration number."})
		case errors.Is(err, services.ErrInvalidItemName), errors.Is(err, services.ErrInvalidAmount):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create record"})
		}
	}
	return c.JSON(fiber.Map{"success": true})
}

func CreateTextbookAPI(c *fiber.Ctx) error {
	type TextbookRequest struct {
		Name  string  `json:"name" form:"name"`
		Price float64 `json:"price" form:"price"`
	}

	var req TextbookRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if len(req.Name) < 3 || req.Price <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Name (min 3 characters) and a positive price are required"})
	}

	if err := database.CreateTextbook(config.GetDB(), req.Name, req.Price); err != nil {
		if errors.Is(err, database.ErrDuplicateTextbook) {
			return c.Status(409).JSON(fiber.Map{"error": "A textbook with this name already exists."})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Error adding textbook"})
	}
	return c.JSON(fiber.Map{"success": true})
}

func UpdateTextbookAPI(c *fiber.Ctx) error {
	type TextbookRequest struct {
		Name  string  `json:"name" form:"name"`
		Price float64 `json:"price" form:"price"`
	}

	var req TextbookRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if len(req.Name) < 3 || req.Price <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Name (min 3 characters) and a positive price are required"})
	}

	if err := database.UpdateTextbook(config.GetDB(), c.Params("id"), req.Name, req.Price); err != nil {
		if errors.Is(err, database.ErrDuplicateTextbook) {
			return c.Status(409).JSON(fiber.Map{"error": "A textbook with this name already exists."})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Error updating textbook"})
	}
	return c.JSON(fiber.Map{"success": true})
}

func DeleteTextbookAPI(c *fiber.Ctx) error {
	if err := database.DeleteTextbook(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error deleting textbook"})
	}
	return c.JSON(fiber.Map{"success": true})
}

func GetStudentsAPI(c *fiber.Ctx) error {
	students, err := database.GetAllStudents(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}
	if students == nil {
		students = []models.Student{}
	}
	return c.JSON(fiber.Map{"success": true, "data": students})
}
