package payments

import (
	"encoding/json"
	"errors"
	"log"
	"net/url"
	"strings"

	"csc-payments/app/config"
	"csc-payments/app/database"
	"csc-payments/app/gateways"
	"csc-payments/app/models"
	"csc-payments/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

type initializeRequest struct {
	Amount    float64             `json:"amount"`
	Email     string              `json:"email"`
	Textbooks []gateways.LineItem `json:"textbooks"`
}

func dashboardRedirect(c *fiber.Ctx, state string) error {
	return c.Redirect(config.AppConfig.AppURL + "/dashboard?payment=" + state)
}

// successRedirectURL builds the success redirect with a receipt payload the
// dashboard renders client-side.
func successRedirectURL(appURL string, payment *gateways.VerifiedPayment) string {
	receipt, err := json.Marshal(fiber.Map{
		"textbooks":   payment.Textbooks,
		"amount":      payment.Amount,
		"tx_ref":      payment.Reference,
		"studentName": payment.StudentName,
	})
	if err != nil {
		return appURL + "/dashboard?payment=success"
	}
	return appURL + "/dashboard?payment=success&receipt=" + url.QueryEscape(string(receipt))
}

func successRedirect(c *fiber.Ctx, payment *gateways.VerifiedPayment) error {
	return c.Redirect(successRedirectURL(config.AppConfig.AppURL, payment))
}

// recordVerifiedPayment materializes one Record row per line item from the
// gateway-stored metadata. Nothing is written unless verification passed.
func recordVerifiedPayment(payment *gateways.VerifiedPayment, receiptPrefix string) error {
	if payment.StudentRegNumber == "" || len(payment.Textbooks) == 0 {
		return errors.New("verified payment is missing metadata")
	}

	inputs := make([]models.NewRecordInput, len(payment.Textbooks))
	for i, book := range payment.Textbooks {
		inputs[i] = models.NewRecordInput{
			StudentName: payment.StudentName,
			RegNumber:   payment.StudentRegNumber,
			ItemName:    book.Name,
			AmountPaid:  book.Price,
			ReceiptText: receiptPrefix + ": " + payment.Reference,
		}
	}
	return database.InsertRecords(config.GetDB(), inputs)
}

func PaystackInitializeAPI(c *fiber.Ctx, gw *gateways.Paystack) error {
	var req initializeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Amount <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid amount"})
	}

	student := auth.CurrentStudent(c)
	result, err := gw.Initialize(c.Context(), req.Email, req.Amount, student.RegNumber, student.Name, req.Textbooks)
	if err != nil {
		log.Printf("Paystack init error: %v", err)
		return c.Status(400).JSON(fiber.Map{"error": "Failed to initialize payment"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": result})
}

func PaystackVerifyAPI(c *fiber.Ctx, gw *gateways.Paystack) error {
	reference := c.Query("reference")
	if reference == "" {
		reference = c.Query("trxref")
	}
	if reference == "" {
		return dashboardRedirect(c, "error")
	}

	payment, err := gw.Verify(c.Context(), reference)
	if err != nil {
		if errors.Is(err, gateways.ErrVerificationFailed) {
			return dashboardRedirect(c, "failed")
		}
		log.Printf("Paystack verification error: %v", err)
		return dashboardRedirect(c, "error")
	}

	if err := recordVerifiedPayment(payment, "Paystack"); err != nil {
		log.Printf("Error saving payment records: %v", err)
		return dashboardRedirect(c, "error")
	}
	return successRedirect(c, payment)
}

func FlutterwaveInitializeAPI(c *fiber.Ctx, gw *gateways.Flutterwave) error {
	var req initializeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Amount <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid amount"})
	}

	names := make([]string, len(req.Textbooks))
	for i, book := range req.Textbooks {
		names[i] = book.Name
	}
	description := "Payment for: " + strings.Join(names, ", ")

	student := auth.CurrentStudent(c)
	result, err := gw.Initialize(c.Context(), req.Email, req.Amount, student.RegNumber, student.Name, description, req.Textbooks)
	if err != nil {
		log.Printf("Flutterwave init error: %v", err)
		return c.Status(400).JSON(fiber.Map{"error": "Failed to initialize payment"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": result})
}

func FlutterwaveVerifyAPI(c *fiber.Ctx, gw *gateways.Flutterwave) error {
	if c.Query("status") == "cancelled" {
		return dashboardRedirect(c, "cancelled")
	}

	transactionID := c.Query("transaction_id")
	if transactionID == "" || c.Query("tx_ref") == "" {
		return dashboardRedirect(c, "error")
	}

	payment, err := gw.Verify(c.Context(), transactionID)
	if err != nil {
		if errors.Is(err, gateways.ErrVerificationFailed) {
			return dashboardRedirect(c, "failed")
		}
		log.Printf("Flutterwave verification error: %v", err)
		return dashboardRedirect(c, "error")
	}

	if err := recordVerifiedPayment(payment, "Flutterwave"); err != nil {
		log.Printf("Error saving payment records: %v", err)
		return dashboardRedirect(c, "error")
	}
	return successRedirect(c, payment)
}
