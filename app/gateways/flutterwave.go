package gateways

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const flutterwaveBaseURL = "https://api.flutterwave.com"

// Flutterwave wraps the Flutterwave v3 hosted-payments API.
type Flutterwave struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
	appURL     string
}

func NewFlutterwave(secretKey, appURL string) *Flutterwave {
	return &Flutterwave{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    flutterwaveBaseURL,
		secretKey:  secretKey,
		appURL:     appURL,
	}
}

// SetBaseURL overrides the API endpoint, used by tests.
func (f *Flutterwave) SetBaseURL(u string) { f.baseURL = u }

type flutterwaveMeta struct {
	StudentRegNumber string `json:"student_reg_number"`
	StudentName      string `json:"student_name"`
	// Flutterwave meta values must be scalar, so the list is JSON-encoded.
	Textbooks string `json:"textbooks"`
}

type flutterwaveInitRequest struct {
	TxRef          string `json:"tx_ref"`
	Amount         string `json:"amount"`
	Currency       string `json:"currency"`
	RedirectURL    string `json:"redirect_url"`
	PaymentOptions string `json:"payment_options"`
	Customer       struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"customer"`
	Customizations struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"customizations"`
	Meta flutterwaveMeta `json:"meta"`
}

type flutterwaveEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Initialize creates a hosted payment and returns the checkout link.
func (f *Flutterwave) Initialize(ctx context.Context, email string, amount float64, regNumber, studentName, description string, textbooks []LineItem) (InitializeResult, error) {
	if f.secretKey == "" {
		return InitializeResult{}, fmt.Errorf("flutterwave not configured: missing secret key")
	}
	if amount <= 0 {
		return InitializeResult{}, fmt.Errorf("invalid amount")
	}
	if email == "" {
		email = regNumber + "@student.com"
	}

	booksJSON, err := json.Marshal(textbooks)
	if err != nil {
		return InitializeResult{}, err
	}

	txRef := fmt.Sprintf("TXB-%s-%d", regNumber, time.Now().UnixMilli())

	req := flutterwaveInitRequest{
		TxRef:          txRef,
		Amount:         strconv.FormatFloat(amount, 'f', -1, 64),
		Currency:       Currency,
		RedirectURL:    f.appURL + "/api/flutterwave/verify",
		PaymentOptions: "card,banktransfer,ussd,account",
		Meta: flutterwaveMeta{
			StudentRegNumber: regNumber,
			StudentName:      studentName,
			Textbooks:        string(booksJSON),
		},
	}
	req.Customer.Email = email
	req.Customer.Name = studentName
	req.Customizations.Title = "CSC Payments"
	req.Customizations.Description = description

	var env flutterwaveEnvelope
	if err := f.do(ctx, http.MethodPost, "/v3/payments", req, &env); err != nil {
		return InitializeResult{}, err
	}
	if env.Status != "success" {
		return InitializeResult{}, fmt.Errorf("flutterwave initialize failed: %s", env.Message)
	}

	var data struct {
		Link string `json:"link"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return InitializeResult{}, fmt.Errorf("invalid flutterwave response: %w", err)
	}
	if data.Link == "" {
		return InitializeResult{}, fmt.Errorf("flutterwave returned no checkout link")
	}
	return InitializeResult{Link: data.Link, Reference: txRef}, nil
}

// Verify re-queries Flutterwave for the canonical transaction status using
// the gateway-issued transaction id.
func (f *Flutterwave) Verify(ctx context.Context, transactionID string) (*VerifiedPayment, error) {
	if transactionID == "" {
		return nil, fmt.Errorf("missing transaction id")
	}

	var env flutterwaveEnvelope
	path := "/v3/transactions/" + url.PathEscape(transactionID) + "/verify"
	if err := f.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		gatewayVerifications.WithLabelValues("flutterwave", "error").Inc()
		return nil, err
	}
	if env.Status != "success" {
		gatewayVerifications.WithLabelValues("flutterwave", "failed").Inc()
		return nil, ErrVerificationFailed
	}

	var data struct {
		Status        string          `json:"status"`
		Currency      string          `json:"currency"`
		ChargedAmount float64         `json:"charged_amount"`
		TxRef         string          `json:"tx_ref"`
		Meta          flutterwaveMeta `json:"meta"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		gatewayVerifications.WithLabelValues("flutterwave", "error").Inc()
		return nil, fmt.Errorf("invalid flutterwave response: %w", err)
	}

	if data.Status != "successful" || data.Currency != Currency {
		gatewayVerifications.WithLabelValues("flutterwave", "failed").Inc()
		return nil, ErrVerificationFailed
	}

	var textbooks []LineItem
	if data.Meta.Textbooks != "" {
		if err := json.Unmarshal([]byte(data.Meta.Textbooks), &textbooks); err != nil {
			gatewayVerifications.WithLabelValues("flutterwave", "error").Inc()
			return nil, fmt.Errorf("invalid textbooks metadata: %w", err)
		}
	}

	gatewayVerifications.WithLabelValues("flutterwave", "success").Inc()
	return &VerifiedPayment{
		Reference:        data.TxRef,
		StudentRegNumber: data.Meta.StudentRegNumber,
		StudentName:      data.Meta.StudentName,
		Textbooks:        textbooks,
		Amount:           data.ChargedAmount,
	}, nil
}

func (f *Flutterwave) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, f.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+f.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("flutterwave request failed: %w", err)
	}
	defer resp.Body.Close()

	return json.NewDecoder(resp.Body).Decode(out)
}
