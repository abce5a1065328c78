package gateways

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const paystackBaseURL = "https://api.paystack.co"

// Paystack wraps the Paystack hosted-checkout API.
type Paystack struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
	appURL     string
}

func NewPaystack(secretKey, appURL string) *Paystack {
	return &Paystack{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    paystackBaseURL,
		secretKey:  secretKey,
		appURL:     appURL,
	}
}

// SetBaseURL overrides the API endpoint, used by tests.
func (p *Paystack) SetBaseURL(u string) { p.baseURL = u }

type paystackMetadata struct {
	StudentRegNumber string     `json:"student_reg_number"`
	StudentName      string     `json:"student_name"`
	Textbooks        []LineItem `json:"textbooks"`
}

type paystackInitRequest struct {
	Email       string           `json:"email"`
	Amount      int64            `json:"amount"`
	Reference   string           `json:"reference"`
	CallbackURL string           `json:"callback_url"`
	Metadata    paystackMetadata `json:"metadata"`
}

type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Initialize creates a hosted-checkout transaction. The reference embeds the
// student's registration number and a timestamp; the textbook list rides in
// gateway metadata so Verify can rebuild the records without trusting the
// redirect request.
func (p *Paystack) Initialize(ctx context.Context, email string, amount float64, regNumber, studentName string, textbooks []LineItem) (InitializeResult, error) {
	if p.secretKey == "" {
		return InitializeResult{}, fmt.Errorf("paystack not configured: missing secret key")
	}
	if amount <= 0 {
		return InitializeResult{}, fmt.Errorf("invalid amount")
	}
	if email == "" {
		email = regNumber + "@student.com"
	}

	reference := fmt.Sprintf("PSK-%s-%d", regNumber, time.Now().UnixMilli())

	reqBody := paystackInitRequest{
		Email:       email,
		Amount:      int64(amount*100 + 0.5), // kobo
		Reference:   reference,
		CallbackURL: p.appURL + "/api/paystack/verify",
		Metadata: paystackMetadata{
			StudentRegNumber: regNumber,
			StudentName:      studentName,
			Textbooks:        textbooks,
		},
	}

	var env paystackEnvelope
	if err := p.do(ctx, http.MethodPost, "/transaction/initialize", reqBody, &env); err != nil {
		return InitializeResult{}, err
	}
	if !env.Status {
		return InitializeResult{}, fmt.Errorf("paystack initialize failed: %s", env.Message)
	}

	var data struct {
		AuthorizationURL string `json:"authorization_url"`
		Reference        string `json:"reference"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return InitializeResult{}, fmt.Errorf("invalid paystack response: %w", err)
	}
	if data.AuthorizationURL == "" {
		return InitializeResult{}, fmt.Errorf("paystack returned no checkout link")
	}
	if data.Reference == "" {
		data.Reference = reference
	}
	return InitializeResult{Link: data.AuthorizationURL, Reference: data.Reference}, nil
}

// Verify re-queries Paystack for the canonical transaction status. The
// client-echoed callback parameters are never trusted on their own.
func (p *Paystack) Verify(ctx context.Context, reference string) (*VerifiedPayment, error) {
	if reference == "" {
		return nil, fmt.Errorf("missing reference")
	}

	var env paystackEnvelope
	path := "/transaction/verify/" + url.PathEscape(reference)
	if err := p.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		gatewayVerifications.WithLabelValues("paystack", "error").Inc()
		return nil, err
	}
	if !env.Status {
		gatewayVerifications.WithLabelValues("paystack", "failed").Inc()
		return nil, ErrVerificationFailed
	}

	var data struct {
		Status   string           `json:"status"`
		Currency string           `json:"currency"`
		Amount   float64          `json:"amount"`
		Metadata paystackMetadata `json:"metadata"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		gatewayVerifications.WithLabelValues("paystack", "error").Inc()
		return nil, fmt.Errorf("invalid paystack response: %w", err)
	}

	if data.Status != "success" || data.Currency != Currency {
		gatewayVerifications.WithLabelValues("paystack", "failed").Inc()
		return nil, ErrVerificationFailed
	}

	gatewayVerifications.WithLabelValues("paystack", "success").Inc()
	return &VerifiedPayment{
		Reference:        reference,
		StudentRegNumber: data.Metadata.StudentRegNumber,
		StudentName:      data.Metadata.StudentName,
		Textbooks:        data.Metadata.Textbooks,
		Amount:           data.Amount / 100,
	}, nil
}

func (p *Paystack) do(ctx context.Context, method, path string, body, out interface{}) error {
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

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("paystack request failed: %w", err)
	}
	defer resp.Body.Close()

	return json.NewDecoder(resp.Body).Decode(out)
}
