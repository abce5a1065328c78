package verifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

var (
	verificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "receipt_verifications_total",
		Help: "Receipt verification decisions by flow and outcome.",
	}, []string{"flow", "outcome"})
	verificationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "receipt_verification_duration_seconds",
		Help:    "Duration of model verification calls.",
		Buckets: prometheus.DefBuckets,
	}, []string{"flow"})
)

// Client talks to the Gemini generateContent API. One-shot requests only:
// no retry, no caching.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

var _ Verifier = (*Client)(nil)

func NewClient(apiKey, model string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		model:      model,
	}
}

// SetBaseURL overrides the API endpoint, used by tests.
func (c *Client) SetBaseURL(u string) { c.baseURL = u }

type generatePart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateRequest struct {
	Contents []struct {
		Parts []generatePart `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		ResponseMimeType string          `json:"response_mime_type"`
		ResponseSchema   json.RawMessage `json:"response_schema,omitempty"`
	} `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

var decisionSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"isApproved": {"type": "BOOLEAN"},
		"reason": {"type": "STRING"}
	},
	"required": ["isApproved", "reason"]
}`)

// Verify sends the receipt image and the generated rule prompt to the model
// and decodes its constrained JSON decision.
func (c *Client) Verify(ctx context.Context, receiptDataURI string, rules Rules) (Decision, error) {
	timer := prometheus.NewTimer(verificationDuration.WithLabelValues(rules.Flow))
	defer timer.ObserveDuration()

	mimeType, data, err := parseDataURI(receiptDataURI)
	if err != nil {
		return Decision{}, err
	}

	parts := []generatePart{
		{Text: BuildPrompt(rules)},
		{InlineData: &inlineData{MimeType: mimeType, Data: data}},
	}

	raw, err := c.generate(ctx, parts, decisionSchema)
	if err != nil {
		verificationsTotal.WithLabelValues(rules.Flow, "error").Inc()
		return Decision{}, err
	}

	var decision Decision
	if err := json.Unmarshal([]byte(raw), &decision); err != nil {
		verificationsTotal.WithLabelValues(rules.Flow, "error").Inc()
		return Decision{}, fmt.Errorf("invalid decision payload: %w", err)
	}

	outcome := "rejected"
	if decision.IsApproved {
		outcome = "approved"
	}
	verificationsTotal.WithLabelValues(rules.Flow, outcome).Inc()
	return decision, nil
}

var quoteSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {"quote": {"type": "STRING"}},
	"required": ["quote"]
}`)

const quotePrompt = `You are a witty, sarcastic copywriter. Write one short, biting, demotivational one-liner suggesting the user should quit school.

Rules:
- Tone: playful, sarcastic, dry; avoid profanity and hate.
- Audience: general; keep it safe and non-targeted.
- No emojis, no hashtags, no quotes, no newlines.
- 15 to 25 words.

Return JSON with field 'quote'.`

// GenerateQuote returns a short demotivational one-liner for the dashboard
// timer widget.
func (c *Client) GenerateQuote(ctx context.Context) (string, error) {
	raw, err := c.generate(ctx, []generatePart{{Text: quotePrompt}}, quoteSchema)
	if err != nil {
		return "", err
	}

	var out struct {
		Quote string `json:"quote"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return "", fmt.Errorf("invalid quote payload: %w", err)
	}
	return out.Quote, nil
}

func (c *Client) generate(ctx context.Context, parts []generatePart, schema json.RawMessage) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("verifier not configured: missing API key")
	}

	var req generateRequest
	req.Contents = make([]struct {
		Parts []generatePart `json:"parts"`
	}, 1)
	req.Contents[0].Parts = parts
	req.GenerationConfig.ResponseMimeType = "application/json"
	req.GenerationConfig.ResponseSchema = schema

	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var out generateResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("invalid model response: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("model error %d: %s", out.Error.Code, out.Error.Message)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model returned no candidates")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// parseDataURI splits a "data:<mime>;base64,<data>" URI into its mime type
// and base64 payload.
func parseDataURI(uri string) (mimeType, data string, err error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", "", fmt.Errorf("receipt must be a data URI")
	}
	rest := strings.TrimPrefix(uri, "data:")
	meta, data, ok := strings.Cut(rest, ",")
	if !ok {
		return "", "", fmt.Errorf("malformed data URI")
	}
	mimeType = strings.TrimSuffix(meta, ";base64")
	if mimeType == meta {
		return "", "", fmt.Errorf("receipt data URI must be base64 encoded")
	}
	if mimeType == "" {
		mimeType = "image/png"
	}
	return mimeType, data, nil
}
