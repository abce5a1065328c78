package verifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testReceipt = "data:image/png;base64,aGVsbG8="

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key", "gemini-2.0-flash")
	c.SetBaseURL(srv.URL)
	return c
}

func geminiReply(t *testing.T, w http.ResponseWriter, text string) {
	t.Helper()
	resp := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]string{{"text": text}},
			}},
		},
	}
	require.NoError(t, json.NewEncoder(w).Encode(resp))
}

func TestVerifyDecodesDecision(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		// The request must carry both the generated prompt and the image.
		raw, err := json.Marshal(req)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "Moniepoint")
		assert.Contains(t, string(raw), "aGVsbG8=")

		geminiReply(t, w, `{"isApproved": true, "reason": "All checks passed."}`)
	})

	rules := TextbookRules(decimal.NewFromInt(2600), "Discrete Structures")
	decision, err := client.Verify(context.Background(), testReceipt, rules)
	require.NoError(t, err)
	assert.True(t, decision.IsApproved)
	assert.Equal(t, "All checks passed.", decision.Reason)
}

func TestVerifyReturnsRejection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		geminiReply(t, w, `{"isApproved": false, "reason": "The bank name is not Moniepoint."}`)
	})

	decision, err := client.Verify(context.Background(), testReceipt, BalanceRules())
	require.NoError(t, err)
	assert.False(t, decision.IsApproved)
	assert.Contains(t, decision.Reason, "bank name")
}

func TestVerifyModelError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": {"code": 429, "message": "quota exceeded"}}`))
	})

	_, err := client.Verify(context.Background(), testReceipt, BalanceRules())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestVerifyRequiresAPIKey(t *testing.T) {
	client := NewClient("", "gemini-2.0-flash")
	_, err := client.Verify(context.Background(), testReceipt, BalanceRules())
	assert.Error(t, err)
}

func TestGenerateQuote(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		geminiReply(t, w, `{"quote": "Quitting now saves you four years of pretending to understand pointers."}`)
	})

	quote, err := client.GenerateQuote(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, quote)
}

func TestParseDataURI(t *testing.T) {
	mime, data, err := parseDataURI("data:image/jpeg;base64,Zm9v")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mime)
	assert.Equal(t, "Zm9v", data)

	_, _, err = parseDataURI("https://example.com/receipt.png")
	assert.Error(t, err, "non data URIs must be rejected")

	_, _, err = parseDataURI("data:image/png,plain")
	assert.Error(t, err, "non base64 data URIs must be rejected")
}
