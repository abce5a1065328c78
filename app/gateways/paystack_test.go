package gateways

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPaystack(t *testing.T, handler http.HandlerFunc) *Paystack {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p := NewPaystack("sk_test_xyz", "https://pay.example.com")
	p.SetBaseURL(srv.URL)
	return p
}

func TestPaystackInitialize(t *testing.T) {
	books := []LineItem{{Name: "Discrete Structures", Price: 2600}}

	gw := newTestPaystack(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_xyz", r.Header.Get("Authorization"))

		var req paystackInitRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		assert.Equal(t, int64(260000), req.Amount, "amount must be converted to kobo")
		assert.True(t, strings.HasPrefix(req.Reference, "PSK-2023001-"), "reference embeds the reg number")
		assert.Equal(t, "https://pay.example.com/api/paystack/verify", req.CallbackURL)
		assert.Equal(t, "2023001", req.Metadata.StudentRegNumber)
		assert.Len(t, req.Metadata.Textbooks, 1)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": true,
			"data": map[string]string{
				"authorization_url": "https://checkout.paystack.com/abc123",
				"reference":         req.Reference,
			},
		})
	})

	result, err := gw.Initialize(context.Background(), "", 2600, "2023001", "Ada Obi", books)
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.paystack.com/abc123", result.Link)
	assert.True(t, strings.HasPrefix(result.Reference, "PSK-2023001-"))
}

func TestPaystackInitializeRejectsInvalidAmount(t *testing.T) {
	gw := NewPaystack("sk_test_xyz", "https://pay.example.com")
	_, err := gw.Initialize(context.Background(), "", 0, "2023001", "Ada Obi", nil)
	assert.Error(t, err)
}

func TestPaystackVerifySuccess(t *testing.T) {
	gw := newTestPaystack(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/verify/PSK-2023001-1", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": true,
			"data": map[string]interface{}{
				"status":   "success",
				"currency": "NGN",
				"amount":   260000,
				"metadata": map[string]interface{}{
					"student_reg_number": "2023001",
					"student_name":       "Ada Obi",
					"textbooks":          []map[string]interface{}{{"name": "Discrete Structures", "price": 2600}},
				},
			},
		})
	})

	payment, err := gw.Verify(context.Background(), "PSK-2023001-1")
	require.NoError(t, err)
	assert.Equal(t, "2023001", payment.StudentRegNumber)
	assert.Equal(t, "Ada Obi", payment.StudentName)
	require.Len(t, payment.Textbooks, 1)
	assert.Equal(t, float64(2600), payment.Textbooks[0].Price)
	assert.Equal(t, float64(2600), payment.Amount, "kobo converted back to naira")
}

func TestPaystackVerifyWrongCurrency(t *testing.T) {
	gw := newTestPaystack(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": true,
			"data":   map[string]interface{}{"status": "success", "currency": "USD"},
		})
	})

	_, err := gw.Verify(context.Background(), "PSK-2023001-1")
	assert.ErrorIs(t, err, ErrVerificationFailed)
}

func TestPaystackVerifyFailedTransaction(t *testing.T) {
	gw := newTestPaystack(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": true,
			"data":   map[string]interface{}{"status": "abandoned", "currency": "NGN"},
		})
	})

	_, err := gw.Verify(context.Background(), "PSK-2023001-1")
	assert.ErrorIs(t, err, ErrVerificationFailed)
}

func TestPaystackVerifyEnvelopeFailure(t *testing.T) {
	gw := newTestPaystack(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"status": false, "message": "Transaction not found"})
	})

	_, err := gw.Verify(context.Background(), "PSK-unknown-1")
	assert.ErrorIs(t, err, ErrVerificationFailed)
}
