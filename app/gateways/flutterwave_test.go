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

func newTestFlutterwave(t *testing.T, handler http.HandlerFunc) *Flutterwave {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	f := NewFlutterwave("FLWSECK_TEST-xyz", "https://pay.example.com")
	f.SetBaseURL(srv.URL)
	return f
}

func TestFlutterwaveInitialize(t *testing.T) {
	books := []LineItem{{Name: "Discrete Structures", Price: 2600}}

	gw := newTestFlutterwave(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/payments", r.URL.Path)
		assert.Equal(t, "Bearer FLWSECK_TEST-xyz", r.Header.Get("Authorization"))

		var req flutterwaveInitRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		assert.True(t, strings.HasPrefix(req.TxRef, "TXB-2023001-"))
		assert.Equal(t, "2600", req.Amount)
		assert.Equal(t, "NGN", req.Currency)
		assert.Equal(t, "https://pay.example.com/api/flutterwave/verify", req.RedirectURL)
		assert.Equal(t, "2023001", req.Meta.StudentRegNumber)

		// The textbook list rides as JSON inside gateway metadata.
		var metaBooks []LineItem
		require.NoError(t, json.Unmarshal([]byte(req.Meta.Textbooks), &metaBooks))
		assert.Equal(t, books, metaBooks)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "success",
			"data":   map[string]string{"link": "https://checkout.flutterwave.com/pay/xyz"},
		})
	})

	result, err := gw.Initialize(context.Background(), "", 2600, "2023001", "Ada Obi", "Payment for: Discrete Structures", books)
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.flutterwave.com/pay/xyz", result.Link)
	assert.True(t, strings.HasPrefix(result.Reference, "TXB-2023001-"))
}

func TestFlutterwaveVerifySuccess(t *testing.T) {
	gw := newTestFlutterwave(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/transactions/873210/verify", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "success",
			"data": map[string]interface{}{
				"status":         "successful",
				"currency":       "NGN",
				"charged_amount": 2600,
				"tx_ref":         "TXB-2023001-1",
				"meta": map[string]string{
					"student_reg_number": "2023001",
					"student_name":       "Ada Obi",
					"textbooks":          `[{"name":"Discrete Structures","price":2600}]`,
				},
			},
		})
	})

	payment, err := gw.Verify(context.Background(), "873210")
	require.NoError(t, err)
	assert.Equal(t, "TXB-2023001-1", payment.Reference)
	assert.Equal(t, "2023001", payment.StudentRegNumber)
	require.Len(t, payment.Textbooks, 1)
	assert.Equal(t, "Discrete Structures", payment.Textbooks[0].Name)
	assert.Equal(t, float64(2600), payment.Amount)
}

func TestFlutterwaveVerifyNotSuccessful(t *testing.T) {
	gw := newTestFlutterwave(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "success",
			"data":   map[string]interface{}{"status": "failed", "currency": "NGN"},
		})
	})

	_, err := gw.Verify(context.Background(), "873210")
	assert.ErrorIs(t, err, ErrVerificationFailed)
}

func TestFlutterwaveVerifyWrongCurrency(t *testing.T) {
	gw := newTestFlutterwave(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "success",
			"data":   map[string]interface{}{"status": "successful", "currency": "KES"},
		})
	})

	_, err := gw.Verify(context.Background(), "873210")
	assert.ErrorIs(t, err, ErrVerificationFailed)
}

func TestFlutterwaveVerifyEnvelopeError(t *testing.T) {
	gw := newTestFlutterwave(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"status": "error", "message": "No transaction was found"})
	})

	_, err := gw.Verify(context.Background(), "999999")
	assert.ErrorIs(t, err, ErrVerificationFailed)
}
