package payments

import (
	"encoding/json"
	"net/url"
	"testing"

	"csc-payments/app/gateways"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessRedirectURLCarriesReceipt(t *testing.T) {
	payment := &gateways.VerifiedPayment{
		Reference:        "PSK-2023001-1",
		StudentRegNumber: "2023001",
		StudentName:      "Ada Obi",
		Textbooks:        []gateways.LineItem{{Name: "Discrete Structures", Price: 2600}},
		Amount:           2600,
	}

	raw := successRedirectURL("https://pay.example.com", payment)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/dashboard", u.Path)

	q := u.Query()
	assert.Equal(t, "success", q.Get("payment"))

	var receipt struct {
		Textbooks   []gateways.LineItem `json:"textbooks"`
		Amount      float64             `json:"amount"`
		TxRef       string              `json:"tx_ref"`
		StudentName string              `json:"studentName"`
	}
	require.NoError(t, json.Unmarshal([]byte(q.Get("receipt")), &receipt))

	assert.Equal(t, "PSK-2023001-1", receipt.TxRef)
	assert.Equal(t, "Ada Obi", receipt.StudentName)
	assert.Equal(t, float64(2600), receipt.Amount)
	require.Len(t, receipt.Textbooks, 1)
	assert.Equal(t, "Discrete Structures", receipt.Textbooks[0].Name)
}
