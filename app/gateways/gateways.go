package gateways

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Currency is the only currency accepted from either gateway.
const Currency = "NGN"

// ErrVerificationFailed indicates the gateway reported the payment as not
// successful (or in the wrong currency). No record may be written for it.
var ErrVerificationFailed = errors.New("payment did not verify as successful")

var gatewayVerifications = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gateway_verifications_total",
	Help: "Server-side gateway verification results.",
}, []string{"gateway", "result"})

// LineItem is one textbook in a gateway checkout. It round-trips through
// gateway metadata so the verify callback never trusts client-side values.
type LineItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// InitializeResult carries the hosted-checkout link the browser is sent to.
type InitializeResult struct {
	Link      string `json:"link"`
	Reference string `json:"reference"`
}

// VerifiedPayment is the canonical result of a server-side verification
// query, built entirely from gateway-stored metadata.
type VerifiedPayment struct {
	Reference        string
	StudentRegNumber string
	StudentName      string
	Textbooks        []LineItem
	Amount           float64
}
