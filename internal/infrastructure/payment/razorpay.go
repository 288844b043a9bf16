// Package payment integrates the Razorpay gateway.
package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/shopspring/decimal"

	"github.com/menuqr-inc/menuqr/internal/infrastructure/config"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
)

// Order is the provider order handle returned to the client so it can open
// the checkout widget.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

type RazorpayGateway struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
	logger    logger.Interface
}

// NewRazorpayGateway builds the gateway. With empty credentials the gateway
// stays disabled: the server runs, payment endpoints report unavailable.
func NewRazorpayGateway(cfg config.RazorpayConfig, log logger.Interface) *RazorpayGateway {
	g := &RazorpayGateway{
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		logger:    log,
	}
	if cfg.Enabled() {
		g.client = razorpay.NewClient(cfg.KeyID, cfg.KeySecret)
	} else {
		log.Warnw("razorpay credentials not configured, payment features disabled")
	}
	return g
}

func (g *RazorpayGateway) Enabled() bool {
	return g.client != nil
}

// CreateOrder creates a provider order for the given price. Razorpay amounts
// are integer paise.
func (g *RazorpayGateway) CreateOrder(amount decimal.Decimal, receipt string) (*Order, error) {
	if !g.Enabled() {
		return nil, fmt.Errorf("payment gateway is not configured")
	}

	paise := amount.Mul(decimal.NewFromInt(100)).IntPart()
	data := map[string]interface{}{
		"amount":   paise,
		"currency": "INR",
		"receipt":  receipt,
	}

	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create razorpay order: %w", err)
	}

	orderID, ok := order["id"].(string)
	if !ok {
		return nil, fmt.Errorf("razorpay order response missing id")
	}

	return &Order{
		ID:       orderID,
		Amount:   paise,
		Currency: "INR",
		KeyID:    g.keyID,
	}, nil
}

// VerifySignature checks the checkout callback signature: hex-encoded
// HMAC-SHA256 over "orderID|paymentID" keyed with the API secret. The
// comparison is constant-time.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	if g.keySecret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
