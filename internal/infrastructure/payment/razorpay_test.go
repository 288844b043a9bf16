package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/menuqr-inc/menuqr/internal/infrastructure/config"
	"github.com/menuqr-inc/menuqr/internal/shared/logger"
)

func signPayload(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func newTestGateway(keyID, secret string) *RazorpayGateway {
	return NewRazorpayGateway(config.RazorpayConfig{KeyID: keyID, KeySecret: secret}, logger.NewLogger())
}

func TestVerifySignature_Accepts(t *testing.T) {
	g := newTestGateway("rzp_test_key", "secret123")

	sig := signPayload("secret123", "order_ABC", "pay_XYZ")
	assert.True(t, g.VerifySignature("order_ABC", "pay_XYZ", sig))
}

func TestVerifySignature_RejectsMutations(t *testing.T) {
	g := newTestGateway("rzp_test_key", "secret123")

	sig := signPayload("secret123", "order_ABC", "pay_XYZ")

	// Flip each character of the valid signature in turn.
	for i := 0; i < len(sig); i++ {
		mutated := []byte(sig)
		if mutated[i] == 'a' {
			mutated[i] = 'b'
		} else {
			mutated[i] = 'a'
		}
		assert.False(t, g.VerifySignature("order_ABC", "pay_XYZ", string(mutated)),
			"mutated signature at index %d should be rejected", i)
	}

	// Wrong order or payment IDs must fail too.
	assert.False(t, g.VerifySignature("order_ABD", "pay_XYZ", sig))
	assert.False(t, g.VerifySignature("order_ABC", "pay_XYZ2", sig))
	assert.False(t, g.VerifySignature("order_ABC", "pay_XYZ", ""))
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	g := newTestGateway("rzp_test_key", "secret123")

	sig := signPayload("other-secret", "order_ABC", "pay_XYZ")
	assert.False(t, g.VerifySignature("order_ABC", "pay_XYZ", sig))
}

func TestGateway_DisabledWithoutCredentials(t *testing.T) {
	g := newTestGateway("", "")

	assert.False(t, g.Enabled())
	assert.False(t, g.VerifySignature("order_ABC", "pay_XYZ", "anything"))

	_, err := g.CreateOrder(decimal.NewFromInt(499), "sub_1")
	assert.Error(t, err)
}
