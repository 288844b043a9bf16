package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/menuqr-inc/menuqr/internal/infrastructure/payment"
)

// PaymentGateway is the provider surface the subscription usecases need.
// Implemented by the razorpay gateway; faked in tests.
type PaymentGateway interface {
	Enabled() bool
	CreateOrder(amount decimal.Decimal, receipt string) (*payment.Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

// TransactionManager wraps a unit of work in a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
