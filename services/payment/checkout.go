package payment

import (
	"fmt"

	"studiobook/models"
)

// CheckoutService opens payment sessions with the provider.
type CheckoutService interface {
	NewSession(orderID string, amount float64) models.PaymentSession
}

// PayHereCheckout builds PayHere checkout sessions for a single merchant
// account.
type PayHereCheckout struct {
	MerchantID     string
	MerchantSecret string
	Currency       string
}

func (c *PayHereCheckout) NewSession(orderID string, amount float64) models.PaymentSession {
	amt := fmt.Sprintf("%.2f", amount)
	return models.PaymentSession{
		MerchantID: c.MerchantID,
		OrderID:    orderID,
		Amount:     amt,
		Currency:   c.Currency,
		Hash:       CheckoutHash(c.MerchantID, orderID, amt, c.Currency, c.MerchantSecret),
	}
}
