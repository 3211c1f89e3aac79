package models

// PaymentNotification is the untrusted inbound webhook payload from PayHere.
// Field values are kept exactly as received; the signature is recomputed over
// the raw strings.
type PaymentNotification struct {
	MerchantID    string `form:"merchant_id"`
	OrderID       string `form:"order_id"`
	PaymentID     string `form:"payment_id"`
	Amount        string `form:"payhere_amount"`
	Currency      string `form:"payhere_currency"`
	StatusCode    string `form:"status_code"`
	Signature     string `form:"md5sig"`
	BookingID     string `form:"custom_1"`
	StatusMessage string `form:"status_message"`
}

// PayHere status codes. "2" is the only success code; the full taxonomy is
// owned by the provider.
const (
	PayHereStatusSuccess = "2"
	PayHereStatusPending = "0"
)

// PaymentSession is what the client needs to hand the payment provider at
// checkout time.
type PaymentSession struct {
	MerchantID string `json:"merchantId"`
	OrderID    string `json:"orderId"`
	Amount     string `json:"amount"` // formatted "%.2f"
	Currency   string `json:"currency"`
	Hash       string `json:"hash"`
}
