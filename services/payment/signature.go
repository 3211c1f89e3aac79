package payment

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"studiobook/models"
)

// md5Hex returns the uppercase hex MD5 digest of s, the normal form PayHere
// signatures are exchanged in.
func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// NotificationSignature recomputes the expected md5sig for an inbound payment
// notification: MD5(merchantId + orderId + amount + currency + statusCode +
// MD5(merchantSecret)), all uppercase hex. The merchant secret itself never
// travels on the wire.
func NotificationSignature(merchantID, orderID, amount, currency, statusCode, merchantSecret string) string {
	return md5Hex(merchantID + orderID + amount + currency + statusCode + md5Hex(merchantSecret))
}

// VerifyNotification checks that a notification names our merchant and that
// its signature matches the recomputation over the raw field values.
func VerifyNotification(n models.PaymentNotification, merchantID, merchantSecret string) bool {
	if n.MerchantID != merchantID {
		return false
	}
	expected := NotificationSignature(n.MerchantID, n.OrderID, n.Amount, n.Currency, n.StatusCode, merchantSecret)
	return strings.ToUpper(n.Signature) == expected
}

// CheckoutHash computes the hash handed to the provider when a payment
// session is opened: MD5(merchantId + orderId + amount + currency +
// MD5(merchantSecret)), uppercase hex.
func CheckoutHash(merchantID, orderID, amount, currency, merchantSecret string) string {
	return md5Hex(merchantID + orderID + amount + currency + md5Hex(merchantSecret))
}
