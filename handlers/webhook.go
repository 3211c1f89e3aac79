package handlers

import (
	"errors"
	"net/http"

	"studiobook/models"
	"studiobook/services/payment"
	"studiobook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookHandler receives server-to-server payment notifications.
type WebhookHandler struct {
	Service payment.WebhookService
}

// HandlePayHereNotify processes a form-encoded PayHere notification. The
// provider only cares about the status code: 200 acknowledges, anything else
// makes it retry.
func (h *WebhookHandler) HandlePayHereNotify(c *gin.Context) {
	var n models.PaymentNotification
	if err := c.ShouldBind(&n); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "malformed payment notification", err.Error())
		return
	}

	err := h.Service.HandleNotification(c.Request.Context(), n)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidSignature):
			c.String(http.StatusUnauthorized, "signature verification failed")
		case errors.Is(err, payment.ErrUnknownBooking):
			c.String(http.StatusNotFound, "unknown booking")
		default:
			utils.GetLogger().Error("payment notification processing failed",
				zap.String("orderId", n.OrderID),
				zap.Error(err))
			c.String(http.StatusInternalServerError, "processing failed")
		}
		return
	}

	c.String(http.StatusOK, "OK")
}
