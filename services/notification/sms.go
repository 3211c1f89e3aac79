package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"studiobook/config"
	"studiobook/utils"
)

// SMSSender sends a text message to a phone number.
type SMSSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

// GatewaySMSSender delivers messages through an HTTP SMS gateway.
type GatewaySMSSender struct {
	client   *http.Client
	url      string
	apiKey   string
	senderID string
}

// NewGatewaySMSSender builds a sender from the configured gateway settings.
func NewGatewaySMSSender() *GatewaySMSSender {
	return &GatewaySMSSender{
		client:   &http.Client{Timeout: 10 * time.Second},
		url:      config.AppConfig.SMSGatewayURL,
		apiKey:   config.AppConfig.SMSAPIKey,
		senderID: config.AppConfig.SMSSenderID,
	}
}

// SendSMS posts the message to the gateway. With no gateway configured the
// message is logged instead, which keeps development environments working.
func (g *GatewaySMSSender) SendSMS(ctx context.Context, to, message string) error {
	if g.url == "" {
		utils.GetLogger().Sugar().Infof("Sending SMS to %s: %s", to, message)
		return nil
	}

	body, err := json.Marshal(map[string]string{
		"to":        to,
		"message":   message,
		"sender_id": g.senderID,
	})
	if err != nil {
		return fmt.Errorf("failed to encode SMS payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build SMS request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("SMS gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("SMS gateway returned status %d", resp.StatusCode)
	}
	return nil
}
