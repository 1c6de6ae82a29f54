package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/kasirhub/kasir-pos/pkg/logger"
)

// TransactionEvent carries the payload of a "transaction succeeded"
// notification.
type TransactionEvent struct {
	TransactionID uint   `json:"transaction_id"`
	Number        string `json:"number"`
	Total         int64  `json:"total"`
	PaymentMethod string `json:"payment_method"`
	CustomerName  string `json:"customer_name,omitempty"`
}

// Notifier delivers fire-and-forget events. Delivery failures are logged and
// never surfaced to the sale flow.
type Notifier interface {
	TransactionSucceeded(ctx context.Context, event TransactionEvent)
}

// New returns a webhook notifier when a URL is configured, otherwise a
// log-only notifier.
func New(webhookURL string, log *logger.Logger) Notifier {
	if webhookURL != "" {
		return &WebhookNotifier{
			url:    webhookURL,
			client: &http.Client{Timeout: 5 * time.Second},
			log:    log,
		}
	}
	return &LogNotifier{log: log}
}

// LogNotifier just records the event in the application log.
type LogNotifier struct {
	log *logger.Logger
}

func (n *LogNotifier) TransactionSucceeded(ctx context.Context, event TransactionEvent) {
	n.log.Info("transaction succeeded",
		"transaction_id", event.TransactionID,
		"number", event.Number,
		"total", event.Total,
		"payment_method", event.PaymentMethod,
	)
}

// WebhookNotifier POSTs the event as JSON to a configured endpoint.
type WebhookNotifier struct {
	url    string
	client *http.Client
	log    *logger.Logger
}

func (n *WebhookNotifier) TransactionSucceeded(ctx context.Context, event TransactionEvent) {
	go func() {
		body, err := json.Marshal(event)
		if err != nil {
			n.log.Warn("notification payload marshal failed", "error", err)
			return
		}

		req, err := http.NewRequest(http.MethodPost, n.url, bytes.NewReader(body))
		if err != nil {
			n.log.Warn("notification request build failed", "error", err)
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.client.Do(req)
		if err != nil {
			n.log.Warn("notification delivery failed", "number", event.Number, "error", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			n.log.Warn("notification rejected", "number", event.Number, "status", resp.StatusCode)
		}
	}()
}
