package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"ferragens_atlas/internal/domain/entities"
	"ferragens_atlas/internal/usecase/interfaces"
)

// WebhookDispatcher pushes payment lifecycle events to an external HTTP
// endpoint. With no URL configured it runs disabled and only logs, so local
// environments work without a receiver.
type WebhookDispatcher struct {
	url    string
	client *http.Client
}

var _ interfaces.INotificationDispatcher = (*WebhookDispatcher)(nil)

func NewWebhookDispatcher(url string) *WebhookDispatcher {
	if url == "" {
		log.Printf("[notification][webhook] no webhook url configured, dispatch disabled")
		return &WebhookDispatcher{}
	}
	log.Printf("[notification][webhook] dispatcher initialized url=%s", url)

	return &WebhookDispatcher{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type webhookPayload struct {
	Event      string  `json:"event"`
	PaymentID  string  `json:"payment_id"`
	OrderID    string  `json:"order_id"`
	CustomerID string  `json:"customer_id"`
	Amount     float64 `json:"amount"`
	Method     string  `json:"method"`
	Outcome    string  `json:"outcome,omitempty"`
	ReviewedBy string  `json:"reviewed_by,omitempty"`
	OccurredAt string  `json:"occurred_at"`
}

func (d *WebhookDispatcher) Dispatch(ctx context.Context, ev entities.PaymentEvent) error {
	if d == nil || d.url == "" {
		log.Printf("[notification][webhook] dispatch skipped kind=%s payment_id=%s", ev.Kind, ev.PaymentID)
		return nil
	}

	body, err := json.Marshal(webhookPayload{
		Event:      string(ev.Kind),
		PaymentID:  ev.PaymentID,
		OrderID:    ev.OrderID,
		CustomerID: ev.CustomerID,
		Amount:     ev.Amount.InexactFloat64(),
		Method:     string(ev.Method),
		Outcome:    string(ev.Outcome),
		ReviewedBy: ev.ReviewedBy,
		OccurredAt: ev.OccurredAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		log.Printf("[notification][webhook] payload marshal failed err=%v", err)
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		log.Printf("[notification][webhook] request build failed err=%v", err)
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		log.Printf("[notification][webhook] post failed kind=%s payment_id=%s err=%v", ev.Kind, ev.PaymentID, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[notification][webhook] post rejected kind=%s payment_id=%s status=%d", ev.Kind, ev.PaymentID, resp.StatusCode)
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	log.Printf("[notification][webhook] post success kind=%s payment_id=%s", ev.Kind, ev.PaymentID)

	return nil
}
