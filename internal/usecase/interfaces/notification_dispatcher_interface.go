package interfaces

import (
	"context"

	"ferragens_atlas/internal/domain/entities"
)

// INotificationDispatcher abstracts delivery of payment change facts to
// downstream consumers (e.g. a webhook of the commercial system).
type INotificationDispatcher interface {
	Dispatch(ctx context.Context, ev entities.PaymentEvent) error
}
