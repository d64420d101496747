package interfaces

import (
	"context"

	"ferragens_atlas/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// UpdateStatusIfPending is the reconciliation primitive: it moves a payment
// out of pending with a conditional write and returns the zero value when the
// condition fails, so the caller can tell "lost the race" from "not found"
// with a follow-up read.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error)
	UpdateStatusIfPending(ctx context.Context, id string, status entities.PaymentStatus, reviewer string) (entities.Payment, error)
}
