package interfaces

import (
	"context"

	"ferragens_atlas/internal/domain/entities"
)

// IInstallmentRepository abstracts DynamoDB persistence for InstallmentTerm.
//
// The commercial system owns the schedule, so writes always replace the whole
// plan for an order. Reads come back sorted by term number.

type IInstallmentRepository interface {
	ReplaceForOrder(ctx context.Context, orderID string, terms []entities.InstallmentTerm) error
	ListByOrderID(ctx context.Context, orderID string) ([]entities.InstallmentTerm, error)
}
