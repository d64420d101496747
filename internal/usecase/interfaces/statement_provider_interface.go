package interfaces

import (
	"context"

	"ferragens_atlas/internal/domain/billing"
)

// IStatementProvider exposes the computed billing view of an order to other
// use cases. Payment submission validates amounts against it before writing
// anything.
type IStatementProvider interface {
	BuildStatement(ctx context.Context, orderID string) (billing.OrderStatement, error)
}
