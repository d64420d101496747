package interfaces

import (
	"context"

	"ferragens_atlas/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// The billing-service must be able to:
//   - upsert the order snapshot pushed by the commercial system
//   - patch the shipping fee once logistics quotes it
//   - scan every order for the outstanding balances report

type IOrderRepository interface {
	Upsert(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateShippingFee(ctx context.Context, id string, fee decimal.Decimal) (entities.Order, error)
	ListAll(ctx context.Context) ([]entities.Order, error)
}
