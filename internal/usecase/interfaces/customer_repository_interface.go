package interfaces

import (
	"context"

	"ferragens_atlas/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.

type ICustomerRepository interface {
	Upsert(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
}
