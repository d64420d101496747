package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"ferragens_atlas/internal/domain/entities"
	"ferragens_atlas/internal/domain/money"
	"ferragens_atlas/internal/usecase/interfaces"
)

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrInvalidCustomerID   = errors.New("invalid customer id")
	ErrInvalidCustomerName = errors.New("invalid customer name")
	ErrInvalidPaymentMode  = errors.New("invalid payment mode")
)

// ICustomerUseCase exposes billing profile operations. Profiles are synced
// from the commercial system, so writes are idempotent upserts.

type ICustomerUseCase interface {
	UpsertCustomer(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) UpsertCustomer(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.ID = strings.TrimSpace(c.ID)
	c.Name = strings.TrimSpace(c.Name)
	if c.ID == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	if c.Name == "" {
		return entities.Customer{}, ErrInvalidCustomerName
	}
	switch c.PaymentMode {
	case "", entities.PaymentModeCash, entities.PaymentModeCredit:
	default:
		return entities.Customer{}, ErrInvalidPaymentMode
	}
	c.TermAmount = money.FloorZero(money.Round2(c.TermAmount))

	now := time.Now().UTC()
	existing, err := u.repo.GetByID(ctx, c.ID)
	if err != nil {
		return entities.Customer{}, err
	}
	if existing.ID != "" {
		c.CreatedAt = existing.CreatedAt
	} else {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	return u.repo.Upsert(ctx, c)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}
