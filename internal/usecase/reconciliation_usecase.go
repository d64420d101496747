package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"ferragens_atlas/internal/domain/entities"
	"ferragens_atlas/internal/usecase/interfaces"
)

var (
	ErrPaymentAlreadyProcessed = errors.New("payment already processed")
	ErrInvalidReviewer         = errors.New("invalid reviewer identity")
)

// IReconciliationUseCase moves payments out of pending, exactly once.
//
// Two reviewers racing on the same payment both issue a conditional update;
// storage lets exactly one through. The loser re-reads the payment to tell
// "someone else resolved it" apart from "it never existed".

type IReconciliationUseCase interface {
	Confirm(ctx context.Context, paymentID, reviewer string) (entities.Payment, error)
	Reject(ctx context.Context, paymentID, reviewer string) (entities.Payment, error)
}

type ReconciliationUseCase struct {
	repo interfaces.IPaymentRepository
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(repo interfaces.IPaymentRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{repo: repo}
}

func (u *ReconciliationUseCase) Confirm(ctx context.Context, paymentID, reviewer string) (entities.Payment, error) {
	return u.resolve(ctx, paymentID, reviewer, entities.PaymentStatusReceived)
}

func (u *ReconciliationUseCase) Reject(ctx context.Context, paymentID, reviewer string) (entities.Payment, error) {
	return u.resolve(ctx, paymentID, reviewer, entities.PaymentStatusRejected)
}

func (u *ReconciliationUseCase) resolve(ctx context.Context, paymentID, reviewer string, outcome entities.PaymentStatus) (entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	reviewer = strings.TrimSpace(reviewer)
	if paymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	if reviewer == "" {
		return entities.Payment{}, ErrInvalidReviewer
	}

	log.Printf("[reconciliation][usecase] resolve start payment_id=%s outcome=%s reviewer=%s", paymentID, outcome, reviewer)
	updated, err := u.repo.UpdateStatusIfPending(ctx, paymentID, outcome, reviewer)
	if err != nil {
		log.Printf("[reconciliation][usecase] resolve failed payment_id=%s err=%v", paymentID, err)
		return entities.Payment{}, err
	}
	if updated.ID != "" {
		log.Printf("[reconciliation][usecase] resolve success payment_id=%s outcome=%s", paymentID, updated.Status)
		return updated, nil
	}

	// The conditional write lost. Re-read to tell a finished payment apart
	// from one that never existed.
	current, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if current.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	log.Printf("[reconciliation][usecase] already processed payment_id=%s status=%s reviewed_by=%s", paymentID, current.Status, current.ReviewedBy)
	return entities.Payment{}, ErrPaymentAlreadyProcessed
}
