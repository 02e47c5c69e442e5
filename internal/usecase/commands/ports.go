package commands

import (
	"context"

	"cinema-ticketing/internal/domain/money"

	"github.com/google/uuid"
)

type Card struct {
	Number   string
	Holder   string
	ExpMonth int
	ExpYear  int
	CVV      string
}

type ChargeRequest struct {
	// IdempotencyKey is stable across retries of one purchase.
	IdempotencyKey string
	Card           Card
	Amount         money.Amount
	Description    string
}

type ChargeReceipt struct {
	Reference string
}

type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (ChargeReceipt, error)
	Refund(ctx context.Context, reference string) error
}

// SeatMapInvalidator drops cached seat maps after a booking commits.
type SeatMapInvalidator interface {
	InvalidateShow(ctx context.Context, showID uuid.UUID) error
}

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, username, role string) (string, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

// OperationObserver counts command outcomes.
type OperationObserver interface {
	ObserveOperation(operation, result string)
}

type noopInvalidator struct{}

func (noopInvalidator) InvalidateShow(context.Context, uuid.UUID) error { return nil }

type noopObserver struct{}

func (noopObserver) ObserveOperation(string, string) {}
