// Package payment holds the local card gateway used when no real provider
// is configured. It validates card data and always settles valid charges.
package payment

import (
	"context"
	"strings"
	"sync"
	"unicode"

	"cinema-ticketing/internal/pkg/clock"
	"cinema-ticketing/internal/pkg/errs"
	"cinema-ticketing/internal/usecase/commands"

	"github.com/google/uuid"
)

var (
	ErrCardDeclined  = errs.New("card declined")
	ErrInvalidAmount = errs.New("charge amount must be positive")
	ErrUnknownCharge = errs.New("unknown charge reference")
)

type charge struct {
	reference string
	amount    int64
	refunded  bool
}

type FakeGateway struct {
	clock clock.Clock

	mu      sync.Mutex
	byKey   map[string]*charge
	byRef   map[string]*charge
	charges int
}

func NewFakeGateway(clk clock.Clock) *FakeGateway {
	return &FakeGateway{
		clock: clk,
		byKey: make(map[string]*charge),
		byRef: make(map[string]*charge),
	}
}

// Charge settles at most once per idempotency key.
func (g *FakeGateway) Charge(ctx context.Context, req commands.ChargeRequest) (commands.ChargeReceipt, error) {
	if err := ctx.Err(); err != nil {
		return commands.ChargeReceipt{}, err
	}
	if req.Amount <= 0 {
		return commands.ChargeReceipt{}, ErrInvalidAmount
	}
	if err := g.validateCard(req.Card); err != nil {
		return commands.ChargeReceipt{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if c, ok := g.byKey[req.IdempotencyKey]; ok && req.IdempotencyKey != "" {
		return commands.ChargeReceipt{Reference: c.reference}, nil
	}
	c := &charge{reference: "pay_" + uuid.NewString(), amount: req.Amount.Cents()}
	if req.IdempotencyKey != "" {
		g.byKey[req.IdempotencyKey] = c
	}
	g.byRef[c.reference] = c
	g.charges++
	return commands.ChargeReceipt{Reference: c.reference}, nil
}

func (g *FakeGateway) Refund(_ context.Context, reference string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	c, ok := g.byRef[reference]
	if !ok {
		return ErrUnknownCharge
	}
	c.refunded = true
	return nil
}

// Settled reports the number of charges and how many of them were refunded.
func (g *FakeGateway) Settled() (charged, refunded int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, c := range g.byRef {
		if c.refunded {
			refunded++
		}
	}
	return g.charges, refunded
}

func (g *FakeGateway) validateCard(card commands.Card) error {
	number := strings.ReplaceAll(card.Number, " ", "")
	if len(number) < 12 || len(number) > 19 || !luhnValid(number) {
		return errs.Wrap(ErrCardDeclined, "invalid card number")
	}
	if strings.TrimSpace(card.Holder) == "" {
		return errs.Wrap(ErrCardDeclined, "missing card holder")
	}
	if len(card.CVV) < 3 || len(card.CVV) > 4 || !allDigits(card.CVV) {
		return errs.Wrap(ErrCardDeclined, "invalid security code")
	}
	if card.ExpMonth < 1 || card.ExpMonth > 12 {
		return errs.Wrap(ErrCardDeclined, "invalid expiry month")
	}
	now := g.clock.Now()
	if card.ExpYear < now.Year() || (card.ExpYear == now.Year() && card.ExpMonth < int(now.Month())) {
		return errs.Wrap(ErrCardDeclined, "card expired")
	}
	return nil
}

func luhnValid(number string) bool {
	if !allDigits(number) {
		return false
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
