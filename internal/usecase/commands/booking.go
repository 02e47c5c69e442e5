package commands

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"cinema-ticketing/internal/domain/money"
	"cinema-ticketing/internal/domain/notification"
	"cinema-ticketing/internal/domain/sale"
	"cinema-ticketing/internal/domain/seat"
	"cinema-ticketing/internal/domain/show"
	"cinema-ticketing/internal/domain/user"
	"cinema-ticketing/internal/pkg/clock"
	"cinema-ticketing/internal/pkg/errs"
	"cinema-ticketing/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

const (
	OperationReserve  = "reserve"
	OperationPurchase = "purchase"
)

type SeatStatus struct {
	Number int
	State  seat.State
}

// ReservationResult is the show's seat map right after the hold was placed.
type ReservationResult struct {
	ShowID        uuid.UUID
	MovieName     string
	StartTime     time.Time
	HeldSeats     []int
	HoldExpiresAt time.Time
	Total         money.Amount
	Seats         []SeatStatus
}

type PurchaseRequest struct {
	UserID      uuid.UUID
	ShowID      uuid.UUID
	SeatNumbers []int
	Card        Card
}

type BookingCommands interface {
	Reserve(ctx context.Context, userID, showID uuid.UUID, seatNumbers []int) (*ReservationResult, error)
	ConfirmAndCharge(ctx context.Context, req PurchaseRequest) (*sale.Ticket, error)
}

type bookingUseCaseImpl struct {
	uow          shared.UnitOfWork
	clock        clock.Clock
	gateway      PaymentGateway
	invalidator  SeatMapInvalidator
	observer     OperationObserver
	holdDuration time.Duration
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	clk clock.Clock,
	gateway PaymentGateway,
	invalidator SeatMapInvalidator,
	observer OperationObserver,
	holdDuration time.Duration,
) BookingCommands {
	if invalidator == nil {
		invalidator = noopInvalidator{}
	}
	if observer == nil {
		observer = noopObserver{}
	}
	return &bookingUseCaseImpl{
		uow:          uow,
		clock:        clk,
		gateway:      gateway,
		invalidator:  invalidator,
		observer:     observer,
		holdDuration: holdDuration,
	}
}

func (uc *bookingUseCaseImpl) Reserve(ctx context.Context, userID, showID uuid.UUID, seatNumbers []int) (*ReservationResult, error) {
	if len(seatNumbers) == 0 {
		return nil, ErrInvalidSeatNumbers
	}

	var result *ReservationResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := uc.loadUser(ctx, tx, userID); err != nil {
			return err
		}
		s, err := uc.loadShow(ctx, tx, showID, seatNumbers)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		if err = s.Inventory().HoldFor(userID, seatNumbers, now, uc.holdDuration); err != nil {
			return err
		}
		if err = tx.Shows().SaveSeats(ctx, s); err != nil {
			return err
		}

		result = reservationResult(s, seatNumbers, now, now.Add(uc.holdDuration))
		return nil
	})
	uc.observer.ObserveOperation(OperationReserve, resultLabel(err))
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, showID)
	return result, nil
}

// ConfirmAndCharge confirms held seats and charges the card in one transaction.
// The charge uses one idempotency key for every attempt, so a retried attempt
// does not bill twice. A failed charge rolls back and leaves the seats held.
// Every charge taken by an attempt is refunded when the purchase fails.
func (uc *bookingUseCaseImpl) ConfirmAndCharge(ctx context.Context, req PurchaseRequest) (*sale.Ticket, error) {
	if len(req.SeatNumbers) == 0 {
		return nil, ErrInvalidSeatNumbers
	}

	idempotencyKey := uuid.NewString()
	var (
		ticket sale.Ticket
		// references charged by any attempt
		charged []string
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := uc.loadUser(ctx, tx, req.UserID)
		if err != nil {
			return err
		}
		s, err := uc.loadShow(ctx, tx, req.ShowID, req.SeatNumbers)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		if err = s.Inventory().ConfirmFor(u.ID(), req.SeatNumbers, now); err != nil {
			return err
		}

		total := s.PriceFor(req.SeatNumbers)
		receipt, err := uc.gateway.Charge(ctx, ChargeRequest{
			IdempotencyKey: idempotencyKey,
			Card:           req.Card,
			Amount:         total,
			Description:    s.MovieName(),
		})
		if err != nil {
			return errs.WithCause(errs.Wrap(ErrPaymentFailed, "charge rejected"), err)
		}
		if !slices.Contains(charged, receipt.Reference) {
			charged = append(charged, receipt.Reference)
		}

		sl := sale.NewSale(sale.Params{
			UserID:     u.ID(),
			Username:   u.Username().Value(),
			Email:      u.Email().Value(),
			ShowID:     s.ID(),
			MovieName:  s.MovieName(),
			ShowStart:  s.StartTime(),
			Seats:      req.SeatNumbers,
			Total:      total,
			PointsWon:  s.PointsToEarn(),
			PaymentRef: receipt.Reference,
			SoldAt:     now,
		})
		if err = uc.persistSale(ctx, tx, s, u, sl, now); err != nil {
			return err
		}

		ticket = sl.Ticket()
		return nil
	})
	uc.observer.ObserveOperation(OperationPurchase, resultLabel(err))
	if err != nil {
		for _, ref := range charged {
			uc.refund(ctx, ref, err)
		}
		return nil, err
	}

	uc.invalidate(ctx, req.ShowID)
	return &ticket, nil
}

func (uc *bookingUseCaseImpl) persistSale(ctx context.Context, tx shared.Tx, s *show.Show, u *user.User, sl *sale.Sale, now time.Time) error {
	if err := tx.Shows().SaveSeats(ctx, s); err != nil {
		return err
	}
	if err := tx.Sales().Create(ctx, sl); err != nil {
		return err
	}
	if sl.PointsWon() > 0 {
		if err := u.AddPoints(sl.PointsWon()); err != nil {
			return err
		}
		if err := tx.Users().UpdatePoints(ctx, u); err != nil {
			return err
		}
	}

	job, err := notification.NewEmailJob(notification.TopicSaleCreated, sl.NewSaleEmail(), now)
	if err != nil {
		return err
	}
	return tx.Notifications().Enqueue(ctx, job)
}

func (uc *bookingUseCaseImpl) loadUser(ctx context.Context, tx shared.Tx, userID uuid.UUID) (*user.User, error) {
	u, err := tx.Users().FindByID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	return u, nil
}

// loadShow also rejects seat numbers that are not part of the show.
func (uc *bookingUseCaseImpl) loadShow(ctx context.Context, tx shared.Tx, showID uuid.UUID, seatNumbers []int) (*show.Show, error) {
	s, err := tx.Shows().FindByID(ctx, showID)
	if err != nil {
		return nil, notFoundAs(err, ErrShowNotFound)
	}
	if unknown := s.Inventory().Unknown(seatNumbers); len(unknown) > 0 {
		return nil, errs.Wrapf(ErrInvalidSeatNumbers, "unknown seats %v", unknown)
	}
	return s, nil
}

func (uc *bookingUseCaseImpl) refund(ctx context.Context, paymentRef string, cause error) {
	if paymentRef == "" {
		return
	}
	if err := uc.gateway.Refund(context.WithoutCancel(ctx), paymentRef); err != nil {
		slog.Error("failed to refund charge after aborted purchase",
			"payment_ref", paymentRef,
			"cause", cause.Error(),
			"error", err.Error())
		return
	}
	slog.Warn("refunded charge after aborted purchase", "payment_ref", paymentRef, "cause", cause.Error())
}

func (uc *bookingUseCaseImpl) invalidate(ctx context.Context, showID uuid.UUID) {
	if err := uc.invalidator.InvalidateShow(ctx, showID); err != nil {
		slog.Warn("failed to invalidate seat map cache", "show_id", showID, "error", err.Error())
	}
}

func reservationResult(s *show.Show, seatNumbers []int, now, expiresAt time.Time) *ReservationResult {
	held := make([]int, 0, len(seatNumbers))
	for _, st := range s.Inventory().SeatsMatching(seatNumbers) {
		held = append(held, st.Number())
	}
	seats := make([]SeatStatus, 0, s.Inventory().Len())
	for _, st := range s.Inventory().Seats() {
		seats = append(seats, SeatStatus{Number: st.Number(), State: st.EffectiveState(now)})
	}
	return &ReservationResult{
		ShowID:        s.ID(),
		MovieName:     s.MovieName(),
		StartTime:     s.StartTime(),
		HeldSeats:     slices.Clip(held),
		HoldExpiresAt: expiresAt,
		Total:         s.PriceFor(seatNumbers),
		Seats:         seats,
	}
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, errs.ErrConcurrencyExhausted):
		return "exhausted"
	default:
		return "rejected"
	}
}
