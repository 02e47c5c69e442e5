package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"cinema-ticketing/internal/pkg/errs"
)

var (
	ErrTransactionBegin  = errs.New("failed to begin transaction")
	ErrTransactionCommit = errs.New("failed to commit transaction")
)

// Attempt outcomes reported to a RetryObserver.
const (
	OutcomeCommitted = "committed"
	OutcomeConflict  = "conflict"
	OutcomeFailed    = "failed"
	OutcomeExhausted = "exhausted"
)

// Transaction is the minimal handle RunWithRetries drives.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type RetryObserver interface {
	ObserveTxAttempt(outcome string)
}

type RetryPolicy struct {
	// MaxAttempts counts the first attempt. Values below 1 mean a single attempt.
	MaxAttempts int
	BaseBackoff time.Duration
	Observer    RetryObserver
}

func (p RetryPolicy) attempts() int {
	return max(p.MaxAttempts, 1)
}

func (p RetryPolicy) observe(outcome string) {
	if p.Observer != nil {
		p.Observer.ObserveTxAttempt(outcome)
	}
}

// IsConflict reports whether err belongs to the only retried class.
func IsConflict(err error) bool {
	return errors.Is(err, errs.ErrWriteConflict)
}

// RunWithRetries runs begin, work and commit, starting over on write conflicts.
// Every attempt begins a fresh transaction, so work must reload whatever it reads.
// Non-conflict errors are returned unchanged after rollback. When every attempt
// conflicts, the returned error matches errs.ErrConcurrencyExhausted and nothing
// has been committed.
func RunWithRetries[T Transaction](
	ctx context.Context,
	policy RetryPolicy,
	begin func(ctx context.Context) (T, error),
	work func(ctx context.Context, tx T) error,
) error {
	maxAttempts := policy.attempts()

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			waitTime := calculateBackoff(attempt-1, policy.BaseBackoff)
			slog.Warn("retrying transaction due to retryable error",
				"attempt", attempt+1,
				"wait_ms", waitTime.Milliseconds(),
				"error", lastErr.Error())

			if err := sleep(ctx, waitTime); err != nil {
				return err
			}
		}

		err := runOnce(ctx, begin, work)
		switch {
		case err == nil:
			policy.observe(OutcomeCommitted)
			return nil
		case IsConflict(err):
			policy.observe(OutcomeConflict)
			lastErr = err
		default:
			policy.observe(OutcomeFailed)
			return err
		}
	}

	policy.observe(OutcomeExhausted)
	slog.Error("transaction failed after max retries",
		"attempts", maxAttempts,
		"error", lastErr.Error())
	return errs.WithCause(
		errs.Wrapf(errs.ErrConcurrencyExhausted, "gave up after %d attempts", maxAttempts),
		lastErr,
	)
}

// Avoids defer accumulation across attempts.
func runOnce[T Transaction](
	ctx context.Context,
	begin func(ctx context.Context) (T, error),
	work func(ctx context.Context, tx T) error,
) error {
	tx, err := begin(ctx)
	if err != nil {
		return withSentinel(err, ErrTransactionBegin)
	}

	if err = work(ctx, tx); err == nil {
		if err = tx.Commit(ctx); err == nil {
			return nil
		}
		err = withSentinel(err, ErrTransactionCommit)
	}

	if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
		slog.Warn("rollback failed", "error", rollbackErr.Error())
	}
	return err
}

// withSentinel tags err with sentinel while keeping its own chain intact.
func withSentinel(err, sentinel error) error {
	return &taggedError{err: err, sentinel: sentinel}
}

type taggedError struct {
	err      error
	sentinel error
}

func (e *taggedError) Error() string        { return e.sentinel.Error() + ": " + e.err.Error() }
func (e *taggedError) Unwrap() error        { return e.err }
func (e *taggedError) Is(target error) bool { return target == e.sentinel }

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	if base <= 0 {
		return 0
	}
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to a non-negative value
	return int64(uval) % n
}
