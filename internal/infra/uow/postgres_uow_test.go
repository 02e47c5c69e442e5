//go:build unit

package uow

import (
	"context"
	"errors"
	"testing"

	"cinema-ticketing/internal/pkg/errs"
	"cinema-ticketing/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// commitFailTx fails its first commits with the queued errors.
type commitFailTx struct {
	pgx.Tx
	commitErrs []error
}

func (t *commitFailTx) Commit(context.Context) error {
	if len(t.commitErrs) == 0 {
		return nil
	}
	err := t.commitErrs[0]
	t.commitErrs = t.commitErrs[1:]
	return err
}

func (t *commitFailTx) Rollback(context.Context) error { return pgx.ErrTxClosed }

func TestCommitErrorsAreClassified(t *testing.T) {
	tests := []struct {
		name         string
		commitErr    error
		wantAttempts int
		wantErr      error
	}{
		{"serialization failure is retried", &pgconn.PgError{Code: "40001"}, 2, nil},
		{"deadlock is retried", &pgconn.PgError{Code: "40P01"}, 2, nil},
		{"unique violation is retried", &pgconn.PgError{Code: "23505"}, 2, nil},
		{"connection loss is not retried", errors.New("connection reset"), 1, errs.ErrDatabaseOperationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			fake := &commitFailTx{commitErrs: []error{tt.commitErr}}
			attempts := 0

			err := shared.RunWithRetries(ctx, shared.RetryPolicy{MaxAttempts: 3},
				func(context.Context) (*pgTx, error) { return &pgTx{tx: fake}, nil },
				func(context.Context, *pgTx) error {
					attempts++
					return nil
				})

			assert.Equal(t, tt.wantAttempts, attempts)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, shared.ErrTransactionCommit)
		})
	}
}
