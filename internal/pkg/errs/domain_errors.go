package errs

import "errors"

// Sentinels shared across layers. Stores mark their failures with these so the
// usecase layer can classify them without importing infrastructure packages.
var (
	ErrNotFound = errors.New("not found")

	// Version mismatch, unique violation or serialization failure. The only
	// class the transaction executor retries.
	ErrWriteConflict = errors.New("write conflict")

	ErrConcurrencyExhausted = errors.New("transaction could not be completed due to concurrency conflicts")

	ErrDomainValidation        = errors.New("domain validation error")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
