package service

import (
	"database/sql"
	"errors"
	"fmt"

	"logidocs/internal/repository"
	"logidocs/internal/storage"
)

// Error kinds surfaced to callers. Handlers map them to HTTP statuses with errors.Is;
// the wrapped message is safe to show to users.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
	ErrStorage    = errors.New("storage failure")
	// ErrIntegrity means a compensating action failed and residual state was left behind.
	ErrIntegrity = errors.New("integrity failure")

	ErrIDRequired = fmt.Errorf("%w: id is required", ErrValidation)
	ErrReaderNil  = fmt.Errorf("%w: reader is nil", ErrValidation)
)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFound(what string) error {
	return fmt.Errorf("%w: %s not found", ErrNotFound, what)
}

// mapRepoError converts repository level errors for entity what.
func mapRepoError(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return notFound(what)
	case errors.Is(err, repository.ErrDuplicate):
		return fmt.Errorf("%w: %s already exists", ErrConflict, what)
	default:
		return err
	}
}

// DeletionResult is returned by every delete use case. Report is only for logs
// and metrics and is never serialized.
type DeletionResult struct {
	Message string                 `json:"message"`
	Report  *storage.CleanupReport `json:"-"`
}
