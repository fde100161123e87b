package service

import (
	"errors"
	"fmt"

	"posto-ledger/internal/ledger/repository"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when a fuel stock or service id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned for non-positive or malformed quantities and prices.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidReference is returned when an item reference cannot be parsed.
	// It also matches ErrInvalidInput.
	ErrInvalidReference = fmt.Errorf("%w: invalid item reference", ErrInvalidInput)

	// ErrInsufficientStock is returned when a movement would drive stock negative.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrConflict is returned for duplicate fuel types or services and for
	// deletes of rows that still have ledger records.
	ErrConflict = errors.New("conflict")
)

// InsufficientStockError carries the numbers behind a rejected OUT movement.
type InsufficientStockError struct {
	FuelStockID uint
	Label       string
	Available   decimal.Decimal
	Requested   decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %s L, requested %s L",
		e.Label, e.Available.StringFixed(2), e.Requested.StringFixed(2))
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Error codes exposed to API clients.
const (
	CodeNotFound          = "not_found"
	CodeInvalidInput      = "invalid_input"
	CodeInvalidReference  = "invalid_reference"
	CodeInsufficientStock = "insufficient_stock"
	CodeConflict          = "conflict"
	CodeInternal          = "internal"
)

// ErrorCode classifies err into one of the client error codes.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidReference):
		return CodeInvalidReference
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrInsufficientStock):
		return CodeInsufficientStock
	case errors.Is(err, ErrConflict):
		return CodeConflict
	default:
		return CodeInternal
	}
}

// IsClientError reports whether err was caused by the request rather than the system.
func IsClientError(err error) bool {
	return ErrorCode(err) != CodeInternal
}

func notFound(what string, id uint, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return err
}

// maxAmount bounds quantities and prices to what a numeric(10,2) column holds.
var maxAmount = decimal.New(1, 8)

// maxTotal bounds record totals to what a numeric(12,2) column holds.
var maxTotal = decimal.New(1, 10)

func validateTotal(total decimal.Decimal) error {
	if !total.LessThan(maxTotal) {
		return fmt.Errorf("%w: total %s is too large", ErrInvalidInput, total.StringFixed(2))
	}
	return nil
}

func validateQuantity(q decimal.Decimal) error {
	if !q.IsPositive() {
		return fmt.Errorf("%w: quantity must be positive, got %s", ErrInvalidInput, q.String())
	}
	if !q.Equal(q.Round(2)) {
		return fmt.Errorf("%w: quantity %s has more than 2 decimal places", ErrInvalidInput, q.String())
	}
	if !q.LessThan(maxAmount) {
		return fmt.Errorf("%w: quantity %s is too large", ErrInvalidInput, q.String())
	}
	return nil
}

// validateAmount accepts zero and positive values with at most 2 decimal places.
func validateAmount(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative, got %s", ErrInvalidInput, field, v.String())
	}
	if !v.Equal(v.Round(2)) {
		return fmt.Errorf("%w: %s %s has more than 2 decimal places", ErrInvalidInput, field, v.String())
	}
	if !v.LessThan(maxAmount) {
		return fmt.Errorf("%w: %s %s is too large", ErrInvalidInput, field, v.String())
	}
	return nil
}

func conflict(what string, err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return fmt.Errorf("%s already exists: %w", what, ErrConflict)
	}
	return err
}
