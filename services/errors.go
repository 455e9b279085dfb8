package services

import "errors"

// ErrEmptyCart is returned when checkout is attempted with no lines in the
// cart. The cart is left untouched; the operator just gets told off.
var ErrEmptyCart = errors.New("cart is empty")

// CheckoutFailedError means the sale insert did not go through. The cart is
// preserved so the operator can retry without rebuilding it.
type CheckoutFailedError struct {
	Cause error
}

func (e *CheckoutFailedError) Error() string {
	return "checkout failed: " + e.Cause.Error()
}

func (e *CheckoutFailedError) Unwrap() error { return e.Cause }

// HistoryLoadError means the sales range query failed. Callers must treat it
// as "no data", never substitute a stale result.
type HistoryLoadError struct {
	Cause error
}

func (e *HistoryLoadError) Error() string {
	return "failed to load sales history: " + e.Cause.Error()
}

func (e *HistoryLoadError) Unwrap() error { return e.Cause }
