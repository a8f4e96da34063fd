package domain

import (
	"errors"
	"fmt"
)

// Error categories used for telemetry and exit-code mapping
const (
	CategoryValidation = "validation"
	CategoryCurrency   = "currency"
	CategoryLogic      = "logic"
)

// NegativeAmountError reports a transaction with a negative owed or paid amount
type NegativeAmountError struct {
	Owed int64
	Paid int64
}

func (e NegativeAmountError) Error() string {
	return fmt.Sprintf("amounts must be non-negative: owed=%d paid=%d", e.Owed, e.Paid)
}

// InsufficientPaymentError reports a paid amount that does not cover the owed amount
type InsufficientPaymentError struct {
	Owed int64
	Paid int64
}

func (e InsufficientPaymentError) Error() string {
	return fmt.Sprintf("paid amount %d does not cover owed amount %d", e.Paid, e.Owed)
}

// UnknownCurrencyError reports a currency code missing from the registry
type UnknownCurrencyError struct {
	Code string
}

func (e UnknownCurrencyError) Error() string {
	return fmt.Sprintf("unknown currency %q", e.Code)
}

// CannotMakeExactChangeError reports a change amount the denomination set
// cannot resolve exactly
type CannotMakeExactChangeError struct {
	Remaining    int64
	ChangeAmount int64
}

func (e CannotMakeExactChangeError) Error() string {
	return fmt.Sprintf("cannot make exact change for %d minor units: %d left over", e.ChangeAmount, e.Remaining)
}

// InvalidDivisorError reports a non-positive divisor option
type InvalidDivisorError struct {
	Divisor int
}

func (e InvalidDivisorError) Error() string {
	return fmt.Sprintf("divisor must be a positive integer, got %d", e.Divisor)
}

// InvalidAmountError reports an amount string that cannot be converted to
// minor units
type InvalidAmountError struct {
	Input  string
	Reason string
}

func (e InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %q: %s", e.Input, e.Reason)
}

// InvalidLineError reports a transaction line with an unrecognized layout
type InvalidLineError struct {
	Input string
}

func (e InvalidLineError) Error() string {
	return fmt.Sprintf("invalid transaction line %q: expected 2 or 4 comma-separated fields", e.Input)
}

// InvalidFormatError reports a change-breakdown segment that cannot be parsed
type InvalidFormatError struct {
	Segment string
	Reason  string
}

func (e InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid change segment %q: %s", e.Segment, e.Reason)
}

// ErrorCategory maps a core error (possibly wrapped) to its coarse category.
// Unrecognized errors fall into the logic category.
func ErrorCategory(err error) string {
	if err == nil {
		return ""
	}

	var (
		negative     NegativeAmountError
		insufficient InsufficientPaymentError
		divisor      InvalidDivisorError
		amount       InvalidAmountError
		line         InvalidLineError
		format       InvalidFormatError
		currency     UnknownCurrencyError
	)

	switch {
	case errors.As(err, &negative),
		errors.As(err, &insufficient),
		errors.As(err, &divisor),
		errors.As(err, &amount),
		errors.As(err, &line),
		errors.As(err, &format):
		return CategoryValidation
	case errors.As(err, &currency):
		return CategoryCurrency
	default:
		return CategoryLogic
	}
}
