package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"fxdashboard/internal/provider"
	"fxdashboard/internal/trend"
)

// ErrMissingCurrency indicates a currency code was not supplied.
var ErrMissingCurrency = errors.New("currency code is required")

// ErrInvalidAmount indicates the amount is negative or not a finite number.
var ErrInvalidAmount = errors.New("amount must be a non-negative number")

// ErrInvalidDate indicates the date is not in YYYY-MM-DD form.
var ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")

// ErrInvalidYears indicates a trend horizon outside the supported range.
var ErrInvalidYears = trend.ErrInvalidYears

var validate = validator.New(validator.WithRequiredStructEnabled())

// normalizeCode trims and upper-cases a currency code. Whether the code exists
// is left to the provider.
func normalizeCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if err := validate.Var(code, "required"); err != nil {
		return "", ErrMissingCurrency
	}
	return code, nil
}

func normalizePair(from, to string) (normFrom, normTo string, err error) {
	if normFrom, err = normalizeCode(from); err != nil {
		return "", "", fmt.Errorf("from: %w", err)
	}
	if normTo, err = normalizeCode(to); err != nil {
		return "", "", fmt.Errorf("to: %w", err)
	}
	return normFrom, normTo, nil
}

func validateAmount(amount float64) error {
	// gte rejects NaN but lets +Inf through
	if math.IsInf(amount, 0) || validate.Var(amount, "gte=0") != nil {
		return ErrInvalidAmount
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(provider.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// IsInputError reports whether err was caused by the caller's arguments rather than the provider.
func IsInputError(err error) bool {
	return errors.Is(err, ErrMissingCurrency) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidYears)
}

// IsUpstreamError reports whether err originates from the rate provider.
func IsUpstreamError(err error) bool {
	return errors.Is(err, provider.ErrTransport) ||
		errors.Is(err, provider.ErrProvider) ||
		errors.Is(err, provider.ErrMalformedResponse) ||
		errors.Is(err, trend.ErrEmptyResult)
}
