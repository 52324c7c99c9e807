// Package provider implements the client for the external currency-rate API.
package provider

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date format used by the rate API.
const DateLayout = "2006-01-02"

// DatedRate is a conversion rate together with the date the provider quoted it for.
type DatedRate struct {
	Date string
	Rate float64
}

// RateSeries maps an ISO date to the rates quoted on that date, keyed by symbol.
type RateSeries map[string]map[string]float64

// RatesClient defines the operations the dashboard needs from a rate provider.
type RatesClient interface {
	ListCurrencies(ctx context.Context) ([]string, error)
	LatestRate(ctx context.Context, from, to string) (DatedRate, error)
	HistoricalRate(ctx context.Context, from, to string, date time.Time) (DatedRate, error)
	RateSeries(ctx context.Context, from, to string, start, end time.Time) (RateSeries, error)
}

// ErrTransport indicates the request never produced a usable response (network, body or JSON failure).
var ErrTransport = errors.New("rate provider transport error")

// ErrProvider indicates the provider answered with a non-200 status.
var ErrProvider = errors.New("rate provider error")

// ErrMalformedResponse indicates a 200 response whose body lacks the expected fields.
var ErrMalformedResponse = errors.New("malformed rate provider response")

// StatusError carries the status and body of a non-200 provider response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("rate provider returned status %d: %s", e.StatusCode, e.Body)
}

// Is reports StatusError as ErrProvider.
func (e *StatusError) Is(target error) bool {
	return target == ErrProvider
}
