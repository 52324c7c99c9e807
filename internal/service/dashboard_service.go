// Package service implements the operations behind the FX dashboard.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"fxdashboard/internal/provider"
	"fxdashboard/internal/trend"
)

// DashboardServiceInterface defines the operations the dashboard UI relies on.
type DashboardServiceInterface interface {
	Currencies(ctx context.Context) ([]string, error)
	LatestConversion(ctx context.Context, from, to string, amount float64) (*Conversion, error)
	HistoricalConversion(ctx context.Context, from, to, date string, amount float64) (*Conversion, error)
	RateTrend(ctx context.Context, from, to string, years int) (trend.QuarterlyTrend, error)
	Ping(ctx context.Context) error
}

// TrendBuilder produces a quarterly trend for a currency pair.
type TrendBuilder interface {
	Trend(ctx context.Context, from, to string, years int) (trend.QuarterlyTrend, error)
}

// DashboardService answers dashboard requests with one provider call each.
type DashboardService struct {
	rates  provider.RatesClient
	trends TrendBuilder
	log    *zap.SugaredLogger
}

var _ DashboardServiceInterface = (*DashboardService)(nil)

// NewDashboardService creates a new DashboardService.
func NewDashboardService(rates provider.RatesClient, trends TrendBuilder, logger *zap.SugaredLogger) *DashboardService {
	return &DashboardService{
		rates:  rates,
		trends: trends,
		log:    logger,
	}
}

// Currencies returns the currency codes offered by the provider.
func (s *DashboardService) Currencies(ctx context.Context) ([]string, error) {
	codes, err := s.rates.ListCurrencies(ctx)
	if err != nil {
		s.log.Warnw("Currency list fetch failed", "error", err)
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	return codes, nil
}

// LatestConversion converts amount at the most recent published rate.
func (s *DashboardService) LatestConversion(ctx context.Context, from, to string, amount float64) (*Conversion, error) {
	from, to, err := normalizePair(from, to)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	quoted, err := s.rates.LatestRate(ctx, from, to)
	if err != nil {
		s.log.Warnw("Latest rate fetch failed", "from", from, "to", to, "error", err)
		return nil, fmt.Errorf("latest rate %s/%s: %w", from, to, err)
	}

	return newConversion(quoted.Date, quoted, from, to, amount), nil
}

// HistoricalConversion converts amount at the rate published for date.
func (s *DashboardService) HistoricalConversion(ctx context.Context, from, to, date string, amount float64) (*Conversion, error) {
	from, to, err := normalizePair(from, to)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	quoted, err := s.rates.HistoricalRate(ctx, from, to, day)
	if err != nil {
		s.log.Warnw("Historical rate fetch failed", "from", from, "to", to, "date", date, "error", err)
		return nil, fmt.Errorf("historical rate %s/%s on %s: %w", from, to, date, err)
	}

	return newConversion(day.Format(provider.DateLayout), quoted, from, to, amount), nil
}

// RateTrend returns the quarterly rate trend over the last years.
func (s *DashboardService) RateTrend(ctx context.Context, from, to string, years int) (trend.QuarterlyTrend, error) {
	from, to, err := normalizePair(from, to)
	if err != nil {
		return nil, err
	}
	if err := trend.ValidateYears(years); err != nil {
		return nil, err
	}

	points, err := s.trends.Trend(ctx, from, to, years)
	if err != nil {
		s.log.Warnw("Rate trend failed", "from", from, "to", to, "years", years, "error", err)
		return nil, fmt.Errorf("rate trend %s/%s: %w", from, to, err)
	}

	s.log.Debugw("Rate trend built", "from", from, "to", to, "years", years, "points", len(points))
	return points, nil
}

// Ping checks that the provider answers.
func (s *DashboardService) Ping(ctx context.Context) error {
	if _, err := s.rates.ListCurrencies(ctx); err != nil {
		return fmt.Errorf("rate provider not reachable: %w", err)
	}
	return nil
}
