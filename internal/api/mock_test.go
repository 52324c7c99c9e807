package api

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fxdashboard/internal/service"
	"fxdashboard/internal/trend"
)

// mockDashboardService implements service.DashboardServiceInterface for testing.
type mockDashboardService struct {
	mock.Mock
}

func (m *mockDashboardService) Currencies(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	codes, _ := args.Get(0).([]string)
	return codes, args.Error(1)
}

func (m *mockDashboardService) LatestConversion(ctx context.Context, from, to string, amount float64) (*service.Conversion, error) {
	args := m.Called(ctx, from, to, amount)
	conv, _ := args.Get(0).(*service.Conversion)
	return conv, args.Error(1)
}

func (m *mockDashboardService) HistoricalConversion(ctx context.Context, from, to, date string, amount float64) (*service.Conversion, error) {
	args := m.Called(ctx, from, to, date, amount)
	conv, _ := args.Get(0).(*service.Conversion)
	return conv, args.Error(1)
}

func (m *mockDashboardService) RateTrend(ctx context.Context, from, to string, years int) (trend.QuarterlyTrend, error) {
	args := m.Called(ctx, from, to, years)
	points, _ := args.Get(0).(trend.QuarterlyTrend)
	return points, args.Error(1)
}

func (m *mockDashboardService) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
