package api

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fxdashboard/internal/provider"
	"fxdashboard/internal/service"
	"fxdashboard/internal/trend"
)

func dashboardFor(svc *mockDashboardService) http.HandlerFunc {
	return HandleDashboard(svc, DashboardOptions{
		DefaultYears: 1,
		Now:          func() time.Time { return time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC) },
	})
}

func TestHandleDashboard_Defaults(t *testing.T) {
	svc := &mockDashboardService{}
	svc.On("Currencies", mock.Anything).Return([]string{"AUD", "EUR", "USD"}, nil)

	w := serve(t, dashboardFor(svc), "/")
	body := w.Body.String()

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, 2, strings.Count(body, `<option value="AUD"`))
	assert.Contains(t, body, `<option value="AUD" selected>`)
	assert.Contains(t, body, `<option value="EUR" selected>`)
	assert.Contains(t, body, `value="2024-01-15"`)
	assert.Contains(t, body, `value="1.00"`)
	assert.NotContains(t, body, `class="banner"`)
	svc.AssertNumberOfCalls(t, "Currencies", 1)
}

func TestHandleDashboard_CurrencyListFailure(t *testing.T) {
	svc := &mockDashboardService{}
	svc.On("Currencies", mock.Anything).Return(nil, provider.ErrTransport)

	w := serve(t, dashboardFor(svc), "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Error: Unable to fetch the list of available currencies.")
	assert.NotContains(t, w.Body.String(), "<option")
}

func TestHandleDashboard_Latest(t *testing.T) {
	t.Run("renders summary", func(t *testing.T) {
		svc := &mockDashboardService{}
		svc.On("Currencies", mock.Anything).Return([]string{"EUR", "USD"}, nil)
		svc.On("LatestConversion", mock.Anything, "USD", "EUR", 10.0).Return(sampleConversion, nil)

		w := serve(t, dashboardFor(svc), "/?from=USD&to=EUR&amount=10&action=latest")

		assert.Contains(t, w.Body.String(), sampleConversion.Summary)
		assert.Contains(t, w.Body.String(), "Rate published on 2024-01-05.")
		svc.AssertNumberOfCalls(t, "LatestConversion", 1)
	})

	t.Run("provider failure shows banner", func(t *testing.T) {
		svc := &mockDashboardService{}
		svc.On("Currencies", mock.Anything).Return([]string{"EUR", "USD"}, nil)
		svc.On("LatestConversion", mock.Anything, "USD", "EUR", 1.0).
			Return(nil, &provider.StatusError{StatusCode: http.StatusNotFound})

		w := serve(t, dashboardFor(svc), "/?from=USD&to=EUR&action=latest")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Error: Unable to fetch the latest conversion rate.")
	})

	t.Run("bad amount shows input error", func(t *testing.T) {
		svc := &mockDashboardService{}
		svc.On("Currencies", mock.Anything).Return([]string{"EUR", "USD"}, nil)

		w := serve(t, dashboardFor(svc), "/?from=USD&to=EUR&amount=abc&action=latest")

		assert.Contains(t, w.Body.String(), "Error: amount must be a non-negative number")
		svc.AssertNotCalled(t, "LatestConversion", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleDashboard_Historical(t *testing.T) {
	t.Run("uses submitted date", func(t *testing.T) {
		svc := &mockDashboardService{}
		svc.On("Currencies", mock.Anything).Return([]string{"EUR", "USD"}, nil)
		svc.On("HistoricalConversion", mock.Anything, "USD", "EUR", "2024-01-06", 1.0).Return(sampleConversion, nil)

		w := serve(t, dashboardFor(svc), "/?from=USD&to=EUR&date=2024-01-06&action=historical")

		assert.Contains(t, w.Body.String(), sampleConversion.Summary)
		svc.AssertExpectations(t)
	})

	t.Run("failure shows banner", func(t *testing.T) {
		svc := &mockDashboardService{}
		svc.On("Currencies", mock.Anything).Return([]string{"EUR", "USD"}, nil)
		svc.On("HistoricalConversion", mock.Anything, "EUR", "USD", "2024-01-15", 1.0).
			Return(nil, provider.ErrMalformedResponse)

		w := serve(t, dashboardFor(svc), "/?action=historical")

		assert.Contains(t, w.Body.String(), "Error: Unable to fetch the historical conversion rate.")
	})
}

func TestHandleDashboard_Trend(t *testing.T) {
	t.Run("renders chart in trend order", func(t *testing.T) {
		points := trend.QuarterlyTrend{
			{Label: "2023-Jun", Rate: 0.7},
			{Label: "2024-Jan", Rate: 0.8},
			{Label: "2023-Dec", Rate: 0.75},
		}
		svc := &mockDashboardService{}
		svc.On("Currencies", mock.Anything).Return([]string{"EUR", "USD"}, nil)
		svc.On("RateTrend", mock.Anything, "USD", "EUR", 2).Return(points, nil)

		w := serve(t, dashboardFor(svc), "/?from=USD&to=EUR&years=2&action=trend")
		body := w.Body.String()

		assert.Contains(t, body, "<polyline")
		jun := strings.Index(body, `class="x-label">2023-Jun<`)
		jan := strings.Index(body, `class="x-label">2024-Jan<`)
		dec := strings.Index(body, `class="x-label">2023-Dec<`)
		assert.True(t, jun >= 0 && jun < jan && jan < dec, "labels must keep trend order")
		assert.Contains(t, body, `value="2"`)
	})

	t.Run("failure shows banner", func(t *testing.T) {
		svc := &mockDashboardService{}
		svc.On("Currencies", mock.Anything).Return([]string{"EUR", "USD"}, nil)
		svc.On("RateTrend", mock.Anything, "EUR", "USD", 1).Return(nil, trend.ErrEmptyResult)

		w := serve(t, dashboardFor(svc), "/?action=trend")

		assert.Contains(t, w.Body.String(), "Error: Unable to fetch the historical conversion rate trend.")
		assert.NotContains(t, w.Body.String(), "<polyline")
	})

	t.Run("out of range years shows input error", func(t *testing.T) {
		svc := &mockDashboardService{}
		svc.On("Currencies", mock.Anything).Return([]string{"EUR", "USD"}, nil)
		svc.On("RateTrend", mock.Anything, "EUR", "USD", 0).Return(nil, service.ErrInvalidYears)

		w := serve(t, dashboardFor(svc), "/?years=0&action=trend")

		assert.Contains(t, w.Body.String(), "Error: years must be between 1 and 10")
	})
}

func TestNewChartView(t *testing.T) {
	assert.Nil(t, newChartView(nil))

	view := newChartView(trend.QuarterlyTrend{
		{Label: "2023-Apr", Rate: 1.0},
		{Label: "2023-Jul", Rate: 2.0},
	})
	if assert.Len(t, view.Points, 2) {
		assert.Equal(t, float64(chartPadding), view.Points[0].X)
		assert.Equal(t, float64(chartWidth-chartPadding), view.Points[1].X)
		assert.Equal(t, float64(chartHeight-chartPadding), view.Points[0].Y)
		assert.Equal(t, float64(chartPadding), view.Points[1].Y)
	}
	assert.Equal(t, "2.0", view.Top)
	assert.Equal(t, "1.0", view.Bottom)

	flat := newChartView(trend.QuarterlyTrend{{Label: "2024-Jan", Rate: 0.9}})
	assert.InDelta(t, float64(chartHeight)/2, flat.Points[0].Y, 1e-9)
	assert.Equal(t, float64(chartWidth)/2, flat.Points[0].X)
}
