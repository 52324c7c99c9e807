package api

import (
	"net/http"

	"fxdashboard/internal/service"
	"fxdashboard/internal/trend"
)

// CurrenciesResponse represents the list of supported currency codes
type CurrenciesResponse struct {
	Currencies []string `json:"currencies" example:"EUR,GBP,JPY,USD"`
}

// ConversionResponse represents the response for a latest or historical conversion
type ConversionResponse struct {
	Date          string  `json:"date" example:"2024-01-06"`
	EffectiveDate string  `json:"effective_date" example:"2024-01-05"`
	From          string  `json:"from" example:"USD"`
	To            string  `json:"to" example:"EUR"`
	Amount        float64 `json:"amount" example:"10"`
	Rate          float64 `json:"rate" example:"0.9123"`
	Converted     float64 `json:"converted" example:"9.123"`
	Inverse       float64 `json:"inverse" example:"1.0961"`
	Summary       string  `json:"summary" example:"The conversion rate on 2024-01-06 from USD to EUR was 0.9123. So, 10.0 in USD corresponds to 9.123 in EUR. The inverse rate is 1.0961."`
}

// TrendResponse represents a quarterly rate trend
type TrendResponse struct {
	From   string        `json:"from" example:"USD"`
	To     string        `json:"to" example:"EUR"`
	Years  int           `json:"years" example:"1"`
	Points []trend.Point `json:"points"`
}

func newConversionResponse(c *service.Conversion) ConversionResponse {
	return ConversionResponse{
		Date:          c.Date,
		EffectiveDate: c.EffectiveDate,
		From:          c.From,
		To:            c.To,
		Amount:        c.Amount,
		Rate:          c.Rate,
		Converted:     c.Converted,
		Inverse:       c.Inverse,
		Summary:       c.Summary,
	}
}

// HandleListCurrencies godoc
// @Summary List supported currencies
// @Description Returns the currency codes offered by the rate provider, sorted ascending.
// @Tags currencies
// @Produce json
// @Success 200 {object} CurrenciesResponse "Currency codes"
// @Failure 502 {object} ErrorResponse "Rate provider request failed"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/currencies [get]
func HandleListCurrencies(svc service.DashboardServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		codes, err := svc.Currencies(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, CurrenciesResponse{Currencies: codes})
	}
}

// HandleLatestRate godoc
// @Summary Convert at the latest rate
// @Description Fetches the most recent published rate for the pair and converts amount with it.
// @Tags rates
// @Produce json
// @Param from query string true "Source currency code" minlength(3) maxlength(3)
// @Param to query string true "Target currency code" minlength(3) maxlength(3)
// @Param amount query number false "Amount in the source currency (default 1)" minimum(0)
// @Success 200 {object} ConversionResponse "Conversion"
// @Failure 400 {object} ErrorResponse "Invalid currency code or amount"
// @Failure 502 {object} ErrorResponse "Rate provider request failed"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/rates/latest [get]
func HandleLatestRate(svc service.DashboardServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		amount, err := parseAmount(q.Get("amount"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		conv, err := svc.LatestConversion(r.Context(), q.Get("from"), q.Get("to"), amount)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, newConversionResponse(conv))
	}
}

// HandleHistoricalRate godoc
// @Summary Convert at a historical rate
// @Description Fetches the rate published for date and converts amount with it. On non-business days the provider quotes the previous business day, reported as effective_date.
// @Tags rates
// @Produce json
// @Param from query string true "Source currency code" minlength(3) maxlength(3)
// @Param to query string true "Target currency code" minlength(3) maxlength(3)
// @Param date query string true "Date in YYYY-MM-DD format" format(date)
// @Param amount query number false "Amount in the source currency (default 1)" minimum(0)
// @Success 200 {object} ConversionResponse "Conversion"
// @Failure 400 {object} ErrorResponse "Invalid currency code, amount or date"
// @Failure 502 {object} ErrorResponse "Rate provider request failed"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/rates/historical [get]
func HandleHistoricalRate(svc service.DashboardServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		amount, err := parseAmount(q.Get("amount"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		conv, err := svc.HistoricalConversion(r.Context(), q.Get("from"), q.Get("to"), q.Get("date"), amount)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, newConversionResponse(conv))
	}
}

// HandleRateTrend godoc
// @Summary Quarterly rate trend
// @Description Samples the daily rate series of the last years once per quarter. Points are ordered oldest to newest.
// @Tags rates
// @Produce json
// @Param from query string true "Source currency code" minlength(3) maxlength(3)
// @Param to query string true "Target currency code" minlength(3) maxlength(3)
// @Param years query int false "Horizon in years" minimum(1) maximum(10)
// @Success 200 {object} TrendResponse "Quarterly trend"
// @Failure 400 {object} ErrorResponse "Invalid currency code or horizon"
// @Failure 502 {object} ErrorResponse "Rate provider request failed"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /api/rates/trend [get]
func HandleRateTrend(svc service.DashboardServiceInterface, defaultYears int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		years, err := parseYears(q.Get("years"), defaultYears)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		points, err := svc.RateTrend(r.Context(), q.Get("from"), q.Get("to"), years)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, TrendResponse{
			From:   displayCode(q.Get("from")),
			To:     displayCode(q.Get("to")),
			Years:  years,
			Points: points,
		})
	}
}
