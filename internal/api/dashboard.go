package api

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"
	"net/http"
	"time"

	"go.uber.org/zap"

	"fxdashboard/internal/provider"
	"fxdashboard/internal/service"
	"fxdashboard/internal/trend"
)

// Banners shown on the dashboard when the provider cannot be reached or answers
// with an error.
const (
	bannerCurrencies = "Error: Unable to fetch the list of available currencies."
	bannerLatest     = "Error: Unable to fetch the latest conversion rate."
	bannerHistorical = "Error: Unable to fetch the historical conversion rate."
	bannerTrend      = "Error: Unable to fetch the historical conversion rate trend."
)

// Dashboard actions, submitted as the "action" form value.
const (
	actionLatest     = "latest"
	actionHistorical = "historical"
	actionTrend      = "trend"
)

const defaultAmount = "1.00"

//go:embed templates/dashboard.html
var dashboardHTML string

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardHTML))

// DashboardOptions configures the dashboard page.
type DashboardOptions struct {
	DefaultYears int
	Now          func() time.Time
	Logger       *zap.SugaredLogger
}

type dashboardView struct {
	Currencies []string
	From       string
	To         string
	Amount     string
	Date       string
	Today      string
	Years      int
	MinYears   int
	MaxYears   int
	Action     string
	Banners    []string
	Result     *service.Conversion
	TrendTitle string
	Chart      *chartView
}

// HandleDashboard serves the HTML dashboard. Each submitted action triggers
// exactly one provider call; failures render as banners and the page is still
// returned with status 200.
func HandleDashboard(svc service.DashboardServiceInterface, opts DashboardOptions) http.HandlerFunc {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	if opts.DefaultYears == 0 {
		opts.DefaultYears = trend.MinYears
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		q := r.URL.Query()
		today := opts.Now().UTC().Format(provider.DateLayout)

		view := dashboardView{
			Amount:   orDefault(q.Get("amount"), defaultAmount),
			Date:     orDefault(q.Get("date"), today),
			Today:    today,
			Years:    opts.DefaultYears,
			MinYears: trend.MinYears,
			MaxYears: trend.MaxYears,
			Action:   q.Get("action"),
		}

		codes, err := svc.Currencies(ctx)
		if err != nil {
			view.Banners = append(view.Banners, bannerCurrencies)
		}
		view.Currencies = codes
		view.From = selectedCode(q.Get("from"), codes, 0)
		view.To = selectedCode(q.Get("to"), codes, 1)

		switch view.Action {
		case actionLatest, actionHistorical:
			view.Result, err = convert(ctx, svc, &view)
			if err != nil {
				fallback := bannerLatest
				if view.Action == actionHistorical {
					fallback = bannerHistorical
				}
				view.Banners = append(view.Banners, banner(err, fallback))
			}
		case actionTrend:
			years, err := parseYears(q.Get("years"), opts.DefaultYears)
			if err == nil {
				view.Years = years
				var points trend.QuarterlyTrend
				points, err = svc.RateTrend(ctx, view.From, view.To, years)
				if err == nil {
					view.TrendTitle = view.From + " to " + view.To
					view.Chart = newChartView(points)
				}
			}
			if err != nil {
				view.Banners = append(view.Banners, banner(err, bannerTrend))
			}
		}

		var buf bytes.Buffer
		if err := dashboardTmpl.Execute(&buf, view); err != nil {
			opts.Logger.Errorw("Dashboard render failed", "error", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	}
}

func convert(ctx context.Context, svc service.DashboardServiceInterface, view *dashboardView) (*service.Conversion, error) {
	amount, err := parseAmount(view.Amount)
	if err != nil {
		return nil, err
	}
	if view.Action == actionHistorical {
		return svc.HistoricalConversion(ctx, view.From, view.To, view.Date, amount)
	}
	return svc.LatestConversion(ctx, view.From, view.To, amount)
}

// banner returns the message shown for err: the input problem itself, or the
// generic fallback for anything the provider caused.
func banner(err error, fallback string) string {
	if service.IsInputError(err) {
		return "Error: " + err.Error()
	}
	return fallback
}

// selectedCode returns the submitted code, or the idx-th available code when
// nothing was submitted.
func selectedCode(submitted string, codes []string, idx int) string {
	if code := displayCode(submitted); code != "" {
		return code
	}
	if idx < len(codes) {
		return codes[idx]
	}
	return ""
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
