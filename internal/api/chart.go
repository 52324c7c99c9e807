package api

import (
	"fmt"
	"strings"

	"fxdashboard/internal/currency"
	"fxdashboard/internal/trend"
)

const (
	chartWidth   = 720
	chartHeight  = 320
	chartPadding = 48
)

// chartPoint is one trend point placed in SVG coordinates.
type chartPoint struct {
	X, Y  float64
	Label string
	Rate  string
}

// chartView is the line chart of a quarterly trend. Points keep trend order
// along the x-axis; labels are never re-sorted.
type chartView struct {
	Width, Height int
	Polyline      string
	Points        []chartPoint
	Top, Bottom   string
	Left, Right   float64
	YTop, YBottom float64
}

func newChartView(points trend.QuarterlyTrend) *chartView {
	if len(points) == 0 {
		return nil
	}

	lo, hi := points[0].Rate, points[0].Rate
	for _, p := range points[1:] {
		lo = min(lo, p.Rate)
		hi = max(hi, p.Rate)
	}
	span := hi - lo
	if span == 0 {
		// flat series: center the line
		span = 1
		lo -= 0.5
		hi += 0.5
	}

	plotW := float64(chartWidth - 2*chartPadding)
	plotH := float64(chartHeight - 2*chartPadding)
	step := 0.0
	if len(points) > 1 {
		step = plotW / float64(len(points)-1)
	}

	view := &chartView{
		Width:   chartWidth,
		Height:  chartHeight,
		Top:     currency.FormatNumber(currency.RoundRate(hi)),
		Bottom:  currency.FormatNumber(currency.RoundRate(lo)),
		Left:    chartPadding,
		Right:   chartWidth - chartPadding,
		YTop:    chartPadding,
		YBottom: chartHeight - chartPadding,
		Points:  make([]chartPoint, 0, len(points)),
	}

	coords := make([]string, 0, len(points))
	for i, p := range points {
		x := chartPadding + step*float64(i)
		if len(points) == 1 {
			x = chartPadding + plotW/2
		}
		y := chartPadding + plotH*(hi-p.Rate)/span
		view.Points = append(view.Points, chartPoint{
			X:     x,
			Y:     y,
			Label: p.Label,
			Rate:  currency.FormatNumber(currency.RoundRate(p.Rate)),
		})
		coords = append(coords, fmt.Sprintf("%.1f,%.1f", x, y))
	}
	view.Polyline = strings.Join(coords, " ")

	return view
}
