// Package trend resamples a daily rate series into one point per quarter.
package trend

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"fxdashboard/internal/provider"
)

// Horizon bounds accepted by Trend, in years.
const (
	MinYears = 1
	MaxYears = 10
)

const (
	// daysPerYear is a fixed approximation; leap days are not accounted for.
	daysPerYear      = 365
	quartersPerYear  = 4
	monthsPerQuarter = 3
)

// ErrInvalidYears indicates a horizon outside [MinYears, MaxYears].
var ErrInvalidYears = fmt.Errorf("years must be between %d and %d", MinYears, MaxYears)

// ErrEmptyResult indicates the provider answered successfully but returned no samples.
var ErrEmptyResult = errors.New("rate series is empty")

// Point is one quarter of the trend: the label of the sample month and its rate.
type Point struct {
	Label string  `json:"label"`
	Rate  float64 `json:"rate"`
}

// QuarterlyTrend is ordered oldest to newest. The order is the chart's x-axis order.
type QuarterlyTrend []Point

// Labels returns the point labels in trend order.
func (t QuarterlyTrend) Labels() []string {
	out := make([]string, len(t))
	for i, p := range t {
		out[i] = p.Label
	}
	return out
}

// Rates returns the point rates in trend order.
func (t QuarterlyTrend) Rates() []float64 {
	out := make([]float64, len(t))
	for i, p := range t {
		out[i] = p.Rate
	}
	return out
}

// SeriesSource fetches the full daily series for a currency pair.
type SeriesSource interface {
	RateSeries(ctx context.Context, from, to string, start, end time.Time) (provider.RateSeries, error)
}

// Resampler builds quarterly trends from a SeriesSource.
type Resampler struct {
	source SeriesSource
	now    func() time.Time
}

// Option configures a Resampler.
type Option func(*Resampler)

// WithClock overrides the source of "today".
func WithClock(now func() time.Time) Option {
	return func(r *Resampler) {
		r.now = now
	}
}

// NewResampler creates a Resampler reading from source.
func NewResampler(source SeriesSource, options ...Option) *Resampler {
	r := &Resampler{source: source, now: time.Now}
	for _, option := range options {
		option(r)
	}
	return r
}

// ValidateYears checks that years is an accepted trend horizon.
func ValidateYears(years int) error {
	if years < MinYears || years > MaxYears {
		return fmt.Errorf("%w, got %d", ErrInvalidYears, years)
	}
	return nil
}

// Trend fetches the from/to series covering the last years and samples it once per quarter.
func (r *Resampler) Trend(ctx context.Context, from, to string, years int) (QuarterlyTrend, error) {
	if err := ValidateYears(years); err != nil {
		return nil, err
	}

	end := calendarDate(r.now())
	start := StartDate(end, years)
	markers := Markers(end, years)

	series, err := r.source.RateSeries(ctx, from, to, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch rate series: %w", err)
	}

	return Resample(series, to, markers)
}

// StartDate returns end minus years*365 days.
func StartDate(end time.Time, years int) time.Time {
	return end.AddDate(0, 0, -years*daysPerYear)
}

// Markers returns the quarter markers for the horizon, sorted ascending.
func Markers(end time.Time, years int) []time.Time {
	markers := quarterMarkers(end, years)
	slices.SortFunc(markers, func(a, b time.Time) int { return a.Compare(b) })
	return markers
}

// quarterMarkers steps back from end in 3-month decrements. The first marker is
// end itself; every later marker falls on the 1st of its month.
func quarterMarkers(end time.Time, years int) []time.Time {
	n := years * quartersPerYear
	markers := make([]time.Time, 0, n)

	current := end
	for range n {
		markers = append(markers, current)

		year, month := current.Year(), int(current.Month())-monthsPerQuarter
		if month <= 0 {
			month += 12
			year--
		}
		current = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, current.Location())
	}
	return markers
}

// Label renders a sample date as "<year>-<Mon>", e.g. "2023-Apr".
func Label(d time.Time) string {
	return fmt.Sprintf("%d-%s", d.Year(), d.Format("Jan"))
}

type sample struct {
	date time.Time
	key  string
}

// Resample maps every marker to the nearest series date and returns the symbol's
// rate on that date. A label produced twice keeps its first position and takes the
// later rate.
func Resample(series provider.RateSeries, symbol string, markers []time.Time) (QuarterlyTrend, error) {
	samples, err := sortedSamples(series)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, ErrEmptyResult
	}

	out := make(QuarterlyTrend, 0, len(markers))
	positions := make(map[string]int, len(markers))
	for _, marker := range markers {
		s := nearest(samples, marker)

		rate, ok := series[s.key][symbol]
		if !ok {
			return nil, fmt.Errorf("%w: no %s rate on %s", provider.ErrMalformedResponse, symbol, s.key)
		}

		label := Label(s.date)
		if i, seen := positions[label]; seen {
			out[i].Rate = rate
			continue
		}
		positions[label] = len(out)
		out = append(out, Point{Label: label, Rate: rate})
	}
	return out, nil
}

// Nearest returns the element of dates (sorted ascending, non-empty) closest to
// marker. On equal distance the earlier date wins.
func Nearest(dates []time.Time, marker time.Time) time.Time {
	samples := make([]sample, len(dates))
	for i, d := range dates {
		samples[i] = sample{date: d}
	}
	return nearest(samples, marker).date
}

func nearest(samples []sample, marker time.Time) sample {
	i, _ := slices.BinarySearchFunc(samples, marker, func(s sample, m time.Time) int {
		return s.date.Compare(m)
	})
	switch {
	case i == 0:
		return samples[0]
	case i == len(samples):
		return samples[len(samples)-1]
	}

	before, after := samples[i-1], samples[i]
	if marker.Sub(before.date) <= after.date.Sub(marker) {
		return before
	}
	return after
}

func sortedSamples(series provider.RateSeries) ([]sample, error) {
	samples := make([]sample, 0, len(series))
	for key := range series {
		d, err := time.Parse(provider.DateLayout, key)
		if err != nil {
			return nil, fmt.Errorf("%w: bad series date %q", provider.ErrMalformedResponse, key)
		}
		samples = append(samples, sample{date: d, key: key})
	}
	slices.SortFunc(samples, func(a, b sample) int { return a.date.Compare(b.date) })
	return samples, nil
}

// calendarDate truncates t to midnight UTC of its own calendar day.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
