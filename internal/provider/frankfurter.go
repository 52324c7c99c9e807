package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"time"
)

var _ RatesClient = (*FrankfurterClient)(nil)

// DefaultFrankfurterURL is the public Frankfurter API endpoint.
const DefaultFrankfurterURL = "https://api.frankfurter.dev/v1"

// FrankfurterClient fetches currencies and rates from the Frankfurter API.
type FrankfurterClient struct {
	baseURL string
	fetcher *Fetcher
}

// NewFrankfurterClient creates a new FrankfurterClient.
func NewFrankfurterClient(baseURL string, fetcher *Fetcher) *FrankfurterClient {
	if baseURL == "" {
		baseURL = DefaultFrankfurterURL
	}
	if fetcher == nil {
		fetcher = NewFetcher(nil)
	}
	return &FrankfurterClient{
		baseURL: baseURL,
		fetcher: fetcher,
	}
}

type frankfurterResponse struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Date   string             `json:"date"`
	Rates  map[string]float64 `json:"rates"`
}

type frankfurterSeriesResponse struct {
	Amount    float64                       `json:"amount"`
	Base      string                        `json:"base"`
	StartDate string                        `json:"start_date"`
	EndDate   string                        `json:"end_date"`
	Rates     map[string]map[string]float64 `json:"rates"`
}

func (c *FrankfurterClient) currenciesURL() string {
	return c.baseURL + "/currencies"
}

// pairURL builds "{base}/{path}?base={from}&symbols={to}".
func (c *FrankfurterClient) pairURL(path, from, to string) string {
	q := url.Values{}
	q.Set("base", from)
	q.Set("symbols", to)
	return fmt.Sprintf("%s/%s?%s", c.baseURL, path, q.Encode())
}

// ListCurrencies returns the codes of every currency the provider supports, sorted.
func (c *FrankfurterClient) ListCurrencies(ctx context.Context) ([]string, error) {
	var names map[string]string
	if err := c.get(ctx, c.currenciesURL(), &names); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: empty currency list", ErrMalformedResponse)
	}
	return slices.Sorted(maps.Keys(names)), nil
}

// LatestRate returns the most recent published rate from one unit of from into to.
func (c *FrankfurterClient) LatestRate(ctx context.Context, from, to string) (DatedRate, error) {
	return c.datedRate(ctx, c.pairURL("latest", from, to), to)
}

// HistoricalRate returns the rate published for date, or for the closest prior business day.
func (c *FrankfurterClient) HistoricalRate(ctx context.Context, from, to string, date time.Time) (DatedRate, error) {
	return c.datedRate(ctx, c.pairURL(date.Format(DateLayout), from, to), to)
}

// RateSeries returns every published rate between start and end inclusive.
func (c *FrankfurterClient) RateSeries(ctx context.Context, from, to string, start, end time.Time) (RateSeries, error) {
	path := start.Format(DateLayout) + ".." + end.Format(DateLayout)

	var result frankfurterSeriesResponse
	if err := c.get(ctx, c.pairURL(path, from, to), &result); err != nil {
		return nil, err
	}
	if result.Rates == nil {
		return nil, fmt.Errorf("%w: missing rates", ErrMalformedResponse)
	}
	return RateSeries(result.Rates), nil
}

func (c *FrankfurterClient) datedRate(ctx context.Context, reqURL, to string) (DatedRate, error) {
	var result frankfurterResponse
	if err := c.get(ctx, reqURL, &result); err != nil {
		return DatedRate{}, err
	}

	rate, ok := result.Rates[to]
	if !ok {
		return DatedRate{}, fmt.Errorf("%w: no rate for %s", ErrMalformedResponse, to)
	}
	if rate <= 0 {
		return DatedRate{}, fmt.Errorf("%w: non-positive rate %v for %s", ErrMalformedResponse, rate, to)
	}
	if result.Date == "" {
		return DatedRate{}, fmt.Errorf("%w: missing date", ErrMalformedResponse)
	}

	return DatedRate{Date: result.Date, Rate: rate}, nil
}

// get fetches reqURL and decodes a 200 JSON body into out.
func (c *FrankfurterClient) get(ctx context.Context, reqURL string, out any) error {
	resp := c.fetcher.Fetch(ctx, reqURL)
	if resp.Err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, resp.Err)
	}
	if !resp.OK() {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}
