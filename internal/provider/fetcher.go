package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=provider -destination=mock_http_client_test.go -source=fetcher.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Response is the outcome of a single GET. Err is set only when no usable
// response was obtained; StatusCode is then 500 and Body holds the error text.
type Response struct {
	StatusCode int
	Body       []byte
	Err        error
}

// OK reports whether the provider answered 200 with a JSON body.
func (r Response) OK() bool {
	return r.Err == nil && r.StatusCode == http.StatusOK
}

// Fetcher issues GET requests and never fails: every problem is folded into the Response.
type Fetcher struct {
	client    HTTPClient
	userAgent string
	observer  FetchObserver
}

// FetchObserver is told the outcome and duration of every Fetch.
type FetchObserver interface {
	ObserveFetch(resp Response, elapsed time.Duration)
}

// FetcherOption is a configuration option for the Fetcher.
type FetcherOption func(*Fetcher)

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithObserver reports every fetch to o.
func WithObserver(o FetchObserver) FetcherOption {
	return func(f *Fetcher) {
		f.observer = o
	}
}

// NewFetcher creates a Fetcher on top of the given client. A nil client uses http.DefaultClient.
func NewFetcher(client HTTPClient, options ...FetcherOption) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	f := &Fetcher{client: client}
	for _, option := range options {
		option(f)
	}
	return f
}

// NewHTTPClient returns an http.Client with an overall timeout, so a stalled
// provider cannot block a request forever.
func NewHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 3 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   10,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   3 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: transport}
}

// Fetch performs a GET on rawURL and returns its status code and JSON body.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) Response {
	start := time.Now()
	resp := f.fetch(ctx, rawURL)
	if f.observer != nil {
		f.observer.ObserveFetch(resp, time.Since(start))
	}
	return resp
}

func (f *Fetcher) fetch(ctx context.Context, rawURL string) Response {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return failed(fmt.Errorf("request creation failed: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return failed(fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failed(fmt.Errorf("read body failed: %w", err))
	}
	if !json.Valid(body) {
		return failed(errors.New("response body is not valid JSON"))
	}

	return Response{StatusCode: resp.StatusCode, Body: body}
}

func failed(err error) Response {
	return Response{
		StatusCode: http.StatusInternalServerError,
		Body:       []byte(err.Error()),
		Err:        err,
	}
}
