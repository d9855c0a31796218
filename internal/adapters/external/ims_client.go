// Package external provides adapters for external services.
// These adapters implement ports for the IMS web API and the cache backends.
package external

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"imsweather.app/internal/ports"
	"imsweather.app/pkg/errors"
)

const (
	defaultIMSBaseURL     = "https://ims.gov.il"
	defaultRequestTimeout = 10 * time.Second
	defaultInitialBackoff = 500 * time.Millisecond
	defaultMaxBackoff     = 5 * time.Second
)

var (
	errRateLimited = stderrors.New("rate limited")
	errServerError = stderrors.New("server error")
	errUnexpected  = stderrors.New("unexpected status code")
	errCircuitOpen = stderrors.New("circuit breaker open")
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// BackoffConfig controls exponential backoff between retries
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// IMSClientParams holds parameters for creating the IMS client
type IMSClientParams struct {
	BaseURL         string
	Timeout         time.Duration
	MaxRetries      int
	InitialBackoff  time.Duration
	BreakerFailures int
	BreakerOpen     time.Duration
	Location        *time.Location
	Client          HTTPClient
	Logger          ports.Logger
}

// IMSClient performs requests against the IMS web API with retries and a
// circuit breaker shared by every location.
type IMSClient struct {
	baseURL string
	client  HTTPClient
	backoff BackoffConfig
	breaker *gobreaker.CircuitBreaker
	loc     *time.Location
	logger  ports.Logger
}

// NewIMSClient creates a new IMS client
func NewIMSClient(params IMSClientParams) *IMSClient {
	baseURL := strings.TrimSuffix(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultIMSBaseURL
	}
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	initial := params.InitialBackoff
	if initial <= 0 {
		initial = defaultInitialBackoff
	}
	failures := params.BreakerFailures
	if failures < 1 {
		failures = 5
	}
	open := params.BreakerOpen
	if open <= 0 {
		open = time.Minute
	}
	loc := params.Location
	if loc == nil {
		loc = time.UTC
	}

	logger := params.Logger
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "ims",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     open,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(failures)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if logger != nil {
				logger.Warn("IMS circuit breaker state changed",
					ports.F("breaker", name),
					ports.F("from", from.String()),
					ports.F("to", to.String()))
			}
		},
	})

	return &IMSClient{
		baseURL: baseURL,
		client:  client,
		backoff: BackoffConfig{
			MaxRetries:      params.MaxRetries,
			InitialInterval: initial,
			MaxInterval:     defaultMaxBackoff,
		},
		breaker: breaker,
		loc:     loc,
		logger:  logger,
	}
}

// BaseURL returns the configured API root
func (c *IMSClient) BaseURL() string {
	return c.baseURL
}

// Location returns the zone IMS timestamps are interpreted in
func (c *IMSClient) Location() *time.Location {
	return c.loc
}

// BreakerState returns the circuit breaker state name
func (c *IMSClient) BreakerState() string {
	return c.breaker.State().String()
}

func (c *IMSClient) url(language, path string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, language, strings.TrimPrefix(path, "/"))
}

// getJSON fetches url and decodes the JSON body into out
func (c *IMSClient) getJSON(ctx context.Context, url string, out interface{}) error {
	resp, err := c.doWithResilience(ctx, func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, url, nil)
	})
	if err != nil {
		return errors.NewExternalAPIError("IMS request failed: "+url, err)
	}
	defer c.closeBody(resp)

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewExternalAPIError("failed to decode IMS response: "+url, err)
	}
	return nil
}

// status performs a single GET outside the breaker and returns the status code
func (c *IMSClient) status(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer c.closeBody(resp)
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

// doWithResilience executes the request with retries, exponential backoff and
// the circuit breaker. Only a 2xx response is returned; its body must be closed
// by the caller.
func (c *IMSClient) doWithResilience(ctx context.Context, buildRequest func() (*http.Request, error)) (*http.Response, error) {
	var attempt int

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		req, err := buildRequest()
		if err != nil {
			return nil, err
		}
		req = req.WithContext(ctx)
		req.Header.Set("Accept", "application/json")

		result, err := c.breaker.Execute(func() (interface{}, error) {
			resp, execErr := c.client.Do(req)
			if execErr != nil {
				return nil, execErr
			}

			switch {
			case resp.StatusCode == http.StatusTooManyRequests:
				c.closeBody(resp)
				return nil, errRateLimited
			case resp.StatusCode >= 500:
				c.closeBody(resp)
				return nil, fmt.Errorf("%w: %d", errServerError, resp.StatusCode)
			case resp.StatusCode < 200 || resp.StatusCode >= 300:
				c.closeBody(resp)
				return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
			}
			return resp, nil
		})

		if err == nil {
			resp, ok := result.(*http.Response)
			if !ok {
				return nil, fmt.Errorf("unexpected result type from circuit breaker")
			}
			return resp, nil
		}

		if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}
		if stderrors.Is(err, errUnexpected) || attempt >= c.backoff.MaxRetries {
			return nil, err
		}

		delay := c.backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if delay > c.backoff.MaxInterval && c.backoff.MaxInterval > 0 {
			delay = c.backoff.MaxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		attempt++
	}
}

func (c *IMSClient) closeBody(resp *http.Response) {
	if err := resp.Body.Close(); err != nil && c.logger != nil {
		c.logger.Warn("Failed to close IMS response body", ports.F("error", err))
	}
}
