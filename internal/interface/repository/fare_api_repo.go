package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"faretrack-service/internal/domain/entity"
	"faretrack-service/internal/domain/repository"
	"faretrack-service/pkg/logger"

	"golang.org/x/time/rate"
)

// maxErrorBody caps how much of a failed response is kept in the error message
const maxErrorBody = 512

// FareAPIOptions configures the fare endpoint client
type FareAPIOptions struct {
	BaseURL          string
	Headers          map[string]string
	Currency         string
	DefaultDeparture string
	DefaultArrival   string
	MinDelay         time.Duration
	MaxDelay         time.Duration
	Timeout          time.Duration
}

// FareAPIRepository fetches fare records from the easyJet fare endpoint
type FareAPIRepository struct {
	logger  logger.Logger
	client  *http.Client
	opts    FareAPIOptions
	limiter *rate.Limiter

	// replaceable in tests
	jitter func(min, max time.Duration) time.Duration
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewFareAPIRepository creates a new fare endpoint client
func NewFareAPIRepository(opts FareAPIOptions, logger logger.Logger) *FareAPIRepository {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxDelay < opts.MinDelay {
		opts.MaxDelay = opts.MinDelay
	}

	r := &FareAPIRepository{
		logger: logger,
		client: &http.Client{Timeout: opts.Timeout},
		opts:   opts,
		jitter: uniformDelay,
		sleep:  sleepContext,
	}
	if opts.MinDelay > 0 {
		r.limiter = rate.NewLimiter(rate.Every(opts.MinDelay), 1)
	}
	return r
}

var _ repository.FareAPIRepository = (*FareAPIRepository)(nil)

// FetchFares requests the fares of one departure date. Failures are captured
// in the result's Err; the records are returned unparsed.
func (r *FareAPIRepository) FetchFares(ctx context.Context, date, departure, arrival string) *entity.FetchResult {
	if departure == "" {
		departure = r.opts.DefaultDeparture
	}
	if arrival == "" {
		arrival = r.opts.DefaultArrival
	}

	params := map[string]string{
		"departureAirport":  strings.ToUpper(departure),
		"arrivalAirport":    strings.ToUpper(arrival),
		"currency":          r.opts.Currency,
		"departureDateFrom": date,
		"departureDateTo":   date,
	}
	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	requestURL := r.opts.BaseURL + "?" + query.Encode()

	result := &entity.FetchResult{
		Date:             date,
		DepartureAirport: params["departureAirport"],
		ArrivalAirport:   params["arrivalAirport"],
		Currency:         r.opts.Currency,
		URL:              requestURL,
		QueryParams:      params,
	}

	if err := r.wait(ctx); err != nil {
		result.Err = &entity.TransportError{URL: requestURL, Message: err.Error()}
		return result
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		result.Err = &entity.TransportError{URL: requestURL, Message: fmt.Sprintf("failed to create request: %v", err)}
		return result
	}
	for k, v := range r.opts.Headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	r.logger.Debug("Requesting fares", "url", requestURL)

	resp, err := r.client.Do(req)
	if err != nil {
		result.Err = &entity.TransportError{URL: requestURL, Message: fmt.Sprintf("failed to send request: %v", err)}
		return result
	}
	defer resp.Body.Close()

	// the final URL after redirects is what the export records
	if resp.Request != nil && resp.Request.URL != nil {
		result.URL = resp.Request.URL.String()
	}
	result.StatusCode = resp.StatusCode

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Err = &entity.TransportError{URL: result.URL, StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read response: %v", err)}
		return result
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		result.Err = &entity.TransportError{URL: result.URL, StatusCode: resp.StatusCode, Message: truncate(string(body), maxErrorBody)}
		return result
	}

	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err != nil {
		result.Err = &entity.TransportError{URL: result.URL, StatusCode: resp.StatusCode, Message: fmt.Sprintf("response is not a JSON array: %v", err)}
		return result
	}
	result.Records = records

	r.logger.Info("Fares fetched",
		"date", date,
		"route", result.DepartureAirport+"-"+result.ArrivalAirport,
		"status", resp.StatusCode,
		"records", len(records))

	return result
}

// wait applies the request cadence: the limiter keeps at least MinDelay between
// requests, then a uniformly random pause in [MinDelay, MaxDelay] follows.
func (r *FareAPIRepository) wait(ctx context.Context) error {
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return err
		}
	}
	return r.sleep(ctx, r.jitter(r.opts.MinDelay, r.opts.MaxDelay))
}

func uniformDelay(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + rand.N(max-min+1)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
