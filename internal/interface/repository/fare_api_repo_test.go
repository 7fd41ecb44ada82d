package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFareAPI(baseURL string) *FareAPIRepository {
	return NewFareAPIRepository(FareAPIOptions{
		BaseURL:          baseURL,
		Headers:          map[string]string{"User-Agent": "faretrack-test"},
		Currency:         "CHF",
		DefaultDeparture: "ZRH",
		DefaultArrival:   "FCO",
	}, nopLogger())
}

func TestFetchFares_ReturnsRawRecords(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"flightNumber":"U2123"},{"flightNumber":"U2125"}]`))
	}))
	defer server.Close()

	result := newTestFareAPI(server.URL).FetchFares(context.Background(), "2025-04-01", "", "")

	require.Nil(t, result.Err)
	assert.True(t, result.IsSuccessful())
	assert.Equal(t, 200, result.StatusCode)
	assert.Len(t, result.Records, 2)
	assert.Equal(t, "ZRH", result.DepartureAirport)
	assert.Equal(t, "FCO", result.ArrivalAirport)

	require.NotNil(t, got)
	q := got.URL.Query()
	assert.Equal(t, "ZRH", q.Get("departureAirport"))
	assert.Equal(t, "FCO", q.Get("arrivalAirport"))
	assert.Equal(t, "CHF", q.Get("currency"))
	assert.Equal(t, "2025-04-01", q.Get("departureDateFrom"))
	assert.Equal(t, "2025-04-01", q.Get("departureDateTo"))
	assert.Equal(t, "faretrack-test", got.Header.Get("User-Agent"))
	assert.Contains(t, result.URL, "departureDateFrom=2025-04-01")
}

func TestFetchFares_ServerErrorIsCaptured(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))
	defer server.Close()

	result := newTestFareAPI(server.URL).FetchFares(context.Background(), "2025-04-01", "lgw", "cdg")

	require.NotNil(t, result.Err)
	assert.False(t, result.IsSuccessful())
	assert.Equal(t, 500, result.StatusCode)
	assert.Equal(t, 500, result.Err.StatusCode)
	assert.Contains(t, result.Err.Message, "upstream exploded")
	assert.Equal(t, "LGW", result.DepartureAirport)
	assert.Equal(t, "CDG", result.ArrivalAirport)
	assert.Empty(t, result.Records)
}

func TestFetchFares_NonArrayBodyIsCaptured(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"maintenance"}`))
	}))
	defer server.Close()

	result := newTestFareAPI(server.URL).FetchFares(context.Background(), "2025-04-01", "", "")

	require.NotNil(t, result.Err)
	assert.False(t, result.IsSuccessful())
	assert.Equal(t, 200, result.StatusCode)
	assert.Contains(t, result.Err.Message, "not a JSON array")
}

func TestFetchFares_NetworkFailureIsCaptured(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	result := newTestFareAPI(baseURL).FetchFares(context.Background(), "2025-04-01", "", "")

	require.NotNil(t, result.Err)
	assert.Equal(t, 0, result.StatusCode)
	assert.Equal(t, 0, result.Err.StatusCode)
	assert.Contains(t, result.Err.Message, "failed to send request")
}

func TestFetchFares_WaitsJitteredDelayBeforeEachRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestFareAPI(server.URL)
	client.opts.MinDelay = 10 * time.Millisecond
	client.opts.MaxDelay = 30 * time.Millisecond

	var slept []time.Duration
	client.sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}

	for i := 0; i < 3; i++ {
		require.Nil(t, client.FetchFares(context.Background(), "2025-04-01", "", "").Err)
	}

	require.Len(t, slept, 3)
	for _, d := range slept {
		assert.GreaterOrEqual(t, d, 10*time.Millisecond)
		assert.LessOrEqual(t, d, 30*time.Millisecond)
	}
}

func TestFetchFares_CancelledDuringDelay(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	client := NewFareAPIRepository(FareAPIOptions{
		BaseURL:  server.URL,
		MinDelay: time.Hour,
		MaxDelay: time.Hour,
	}, nopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := client.FetchFares(ctx, "2025-04-01", "ZRH", "FCO")
	require.NotNil(t, result.Err)
	assert.False(t, requested)
}

func TestUniformDelay_StaysWithinBounds(t *testing.T) {
	min, max := 1*time.Second, 3*time.Second
	for i := 0; i < 1000; i++ {
		d := uniformDelay(min, max)
		assert.GreaterOrEqual(t, d, min)
		assert.LessOrEqual(t, d, max)
	}
	assert.Equal(t, 2*time.Second, uniformDelay(2*time.Second, time.Second))
}

func TestSleepContext_HonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := sleepContext(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)

	assert.NoError(t, sleepContext(context.Background(), 0))
}
