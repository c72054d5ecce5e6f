package fx

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newRateServer(t *testing.T, hits *int64, body func(base string) (int, string)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		base := r.URL.Path[len("/v6/latest/"):]
		status, payload := body(base)
		w.WriteHeader(status)
		fmt.Fprint(w, payload)
	}))
}

func successBody(base string) (int, string) {
	return http.StatusOK, `{"result":"success","rates":{"EUR":0.9,"USD":1.0},"time_last_update_utc":"Fri, 29 Aug 2025 00:02:31 +0000"}`
}

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL+"/v6/latest/", 5*time.Second, time.Hour)
}

func TestConvertSameCurrencyNoNetworkCall(t *testing.T) {
	var hits int64
	srv := newRateServer(t, &hits, successBody)
	defer srv.Close()

	client := newTestClient(srv.URL)
	conv := client.Convert(context.Background(), 12.5, "usd", "USD", NewRequestCache())
	if conv == nil {
		t.Fatal("same-currency conversion must always succeed")
	}
	if conv.Amount != 12.5 || conv.Rate != 1 {
		t.Errorf("got amount=%v rate=%v, want 12.5 and rate 1", conv.Amount, conv.Rate)
	}
	if hits != 0 {
		t.Errorf("same-currency conversion made %d network calls, want 0", hits)
	}
}

func TestConvertUsesRate(t *testing.T) {
	var hits int64
	srv := newRateServer(t, &hits, successBody)
	defer srv.Close()

	client := newTestClient(srv.URL)
	conv := client.Convert(context.Background(), 4.99, "USD", "EUR", NewRequestCache())
	if conv == nil {
		t.Fatal("expected a conversion")
	}
	if conv.Rate != 0.9 {
		t.Errorf("Rate = %v, want 0.9", conv.Rate)
	}
	if Round2(conv.Amount) != 4.49 {
		t.Errorf("rounded amount = %v, want 4.49", Round2(conv.Amount))
	}
	if conv.FetchedAt != "Fri, 29 Aug 2025 00:02:31 +0000" {
		t.Errorf("FetchedAt = %q, want the upstream update time", conv.FetchedAt)
	}
}

func TestConvertReusesRequestCache(t *testing.T) {
	var hits int64
	srv := newRateServer(t, &hits, successBody)
	defer srv.Close()

	client := newTestClient(srv.URL)
	reqCache := NewRequestCache()
	for i := 0; i < 5; i++ {
		if conv := client.Convert(context.Background(), 1, "USD", "EUR", reqCache); conv == nil {
			t.Fatal("expected a conversion")
		}
	}
	if hits != 1 {
		t.Errorf("made %d upstream calls for one request, want 1", hits)
	}
}

func TestConvertUnknownTargetCurrency(t *testing.T) {
	var hits int64
	srv := newRateServer(t, &hits, successBody)
	defer srv.Close()

	client := newTestClient(srv.URL)
	if conv := client.Convert(context.Background(), 1, "USD", "XXX", NewRequestCache()); conv != nil {
		t.Errorf("conversion to a currency missing from the rates should fail, got %+v", conv)
	}
}

func TestConvertUpstreamFailures(t *testing.T) {
	tests := []struct {
		name string
		body func(string) (int, string)
	}{
		{"bad status", func(string) (int, string) { return http.StatusTooManyRequests, `{}` }},
		{"not json", func(string) (int, string) { return http.StatusOK, `<html>` }},
		{"result not success", func(string) (int, string) { return http.StatusOK, `{"result":"error","rates":{"EUR":0.9}}` }},
		{"missing rates", func(string) (int, string) { return http.StatusOK, `{"result":"success"}` }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits int64
			srv := newRateServer(t, &hits, tt.body)
			defer srv.Close()

			client := newTestClient(srv.URL)
			if conv := client.Convert(context.Background(), 1, "USD", "EUR", NewRequestCache()); conv != nil {
				t.Errorf("expected no conversion, got %+v", conv)
			}
		})
	}
}

func TestConvertUnreachableUpstream(t *testing.T) {
	client := NewClient("http://127.0.0.1:1/v6/latest/", 500*time.Millisecond, time.Hour)
	if conv := client.Convert(context.Background(), 1, "USD", "EUR", NewRequestCache()); conv != nil {
		t.Errorf("expected no conversion from an unreachable endpoint, got %+v", conv)
	}
}

func TestFetchedAtFallsBackToNow(t *testing.T) {
	var hits int64
	srv := newRateServer(t, &hits, func(string) (int, string) {
		return http.StatusOK, `{"result":"success","rates":{"EUR":0.9}}`
	})
	defer srv.Close()

	client := newTestClient(srv.URL)
	conv := client.Convert(context.Background(), 1, "USD", "EUR", NewRequestCache())
	if conv == nil {
		t.Fatal("expected a conversion")
	}
	if _, err := time.Parse(time.RFC3339, conv.FetchedAt); err != nil {
		t.Errorf("FetchedAt = %q, want an RFC3339 timestamp fallback", conv.FetchedAt)
	}
}

func TestProcessCacheSharedAcrossRequests(t *testing.T) {
	var hits int64
	srv := newRateServer(t, &hits, successBody)
	defer srv.Close()

	client := newTestClient(srv.URL)
	for i := 0; i < 3; i++ {
		// A fresh request cache every time; the process-level response
		// cache still keeps this at one upstream call.
		if conv := client.Convert(context.Background(), 1, "USD", "EUR", NewRequestCache()); conv == nil {
			t.Fatal("expected a conversion")
		}
	}
	if hits != 1 {
		t.Errorf("made %d upstream calls, want 1 via the response cache", hits)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{4.491, 4.49},
		{4.495, 4.5},
		{-4.495, -4.5},
		{0, 0},
		{2.675, 2.67}, // float repr of 2.675 is just below; boundary semantics
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
