// Package net owns the shared outbound HTTP client used for
// dictionary fetches.
package net

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"
)

// shared client (keep-alive, TLS session reuse).
var client = &http.Client{
	Timeout: 10 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        32,
		MaxIdleConnsPerHost: 16,
		DisableCompression:  false,
		TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
	},
}

// NewGET builds a GET request bound to ctx.
func NewGET(ctx context.Context, url string) (*http.Request, error) {
	return http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
}

// Do forwards to the shared *http.Client.
func Do(req *http.Request) (*http.Response, error) { return client.Do(req) }
