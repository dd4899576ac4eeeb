package httpclient

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/sitelens/website-profiler/pkg/interfaces"
	"github.com/sitelens/website-profiler/pkg/models"
)

// Fetcher implements the PageFetcher interface
type Fetcher struct {
	client  *http.Client
	logger  interfaces.Logger
	timeout time.Duration
}

func New(timeout time.Duration, logger interfaces.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout, // overall request deadline (includes headers + body)
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   2 * time.Second,  // TCP connect timeout
					KeepAlive: 30 * time.Second, // keep-alive
				}).DialContext,
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   70,
				IdleConnTimeout:       60 * time.Second,
				DisableCompression:    false,
				TLSHandshakeTimeout:   5 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		logger:  logger,
		timeout: timeout,
	}
}

// Fetch performs an HTTP GET request and returns the page body.
// A non-2xx status is not an error here; callers decide what a usable
// response is.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*models.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "WebsiteProfiler/1.0")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	f.logger.Debug("Making HTTP request",
		"method", req.Method,
		"url", url,
	)

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Error("HTTP request failed",
			"url", url,
			"error", err,
			"duration", time.Since(start),
		)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// Read response body with size limit (10MB)
	const maxBodySize = 10 * 1024 * 1024
	limitedReader := io.LimitReader(resp.Body, maxBodySize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		f.logger.Error("Failed to read response body",
			"url", url,
			"error", err,
		)
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// The request URL after redirects
	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	f.logger.Debug("HTTP response received",
		"url", url,
		"final_url", finalURL,
		"status_code", resp.StatusCode,
		"content_length", len(body),
		"duration", time.Since(start),
	)

	result := &models.FetchResult{
		StatusCode: resp.StatusCode,
		Body:       body,
		FinalURL:   finalURL,
		Headers:    resp.Header,
	}

	return result, nil
}

// Ensure Fetcher implements interfaces.PageFetcher
var _ interfaces.PageFetcher = (*Fetcher)(nil)
