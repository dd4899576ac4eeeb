package interfaces

import (
	"context"

	"github.com/sitelens/website-profiler/pkg/models"
)

// ProfileBuilder defines the contract for building website profiles.
// AnalyzeURL fetches and analyzes; BuildProfile analyzes HTML already in
// hand. Neither returns an error: a failed fetch or unparseable page
// yields the neutral profile instead.
type ProfileBuilder interface {
	AnalyzeURL(ctx context.Context, url string) *models.WebsiteProfile
	BuildProfile(url string, html []byte) *models.WebsiteProfile
}

// BatchProfiler defines the contract for analyzing multiple URLs
// Single Responsibility Principle: Only responsible for batch orchestration
type BatchProfiler interface {
	ProfileAll(ctx context.Context, urls []string) []models.WebsiteProfile
}

// PageFetcher defines the contract for retrieving page HTML
// Dependency Inversion Principle: Depend on abstraction, not concrete implementation
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*models.FetchResult, error)
}

// Logger defines the contract for logging operations
// Interface Segregation Principle: Minimal interface for logging
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// MetricsCollector defines the contract for metrics collection
// Single Responsibility Principle: Only responsible for metrics
type MetricsCollector interface {
	RecordRequest(method, path string, statusCode int, duration float64)
	RecordAnalysis(success bool, duration float64)
	RecordCacheLookup(hit bool)
}

// Cache defines the contract for caching operations
// Open/Closed Principle: Open for extension, closed for modification
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl int) error
	Delete(ctx context.Context, key string) error
}

// HealthChecker defines the contract for health check operations
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}
