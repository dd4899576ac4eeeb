package core

import (
	"bytes"
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitelens/website-profiler/pkg/interfaces"
	"github.com/sitelens/website-profiler/pkg/models"
)

// EmptyProfileSummary is the summary text of profiles built for pages
// that could not be fetched or analyzed.
const EmptyProfileSummary = "Unable to analyze this website."

// Engine runs every analyzer over one page and assembles the complete
// profile. It holds no per-request state, so a single instance is safe
// for concurrent use across documents.
type Engine struct {
	fetcher interfaces.PageFetcher
	logger  interfaces.Logger
	metrics interfaces.MetricsCollector
}

func NewEngine(fetcher interfaces.PageFetcher, logger interfaces.Logger, metrics interfaces.MetricsCollector) *Engine {
	return &Engine{
		fetcher: fetcher,
		logger:  logger,
		metrics: metrics,
	}
}

var _ interfaces.ProfileBuilder = (*Engine)(nil)

// AnalyzeURL fetches the page and builds its profile. Fetch failures
// never surface as errors: a non-2xx status, an empty body, or a
// transport error all yield the neutral empty profile.
func (e *Engine) AnalyzeURL(ctx context.Context, pageURL string) *models.WebsiteProfile {
	start := time.Now()

	result, err := e.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		e.logger.Warn("Failed to fetch page, returning empty profile",
			"url", pageURL,
			"error", err.Error(),
		)
		e.metrics.RecordAnalysis(false, time.Since(start).Seconds())
		return EmptyProfile(pageURL)
	}

	if result.StatusCode < 200 || result.StatusCode >= 300 || len(result.Body) == 0 {
		e.logger.Warn("No usable response, returning empty profile",
			"url", pageURL,
			"status_code", result.StatusCode,
			"body_bytes", len(result.Body),
		)
		e.metrics.RecordAnalysis(false, time.Since(start).Seconds())
		return EmptyProfile(pageURL)
	}

	profile := e.BuildProfile(pageURL, result.Body)
	e.metrics.RecordAnalysis(true, time.Since(start).Seconds())
	e.logger.Info("Profile built",
		"url", pageURL,
		"category", string(profile.DetectedCategory),
		"word_count", profile.ContentMetrics.WordCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return profile
}

// BuildProfile runs the full analysis pass over already-fetched HTML.
// The analyzers run in dependency order; each one degrades gracefully
// on malformed fragments, so the result is always a complete profile.
func (e *Engine) BuildProfile(pageURL string, htmlContent []byte) *models.WebsiteProfile {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		parsed = &url.URL{}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlContent))
	if err != nil {
		e.logger.Error("Failed to parse HTML", "url", pageURL, "error", err.Error())
		return EmptyProfile(pageURL)
	}

	norm := Normalize(htmlContent)
	raw := string(htmlContent)

	meta := extractMetadata(doc, raw, parsed)
	tech := auditTechnicalSeo(doc, raw, parsed)
	content := analyzeContent(norm.ContentText, doc)
	links := analyzeLinks(doc, parsed)
	tech.InternalLinks = links.InternalTotal
	tech.ExternalLinks = links.ExternalTotal

	local := detectLocalSignals(doc, raw, norm.Text, tech.SchemaTypes)
	category := classifyCategory(norm.ContentText, meta.title, meta.description)
	summary := buildSummary(meta.title, meta.description, norm.ContentText, category)

	return &models.WebsiteProfile{
		URL:              pageURL,
		Title:            meta.title,
		Description:      meta.description,
		FaviconURL:       meta.faviconURL,
		LogoURL:          meta.logoURL,
		SocialLinks:      meta.social,
		ContactInfo:      meta.contact,
		DetectedCategory: category,
		Summary:          summary,
		TechnicalSeo:     tech,
		ContentMetrics:   content,
		LinkMetrics:      links,
		LocalSeoSignals:  local,
	}
}

// EmptyProfile returns the neutral profile used when a page cannot be
// analyzed. Every collection is non-nil so serialization always emits
// the complete shape, and the HTTPS flag still reflects the requested
// URL's scheme.
func EmptyProfile(pageURL string) *models.WebsiteProfile {
	return &models.WebsiteProfile{
		URL:              pageURL,
		DetectedCategory: models.CategoryOther,
		Summary:          EmptyProfileSummary,
		TechnicalSeo: models.TechnicalSeo{
			H1Texts:     []string{},
			SchemaTypes: []string{},
			IsHTTPS:     strings.HasPrefix(strings.ToLower(pageURL), "https://"),
		},
		ContentMetrics: models.ContentMetrics{
			TopKeywords: []models.KeywordDensity{},
		},
		LinkMetrics: models.LinkMetrics{
			BrokenCandidates: []string{},
			TopAnchorTexts:   []models.AnchorText{},
		},
	}
}
