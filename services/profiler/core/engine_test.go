package core

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitelens/website-profiler/pkg/mocks"
	"github.com/sitelens/website-profiler/pkg/models"
)

const profileFixture = `<!DOCTYPE html>
<html lang="en">
<head>
	<title>Acme Plumbing</title>
	<meta name="description" content="Trusted plumbing for Springfield homes and businesses.">
	<meta property="og:image" content="/img/logo.png">
	<meta name="viewport" content="width=device-width">
	<link rel="icon" href="/favicon.png">
	<link rel="canonical" href="https://acmeplumbing.com/">
	<script type="application/ld+json">{"@type":"LocalBusiness","telephone":"+1-555-0100","address":{"streetAddress":"742 Evergreen Terrace"}}</script>
</head>
<body>
	<nav><a href="/services">Services</a><a href="/contact">Contact</a></nav>
	<h1>Plumbing done right</h1>
	<main>
		<p>We provide reliable plumbing repairs for homes across Springfield and nearby suburbs.</p>
		<p>Our licensed team handles emergency callouts around the clock every single day.</p>
		<p>Visit us for same day service, or call us to book an appointment.</p>
		<img src="/img/team.jpg" alt="Our team">
	</main>
	<a href="https://www.facebook.com/acmeplumbing">Facebook</a>
	<a href="https://partner-directory.com/acme">Directory</a>
	<a href="#">menu</a>
	<footer><a href="/privacy">Privacy</a></footer>
</body>
</html>`

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	return logger
}

func TestEngine_BuildProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := NewEngine(nil, quietLogger(ctrl), mocks.NewMockMetricsCollector(ctrl))

	profile := engine.BuildProfile("https://acmeplumbing.com", []byte(profileFixture))

	assert.Equal(t, "https://acmeplumbing.com", profile.URL)
	assert.Equal(t, "Acme Plumbing", profile.Title)
	assert.Equal(t, "Trusted plumbing for Springfield homes and businesses.", profile.Description)
	assert.Equal(t, "https://acmeplumbing.com/favicon.png", profile.FaviconURL)
	assert.Equal(t, "https://acmeplumbing.com/img/logo.png", profile.LogoURL)
	assert.Equal(t, "https://www.facebook.com/acmeplumbing", profile.SocialLinks.Facebook)
	assert.Equal(t, "742 Evergreen Terrace", profile.ContactInfo.Address)

	assert.True(t, profile.TechnicalSeo.HasTitle)
	assert.True(t, profile.TechnicalSeo.HasDescription)
	assert.True(t, profile.TechnicalSeo.HasCanonical)
	assert.True(t, profile.TechnicalSeo.HasViewport)
	assert.True(t, profile.TechnicalSeo.HasOpenGraph)
	assert.True(t, profile.TechnicalSeo.HasProperHeadingHierarchy)
	assert.Equal(t, []string{"Plumbing done right"}, profile.TechnicalSeo.H1Texts)
	assert.Equal(t, 100, profile.TechnicalSeo.AltCoverage)
	assert.Equal(t, []string{"LocalBusiness"}, profile.TechnicalSeo.SchemaTypes)
	assert.True(t, profile.TechnicalSeo.IsHTTPS)
	assert.Equal(t, "en", profile.TechnicalSeo.Language)

	// Both facets report the same link counts
	assert.Equal(t, 3, profile.LinkMetrics.InternalTotal)
	assert.Equal(t, 2, profile.LinkMetrics.ExternalTotal)
	assert.Equal(t, profile.LinkMetrics.InternalTotal, profile.TechnicalSeo.InternalLinks)
	assert.Equal(t, profile.LinkMetrics.ExternalTotal, profile.TechnicalSeo.ExternalLinks)
	assert.Equal(t, []string{"#"}, profile.LinkMetrics.BrokenCandidates)
	assert.True(t, profile.LinkMetrics.HasNavLinks)
	assert.True(t, profile.LinkMetrics.HasFooterLinks)

	assert.Greater(t, profile.ContentMetrics.WordCount, 0)
	assert.GreaterOrEqual(t, profile.ContentMetrics.SentenceCount, 1)
	assert.Equal(t, 3, profile.ContentMetrics.ParagraphCount)

	assert.Equal(t, models.CategoryLocalBusiness, profile.DetectedCategory)
	assert.Contains(t, profile.Summary, "Acme Plumbing")
	assert.Contains(t, profile.Summary, "Trusted plumbing for Springfield homes and businesses.")

	assert.True(t, profile.LocalSeoSignals.HasAddress)
	assert.True(t, profile.LocalSeoSignals.HasPhone)
	assert.True(t, profile.LocalSeoSignals.NapConsistent)
	assert.Equal(t, "LocalBusiness", profile.LocalSeoSignals.LocalSchemaType)
}

func TestEngine_BuildProfile_Deterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := NewEngine(nil, quietLogger(ctrl), mocks.NewMockMetricsCollector(ctrl))

	first := engine.BuildProfile("https://acmeplumbing.com", []byte(profileFixture))
	second := engine.BuildProfile("https://acmeplumbing.com", []byte(profileFixture))

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, firstJSON, secondJSON, "identical input must serialize byte-identically")
	assert.Equal(t, first, second)
}

func TestEngine_BuildProfile_EmptyHTML(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := NewEngine(nil, quietLogger(ctrl), mocks.NewMockMetricsCollector(ctrl))

	profile := engine.BuildProfile("https://example.com", []byte(""))

	require.NotNil(t, profile)
	assert.Equal(t, "", profile.Title)
	assert.Equal(t, "https://example.com/favicon.ico", profile.FaviconURL)
	assert.Equal(t, models.CategoryOther, profile.DetectedCategory)
	assert.Equal(t, 0, profile.ContentMetrics.WordCount)
	assert.Equal(t, 1, profile.ContentMetrics.SentenceCount)
	assert.Equal(t, 100, profile.TechnicalSeo.AltCoverage, "no images means full alt coverage")
	assert.True(t, profile.TechnicalSeo.IsHTTPS)
	assert.GreaterOrEqual(t, len(profile.Summary), 200)
	assert.NotNil(t, profile.TechnicalSeo.H1Texts)
	assert.NotNil(t, profile.TechnicalSeo.SchemaTypes)
	assert.NotNil(t, profile.ContentMetrics.TopKeywords)
	assert.NotNil(t, profile.LinkMetrics.BrokenCandidates)
	assert.NotNil(t, profile.LinkMetrics.TopAnchorTexts)

	assert.GreaterOrEqual(t, profile.ContentMetrics.ReadabilityScore, float64(0))
	assert.LessOrEqual(t, profile.ContentMetrics.ReadabilityScore, float64(100))
}

func TestEngine_BuildProfile_SummaryFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := NewEngine(nil, quietLogger(ctrl), mocks.NewMockMetricsCollector(ctrl))

	// No title, no description, no service-oriented sentences
	content := `<html><body><p>The quarterly report was finalized on Thursday afternoon.</p></body></html>`
	profile := engine.BuildProfile("https://example.com", []byte(content))

	assert.Equal(t, "", profile.Title)
	assert.Equal(t, "", profile.Description)
	assert.NotEmpty(t, profile.Summary)
	assert.GreaterOrEqual(t, len(profile.Summary), 200)
}

func TestEngine_AnalyzeURL_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := mocks.NewMockPageFetcher(ctrl)
	mockMetrics := mocks.NewMockMetricsCollector(ctrl)

	mockFetcher.EXPECT().
		Fetch(gomock.Any(), "https://acmeplumbing.com").
		Return(&models.FetchResult{
			StatusCode: 200,
			Body:       []byte(profileFixture),
			FinalURL:   "https://acmeplumbing.com",
		}, nil)
	mockMetrics.EXPECT().RecordAnalysis(true, gomock.Any())

	engine := NewEngine(mockFetcher, quietLogger(ctrl), mockMetrics)

	profile := engine.AnalyzeURL(context.Background(), "https://acmeplumbing.com")

	require.NotNil(t, profile)
	assert.Equal(t, "Acme Plumbing", profile.Title)
	assert.Equal(t, models.CategoryLocalBusiness, profile.DetectedCategory)
}

func TestEngine_AnalyzeURL_FetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := mocks.NewMockPageFetcher(ctrl)
	mockMetrics := mocks.NewMockMetricsCollector(ctrl)

	mockFetcher.EXPECT().
		Fetch(gomock.Any(), "https://unreachable.example").
		Return(nil, errors.New("connection refused"))
	mockMetrics.EXPECT().RecordAnalysis(false, gomock.Any())

	engine := NewEngine(mockFetcher, quietLogger(ctrl), mockMetrics)

	profile := engine.AnalyzeURL(context.Background(), "https://unreachable.example")

	require.NotNil(t, profile)
	assert.Equal(t, EmptyProfileSummary, profile.Summary)
	assert.Equal(t, models.CategoryOther, profile.DetectedCategory)
	assert.Equal(t, "", profile.Title)
	assert.Equal(t, 0, profile.ContentMetrics.WordCount)
	assert.Equal(t, 0, profile.ContentMetrics.SentenceCount)
	assert.Equal(t, 0, profile.TechnicalSeo.AltCoverage)
	assert.Equal(t, 0, profile.LinkMetrics.InternalTotal)
	assert.True(t, profile.TechnicalSeo.IsHTTPS, "scheme still read from the requested URL")
	assert.NotNil(t, profile.TechnicalSeo.H1Texts)
	assert.NotNil(t, profile.ContentMetrics.TopKeywords)
	assert.NotNil(t, profile.LinkMetrics.BrokenCandidates)
}

func TestEngine_AnalyzeURL_FailureStatuses(t *testing.T) {
	tests := []struct {
		name   string
		result *models.FetchResult
	}{
		{
			name:   "not found",
			result: &models.FetchResult{StatusCode: 404, Body: []byte("<html>not found</html>")},
		},
		{
			name:   "server error",
			result: &models.FetchResult{StatusCode: 500, Body: []byte("<html>boom</html>")},
		},
		{
			name:   "empty body",
			result: &models.FetchResult{StatusCode: 200, Body: nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFetcher := mocks.NewMockPageFetcher(ctrl)
			mockMetrics := mocks.NewMockMetricsCollector(ctrl)

			mockFetcher.EXPECT().
				Fetch(gomock.Any(), "http://example.com").
				Return(tt.result, nil)
			mockMetrics.EXPECT().RecordAnalysis(false, gomock.Any())

			engine := NewEngine(mockFetcher, quietLogger(ctrl), mockMetrics)

			profile := engine.AnalyzeURL(context.Background(), "http://example.com")

			require.NotNil(t, profile)
			assert.Equal(t, EmptyProfileSummary, profile.Summary)
			assert.False(t, profile.TechnicalSeo.IsHTTPS)
		})
	}
}

func TestEmptyProfile_SerializesCompleteShape(t *testing.T) {
	profile := EmptyProfile("https://example.com")

	data, err := json.Marshal(profile)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{
		"url", "title", "description", "favicon_url", "logo_url",
		"social_links", "contact_info", "detected_category", "summary",
		"technical_seo", "content_metrics", "link_metrics", "local_seo_signals",
	} {
		assert.Contains(t, decoded, key)
	}

	assert.Equal(t, "other", decoded["detected_category"])
	assert.Equal(t, EmptyProfileSummary, decoded["summary"])
}
