package models

import (
	"net/http"
	"time"
)

type ProfileRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// WebsiteProfile is the complete analysis result for a single page.
// Every field is always present with a well-defined zero value, even
// when the page could not be fetched.
type WebsiteProfile struct {
	URL              string          `json:"url"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	FaviconURL       string          `json:"favicon_url"`
	LogoURL          string          `json:"logo_url"`
	SocialLinks      SocialLinks     `json:"social_links"`
	ContactInfo      ContactInfo     `json:"contact_info"`
	DetectedCategory Category        `json:"detected_category"`
	Summary          string          `json:"summary"`
	TechnicalSeo     TechnicalSeo    `json:"technical_seo"`
	ContentMetrics   ContentMetrics  `json:"content_metrics"`
	LinkMetrics      LinkMetrics     `json:"link_metrics"`
	LocalSeoSignals  LocalSeoSignals `json:"local_seo_signals"`
}

// SocialLinks holds one profile URL per supported platform. Empty string
// means the platform was not found on the page.
type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
	YouTube   string `json:"youtube"`
	TikTok    string `json:"tiktok"`
}

type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// TechnicalSeo holds the deterministic presence/absence checks.
type TechnicalSeo struct {
	HasTitle                  bool     `json:"has_title"`
	HasDescription            bool     `json:"has_description"`
	HasCanonical              bool     `json:"has_canonical"`
	HasViewport               bool     `json:"has_viewport"`
	HasRobotsMeta             bool     `json:"has_robots_meta"`
	HasOpenGraph              bool     `json:"has_open_graph"`
	HasTwitterCard            bool     `json:"has_twitter_card"`
	H1Count                   int      `json:"h1_count"`
	H2Count                   int      `json:"h2_count"`
	H3Count                   int      `json:"h3_count"`
	H1Texts                   []string `json:"h1_texts"`
	HasProperHeadingHierarchy bool     `json:"has_proper_heading_hierarchy"`
	ImageCount                int      `json:"image_count"`
	ImagesWithAlt             int      `json:"images_with_alt"`
	AltCoverage               int      `json:"alt_coverage"`
	SchemaTypes               []string `json:"schema_types"`
	InternalLinks             int      `json:"internal_links"`
	ExternalLinks             int      `json:"external_links"`
	IsHTTPS                   bool     `json:"is_https"`
	HasSitemapReference       bool     `json:"has_sitemap_reference"`
	Language                  string   `json:"language"`
}

// ContentMetrics holds word/sentence statistics and the readability score.
type ContentMetrics struct {
	WordCount                int              `json:"word_count"`
	SentenceCount            int              `json:"sentence_count"`
	ParagraphCount           int              `json:"paragraph_count"`
	AvgWordsPerSentence      float64          `json:"avg_words_per_sentence"`
	AvgSentencesPerParagraph float64          `json:"avg_sentences_per_paragraph"`
	ReadabilityScore         float64          `json:"readability_score"`
	ReadabilityBand          ReadabilityBand  `json:"readability_band"`
	GradeLabel               string           `json:"grade_label"`
	TopKeywords              []KeywordDensity `json:"top_keywords"`
	LongSentences            int              `json:"long_sentences"`
	ShortSentences           int              `json:"short_sentences"`
}

type KeywordDensity struct {
	Keyword string  `json:"keyword"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type ReadabilityBand string

const (
	ReadabilityEasy      ReadabilityBand = "Easy"
	ReadabilityStandard  ReadabilityBand = "Standard"
	ReadabilityDifficult ReadabilityBand = "Difficult"
)

// LinkMetrics summarizes the page's outbound link graph.
type LinkMetrics struct {
	InternalTotal    int          `json:"internal_total"`
	InternalUnique   int          `json:"internal_unique"`
	ExternalTotal    int          `json:"external_total"`
	ExternalUnique   int          `json:"external_unique"`
	BrokenCandidates []string     `json:"broken_candidates"`
	TopAnchorTexts   []AnchorText `json:"top_anchor_texts"`
	LinksPerSection  float64      `json:"links_per_section"`
	HasNavLinks      bool         `json:"has_nav_links"`
	HasFooterLinks   bool         `json:"has_footer_links"`
	MaxPathDepth     int          `json:"max_path_depth"`
	OrphanRisk       bool         `json:"orphan_risk"`
}

type AnchorText struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// LocalSeoSignals holds local-business indicators found on the page.
// NapConsistent is an optimistic heuristic: it only means an address and
// a phone were both found somewhere on the page, not that they belong to
// the same verified listing.
type LocalSeoSignals struct {
	HasAddress         bool   `json:"has_address"`
	Address            string `json:"address"`
	HasPhone           bool   `json:"has_phone"`
	Phone              string `json:"phone"`
	HasHours           bool   `json:"has_hours"`
	Hours              string `json:"hours"`
	HasLocalSchema     bool   `json:"has_local_schema"`
	LocalSchemaType    string `json:"local_schema_type"`
	HasMapEmbed        bool   `json:"has_map_embed"`
	HasServiceArea     bool   `json:"has_service_area"`
	ServiceAreaText    string `json:"service_area_text"`
	NapConsistent      bool   `json:"nap_consistent"`
	HasReviews         bool   `json:"has_reviews"`
	HasBusinessListing bool   `json:"has_business_listing"`
	BusinessListingURL string `json:"business_listing_url"`
}

type Category string

const (
	CategoryEcommerce            Category = "ecommerce"
	CategorySaaS                 Category = "saas"
	CategoryLocalBusiness        Category = "local_business"
	CategoryBlogMedia            Category = "blog_media"
	CategoryProfessionalServices Category = "professional_services"
	CategoryHealthcare           Category = "healthcare"
	CategoryFinance              Category = "finance"
	CategoryEducation            Category = "education"
	CategoryRealEstate           Category = "real_estate"
	CategoryHospitality          Category = "hospitality"
	CategoryNonprofit            Category = "nonprofit"
	CategoryTechnology           Category = "technology"
	CategoryOther                Category = "other"
)

// FetchResult represents the outcome of fetching a page.
type FetchResult struct {
	StatusCode int
	Body       []byte
	FinalURL   string
	Headers    http.Header
}

type ErrorResponse struct {
	Error      string    `json:"error"`
	StatusCode int       `json:"status_code"`
	Details    string    `json:"details,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type HealthStatus struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Uptime    string            `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// BatchProfileRequest represents a request to analyze multiple URLs
type BatchProfileRequest struct {
	URLs []string `json:"urls" validate:"required,min=1,max=100,dive,url"`
}

type BatchProfileResult struct {
	Results   []WebsiteProfile `json:"results"`
	TotalTime time.Duration    `json:"total_time"`
}
