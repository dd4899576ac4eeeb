package core

import (
	"encoding/json"
	"math"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitelens/website-profiler/pkg/models"
)

var itemtypeRe = regexp.MustCompile(`itemtype\s*=\s*["']https?://schema\.org/([A-Za-z]+)["']`)

// auditTechnicalSeo runs the deterministic presence/absence checks.
// Internal/external link counts are filled in by the assembler from the
// link analysis so both facets report the same numbers.
func auditTechnicalSeo(doc *goquery.Document, rawHTML string, pageURL *url.URL) models.TechnicalSeo {
	seo := models.TechnicalSeo{
		H1Texts:     []string{},
		SchemaTypes: []string{},
	}

	seo.HasTitle = strings.TrimSpace(doc.Find("title").First().Text()) != ""
	seo.HasDescription = strings.TrimSpace(doc.Find(`meta[name="description"]`).AttrOr("content", "")) != ""
	seo.HasCanonical = doc.Find(`link[rel="canonical"]`).Length() > 0
	seo.HasViewport = doc.Find(`meta[name="viewport"]`).Length() > 0
	seo.HasRobotsMeta = doc.Find(`meta[name="robots"]`).Length() > 0
	seo.HasOpenGraph = doc.Find(`meta[property^="og:"]`).Length() > 0
	seo.HasTwitterCard = doc.Find(`meta[name^="twitter:"]`).Length() > 0

	seo.H1Count = doc.Find("h1").Length()
	seo.H2Count = doc.Find("h2").Length()
	seo.H3Count = doc.Find("h3").Length()
	doc.Find("h1").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			seo.H1Texts = append(seo.H1Texts, text)
		}
	})

	// Exactly one h1 is the sole criterion here
	seo.HasProperHeadingHierarchy = seo.H1Count == 1

	images := doc.Find("img")
	seo.ImageCount = images.Length()
	images.Each(func(_ int, s *goquery.Selection) {
		if alt, ok := s.Attr("alt"); ok && strings.TrimSpace(alt) != "" {
			seo.ImagesWithAlt++
		}
	})
	// A page with no images is not penalized
	if seo.ImageCount == 0 {
		seo.AltCoverage = 100
	} else {
		seo.AltCoverage = int(math.Round(float64(seo.ImagesWithAlt) / float64(seo.ImageCount) * 100))
	}

	seo.SchemaTypes = extractSchemaTypes(doc, rawHTML)

	seo.IsHTTPS = pageURL != nil && pageURL.Scheme == "https"
	seo.HasSitemapReference = strings.Contains(strings.ToLower(rawHTML), "sitemap.xml") ||
		doc.Find(`link[rel="sitemap"]`).Length() > 0

	seo.Language = strings.TrimSpace(doc.Find("html").AttrOr("lang", ""))

	return seo
}

// extractSchemaTypes collects every @type value from JSON-LD blocks,
// skipping blocks that fail to parse, plus inline itemtype attributes.
func extractSchemaTypes(doc *goquery.Document, rawHTML string) []string {
	types := []string{}
	seen := make(map[string]bool)

	add := func(t string) {
		t = strings.TrimSpace(t)
		if t != "" && !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var data interface{}
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			// Malformed blocks are skipped, not fatal
			return
		}
		collectTypes(data, add)
	})

	for _, m := range itemtypeRe.FindAllStringSubmatch(rawHTML, -1) {
		add(m[1])
	}

	return types
}

// collectTypes walks decoded JSON-LD picking up @type values, which may
// be single strings or lists. Map keys are visited in sorted order so
// the resulting type list is stable.
func collectTypes(data interface{}, add func(string)) {
	switch v := data.(type) {
	case map[string]interface{}:
		if t, ok := v["@type"]; ok {
			switch tv := t.(type) {
			case string:
				add(tv)
			case []interface{}:
				for _, item := range tv {
					if s, ok := item.(string); ok {
						add(s)
					}
				}
			}
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if k == "@type" {
				continue
			}
			collectTypes(v[k], add)
		}
	case []interface{}:
		for _, item := range v {
			collectTypes(item, add)
		}
	}
}
