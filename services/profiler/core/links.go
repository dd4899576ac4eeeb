package core

import (
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitelens/website-profiler/pkg/models"
)

const (
	maxBrokenCandidates = 5
	maxAnchorTexts      = 10
	maxAnchorTextLength = 100
	orphanRiskThreshold = 5
)

// analyzeLinks classifies every anchor on the page as internal,
// external, or a broken-link candidate, then derives structural metrics
// from the classification. Broken candidates are excluded from the
// internal/external totals.
func analyzeLinks(doc *goquery.Document, pageURL *url.URL) models.LinkMetrics {
	metrics := models.LinkMetrics{
		BrokenCandidates: []string{},
		TopAnchorTexts:   []models.AnchorText{},
	}

	host := strings.ToLower(pageURL.Hostname())
	internalSeen := make(map[string]struct{})
	externalSeen := make(map[string]struct{})
	anchorCounts := make(map[string]int)
	maxDepth := 0

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)

		if isBrokenCandidate(href) {
			if len(metrics.BrokenCandidates) < maxBrokenCandidates {
				metrics.BrokenCandidates = append(metrics.BrokenCandidates, href)
			}
			return
		}

		if text := strings.TrimSpace(sel.Text()); text != "" && len(text) < maxAnchorTextLength {
			anchorCounts[text]++
		}

		if isExternal(href, host) {
			metrics.ExternalTotal++
			externalSeen[href] = struct{}{}
			return
		}

		metrics.InternalTotal++
		internalSeen[href] = struct{}{}
		if d := pathDepth(href); d > maxDepth {
			maxDepth = d
		}
	})

	metrics.InternalUnique = len(internalSeen)
	metrics.ExternalUnique = len(externalSeen)
	metrics.MaxPathDepth = maxDepth
	metrics.TopAnchorTexts = rankAnchors(anchorCounts)

	sections := doc.Find("section, article, main").Length()
	if sections < 1 {
		sections = 1
	}
	metrics.LinksPerSection = round2(float64(metrics.InternalTotal) / float64(sections))

	metrics.HasNavLinks = doc.Find("nav a").Length() > 0
	metrics.HasFooterLinks = doc.Find("footer a").Length() > 0
	metrics.OrphanRisk = metrics.InternalUnique < orphanRiskThreshold

	return metrics
}

// isBrokenCandidate reports hrefs that cannot lead anywhere: empty,
// bare fragment, or javascript pseudo-links.
func isBrokenCandidate(href string) bool {
	if href == "" || href == "#" {
		return true
	}
	return strings.HasPrefix(strings.ToLower(href), "javascript:")
}

// isExternal reports whether the href points off-site: an absolute
// http(s) URL that does not contain the page's own domain. Everything
// else (relative paths, fragments, mailto:, tel:) counts as internal.
func isExternal(href, host string) bool {
	lower := strings.ToLower(href)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return false
	}
	return host == "" || !strings.Contains(lower, host)
}

// pathDepth counts non-empty path segments of the href.
func pathDepth(href string) int {
	u, err := url.Parse(href)
	if err != nil {
		return 0
	}
	depth := 0
	for _, seg := range strings.Split(u.Path, "/") {
		if seg != "" {
			depth++
		}
	}
	return depth
}

func rankAnchors(counts map[string]int) []models.AnchorText {
	anchors := make([]models.AnchorText, 0, len(counts))
	for text, count := range counts {
		anchors = append(anchors, models.AnchorText{Text: text, Count: count})
	}

	sort.Slice(anchors, func(i, j int) bool {
		if anchors[i].Count != anchors[j].Count {
			return anchors[i].Count > anchors[j].Count
		}
		return anchors[i].Text < anchors[j].Text
	})

	if len(anchors) > maxAnchorTexts {
		anchors = anchors[:maxAnchorTexts]
	}
	return anchors
}
