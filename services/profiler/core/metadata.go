package core

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitelens/website-profiler/pkg/models"
)

// pageMetadata holds the descriptive fields extracted from the page head
// and markup.
type pageMetadata struct {
	title       string
	description string
	faviconURL  string
	logoURL     string
	social      models.SocialLinks
	contact     models.ContactInfo
}

// Social profile URLs can appear anywhere in the markup, not only in
// anchors, so they are matched against the raw HTML.
var (
	facebookRe  = regexp.MustCompile(`https?://(?:www\.)?facebook\.com/[A-Za-z0-9_.\-]+`)
	twitterRe   = regexp.MustCompile(`https?://(?:www\.)?(?:twitter\.com|x\.com)/[A-Za-z0-9_]+`)
	linkedinRe  = regexp.MustCompile(`https?://(?:www\.)?linkedin\.com/(?:company|in|school)/[A-Za-z0-9_\-%.]+`)
	instagramRe = regexp.MustCompile(`https?://(?:www\.)?instagram\.com/[A-Za-z0-9_.]+`)
	youtubeRe   = regexp.MustCompile(`https?://(?:www\.)?youtube\.com/(?:channel/|c/|user/|@)[A-Za-z0-9_.\-]+`)
	tiktokRe    = regexp.MustCompile(`https?://(?:www\.)?tiktok\.com/@[A-Za-z0-9_.]+`)
)

// extractMetadata pulls title, description, favicon, logo, social
// profiles, and contact details. Open Graph tags win over generic tags
// when both exist.
func extractMetadata(doc *goquery.Document, rawHTML string, base *url.URL) pageMetadata {
	meta := pageMetadata{}

	meta.title = strings.TrimSpace(doc.Find(`meta[property="og:title"]`).AttrOr("content", ""))
	if meta.title == "" {
		meta.title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	meta.description = strings.TrimSpace(doc.Find(`meta[property="og:description"]`).AttrOr("content", ""))
	if meta.description == "" {
		meta.description = strings.TrimSpace(doc.Find(`meta[name="description"]`).AttrOr("content", ""))
	}

	icon := doc.Find(`link[rel="icon"], link[rel="shortcut icon"], link[rel="apple-touch-icon"]`).First().AttrOr("href", "")
	if icon == "" {
		icon = "/favicon.ico"
	}
	meta.faviconURL = resolveURL(base, icon)

	if ogImage := doc.Find(`meta[property="og:image"]`).AttrOr("content", ""); ogImage != "" {
		meta.logoURL = resolveURL(base, ogImage)
	}

	meta.social = findSocialLinks(rawHTML)
	meta.contact = findContactInfo(doc, rawHTML)

	return meta
}

// findSocialLinks matches the first profile URL per platform.
func findSocialLinks(rawHTML string) models.SocialLinks {
	return models.SocialLinks{
		Facebook:  facebookRe.FindString(rawHTML),
		Twitter:   twitterRe.FindString(rawHTML),
		LinkedIn:  linkedinRe.FindString(rawHTML),
		Instagram: instagramRe.FindString(rawHTML),
		YouTube:   youtubeRe.FindString(rawHTML),
		TikTok:    tiktokRe.FindString(rawHTML),
	}
}

// findContactInfo extracts email and phone from mailto:/tel: links and
// a best-effort postal address.
func findContactInfo(doc *goquery.Document, rawHTML string) models.ContactInfo {
	contact := models.ContactInfo{}

	if href, ok := doc.Find(`a[href^="mailto:"]`).First().Attr("href"); ok {
		email := strings.TrimPrefix(href, "mailto:")
		if i := strings.IndexByte(email, '?'); i >= 0 {
			email = email[:i]
		}
		contact.Email = strings.TrimSpace(email)
	}

	if href, ok := doc.Find(`a[href^="tel:"]`).First().Attr("href"); ok {
		contact.Phone = strings.TrimSpace(strings.TrimPrefix(href, "tel:"))
	}

	contact.Address = findAddress(rawHTML)

	return contact
}

// resolveURL resolves href against the page origin, returning href
// unchanged when it is already absolute.
func resolveURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if base == nil {
		return u.String()
	}
	return base.ResolveReference(u).String()
}
