package core

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitelens/website-profiler/pkg/models"
)

// Schema.org types that identify a local business.
var localSchemaTypes = []string{
	"LocalBusiness",
	"Restaurant",
	"Store",
	"MedicalBusiness",
	"Dentist",
	"Physician",
	"LegalService",
	"RealEstateAgent",
	"AutomotiveBusiness",
}

var (
	streetAddressRe = regexp.MustCompile(`"streetAddress"\s*:\s*"([^"]+)"`)
	streetSuffixRe  = regexp.MustCompile(`\d{1,5}\s+[A-Z][A-Za-z.'-]*(?:\s+[A-Z][A-Za-z.'-]*){0,3}\s+(?:Street|St\.?|Avenue|Ave\.?|Boulevard|Blvd\.?|Road|Rd\.?|Drive|Dr\.?|Lane|Ln\.?|Way|Court|Ct\.?|Place|Pl\.?)\b`)
	jsonPhoneRe     = regexp.MustCompile(`"telephone"\s*:\s*"([^"]+)"`)
	barePhoneRe     = regexp.MustCompile(`(?:\+?\d{1,3}[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
	openingHoursRe  = regexp.MustCompile(`"openingHours(?:Specification)?"\s*:\s*(?:"([^"]+)"|\[\s*"([^"]+)")`)
	inlineHoursRe   = regexp.MustCompile(`(?i)\b\d{1,2}(?::\d{2})?\s*(?:am|pm)\s*(?:-|–|to)\s*\d{1,2}(?::\d{2})?\s*(?:am|pm)\b`)
	serviceAreaRe   = regexp.MustCompile(`(?i)(?:service areas?|areas? we serve|proudly serving|we serve|serving)[:\s]+([^<.!?]{3,100})`)
	listingRe       = regexp.MustCompile(`https?://(?:www\.)?(?:google\.[a-z.]+/maps/place/[^\s"'<>]+|g\.page/[^\s"'<>]+|yelp\.com/biz/[^\s"'<>]+)`)
)

var reviewKeywords = []string{"review", "testimonial", "rating"}

// detectLocalSignals scans for local-business indicators. Pattern
// precedence: structured data first, inline text patterns as fallback.
// NAP consistency only means both an address and a phone were found
// somewhere on the page.
func detectLocalSignals(doc *goquery.Document, rawHTML, text string, schemaTypes []string) models.LocalSeoSignals {
	signals := models.LocalSeoSignals{}

	signals.Address = findAddress(rawHTML)
	signals.HasAddress = signals.Address != ""

	signals.Phone = findLocalPhone(doc, rawHTML, text)
	signals.HasPhone = signals.Phone != ""

	signals.Hours = findHours(rawHTML, text)
	signals.HasHours = signals.Hours != ""

	signals.LocalSchemaType = findLocalSchema(rawHTML, schemaTypes)
	signals.HasLocalSchema = signals.LocalSchemaType != ""

	signals.HasMapEmbed = strings.Contains(rawHTML, "google.com/maps") ||
		strings.Contains(rawHTML, "maps.googleapis.com")

	if m := serviceAreaRe.FindStringSubmatch(text); m != nil {
		signals.HasServiceArea = true
		signals.ServiceAreaText = strings.TrimSpace(m[1])
	}

	signals.NapConsistent = signals.HasAddress && signals.HasPhone
	signals.HasReviews = hasReviewSignals(text)

	if m := listingRe.FindString(rawHTML); m != "" {
		signals.HasBusinessListing = true
		signals.BusinessListingURL = m
	}

	return signals
}

// findAddress prefers a structured-data streetAddress over a generic
// street-suffix pattern.
func findAddress(raw string) string {
	if m := streetAddressRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(streetSuffixRe.FindString(raw))
}

// findLocalPhone prefers a tel: link, then a structured-data telephone
// field, then a bare digit pattern in the visible text.
func findLocalPhone(doc *goquery.Document, rawHTML, text string) string {
	phone := ""
	doc.Find(`a[href^="tel:"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		phone = strings.TrimSpace(strings.TrimPrefix(href, "tel:"))
		return false
	})
	if phone != "" {
		return phone
	}

	if m := jsonPhoneRe.FindStringSubmatch(rawHTML); m != nil {
		return strings.TrimSpace(m[1])
	}

	return strings.TrimSpace(barePhoneRe.FindString(text))
}

// findHours prefers structured-data openingHours over an inline
// am/pm range in the visible text.
func findHours(rawHTML, text string) string {
	if m := openingHoursRe.FindStringSubmatch(rawHTML); m != nil {
		for _, group := range m[1:] {
			if group != "" {
				return strings.TrimSpace(group)
			}
		}
	}
	return strings.TrimSpace(inlineHoursRe.FindString(text))
}

// findLocalSchema returns the first local-business type present in the
// already-extracted schema types, falling back to a raw markup scan.
func findLocalSchema(rawHTML string, schemaTypes []string) string {
	for _, local := range localSchemaTypes {
		for _, found := range schemaTypes {
			if found == local {
				return local
			}
		}
	}
	for _, local := range localSchemaTypes {
		if strings.Contains(rawHTML, "schema.org/"+local) {
			return local
		}
	}
	return ""
}

func hasReviewSignals(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range reviewKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return strings.ContainsRune(text, '★')
}
