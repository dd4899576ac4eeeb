package core

import (
	"fmt"
	"strings"

	"github.com/sitelens/website-profiler/pkg/models"
)

const (
	minSummaryLength   = 200
	maxMarkerSentences = 3
)

// serviceMarkers flag sentences written in a first-person or
// service-oriented voice. Leading/trailing spaces bind them to word
// boundaries.
var serviceMarkers = []string{
	"we ", "our ", " provide", " offer", " specialize", " help", " service", " solution", " deliver",
}

var categoryDisplay = map[models.Category]string{
	models.CategoryEcommerce:            "e-commerce",
	models.CategorySaaS:                 "SaaS",
	models.CategoryLocalBusiness:        "local business",
	models.CategoryBlogMedia:            "media and publishing",
	models.CategoryProfessionalServices: "professional services",
	models.CategoryHealthcare:           "healthcare",
	models.CategoryFinance:              "financial services",
	models.CategoryEducation:            "education",
	models.CategoryRealEstate:           "real estate",
	models.CategoryHospitality:          "hospitality",
	models.CategoryNonprofit:            "nonprofit",
	models.CategoryTechnology:           "technology",
	models.CategoryOther:                "general",
}

var categoryContext = map[models.Category]string{
	models.CategoryEcommerce:            "The site is set up for online shopping, with products available to browse and purchase.",
	models.CategorySaaS:                 "The site promotes a software product offered on a subscription or self-serve basis.",
	models.CategoryLocalBusiness:        "The site serves a local customer base and highlights ways to visit or get in touch.",
	models.CategoryBlogMedia:            "The site publishes articles and editorial content for its readership on a recurring basis.",
	models.CategoryProfessionalServices: "The site markets professional expertise and invites prospective clients to make contact.",
	models.CategoryHealthcare:           "The site provides information for patients and promotes health-related services.",
	models.CategoryFinance:              "The site covers financial products or services and offers related guidance.",
	models.CategoryEducation:            "The site offers learning resources, courses, or programs for students and learners.",
	models.CategoryRealEstate:           "The site lists properties and supports buyers, sellers, or renters in their search.",
	models.CategoryHospitality:          "The site promotes accommodation or dining options and encourages reservations.",
	models.CategoryNonprofit:            "The site advances a charitable mission and invites donations or volunteering.",
	models.CategoryTechnology:           "The site showcases technology capabilities, products, or engineering work.",
	models.CategoryOther:                "The site presents a general overview of the organization and what it does.",
}

const summaryClosing = "Visit the website directly to learn more about what they do, the services on offer, and how to get in touch with them."

// buildSummary assembles a deterministic template-based paragraph:
// lead sentence, meta description, up to three service-oriented body
// sentences, and a category context sentence. A generic closing is
// appended when the result falls short of the minimum length.
func buildSummary(title, description, text string, category models.Category) string {
	display := categoryDisplay[category]
	parts := make([]string, 0, 6)

	if title != "" {
		parts = append(parts, fmt.Sprintf("%s is a website in the %s category.", title, display))
	} else {
		parts = append(parts, fmt.Sprintf("This website falls in the %s category.", display))
	}

	if description != "" {
		parts = append(parts, description)
	}

	added := 0
	for _, sentence := range splitSentences(text) {
		if added >= maxMarkerSentences {
			break
		}
		if !hasServiceMarker(sentence) {
			continue
		}
		if strings.Contains(strings.Join(parts, " "), sentence) {
			continue
		}
		parts = append(parts, sentence+".")
		added++
	}

	parts = append(parts, categoryContext[category])

	summary := strings.Join(parts, " ")
	if len(summary) < minSummaryLength {
		summary += " " + summaryClosing
	}
	return summary
}

func hasServiceMarker(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, marker := range serviceMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
