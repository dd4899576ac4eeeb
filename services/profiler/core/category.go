package core

import (
	"strings"

	"github.com/sitelens/website-profiler/pkg/models"
)

const classifierTextLimit = 10000

type categoryLexicon struct {
	category models.Category
	terms    []string
}

// categoryLexicons maps each category to its characteristic terms.
// The slice order is fixed so tie-breaks are deterministic.
var categoryLexicons = []categoryLexicon{
	{models.CategoryEcommerce, []string{"shop", "cart", "checkout", "buy", "product", "store", "shipping", "order"}},
	{models.CategorySaaS, []string{"software", "platform", "dashboard", "subscription", "api", "integration", "workflow", "automation"}},
	{models.CategoryLocalBusiness, []string{"hours", "directions", "visit us", "locally owned", "family owned", "appointment", "call us", "our location"}},
	{models.CategoryBlogMedia, []string{"blog", "article", "author", "published", "read more", "posted", "editorial", "newsletter"}},
	{models.CategoryProfessionalServices, []string{"consulting", "attorney", "law firm", "accounting", "agency", "clients", "expertise", "portfolio"}},
	{models.CategoryHealthcare, []string{"patient", "doctor", "clinic", "medical", "treatment", "dental", "wellness", "appointment"}},
	{models.CategoryFinance, []string{"loan", "insurance", "investment", "banking", "mortgage", "credit", "financial", "wealth"}},
	{models.CategoryEducation, []string{"course", "student", "training", "curriculum", "school", "certification", "enroll", "tuition"}},
	{models.CategoryRealEstate, []string{"property", "listing", "real estate", "realtor", "bedrooms", "square feet", "for sale", "for rent"}},
	{models.CategoryHospitality, []string{"hotel", "restaurant", "menu", "reservation", "booking", "rooms", "dining", "guests"}},
	{models.CategoryNonprofit, []string{"donate", "volunteer", "charity", "nonprofit", "mission", "foundation", "donation", "cause"}},
	{models.CategoryTechnology, []string{"technology", "digital", "innovation", "development", "engineering", "cloud", "security", "infrastructure"}},
}

// classifyCategory scores each category by how many of its lexicon
// terms occur in the combined page text and returns the strict winner.
// A category must beat the current best to take over, so ties keep the
// earlier entry; zero matches yields "other".
func classifyCategory(text, title, description string) models.Category {
	if len(text) > classifierTextLimit {
		text = text[:classifierTextLimit]
	}
	haystack := strings.ToLower(text + " " + title + " " + description)

	best := models.CategoryOther
	bestScore := 0
	for _, lex := range categoryLexicons {
		score := 0
		for _, term := range lex.terms {
			if strings.Contains(haystack, term) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = lex.category
		}
	}
	return best
}
