package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordDensity(t *testing.T) {
	kd := KeywordDensity{
		Keyword: "coffee",
		Count:   12,
		Percent: 2.4,
	}

	assert.Equal(t, "coffee", kd.Keyword)
	assert.Equal(t, 12, kd.Count)
	assert.Equal(t, 2.4, kd.Percent)
}

func TestAnchorText(t *testing.T) {
	at := AnchorText{
		Text:  "Read more",
		Count: 3,
	}

	assert.Equal(t, "Read more", at.Text)
	assert.Equal(t, 3, at.Count)
}

func TestCategoryConstants(t *testing.T) {
	categories := []Category{
		CategoryEcommerce,
		CategorySaaS,
		CategoryLocalBusiness,
		CategoryBlogMedia,
		CategoryProfessionalServices,
		CategoryHealthcare,
		CategoryFinance,
		CategoryEducation,
		CategoryRealEstate,
		CategoryHospitality,
		CategoryNonprofit,
		CategoryTechnology,
		CategoryOther,
	}

	seen := make(map[Category]bool)
	for _, c := range categories {
		assert.NotEmpty(t, string(c))
		assert.False(t, seen[c], "duplicate category %q", c)
		seen[c] = true
	}
	assert.Len(t, seen, 13)
}

// A zero-value profile must serialize with every field present, so
// consumers never need to null-check facets.
func TestWebsiteProfileZeroValueSerialization(t *testing.T) {
	var profile WebsiteProfile
	profile.DetectedCategory = CategoryOther

	data, err := json.Marshal(profile)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{
		"url", "title", "description", "favicon_url", "logo_url",
		"social_links", "contact_info", "detected_category", "summary",
		"technical_seo", "content_metrics", "link_metrics", "local_seo_signals",
	} {
		_, ok := decoded[key]
		assert.True(t, ok, "missing key %q", key)
	}

	assert.Equal(t, "other", decoded["detected_category"])

	social, ok := decoded["social_links"].(map[string]interface{})
	require.True(t, ok)
	for _, platform := range []string{"facebook", "twitter", "linkedin", "instagram", "youtube", "tiktok"} {
		_, ok := social[platform]
		assert.True(t, ok, "missing platform %q", platform)
	}
}

func TestTechnicalSeoFields(t *testing.T) {
	seo := TechnicalSeo{
		HasTitle:                  true,
		H1Count:                   1,
		H1Texts:                   []string{"Welcome"},
		HasProperHeadingHierarchy: true,
		ImageCount:                4,
		ImagesWithAlt:             3,
		AltCoverage:               75,
		IsHTTPS:                   true,
		Language:                  "en",
	}

	assert.True(t, seo.HasTitle)
	assert.Equal(t, 1, seo.H1Count)
	assert.Equal(t, []string{"Welcome"}, seo.H1Texts)
	assert.True(t, seo.HasProperHeadingHierarchy)
	assert.Equal(t, 75, seo.AltCoverage)
	assert.True(t, seo.IsHTTPS)
	assert.Equal(t, "en", seo.Language)
}
