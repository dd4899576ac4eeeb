package core

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sitelens/website-profiler/pkg/models"
)

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word     string
		expected int
	}{
		{"a", 1},
		{"cat", 1},
		{"dog", 1},
		{"hello", 2},
		{"make", 1},
		{"jumped", 1},
		{"makes", 1},
		{"yellow", 2},
		{"rhythm", 1},
		{"beautiful", 3},
		{"education", 4},
		{"", 1},
		{"x9!", 1},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.expected, countSyllables(tt.word))
		})
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{
			name:     "short fragments dropped",
			text:     "Hi there. This is a longer sentence for sure! Right. What is happening here?",
			expected: 2,
		},
		{
			name:     "empty text",
			text:     "",
			expected: 0,
		},
		{
			name:     "no terminal punctuation",
			text:     "a single run of text without any stops",
			expected: 1,
		},
		{
			name:     "multiple terminators",
			text:     "First real sentence here. Second real sentence here! Third real sentence here?",
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, splitSentences(tt.text), tt.expected)
		})
	}
}

func TestFleschScore_Monotonicity(t *testing.T) {
	// Same word and sentence counts, only syllable load differs
	simple := []string{"cat", "dog", "hat", "run", "sun", "fun"}
	dense := []string{"education", "beautiful", "organization", "responsibility", "university", "information"}

	simpleScore := fleschScore(simple, 1)
	denseScore := fleschScore(dense, 1)

	assert.LessOrEqual(t, denseScore, simpleScore,
		"more syllables per word must not raise the score")
}

func TestFleschScore_Clamped(t *testing.T) {
	assert.Equal(t, float64(0), fleschScore(nil, 1))

	easy := fleschScore([]string{"the", "cat", "sat"}, 1)
	assert.Equal(t, float64(100), easy, "trivial text clamps to the top")

	hard := make([]string, 0, 60)
	for i := 0; i < 60; i++ {
		hard = append(hard, "incomprehensibility")
	}
	assert.Equal(t, float64(0), fleschScore(hard, 1), "dense text clamps to the floor")
}

func TestBandScore(t *testing.T) {
	tests := []struct {
		score float64
		band  models.ReadabilityBand
		label string
	}{
		{95, models.ReadabilityEasy, "5th Grade"},
		{80, models.ReadabilityEasy, "5th Grade"},
		{79.9, models.ReadabilityEasy, "6th-7th Grade"},
		{60, models.ReadabilityEasy, "6th-7th Grade"},
		{59.9, models.ReadabilityStandard, "8th-9th Grade"},
		{50, models.ReadabilityStandard, "8th-9th Grade"},
		{49.9, models.ReadabilityStandard, "10th-12th Grade"},
		{30, models.ReadabilityStandard, "10th-12th Grade"},
		{29.9, models.ReadabilityDifficult, "College Level"},
		{0, models.ReadabilityDifficult, "College Level"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%.1f", tt.score), func(t *testing.T) {
			band, label := bandScore(tt.score)
			assert.Equal(t, tt.band, band)
			assert.Equal(t, tt.label, label)
		})
	}
}

func TestTopKeywords(t *testing.T) {
	words := strings.Fields("widgets widgets widgets quality quality the the the cat cat once")

	keywords := topKeywords(words)

	assert.Len(t, keywords, 2)
	assert.Equal(t, "widgets", keywords[0].Keyword)
	assert.Equal(t, 3, keywords[0].Count)
	assert.InDelta(t, 27.27, keywords[0].Percent, 0.001)
	assert.Equal(t, "quality", keywords[1].Keyword)
	assert.Equal(t, 2, keywords[1].Count)
	assert.InDelta(t, 18.18, keywords[1].Percent, 0.001)
}

func TestTopKeywords_Rules(t *testing.T) {
	t.Run("ties break alphabetically", func(t *testing.T) {
		keywords := topKeywords(strings.Fields("zebra zebra apple apple"))
		assert.Equal(t, "apple", keywords[0].Keyword)
		assert.Equal(t, "zebra", keywords[1].Keyword)
	})

	t.Run("punctuation stripped before counting", func(t *testing.T) {
		keywords := topKeywords(strings.Fields("Widgets, widgets!"))
		assert.Len(t, keywords, 1)
		assert.Equal(t, "widgets", keywords[0].Keyword)
		assert.Equal(t, 2, keywords[0].Count)
	})

	t.Run("single occurrences dropped", func(t *testing.T) {
		assert.Empty(t, topKeywords(strings.Fields("unique words only here")))
	})

	t.Run("capped at fifteen", func(t *testing.T) {
		var b strings.Builder
		for i := 0; i < 20; i++ {
			word := fmt.Sprintf("keyword%c", 'a'+i)
			b.WriteString(word + " " + word + " ")
		}
		assert.Len(t, topKeywords(strings.Fields(b.String())), 15)
	})
}

func TestAnalyzeContent_EmptyText(t *testing.T) {
	doc := mustDoc(t, `<html><body></body></html>`)

	metrics := analyzeContent("", doc)

	assert.Equal(t, 0, metrics.WordCount)
	assert.Equal(t, 1, metrics.SentenceCount, "sentence count floors at 1")
	assert.Equal(t, 0, metrics.ParagraphCount)
	assert.Equal(t, float64(0), metrics.AvgWordsPerSentence)
	assert.Equal(t, float64(0), metrics.AvgSentencesPerParagraph)
	assert.Equal(t, float64(0), metrics.ReadabilityScore)
	assert.Equal(t, models.ReadabilityDifficult, metrics.ReadabilityBand)
	assert.Equal(t, "College Level", metrics.GradeLabel)
	assert.NotNil(t, metrics.TopKeywords)
	assert.Empty(t, metrics.TopKeywords)
}

func TestAnalyzeContent_Counts(t *testing.T) {
	long := "The quick brown fox jumps over the lazy dog while seventeen other animals watch from behind the old wooden fence near the quiet river bank today"
	mid := "We build useful tools for web developers working in small teams across many countries"
	short := "Nice day today"
	text := long + ". " + mid + ". " + short + "."

	doc := mustDoc(t, `<html><body><p>one</p><p>two</p></body></html>`)

	metrics := analyzeContent(text, doc)

	assert.Equal(t, 43, metrics.WordCount)
	assert.Equal(t, 3, metrics.SentenceCount)
	assert.Equal(t, 2, metrics.ParagraphCount)
	assert.Equal(t, 1, metrics.LongSentences)
	assert.Equal(t, 1, metrics.ShortSentences)
	assert.InDelta(t, 14.33, metrics.AvgWordsPerSentence, 0.001)
	assert.InDelta(t, 1.5, metrics.AvgSentencesPerParagraph, 0.001)
	assert.GreaterOrEqual(t, metrics.ReadabilityScore, float64(0))
	assert.LessOrEqual(t, metrics.ReadabilityScore, float64(100))
}
