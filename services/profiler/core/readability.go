package core

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitelens/website-profiler/pkg/models"
)

const (
	longSentenceWords  = 25
	shortSentenceWords = 10
	minSentenceChars   = 10
	syllableSampleSize = 500
	maxKeywords        = 15
	minKeywordCount    = 2
)

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "of": {}, "to": {}, "in": {}, "a": {}, "for": {}, "is": {}, "on": {}, "with": {}, "as": {},
	"by": {}, "at": {}, "from": {}, "that": {}, "this": {}, "it": {}, "an": {}, "be": {}, "or": {}, "are": {}, "was": {},
	"will": {}, "has": {}, "have": {}, "had": {}, "but": {}, "not": {}, "your": {}, "you": {}, "we": {}, "our": {},
	"they": {}, "their": {}, "them": {}, "there": {}, "what": {}, "when": {}, "which": {}, "would": {}, "about": {},
	"into": {}, "also": {}, "other": {}, "more": {}, "can": {}, "all": {}, "been": {}, "than": {}, "were": {}, "its": {},
}

// analyzeContent derives word/sentence statistics, the readability
// score, and keyword densities from the content text. Paragraphs are
// counted from <p> blocks in the original document, not the plain text.
func analyzeContent(text string, doc *goquery.Document) models.ContentMetrics {
	metrics := models.ContentMetrics{
		TopKeywords: []models.KeywordDensity{},
	}

	words := strings.Fields(text)
	metrics.WordCount = len(words)

	sentences := splitSentences(text)
	metrics.SentenceCount = len(sentences)
	// Floor of 1 to avoid division by zero downstream
	if metrics.SentenceCount < 1 {
		metrics.SentenceCount = 1
	}

	metrics.ParagraphCount = doc.Find("p").Length()

	for _, s := range sentences {
		n := len(strings.Fields(s))
		if n > longSentenceWords {
			metrics.LongSentences++
		}
		if n < shortSentenceWords {
			metrics.ShortSentences++
		}
	}

	metrics.AvgWordsPerSentence = round2(float64(metrics.WordCount) / float64(metrics.SentenceCount))
	if metrics.ParagraphCount > 0 {
		metrics.AvgSentencesPerParagraph = round2(float64(metrics.SentenceCount) / float64(metrics.ParagraphCount))
	}

	metrics.ReadabilityScore = fleschScore(words, metrics.SentenceCount)
	metrics.ReadabilityBand, metrics.GradeLabel = bandScore(metrics.ReadabilityScore)

	metrics.TopKeywords = topKeywords(words)

	return metrics
}

// splitSentences splits on terminal punctuation, discarding fragments
// too short to be real sentences.
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) >= minSentenceChars {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// fleschScore computes the Flesch reading-ease score clamped to [0,100].
// Syllables are estimated over at most the first 500 words to bound
// cost on long pages.
func fleschScore(words []string, sentenceCount int) float64 {
	if len(words) == 0 {
		return 0
	}

	sample := words
	if len(sample) > syllableSampleSize {
		sample = sample[:syllableSampleSize]
	}

	totalSyllables := 0
	for _, w := range sample {
		totalSyllables += countSyllables(w)
	}

	syllablesPerWord := float64(totalSyllables) / float64(len(sample))
	wordsPerSentence := float64(len(words)) / float64(sentenceCount)

	score := 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord

	return math.Min(100, math.Max(0, round2(score)))
}

// countSyllables estimates syllables with a standard heuristic: short
// words count one; otherwise strip a trailing e/ed/es after a consonant
// and a leading y, then count vowel-group runs with y vocalic.
func countSyllables(word string) int {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	w := b.String()

	if len(w) <= 3 {
		return 1
	}

	switch {
	case strings.HasSuffix(w, "ed") && !isVowel(w[len(w)-3]):
		w = w[:len(w)-2]
	case strings.HasSuffix(w, "es") && !isVowel(w[len(w)-3]):
		w = w[:len(w)-2]
	case strings.HasSuffix(w, "e") && !isVowel(w[len(w)-2]):
		w = w[:len(w)-1]
	}

	w = strings.TrimPrefix(w, "y")

	count := 0
	inRun := false
	for i := 0; i < len(w); i++ {
		if isVowel(w[i]) {
			if !inRun {
				count++
				inRun = true
			}
		} else {
			inRun = false
		}
	}

	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// bandScore maps a score to its band and grade label.
func bandScore(score float64) (models.ReadabilityBand, string) {
	switch {
	case score >= 80:
		return models.ReadabilityEasy, "5th Grade"
	case score >= 60:
		return models.ReadabilityEasy, "6th-7th Grade"
	case score >= 50:
		return models.ReadabilityStandard, "8th-9th Grade"
	case score >= 30:
		return models.ReadabilityStandard, "10th-12th Grade"
	default:
		return models.ReadabilityDifficult, "College Level"
	}
}

// topKeywords reports the most frequent meaningful terms. Ties sort
// alphabetically so the ranking is stable.
func topKeywords(words []string) []models.KeywordDensity {
	freq := make(map[string]int)
	for _, w := range words {
		token := normalizeToken(w)
		if len(token) <= 3 {
			continue
		}
		if _, stop := stopwords[token]; stop {
			continue
		}
		freq[token]++
	}

	candidates := make([]models.KeywordDensity, 0, len(freq))
	for token, count := range freq {
		if count < minKeywordCount {
			continue
		}
		candidates = append(candidates, models.KeywordDensity{
			Keyword: token,
			Count:   count,
			Percent: round2(float64(count) / float64(len(words)) * 100),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Count != candidates[j].Count {
			return candidates[i].Count > candidates[j].Count
		}
		return candidates[i].Keyword < candidates[j].Keyword
	})

	if len(candidates) > maxKeywords {
		candidates = candidates[:maxKeywords]
	}
	return candidates
}

// normalizeToken lower-cases a word and strips everything that is not
// a letter.
func normalizeToken(word string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
