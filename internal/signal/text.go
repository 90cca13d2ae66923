package signal

import (
	"strings"

	"givewise/internal/domain"
)

// TextExtractor is a deterministic keyword-lexicon implementation of
// Provider. It stands in for a real NLP service: good enough to exercise the
// personality and driver paths, cheap enough to run on every request.
type TextExtractor struct{}

var personalityKeywords = []struct {
	trait    string
	keywords []string
}{
	{"empathetic", []string{"care", "help", "compassion", "support", "kindness", "love"}},
	{"analytical", []string{"data", "research", "evidence", "facts", "analysis", "study"}},
	{"activist", []string{"change", "fight", "justice", "rights", "action", "movement"}},
	{"community-oriented", []string{"together", "community", "local", "neighborhood", "family"}},
	{"global-minded", []string{"world", "global", "international", "humanity", "planet"}},
}

var emotionalPatterns = []struct {
	driver   string
	patterns []string
}{
	{"injustice", []string{"unfair", "wrong", "injustice", "inequality"}},
	{"empathy", []string{"feel", "heart", "compassion", "care"}},
	{"hope", []string{"future", "better", "hope", "change"}},
	{"responsibility", []string{"duty", "should", "must", "responsibility"}},
}

var positiveWords = []string{"love", "hope", "better", "good", "great", "help", "care", "happy"}

var negativeWords = []string{"unfair", "wrong", "sad", "angry", "bad", "suffering", "crisis"}

var keywordStopwords = map[string]bool{
	"that": true, "this": true, "have": true, "been": true,
	"will": true, "they": true, "there": true, "with": true,
	"about": true, "what": true, "when": true, "because": true,
}

const maxKeywords = 10

// Extract derives keywords, a crude sentiment score, personality trait
// weights, and emotional drivers from free text. Empty text yields nil.
func (TextExtractor) Extract(freeText string) *domain.SignalBundle {
	cleaned := cleanText(freeText)
	if cleaned == "" {
		return nil
	}
	words := strings.Fields(cleaned)

	return &domain.SignalBundle{
		Keywords:          extractKeywords(words),
		Sentiment:         scoreSentiment(words),
		PersonalityTraits: scoreTraits(cleaned),
		EmotionalDrivers:  extractDrivers(cleaned),
	}
}

// cleanText lowercases and strips everything but letters and spaces.
func cleanText(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || r == ' ' || r == '\n' || r == '\t' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// extractKeywords keeps meaningful terms in first-seen order, capped at
// maxKeywords. Short words and stopwords are dropped.
func extractKeywords(words []string) []string {
	seen := make(map[string]bool, len(words))
	var keywords []string
	for _, w := range words {
		if len(w) <= 3 || keywordStopwords[w] || seen[w] {
			continue
		}
		seen[w] = true
		keywords = append(keywords, w)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

func scoreSentiment(words []string) float64 {
	var score float64
	for _, w := range words {
		for _, p := range positiveWords {
			if w == p {
				score++
			}
		}
		for _, n := range negativeWords {
			if w == n {
				score--
			}
		}
	}
	if len(words) == 0 {
		return 0
	}
	s := score / float64(len(words)) * 10
	if s > 1 {
		return 1
	}
	if s < -1 {
		return -1
	}
	return s
}

func scoreTraits(text string) map[string]float64 {
	traits := make(map[string]float64, len(personalityKeywords))
	for _, pk := range personalityKeywords {
		matches := 0
		for _, kw := range pk.keywords {
			if strings.Contains(text, kw) {
				matches++
			}
		}
		traits[pk.trait] = float64(matches) / float64(len(pk.keywords))
	}
	return traits
}

func extractDrivers(text string) []string {
	var drivers []string
	for _, ep := range emotionalPatterns {
		for _, pattern := range ep.patterns {
			if strings.Contains(text, pattern) {
				drivers = append(drivers, ep.driver)
				break
			}
		}
	}
	return drivers
}
