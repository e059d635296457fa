// Package keywords extracts ranked keywords from job description text.
package keywords

import (
	"strings"
	"unicode"
)

// MaxKeywords is the number of keywords kept from a job description.
const MaxKeywords = 10

// MaxDisplayKeywords is the number of keywords surfaced in API responses.
const MaxDisplayKeywords = 8

// stopwords are common English function words excluded from extraction.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "had": true,
	"her": true, "was": true, "one": true, "our": true, "out": true,
	"day": true, "get": true, "has": true, "him": true, "his": true,
	"how": true, "man": true, "new": true, "now": true, "old": true,
	"see": true, "two": true, "way": true, "who": true, "boy": true,
	"did": true, "its": true, "let": true, "put": true, "say": true,
	"she": true, "too": true, "use": true, "will": true, "with": true,
}

// domainTerms mark a token as relevant regardless of length. Tokens of four or
// more characters pass anyway, so in practice this list only rescues "css".
// Kept as-is to preserve the established extraction behavior.
var domainTerms = []string{
	"react", "javascript", "typescript", "css", "html", "frontend",
	"developer", "experience", "application", "framework", "responsive",
	"design", "tailwind",
}

// techTerms identify the keywords the enhancer is allowed to inject.
var techTerms = []string{"react", "typescript", "javascript", "css", "tailwind"}

// Extract returns up to MaxKeywords capitalized keywords from the job
// description, deduplicated in first-seen order. Empty input yields nil.
func Extract(jobDescription string) []string {
	tokens := tokenize(strings.ToLower(jobDescription))

	seen := make(map[string]bool)
	var result []string
	for _, tok := range tokens {
		if stopwords[tok] {
			continue
		}
		if !isDomainTerm(tok) && len(tok) < 4 {
			continue
		}
		if seen[tok] {
			continue
		}
		seen[tok] = true
		result = append(result, capitalize(tok))
		if len(result) == MaxKeywords {
			break
		}
	}
	return result
}

// TechSubset filters keywords down to the ones the enhancer may inject into
// summary, skills, and experience sections.
func TechSubset(kws []string) []string {
	var tech []string
	for _, kw := range kws {
		lower := strings.ToLower(kw)
		for _, term := range techTerms {
			if strings.Contains(lower, term) {
				tech = append(tech, kw)
				break
			}
		}
	}
	return tech
}

// Display truncates a keyword list to the response limit.
func Display(kws []string) []string {
	if len(kws) > MaxDisplayKeywords {
		return kws[:MaxDisplayKeywords]
	}
	return kws
}

// tokenize scans out runs of 3+ alphabetic characters.
func tokenize(text string) []string {
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() >= 3 {
			tokens = append(tokens, b.String())
		}
		b.Reset()
	}
	for _, r := range text {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

func isDomainTerm(tok string) bool {
	for _, term := range domainTerms {
		if strings.Contains(tok, term) {
			return true
		}
	}
	return false
}

func capitalize(tok string) string {
	r := []rune(tok)
	if len(r) == 0 {
		return tok
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
