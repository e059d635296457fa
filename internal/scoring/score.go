// Package scoring computes the bounded keyword match score for a tailored
// resume.
package scoring

import (
	"math"
	"strings"
)

// Score bounds. The empty-keyword value and the clamp range are presentation
// constants carried over from the product; they are not a true percentage.
const (
	emptyKeywordScore = 60
	minScore          = 50
	maxScore          = 95
)

// MatchScore counts how many keywords appear in the resume text
// (case-insensitive substring match) and maps the ratio onto [minScore,
// maxScore]. An empty keyword set always scores emptyKeywordScore.
func MatchScore(keywords []string, resumeText string) int {
	if len(keywords) == 0 {
		return emptyKeywordScore
	}

	textLower := strings.ToLower(resumeText)
	matched := 0
	for _, kw := range keywords {
		if strings.Contains(textLower, strings.ToLower(kw)) {
			matched++
		}
	}

	raw := int(math.Round(100 * float64(matched) / float64(len(keywords))))
	if raw < minScore {
		return minScore
	}
	if raw > maxScore {
		return maxScore
	}
	return raw
}
