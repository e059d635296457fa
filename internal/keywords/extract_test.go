package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_CapsAndDedupes(t *testing.T) {
	job := "We need React react REACT developers with experience in JavaScript, " +
		"TypeScript, CSS, HTML, Tailwind, testing, performance, accessibility, " +
		"tooling, bundlers, and mentoring"

	kws := Extract(job)

	assert.LessOrEqual(t, len(kws), MaxKeywords)
	seen := make(map[string]bool)
	for _, kw := range kws {
		// Capitalized, no case-insensitive duplicates
		assert.Equal(t, strings.ToUpper(kw[:1]), kw[:1])
		lower := strings.ToLower(kw)
		assert.False(t, seen[lower], "duplicate keyword %q", kw)
		seen[lower] = true
	}
	assert.Contains(t, kws, "React")
}

func TestExtract_PreservesDiscoveryOrder(t *testing.T) {
	kws := Extract("Tailwind before React before JavaScript")

	assert.Equal(t, []string{"Tailwind", "Before", "React", "Javascript"}, kws)
}

func TestExtract_DropsStopwordsAndShortTokens(t *testing.T) {
	kws := Extract("the and for you all can had f ab xyz")

	// "xyz" is three letters, not a stopword, not a domain term, under the
	// four-character cutoff
	assert.Empty(t, kws)
}

func TestExtract_CSSSurvivesLengthCutoff(t *testing.T) {
	kws := Extract("css its way out")

	assert.Equal(t, []string{"Css"}, kws)
}

func TestExtract_EmptyInput(t *testing.T) {
	assert.Empty(t, Extract(""))
	assert.Empty(t, Extract("   \n  "))
}

func TestExtract_TruncatesToTen(t *testing.T) {
	job := "alpha bravo charlie delta echoes foxtrot golfing hotels indigo juliet kilos lima"

	kws := Extract(job)

	assert.Len(t, kws, MaxKeywords)
	assert.Equal(t, "Alpha", kws[0])
	assert.NotContains(t, kws, "Lima")
}

func TestTechSubset(t *testing.T) {
	kws := []string{"React", "Experience", "Typescript", "Design", "Tailwind", "Css"}

	tech := TechSubset(kws)

	assert.Equal(t, []string{"React", "Typescript", "Tailwind", "Css"}, tech)
}

func TestDisplay_TruncatesToEight(t *testing.T) {
	kws := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

	assert.Len(t, Display(kws), MaxDisplayKeywords)
	assert.Len(t, Display(kws[:3]), 3)
}
