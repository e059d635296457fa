package tailor

import (
	"strings"
	"unicode"
)

// Minimum sizes for summarizer output. Anything shorter is treated as a
// failed generation rather than a usable resume.
const (
	minRawLength     = 50
	minCleanedLength = 100
)

// allowedPunct is the punctuation preserved during cleaning and permitted in
// consecutive pairs by the garble detector.
const allowedPunct = ".,;:!?'\"()-/&+#@%"

// requiredMarkers are the section markers a usable summarized resume carries.
// The match is case-sensitive; output is rejected only when all are missing.
var requiredMarkers = []string{"PROFESSIONAL", "EXPERIENCE", "SKILLS"}

// CleanOutput strips non-printable and stray characters from summarizer
// output and collapses whitespace runs, preserving line breaks.
func CleanOutput(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch {
		case r == '\n':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case strings.ContainsRune(allowedPunct, r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// IsGarbled reports whether cleaned text looks like model noise rather than
// prose: long symbol runs, a 20+ character run with no spaces, or repeated
// symbols outside the punctuation allow-list.
func IsGarbled(text string) bool {
	symbolRun := 0
	disallowedRun := 0
	for _, r := range text {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			symbolRun++
			if symbolRun >= 3 {
				return true
			}
		} else {
			symbolRun = 0
		}

		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) &&
			!strings.ContainsRune(allowedPunct, r) {
			disallowedRun++
			if disallowedRun >= 2 {
				return true
			}
		} else {
			disallowedRun = 0
		}
	}

	for _, word := range strings.Fields(text) {
		if len([]rune(word)) >= 20 {
			return true
		}
	}

	return false
}

// validateOutput cleans summarizer output and decides whether it is usable.
// It returns the cleaned text, or a QualityError describing the rejection.
func validateOutput(raw string) (string, error) {
	if len(strings.TrimSpace(raw)) < minRawLength {
		return "", &QualityError{Reason: "output too short"}
	}

	cleaned := CleanOutput(raw)
	if len(cleaned) < minCleanedLength {
		return "", &QualityError{Reason: "cleaned output too short"}
	}
	if IsGarbled(cleaned) {
		return "", &QualityError{Reason: "output appears garbled"}
	}

	hasMarker := false
	for _, marker := range requiredMarkers {
		if strings.Contains(cleaned, marker) {
			hasMarker = true
			break
		}
	}
	if !hasMarker {
		return "", &QualityError{Reason: "output is missing resume section markers"}
	}

	return cleaned, nil
}
