// Package enhance rewrites parsed resume sections to align them with the
// technology keywords found in a job description.
package enhance

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/sections"
)

// defaultSummary replaces a missing professional summary.
const defaultSummary = "Results-driven frontend developer experienced in " +
	"building responsive web applications with React and TypeScript. " +
	"Passionate about clean code, modern frameworks, and delivering " +
	"polished user experiences."

// Sections returns a copy of the resume with summary, skills, and experience
// rewritten against the tech keyword subset. All edits are literal substring
// substitutions and silently no-op when the target phrase is absent.
func Sections(r *sections.Resume, techKeywords []string) *sections.Resume {
	out := *r
	out.Summary = enhanceSummary(r.Summary)
	out.Skills = enhanceSkills(r.Skills, techKeywords)
	out.Experience = enhanceExperience(r.Experience, techKeywords)
	return &out
}

func enhanceSummary(summary string) string {
	if strings.TrimSpace(summary) == "" {
		return defaultSummary + "\n"
	}
	lower := strings.ToLower(summary)
	switch {
	case strings.Contains(lower, "react") && !strings.Contains(lower, "typescript"):
		return replaceFold(summary, "react", "React and TypeScript")
	case strings.Contains(lower, "javascript") && !strings.Contains(lower, "react"):
		return replaceFold(summary, "javascript", "React, JavaScript")
	}
	return summary
}

func enhanceSkills(skills string, techKeywords []string) string {
	if strings.TrimSpace(skills) == "" {
		return skills
	}
	lower := strings.ToLower(skills)
	if !strings.Contains(lower, "typescript") {
		skills = strings.Replace(skills, "JavaScript", "JavaScript, TypeScript", 1)
	}
	if !strings.Contains(lower, "tailwind") && hasKeyword(techKeywords, "tailwind") {
		skills = strings.Replace(skills, "Bootstrap", "Bootstrap, Tailwind CSS", 1)
	}
	return skills
}

func enhanceExperience(experience string, techKeywords []string) string {
	if strings.TrimSpace(experience) == "" || !hasKeyword(techKeywords, "typescript") {
		return experience
	}
	if strings.Contains(experience, "React.js and modern JavaScript") {
		return strings.ReplaceAll(experience,
			"React.js and modern JavaScript",
			"React.js, TypeScript, and modern JavaScript")
	}
	return strings.ReplaceAll(experience, "using React.js", "using React.js and TypeScript")
}

func hasKeyword(kws []string, term string) bool {
	for _, kw := range kws {
		if strings.Contains(strings.ToLower(kw), term) {
			return true
		}
	}
	return false
}

// replaceFold replaces every case-insensitive occurrence of old with the
// literal replacement text.
func replaceFold(s, old, repl string) string {
	lower := strings.ToLower(s)
	oldLower := strings.ToLower(old)

	var b strings.Builder
	for {
		i := strings.Index(lower, oldLower)
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		b.WriteString(repl)
		s = s[i+len(old):]
		lower = lower[i+len(oldLower):]
	}
}
