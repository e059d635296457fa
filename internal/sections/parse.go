package sections

import "strings"

// section cursor values used during the parse scan.
type cursor int

const (
	curHeader cursor = iota
	curSummary
	curSkills
	curExperience
	curEducation
	curProjects
	curCertifications
	curAdditional
)

// sectionTitles maps title substrings to cursors. Checked in order so that
// compound labels ("PROFESSIONAL SUMMARY", "TECHNICAL SKILLS") resolve to the
// intended section.
var sectionTitles = []struct {
	substr string
	cur    cursor
}{
	{"summary", curSummary},
	{"skills", curSkills},
	{"experience", curExperience},
	{"work history", curExperience},
	{"education", curEducation},
	{"projects", curProjects},
	{"certifications", curCertifications},
	{"additional", curAdditional},
}

var bulletPrefixes = []string{"-", "•", "*"}

// softSkillPhrases redirect generic bullet points to the additional section
// no matter where they appear in the resume.
var softSkillPhrases = []string{
	"continuous learner",
	"team player",
	"attention to detail",
}

// skillsNoise are bullet topics that do not belong in a technical skills
// section and are moved to additional.
var skillsNoise = []string{"portfolio", "staying updated", "latest technologies"}

var contactMarkers = []string{"@", "linkedin", "github", "phone", "email"}

// Parse scans resume text line by line into a Resume. The scan is a single
// forward pass: the first matching rule wins for each line and nothing is
// revisited.
func Parse(resumeText string) *Resume {
	res := &Resume{}
	cur := curHeader
	headerDone := false

	for _, raw := range strings.Split(resumeText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		if c, ok := detectTitle(line, lower); ok {
			cur = c
			if cur != curHeader {
				headerDone = true
			}
			continue
		}

		if isSoftSkillBullet(line, lower) {
			res.Additional += line + "\n"
			continue
		}

		if cur == curHeader && !headerDone {
			switch {
			case res.Header == "", containsAny(lower, contactMarkers):
				res.Header += line + "\n"
				continue
			case strings.Contains(lower, "developer"), strings.Contains(lower, "engineer"):
				res.Header += line + "\n"
				continue
			default:
				headerDone = true
				cur = curSummary
			}
		}

		if cur == curSkills && isBullet(line) && containsAny(lower, skillsNoise) {
			res.Additional += line + "\n"
			continue
		}

		*res.field(cur) += line + "\n"
	}

	return res
}

// field returns the section the cursor points at.
func (r *Resume) field(c cursor) *string {
	switch c {
	case curSummary:
		return &r.Summary
	case curSkills:
		return &r.Skills
	case curExperience:
		return &r.Experience
	case curEducation:
		return &r.Education
	case curProjects:
		return &r.Projects
	case curCertifications:
		return &r.Certifications
	case curAdditional:
		return &r.Additional
	default:
		return &r.Header
	}
}

// detectTitle reports whether a line is a section heading. Bullet lines are
// never headings, so bullets that happen to mention "skills" stay put.
func detectTitle(line, lower string) (cursor, bool) {
	if isBullet(line) {
		return curHeader, false
	}
	for _, t := range sectionTitles {
		if strings.Contains(lower, t.substr) {
			return t.cur, true
		}
	}
	return curHeader, false
}

func isBullet(line string) bool {
	for _, p := range bulletPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

func isSoftSkillBullet(line, lower string) bool {
	if !isBullet(line) {
		return false
	}
	if containsAny(lower, softSkillPhrases) {
		return true
	}
	// "strong ... abilities/skills" pattern, e.g. "strong communication skills"
	if strings.Contains(lower, "strong") &&
		(strings.Contains(lower, "abilities") || strings.Contains(lower, "skills")) {
		return true
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
