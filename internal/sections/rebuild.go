package sections

import "strings"

// section labels emitted by Rebuild, in output order.
const (
	labelSummary        = "PROFESSIONAL SUMMARY"
	labelSkills         = "TECHNICAL SKILLS"
	labelExperience     = "PROFESSIONAL EXPERIENCE"
	labelEducation      = "EDUCATION"
	labelProjects       = "PROJECTS"
	labelCertifications = "CERTIFICATIONS"
	labelAdditional     = "ADDITIONAL INFORMATION"
)

// skillsLineTopics keep a skills bullet line in the rebuilt document. Bullet
// lines matching none of them are presumed off-topic and dropped.
var skillsLineTopics = []string{
	"programming", "frameworks", "tools", "databases", "design", "languages",
}

// Rebuild assembles a Resume back into one formatted document. Empty sections
// are omitted entirely; populated sections get an uppercase label and are
// separated by blank lines, with no trailing blank line at the end.
func Rebuild(r *Resume) string {
	parts := []string{strings.TrimSpace(r.Header)}

	appendSection := func(label, content string) {
		content = strings.TrimSpace(content)
		if content == "" {
			return
		}
		parts = append(parts, label+"\n"+content)
	}

	appendSection(labelSummary, r.Summary)
	appendSection(labelSkills, filterSkillsLines(r.Skills))
	appendSection(labelExperience, r.Experience)
	appendSection(labelEducation, r.Education)
	appendSection(labelProjects, r.Projects)
	appendSection(labelCertifications, r.Certifications)
	appendSection(labelAdditional, r.Additional)

	return strings.Join(parts, "\n\n")
}

// filterSkillsLines drops skills bullets that name none of the recognized
// skill topics. Non-bullet lines pass through untouched.
func filterSkillsLines(skills string) string {
	var kept []string
	for _, line := range strings.Split(skills, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isBullet(trimmed) && !containsAny(strings.ToLower(trimmed), skillsLineTopics) {
			continue
		}
		kept = append(kept, trimmed)
	}
	return strings.Join(kept, "\n")
}
