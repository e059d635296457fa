// Package sections splits free-form resume text into named sections and
// reassembles them into a single formatted document.
package sections

// Resume holds the eight fixed sections of a parsed resume. Every field is
// always present; unmatched content stays in Header per the parse rules.
type Resume struct {
	Header         string
	Summary        string
	Skills         string
	Experience     string
	Education      string
	Projects       string
	Certifications string
	Additional     string
}
