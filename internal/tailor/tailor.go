// Package tailor orchestrates the resume tailoring pipeline: keyword
// extraction, an external summarization attempt, and the heuristic fallback
// rewrite when the summarizer is unavailable or its output is unusable.
package tailor

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/jonathan/resume-tailor/internal/enhance"
	"github.com/jonathan/resume-tailor/internal/keywords"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/scoring"
	"github.com/jonathan/resume-tailor/internal/sections"
)

// FallbackService is the service label reported when the heuristic rewrite
// produced the result.
const FallbackService = "Enhanced Original (Fallback)"

// Prompt caps keep summarizer input inside the models' context budget.
const (
	maxPromptJobChars    = 300
	maxPromptResumeChars = 800
	summaryMinLength     = 100
	summaryMaxLength     = 300
)

// fallbackImprovements is the generic improvements list for heuristic results.
var fallbackImprovements = []string{
	"Highlighted technologies named in the job description",
	"Added TypeScript alongside existing JavaScript experience",
	"Reorganized content under standard resume section headers",
	"Removed generic soft-skill filler from the skills section",
}

// externalImprovements describes what the summarization path changed.
var externalImprovements = []string{
	"Condensed resume content with an ML summarization model",
	"Aligned wording with keywords from the job description",
	"Normalized section structure for recruiter screening",
}

// Request carries the inputs of one tailoring invocation. Inputs are assumed
// validated (non-blank) by the caller.
type Request struct {
	JobDescription string
	ResumeText     string
	UseAlternative bool
}

// Result is the immutable outcome of a tailoring invocation.
type Result struct {
	TailoredText string
	Keywords     []string
	Improvements []string
	MatchScore   int
	Service      string
	Timestamp    string
}

// Coordinator runs the tailoring pipeline against a shared summarizer handle.
type Coordinator struct {
	summarizer *llm.Lazy
}

// NewCoordinator creates a coordinator using the given summarizer handle.
func NewCoordinator(summarizer *llm.Lazy) *Coordinator {
	return &Coordinator{summarizer: summarizer}
}

// Tailor produces a best-effort tailored resume. It never fails: any
// summarizer problem is logged and recovered by the heuristic fallback.
func (c *Coordinator) Tailor(ctx context.Context, req Request) *Result {
	kws := keywords.Extract(req.JobDescription)
	parsed := sections.Parse(strings.TrimSpace(req.ResumeText))
	tech := keywords.TechSubset(kws)

	variant := llm.VariantDefault
	if req.UseAlternative {
		variant = llm.VariantAlternative
	}

	tailored, service, improvements := c.summarize(ctx, req, variant)
	if tailored == "" {
		enhanced := enhance.Sections(parsed, tech)
		tailored = sections.Rebuild(enhanced)
		service = FallbackService
		improvements = fallbackImprovements
	}

	return &Result{
		TailoredText: tailored,
		Keywords:     keywords.Display(kws),
		Improvements: improvements,
		MatchScore:   scoring.MatchScore(kws, tailored),
		Service:      service,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
}

// summarize attempts the external summarization path. An empty return text
// means the fallback must be used.
func (c *Coordinator) summarize(ctx context.Context, req Request, variant llm.Variant) (string, string, []string) {
	client, err := c.summarizer.Get(ctx)
	if err != nil {
		log.Printf("[tailor] %v", &ServiceError{Cause: err})
		return "", "", nil
	}

	prompt := buildPrompt(req.JobDescription, req.ResumeText)
	raw, err := client.Summarize(ctx, llm.SummarizeRequest{
		Prompt:    prompt,
		Variant:   variant,
		MinLength: summaryMinLength,
		MaxLength: summaryMaxLength,
	})
	if err != nil {
		log.Printf("[tailor] %v", &ServiceError{Cause: err})
		return "", "", nil
	}

	cleaned, err := validateOutput(raw)
	if err != nil {
		log.Printf("[tailor] %v", err)
		return "", "", nil
	}

	return cleaned, client.Label(variant), externalImprovements
}

// buildPrompt assembles the summarizer prompt from capped inputs.
func buildPrompt(jobDescription, resumeText string) string {
	var b strings.Builder
	b.WriteString("Tailor this resume to the job description.\n\nJob Description:\n")
	b.WriteString(truncateChars(jobDescription, maxPromptJobChars))
	b.WriteString("\n\nResume:\n")
	b.WriteString(truncateChars(resumeText, maxPromptResumeChars))
	return b.String()
}

func truncateChars(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
