package tailor

import "fmt"

// QualityError indicates summarizer output that failed validation. It is
// recovered internally by falling back to the heuristic rewrite and never
// reaches the caller.
type QualityError struct {
	Reason string
}

func (e *QualityError) Error() string {
	return fmt.Sprintf("summarizer output rejected: %s", e.Reason)
}

// ServiceError indicates the external summarizer could not be reached or
// failed outright. Like QualityError it only triggers the fallback path.
type ServiceError struct {
	Cause error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("summarizer call failed: %v", e.Cause)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}
