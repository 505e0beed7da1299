package models

import "fmt"

// ExtractKind classifies why an extraction produced no usable records.
type ExtractKind string

const (
	// KindConnectionFailed covers transport-level faults: timeouts, DNS
	// failures, non-2xx responses. Not cached (likely transient).
	KindConnectionFailed ExtractKind = "connection_failed"

	// KindBlocked means a bot-protection fingerprint was detected in the
	// response body. Cached, to avoid hammering a site that is blocking us.
	KindBlocked ExtractKind = "blocked"

	// KindNoResults means the extraction cascade ran but found nothing.
	// Cached as a stable negative.
	KindNoResults ExtractKind = "no_results"
)

// Message returns the user-facing title for this failure kind.
func (k ExtractKind) Message() string {
	switch k {
	case KindConnectionFailed:
		return "Connection failed"
	case KindBlocked:
		return "Blocked by protection service"
	case KindNoResults:
		return "No results found"
	default:
		return "Scraping failed"
	}
}

// ExtractError is the failure half of an extraction Outcome.
type ExtractError struct {
	Kind   ExtractKind
	Detail string
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Cacheable reports whether this failure is a stable negative that should
// be stored for the full cache TTL. Connection-level faults are not.
func (e *ExtractError) Cacheable() bool {
	return e.Kind != KindConnectionFailed
}

// Outcome is the result of one extractor run: either a non-empty ordered
// list of videos, or a structured failure. Never both.
type Outcome struct {
	Records []Video
	Err     *ExtractError
}

// OK reports whether the outcome carries records.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Fail builds a failure outcome.
func Fail(kind ExtractKind, detail string) Outcome {
	return Outcome{Err: &ExtractError{Kind: kind, Detail: detail}}
}
