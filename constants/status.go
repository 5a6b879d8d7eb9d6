// Package constants holds stable enums stored in the database.
package constants

// ParseStatus is the canonical status for rows in parse_jobs / orders.
type ParseStatus string

// Stable values (store these exact strings in DB).
const (
	ParseStatusQueued      ParseStatus = "QUEUED"       // waiting for a worker
	ParseStatusRunning     ParseStatus = "RUNNING"      // in progress
	ParseStatusRulesOK     ParseStatus = "RULES_OK"     // rule battery accepted the result
	ParseStatusLLMOK       ParseStatus = "LLM_OK"       // AI fallback produced the result
	ParseStatusNeedsReview ParseStatus = "NEEDS_REVIEW" // accepted, routed to a human
	ParseStatusFailed      ParseStatus = "FAILED"       // terminal failure
)

// ParseStatusFromString maps a wire string to a known status.
func ParseStatusFromString(s string) (ParseStatus, bool) {
	switch ParseStatus(s) {
	case ParseStatusQueued, ParseStatusRunning, ParseStatusRulesOK,
		ParseStatusLLMOK, ParseStatusNeedsReview, ParseStatusFailed:
		return ParseStatus(s), true
	}
	return "", false
}

// ExtractionSource records which extractor produced an order.
type ExtractionSource string

const (
	SourceRules ExtractionSource = "RULES"
	SourceLLM   ExtractionSource = "LLM"
)
