package llm

import "context"

// ItemDraft is one purchased item as returned by the fallback extractor.
type ItemDraft struct {
	Name       string `json:"name"`
	Qty        int    `json:"qty"`
	UnitPrice  int    `json:"unit_price,omitempty"`
	TotalPrice int    `json:"total_price,omitempty"`
}

// OrderDraft is the normalized order shape we want from the LLM, one per
// detected order in the input text.
type OrderDraft struct {
	Name            string      `json:"name,omitempty"`
	Phone           string      `json:"phone,omitempty"` // digits only
	Address         string      `json:"address,omitempty"`
	Items           []ItemDraft `json:"items"`
	ModelConfidence float64     `json:"confidence,omitempty"` // optional (0..1)
}

// ExtractResponse wraps the orders array so the model returns one JSON object.
type ExtractResponse struct {
	Orders []OrderDraft `json:"orders"`
}

type ExtractRequest struct {
	RawText string

	// RuleItemCount and PotentialItemCount describe what the rule battery
	// already found; they go into the prompt so the model knows the text is
	// suspected of holding more items than were extracted.
	RuleItemCount      int
	PotentialItemCount int
}

// OrderExtractor is the interface the escalation pipeline depends on.
type OrderExtractor interface {
	ExtractOrders(ctx context.Context, req ExtractRequest) ([]OrderDraft, []byte /*rawJSON*/, error)
}
