// Package textparse recovers structured orders from pasted, human-written
// order messages. It is deterministic and never fails on bad input: malformed
// prices normalize to zero, unrecognizable text yields an empty order with a
// zero confidence score, and the caller decides whether to escalate.
package textparse

import "context"

// ExtractedItem is a single purchased item recovered from one source line.
// Exactly one of UnitPrice/TotalPrice was authoritative at creation time;
// IsManualTotal records which, and the other is derived from Qty.
type ExtractedItem struct {
	ID            string
	Name          string
	Qty           int
	UnitPrice     int
	TotalPrice    int
	IsManualTotal bool
}

// Contact is the recipient recovered from one block. Fields are never nil,
// only possibly empty. Phone holds digits only.
type Contact struct {
	Name    string
	Phone   string
	Address string
}

// RegionMatch is a structured administrative-region record attached to an
// order when the gazetteer lookup is confident enough.
type RegionMatch struct {
	Province    string
	City        string
	District    string
	Subdistrict string
	PostalCode  string
	Confidence  float64
}

// PartialOrder is the per-block output of the assembler. It has no identity
// of its own; downstream consumers assign a durable ID when persisting.
type PartialOrder struct {
	Contact            Contact
	Items              []ExtractedItem
	Region             *RegionMatch
	PotentialItemCount int
	Confidence         float64
	HasUnpricedItems   bool
}

// ExtractResult is the output of the item-line battery for one block.
// ClaimedLines lists the trimmed source lines attributed to items, in the
// order they were claimed; the caller strips them before contact splitting.
type ExtractResult struct {
	Items            []ExtractedItem
	HasUnpricedItems bool
	ClaimedLines     []string
}

// RegionResolver maps free-form address text to administrative-region fields.
// A nil match with nil error means "no idea"; errors are treated the same way
// by the assembler.
type RegionResolver interface {
	ResolveRegion(ctx context.Context, address string) (*RegionMatch, error)
}
