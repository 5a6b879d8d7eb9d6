package textparse

import (
	"regexp"
	"strings"
)

var (
	reBulletLead   = regexp.MustCompile(`^[-*•]\s`)
	reQtyLead      = regexp.MustCompile(`(?i)^\d+[x.]\s`)
	reQtyUpperLead = regexp.MustCompile(`^\d+\s*[A-Z]`)
	reAtPriceShape = regexp.MustCompile(`@\s*\d[\d.,]*\s?[kK]?`)
	reTrailingNum  = regexp.MustCompile(`\s\d[\d.,]{2,}\s*[kK]?$`)
	reQtySuffix    = regexp.MustCompile(`(?i)\sx\s*\d+$`)
	reTabular      = regexp.MustCompile(`[,;\t]`)
)

// CountPotentialItems estimates how many lines of a block look like item
// lines. It is deliberately independent of the extraction battery: when it
// exceeds the number of items actually extracted, the caller knows the rules
// under-matched and can escalate to the AI fallback.
func CountPotentialItems(block string) int {
	count := 0
	for _, raw := range splitLines(block) {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if skipAsNonItem(line) {
			continue
		}
		if looksLikeItem(line) {
			count++
		}
	}
	return count
}

func skipAsNonItem(line string) bool {
	switch {
	case startsWithContactKeyword(line):
		return true
	case startsWithAddressMarker(line):
		return true
	case containsRegionKeyword(line):
		return true
	case isSectionHeader(line):
		return true
	case len(reTabular.Split(line, -1)) >= 3:
		// 3+ delimited fields reads as a tabular dump, not free text
		return true
	case isPhoneLine(line):
		return true
	}
	return false
}

func looksLikeItem(line string) bool {
	return reBulletLead.MatchString(line) ||
		reQtyLead.MatchString(line) ||
		reQtyUpperLead.MatchString(line) ||
		reAtPriceShape.MatchString(line) ||
		reTrailingNum.MatchString(line) ||
		reQtySuffix.MatchString(line)
}
