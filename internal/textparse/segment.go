package textparse

import (
	"regexp"
	"strings"
)

// minBlockLen is the noise floor: candidate blocks with fewer trimmed
// characters are discarded.
const minBlockLen = 10

var (
	reSeparatorLine = regexp.MustCompile(`^(?:={3,}|-{3,})$`)

	// a numbered "Nama:"/"Recipient:"-style line opens a fresh order even
	// without a blank line before it
	reNewEntry = regexp.MustCompile(`(?i)^\d+[.)]?\s*(?:nama|name|penerima|recipient)\b`)
)

// SegmentBlocks splits raw multi-order input into candidate per-order
// blocks. Splits happen on blank lines, on ===/--- visual separators, and
// before a numbered recipient entry.
func SegmentBlocks(raw string) []string {
	var blocks []string
	var cur []string

	flush := func() {
		if len(cur) == 0 {
			return
		}
		block := strings.Join(cur, "\n")
		if len(strings.TrimSpace(block)) >= minBlockLen {
			blocks = append(blocks, block)
		}
		cur = cur[:0]
	}

	for _, line := range splitLines(raw) {
		t := strings.TrimSpace(line)
		switch {
		case t == "", reSeparatorLine.MatchString(t):
			flush()
		case reNewEntry.MatchString(t) && len(cur) > 0:
			flush()
			cur = append(cur, line)
		default:
			cur = append(cur, line)
		}
	}
	flush()

	return blocks
}
