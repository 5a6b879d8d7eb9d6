package textparse

import (
	"regexp"
	"strings"
)

// Synonym tables for contact labels, section headers, and address tokens.
// Lists mix Indonesian and English because pasted chats do too. Longer
// labels come first so prefix matching never stops at a shorter synonym.

var nameLabels = []string{
	"nama penerima", "atas nama", "penerima", "recipient", "pemesan",
	"customer", "nama", "name", "cust",
}

var phoneLabels = []string{
	"nomor hp", "no. hp", "no hp", "no. telp", "no telp", "no. wa", "no wa",
	"telepon", "whatsapp", "kontak", "contact", "telp", "phone", "hp", "wa",
}

var addressLabels = []string{
	"alamat lengkap", "alamat kirim", "dikirim ke", "kirim ke", "alamat",
	"address", "tujuan",
}

var sectionHeaders = []string{
	"orderan", "pesanan", "daftar", "barang", "order", "items", "item", "list",
}

// addressMarkers flag a line (or a line prefix) as street-address content.
var addressMarkers = []string{
	"jl.", "jl", "jalan", "gg.", "gg", "gang", "blok", "rt", "rw", "no.",
	"komplek", "komp", "perumahan", "perum", "dusun", "desa", "kelurahan",
	"kel.", "kel", "kecamatan", "kec.", "kec", "kabupaten", "kab.", "kab",
	"kota", "provinsi", "prov",
}

// regionKeywords appearing mid-line mark verbose address text; such lines are
// never counted as potential items even when an item-shaped substring occurs.
var regionKeywords = []string{
	"kecamatan", "kelurahan", "kabupaten", "provinsi", "kode pos",
}

var (
	reNameLabel    = labelRegexp(nameLabels)
	rePhoneLabel   = labelRegexp(phoneLabels)
	reAddressLabel = labelRegexp(addressLabels)

	reSectionHeader     = regexp.MustCompile(`(?i)^(?:` + alternation(sectionHeaders) + `)\s*[:\-]?\s*$`)
	reSectionHeaderLead = regexp.MustCompile(`(?i)^(?:` + alternation(sectionHeaders) + `)\s*[:\-]\s*`)

	// a full line of 8+ digits plus phone punctuation, never an item
	rePhoneLine = regexp.MustCompile(`^\+?[\d\s\-().]+$`)

	// standalone 8-15 digit run with phone punctuation allowed
	rePhoneRun = regexp.MustCompile(`\+?\d[\d\s\-().]*\d`)

	reDigitsOnly = regexp.MustCompile(`^\d+$`)
)

func labelRegexp(labels []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^(?:` + alternation(labels) + `)(?:\s*[:\-]\s*|\s+)(.+)$`)
}

func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}

// stripSectionHeader removes a leading inline header ("pesanan: 2x ...") so a
// header-prefixed item line matches like a bare one.
func stripSectionHeader(line string) string {
	return strings.TrimSpace(reSectionHeaderLead.ReplaceAllString(line, ""))
}

func isSectionHeader(line string) bool {
	return reSectionHeader.MatchString(line)
}

// isPhoneLine reports whether the whole line is one phone-like digit run.
func isPhoneLine(line string) bool {
	if !rePhoneLine.MatchString(line) {
		return false
	}
	return countDigits(line) >= 8
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// findUnlabeledPhone returns the digits of the first standalone 8-15 digit
// run in the line, or "" when none qualifies.
func findUnlabeledPhone(line string) string {
	for _, run := range rePhoneRun.FindAllString(line, -1) {
		digits := digitsOf(run)
		if len(digits) >= 8 && len(digits) <= 15 {
			return digits
		}
	}
	return ""
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

// startsWithContactKeyword reports whether text begins with a name, phone, or
// address synonym followed by a word boundary. Used to keep contact lines out
// of item names.
func startsWithContactKeyword(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, set := range [][]string{nameLabels, phoneLabels, addressLabels} {
		for _, label := range set {
			if !strings.HasPrefix(lower, label) {
				continue
			}
			rest := lower[len(label):]
			if rest == "" || strings.HasPrefix(rest, " ") ||
				strings.HasPrefix(rest, ":") || strings.HasPrefix(rest, "-") {
				return true
			}
		}
	}
	return false
}

// startsWithAddressMarker reports whether text begins with a street-address
// token such as "jl." or "rt".
func startsWithAddressMarker(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, marker := range addressMarkers {
		if !strings.HasPrefix(lower, marker) {
			continue
		}
		rest := lower[len(marker):]
		if rest == "" || strings.HasPrefix(rest, " ") || strings.HasPrefix(rest, ".") {
			return true
		}
	}
	return false
}

// containsAddressMarker reports whether any word of the line is an address
// token; used by the contact splitter's fallback pass. Dotted markers like
// "no." must keep their dot so plain English "no" never flags a line.
func containsAddressMarker(line string) bool {
	for _, word := range strings.Fields(strings.ToLower(line)) {
		word = strings.Trim(word, ",;:")
		for _, marker := range addressMarkers {
			if word == marker || strings.TrimSuffix(word, ".") == marker {
				return true
			}
		}
	}
	return false
}

func containsRegionKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range regionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
