package textparse

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	reKSuffix    = regexp.MustCompile(`(?i)^(.*?)\s*k$`)
	reNonDigit   = regexp.MustCompile(`\D`)
	reSeparators = regexp.MustCompile(`[.,\s]`)
)

// NormalizePrice converts a numeric token with mixed conventions into an
// integer amount. "21.000" and "30,000" read as thousand-separated integers,
// "3.5k" and "3,5k" as decimal multiples of a thousand. Malformed input
// degrades to 0, never to an error.
func NormalizePrice(token string) int {
	s := strings.TrimSpace(token)
	if s == "" {
		return 0
	}

	if m := reKSuffix.FindStringSubmatch(s); m != nil {
		rest := strings.TrimSpace(m[1])
		if rest == "" {
			return 0
		}
		if strings.ContainsAny(rest, ".,") {
			// single separator acts as a decimal point here: 3,5k == 3.5k
			rest = strings.ReplaceAll(rest, ",", ".")
			f, err := strconv.ParseFloat(rest, 64)
			if err != nil || f < 0 {
				return 0
			}
			return int(math.Round(f * 1000))
		}
		rest = reSeparators.ReplaceAllString(rest, "")
		n, err := strconv.Atoi(rest)
		if err != nil || n < 0 {
			return 0
		}
		return n * 1000
	}

	// every '.', ',' and space is a thousand separator, never a decimal
	s = reSeparators.ReplaceAllString(s, "")
	if s == "" || reNonDigit.MatchString(s) {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
