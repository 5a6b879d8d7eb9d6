package textparse

import "strings"

// SplitContact recovers name, phone, and address from a block whose item
// lines have already been stripped by the caller. Labeled fields win; a
// fallback pass routes leftover lines to name or address. All fields default
// to empty strings.
func SplitContact(block string) Contact {
	var c Contact
	lines := splitLines(block)
	touched := make([]bool, len(lines))

	// labeled pass
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || isSectionHeader(line) {
			touched[i] = true
			continue
		}
		if m := reNameLabel.FindStringSubmatch(line); m != nil {
			if c.Name == "" {
				c.Name = strings.TrimSpace(m[1])
			}
			touched[i] = true
			continue
		}
		if m := rePhoneLabel.FindStringSubmatch(line); m != nil {
			if c.Phone == "" {
				c.Phone = digitsOf(m[1])
			}
			touched[i] = true
			continue
		}
		if m := reAddressLabel.FindStringSubmatch(line); m != nil {
			appendAddress(&c, strings.TrimSpace(m[1]))
			touched[i] = true
			continue
		}
		if c.Phone == "" {
			if digits := findUnlabeledPhone(line); digits != "" {
				c.Phone = digits
				touched[i] = true
			}
		}
	}

	// fallback pass over whatever the labeled pass left alone
	first := true
	for i, raw := range lines {
		if touched[i] {
			continue
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		markers := containsAddressMarker(line)
		if first && c.Name == "" && !markers {
			c.Name = line
		} else {
			appendAddress(&c, line)
		}
		first = false
	}

	return c
}

func appendAddress(c *Contact, text string) {
	if text == "" {
		return
	}
	if c.Address == "" {
		c.Address = text
		return
	}
	c.Address += ", " + text
}
