package domain

import (
	"strings"
)

// NormalizeAccount prepares an account identifier for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase (hex addresses compare case-insensitively)
func NormalizeAccount(a Account) Account {
	return Account(strings.ToLower(strings.TrimSpace(string(a))))
}

// NormalizeName trims a display name and compresses runs of whitespace into a
// single space. Case is preserved.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))
	prevSpace := false
	for _, r := range name {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
