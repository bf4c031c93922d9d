package services

import "strings"

// linkPlaceholders are values custodians enter when no reference exists.
// Matched case-insensitively against the whole trimmed candidate.
var linkPlaceholders = []string{"NA or TBC", "N/A"}

// ResolveLink picks the candidate usable as an outbound hyperlink.
// The primary candidate wins when usable, then the secondary; otherwise "".
// Pure function, never fails.
func ResolveLink(primary, secondary string) string {
	if isUsableLink(primary) {
		return primary
	}
	if isUsableLink(secondary) {
		return secondary
	}
	return ""
}

// isUsableLink reports whether a candidate is a real hyperlink: non-empty,
// starting with the literal prefix "http" (case-sensitive), and not one of
// the known placeholder values.
func isUsableLink(candidate string) bool {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" || !strings.HasPrefix(trimmed, "http") {
		return false
	}
	for _, p := range linkPlaceholders {
		if strings.EqualFold(trimmed, p) {
			return false
		}
	}
	return true
}
