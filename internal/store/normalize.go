package store

import (
	"strconv"
	"strings"
)

// Sentinel tokens that all mean "no value" in the source tables.
var badTokens = map[string]struct{}{
	"":     {},
	"-":    {},
	"none": {},
	"nan":  {},
	"null": {},
}

// Clean normalizes empty-sentinel tokens to the canonical empty string and
// trims surrounding whitespace.
func Clean(s string) string {
	trimmed := strings.TrimSpace(s)
	if _, bad := badTokens[strings.ToLower(trimmed)]; bad {
		return ""
	}
	return trimmed
}

// ParseFloat parses a numeric cell, tolerating thousands separators.
func ParseFloat(s string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// NormalizeNumber canonicalizes a jersey number cell: strips the "No."
// prefix, surrounding whitespace, and a trailing ".0" left over from numeric
// exports.
func NormalizeNumber(s string) string {
	n := strings.TrimSpace(s)
	if len(n) >= 3 && strings.EqualFold(n[:3], "no.") {
		n = n[3:]
	}
	n = strings.TrimSpace(n)
	n = strings.TrimSuffix(n, ".0")
	return n
}
