package main

import (
	"strconv"
	"strings"
)

// NormalizeName trims and title-cases a free-text name. Blank input
// normalizes to "".
func NormalizeName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return ""
	}
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// NormalizeOperatorName canonicalizes operator identifiers written as
// first-initial + last-name in arbitrary case ("JSMITH", "jsmith") to the
// JSmith form: first two characters upper, rest lower. No name dictionary
// needed since the sheet never uses any other shape.
func NormalizeOperatorName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return ""
	}
	if len(name) == 1 {
		return strings.ToUpper(name)
	}
	return strings.ToUpper(name[:2]) + strings.ToLower(name[2:])
}

// flagStrings are the only tokens the boolean columns treat as true.
// Ambiguous or garbage values must never count as true.
var flagStrings = map[string]bool{
	"true": true,
	"x":    true,
	"y":    true,
	"1":    true,
	"yes":  true,
}

// ParseFlag cleans a boolean-ish spreadsheet cell. The sheets mix TRUE, X,
// Y, 1 and free-form junk; everything outside the closed true-set is false.
// Numeric cells count as true only when they equal 1 ("1.0" from a
// spreadsheet export is true, "2" is not).
func ParseFlag(raw string) bool {
	v := strings.ToLower(strings.TrimSpace(raw))
	if flagStrings[v] {
		return true
	}
	if n, err := strconv.ParseFloat(v, 64); err == nil {
		return n == 1
	}
	return false
}

// NormalizeDetection standardizes the "Repair Discovered" column to the
// SEWING/QC tokens. Unrecognized values pass through uppercased so they stay
// visible in reports instead of silently vanishing.
func NormalizeDetection(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
