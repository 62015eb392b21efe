package main

import "strings"

// The two sheets use disjoint code vocabularies that happen to share an
// alphabet (A1 means laser on the repairs sheet, L means laser on the recut
// list), so each sheet gets its own classifier and the two rule sets are
// never merged.

// ClassifyRepairCode maps a Sewing Repairs reason code to its error source.
// Precedence: exact table match, then a prefix extracted before the first
// space/hyphen, then ordered prefix patterns. Total: blank input yields
// Unknown, anything unmatched yields Other.
func (t *Tables) ClassifyRepairCode(raw string) ErrorSource {
	code := strings.TrimSpace(raw)
	if code == "" {
		return UnknownError
	}

	if src, ok := t.RepairCodes[code]; ok {
		return src
	}

	// Long-form codes look like "A1A - Cutting Operator: Cutting Error".
	prefix, _, _ := strings.Cut(code, " ")
	prefix, _, _ = strings.Cut(prefix, "-")
	prefix = strings.TrimSpace(prefix)
	if src, ok := t.RepairCodes[prefix]; ok {
		return src
	}

	switch {
	case strings.HasPrefix(code, "A1") && !hasAnyPrefix(code, "A1A", "A1B", "A1C", "A1D"):
		return CuttingMachineError // bare A1 variants are laser errors
	case strings.HasPrefix(code, "A1"):
		return CuttingOperatorError
	case strings.HasPrefix(code, "A2") || strings.HasPrefix(code, "S"):
		return SewingOperatorError
	case strings.HasPrefix(code, "B1C") || strings.HasPrefix(code, "B1E"):
		return CuttingMachineError
	case strings.HasPrefix(code, "B2"):
		return SewingMachineError
	case strings.HasPrefix(code, "B"):
		return OtherMachineError
	case strings.HasPrefix(code, "C"):
		return MaterialDefect
	}

	return OtherError
}

// ClassifyRecutCode maps a Recut List CODE to its error source. Exact match
// is tried case-sensitively, then case-insensitively; past that every
// comparison is case-insensitive on the first character.
func (t *Tables) ClassifyRecutCode(raw string) ErrorSource {
	code := strings.TrimSpace(raw)
	if code == "" {
		return UnknownError
	}

	if src, ok := t.RecutCodes[code]; ok {
		return src
	}
	if src, ok := t.recutCodeLower[strings.ToLower(code)]; ok {
		return src
	}

	upper := strings.ToUpper(code)
	switch {
	case strings.HasPrefix(upper, "A") && strings.Contains(code, "*"):
		return OtherMachineError
	case strings.HasPrefix(upper, "A") && strings.Contains(upper, "AMS"):
		return SewingMachineError
	case strings.HasPrefix(upper, "A"):
		return SewingOperatorError
	case strings.HasPrefix(upper, "B"), strings.HasPrefix(upper, "C"):
		return CuttingOperatorError
	case strings.HasPrefix(upper, "D"):
		return MaterialDefect
	case strings.HasPrefix(upper, "E"):
		return OtherError
	case strings.HasPrefix(upper, "F"):
		return CuttingOperatorError
	case strings.HasPrefix(upper, "L"):
		return CuttingMachineError
	case strings.HasPrefix(upper, "P"):
		return OtherError
	}

	return OtherError
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
