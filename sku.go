package main

import "strings"

// ParentSKU strips color-code segments from a compound SKU so color variants
// of the same product roll up together. Size segments and product prefixes
// are kept in original order and casing; membership in the color vocabulary
// is the only thing that removes a segment, because color and product codes
// share the alphabet and position is not reliable. Exception SKUs are fixed
// points even when a segment collides with the color vocabulary.
//
//	AC-ESE-BK    -> AC-ESE      (color removed)
//	PC-F20-BK-LG -> PC-F20-LG   (color removed, size kept)
//	PI-CB        -> PI-CB       (exception: CB is part of the product name)
//	CR-AL-BK     -> CR-AL       (CR is a product prefix, not a color)
//
// Blank input resolves to "". The resolver is idempotent: no color tokens
// survive the first pass.
func (t *Tables) ParentSKU(raw string) string {
	sku := strings.TrimSpace(raw)
	if sku == "" {
		return ""
	}

	if t.isExceptionSKU(sku) {
		return sku
	}

	parts := strings.Split(sku, "-")
	kept := parts[:0]
	for _, part := range parts {
		if !t.isColorCode(part) {
			kept = append(kept, part)
		}
	}

	// All segments matched the color vocabulary. Malformed input; return it
	// unchanged rather than producing an empty rollup key.
	if len(kept) == 0 {
		return sku
	}

	return strings.Join(kept, "-")
}
