package main

import "strings"

// In-memory record filters. The date range itself is applied by the SQL
// queries; these slice an already-loaded week by classification facets.

func FilterRepairsBySource(records []RepairRecord, sources ...ErrorSource) []RepairRecord {
	if len(sources) == 0 {
		return records
	}
	var out []RepairRecord
	for _, r := range records {
		for _, s := range sources {
			if r.ErrorSource == s {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

func FilterRecutsBySource(records []RecutRecord, sources ...ErrorSource) []RecutRecord {
	if len(sources) == 0 {
		return records
	}
	var out []RecutRecord
	for _, r := range records {
		for _, s := range sources {
			if r.ErrorSource == s {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

func FilterRepairsByDetection(records []RepairRecord, location string) []RepairRecord {
	location = strings.ToUpper(strings.TrimSpace(location))
	var out []RepairRecord
	for _, r := range records {
		if r.Discovered == location {
			out = append(out, r)
		}
	}
	return out
}

// FilterRecutsByCodes keeps records whose CODE matches any of the given
// letters, where "A" also matches the long forms "A: SMO Error" and "A foo".
func FilterRecutsByCodes(records []RecutRecord, codes ...string) []RecutRecord {
	if len(codes) == 0 {
		return records
	}
	var out []RecutRecord
	for _, r := range records {
		if matchesAnyCode(r.Code, codes) {
			out = append(out, r)
		}
	}
	return out
}

func matchesAnyCode(code string, codes []string) bool {
	c := strings.ToUpper(strings.TrimSpace(code))
	if c == "" {
		return false
	}
	for _, want := range codes {
		w := strings.ToUpper(strings.TrimSpace(want))
		if w == "" {
			continue
		}
		if c == w || strings.HasPrefix(c, w) {
			return true
		}
	}
	return false
}

// hasRecutCodePrefix reports whether a recut CODE starts with the given
// letter, case-insensitively. Used for the cutting manager's B/C/F split.
func hasRecutCodePrefix(code, prefix string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(code)), strings.ToUpper(prefix))
}
