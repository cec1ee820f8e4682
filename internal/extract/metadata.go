package extract

import (
	"strconv"
	"strings"

	"invoscan/internal/domain"
	"invoscan/internal/profile"
)

// totalFloor discards small incidental numbers that happen to match a loose
// total pattern; the true grand total is reliably above it.
const totalFloor = 100.0

// Metadata extracts the header fields for one document. When p is nil (no
// supplier detected) an all-nil shell is returned; absent fields stay nil,
// which downstream consumers must read as "unknown", never zero.
func Metadata(text string, p *profile.Profile) domain.ExtractedMetadata {
	if p == nil {
		return domain.ExtractedMetadata{}
	}

	meta := domain.ExtractedMetadata{SupplierCode: p.Code}

	if token, _, ok := firstMatch(text, p.MetadataSpecs[domain.MetadataInvoiceNumber]); ok {
		meta.InvoiceNumber = &token
	}
	if token, rule, ok := firstMatch(text, p.MetadataSpecs[domain.MetadataDate]); ok {
		date := NormalizeDate(token, rule.Format)
		meta.Date = &date
	}
	if total, ok := largestTotal(text, p.MetadataSpecs[domain.MetadataTotalAmount]); ok {
		meta.TotalAmount = &total
	}

	return meta
}

// firstMatch walks the field's ordered rule list and returns the first
// successful match's capture group verbatim.
func firstMatch(text string, rules []profile.MetadataFieldRule) (string, profile.MetadataFieldRule, bool) {
	for _, rule := range rules {
		if m := rule.Pattern.FindStringSubmatch(text); m != nil {
			return m[rule.Group], rule, true
		}
	}
	return "", profile.MetadataFieldRule{}, false
}

// largestTotal implements the asymmetric total policy: every match of a
// pattern across the whole document is a candidate, candidates at or below
// the floor are dropped, and the maximum survivor wins. TOTAL patterns also
// hit subtotal lines; the grand total is the largest qualifying figure.
// Scanning stops at the first pattern that yields any survivor.
func largestTotal(text string, rules []profile.MetadataFieldRule) (float64, bool) {
	for _, rule := range rules {
		var best float64
		found := false
		for _, m := range rule.Pattern.FindAllStringSubmatch(text, -1) {
			v, err := parseAmount(m[rule.Group])
			if err != nil || v <= totalFloor {
				continue
			}
			if !found || v > best {
				best = v
				found = true
			}
		}
		if found {
			return best, true
		}
	}
	return 0, false
}

// parseAmount parses a captured numeric token. Fixed decimal-point
// convention; thousands separators are out of scope.
func parseAmount(token string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(token), 64)
}
