// Package profile holds the supplier profile catalog: detection rules,
// metadata extraction rules, line-item patterns, and validation bounds for
// each supplier's invoice format. Profiles are plain data consumed by the
// shared extraction engine; adding a supplier never touches engine code.
package profile

import (
	"fmt"
	"regexp"

	"invoscan/internal/domain"
)

// Date format tags a metadata rule can declare for the date field.
const (
	DateFormatDMY2 = "DD/MM/YY"
	DateFormatDMY4 = "DD/MM/YYYY"
)

// MetadataFieldRule is one pattern in a field's ordered rule list. Rules are
// tried in declared order; the first match wins (except total_amount, where
// the extractor scans all matches — see extract.Metadata).
type MetadataFieldRule struct {
	Pattern *regexp.Regexp
	Group   int    // 1-based capture group holding the value
	Where   string // informational location hint, e.g. "top right"
	Format  string // date source format tag; empty for non-date fields
}

// FieldSource says where a line-item field's value comes from: a capture
// group of the pattern, or a fixed constant (e.g. unit=1 for "Each" rows).
type FieldSource struct {
	Group int
	Const *float64
}

// Grp maps a field to a 1-based capture group.
func Grp(n int) FieldSource { return FieldSource{Group: n} }

// Fixed maps a field to a constant value with no capture group.
func Fixed(v float64) FieldSource { return FieldSource{Const: &v} }

// LineItemPattern is one row shape a supplier's invoices can contain.
// Patterns within a profile are tried in declared order and may all fire on
// the same document; matches accumulate rather than exclude each other.
type LineItemPattern struct {
	Name    string // diagnostics only, surfaced on extracted items
	Pattern *regexp.Regexp
	Fields  map[domain.ItemField]FieldSource
}

// ValidationRules holds the numeric bounds the validator checks line items
// against. A range whose min and max are both zero is not enforced.
type ValidationRules struct {
	QuantityMin       float64
	QuantityMax       float64
	PriceMin          float64
	PriceMax          float64
	TaxRatePercent    float64
	ExpectedDiscounts []float64
}

// Profile is the complete rule set for one supplier's invoice format.
// Profiles are immutable once registered; identity is the Code.
type Profile struct {
	Code             string
	DisplayName      string
	Identifier       *regexp.Regexp
	MetadataSpecs    map[domain.MetadataField][]MetadataFieldRule
	LineItemPatterns []LineItemPattern
	Validation       ValidationRules
	PromptHints      []string
	ExpectedColumns  []string
}

// validate fails fast on malformed profile data: every declared capture
// group must exist in its compiled pattern, so a bad mapping surfaces at
// load time rather than as silently empty fields.
func (p *Profile) validate() error {
	if p.Code == "" {
		return fmt.Errorf("%w: empty profile code", domain.ErrInvalidProfile)
	}
	if p.Identifier == nil {
		return fmt.Errorf("%w: profile %q has no identifier", domain.ErrInvalidProfile, p.Code)
	}
	for field, rules := range p.MetadataSpecs {
		for i, r := range rules {
			if r.Pattern == nil {
				return fmt.Errorf("%w: profile %q metadata %s[%d] has no pattern", domain.ErrInvalidProfile, p.Code, field, i)
			}
			if r.Group < 1 || r.Group > r.Pattern.NumSubexp() {
				return fmt.Errorf("%w: profile %q metadata %s[%d] capture group %d out of range (pattern has %d)",
					domain.ErrInvalidProfile, p.Code, field, i, r.Group, r.Pattern.NumSubexp())
			}
		}
	}
	for _, lp := range p.LineItemPatterns {
		if lp.Name == "" {
			return fmt.Errorf("%w: profile %q has an unnamed line-item pattern", domain.ErrInvalidProfile, p.Code)
		}
		if lp.Pattern == nil {
			return fmt.Errorf("%w: profile %q pattern %q has no regex", domain.ErrInvalidProfile, p.Code, lp.Name)
		}
		if len(lp.Fields) == 0 {
			return fmt.Errorf("%w: profile %q pattern %q maps no fields", domain.ErrInvalidProfile, p.Code, lp.Name)
		}
		for field, src := range lp.Fields {
			if src.Const != nil {
				if !domain.NumericItemFields[field] {
					return fmt.Errorf("%w: profile %q pattern %q maps text field %s to a constant",
						domain.ErrInvalidProfile, p.Code, lp.Name, field)
				}
				continue
			}
			if src.Group < 1 || src.Group > lp.Pattern.NumSubexp() {
				return fmt.Errorf("%w: profile %q pattern %q field %s capture group %d out of range (pattern has %d)",
					domain.ErrInvalidProfile, p.Code, lp.Name, field, src.Group, lp.Pattern.NumSubexp())
			}
		}
	}
	return nil
}
